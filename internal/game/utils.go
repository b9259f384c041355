package game

import (
	"fmt"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/piverse/internal/audio"
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func audioRate(hz int) beep.SampleRate {
	if hz <= 0 {
		return audio.DefaultSampleRate
	}
	return beep.SampleRate(hz)
}
