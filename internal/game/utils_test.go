package game

import (
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/piverse/internal/audio"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", formatDuration(0))
	assert.Equal(t, "00:05", formatDuration(5500*time.Millisecond))
	assert.Equal(t, "02:03", formatDuration(123*time.Second))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, -1.0, clamp(-3, -1, 1))
	assert.Equal(t, 1.0, clamp(2, -1, 1))
	assert.Equal(t, 0.25, clamp(0.25, -1, 1))
}

func TestAudioRate(t *testing.T) {
	assert.Equal(t, audio.DefaultSampleRate, audioRate(0))
	assert.Equal(t, beep.SampleRate(22050), audioRate(22050))
}
