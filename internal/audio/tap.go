package audio

import (
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a streamer and keeps the most recent mono samples in a ring
// buffer along with the number of samples played, so the renderer can follow
// playback from another goroutine.
type Tap struct {
	Source beep.Streamer

	mu        sync.RWMutex
	buffer    []float64
	nextIndex int
	played    int
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = (samples[i][0] + samples[i][1]) / 2
			t.nextIndex = (t.nextIndex + 1) % len(t.buffer)
		}
		t.played += n
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Played is the number of samples that went through the tap.
func (t *Tap) Played() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.played
}

// Snapshot returns up to the last n samples, oldest first.
func (t *Tap) Snapshot(n int) []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, len(t.buffer), t.played)
	out := make([]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx = (idx + 1) % len(t.buffer)
	}
	return out
}
