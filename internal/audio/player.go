package audio

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"
)

const ringSize = 8192

// ErrNothingPlaying is returned by Seek when no track is loaded.
var ErrNothingPlaying = errors.New("nothing is playing")

// Player plays one track at a time on the default audio device: either the
// digit melody or a soundtrack file.
type Player struct {
	logger *zap.Logger

	mu       sync.Mutex
	rate     beep.SampleRate
	initDone bool
	track    beep.StreamSeeker
	closer   func() error
	melody   *Melody
	name     string
	tap      *Tap
	ctrl     *beep.Ctrl
}

func NewPlayer(logger *zap.Logger) *Player {
	return &Player{logger: logger}
}

// Play replaces whatever is playing with m.
func (p *Player) Play(m *Melody) error {
	return p.start("digits", m, m.Format(), nil, m)
}

// PlayFile decodes path and plays it in place of the current track.
func (p *Player) PlayFile(path string) error {
	s, format, err := Open(path)
	if err != nil {
		return err
	}
	if err := p.start(filepath.Base(path), s, format, s.Close, nil); err != nil {
		_ = s.Close()
		return err
	}
	return nil
}

func (p *Player) start(name string, track beep.StreamSeeker, format beep.Format, closer func() error, m *Melody) error {
	bufferSize := format.SampleRate.N(time.Second / 20)

	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case !p.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	case p.rate != format.SampleRate:
		// re-init when the sample rate changes
		p.clearLocked()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			return fmt.Errorf("reinit speaker: %w", err)
		}
	default:
		p.clearLocked()
	}
	p.rate = format.SampleRate

	tap := NewTap(track, ringSize)
	ctrl := &beep.Ctrl{Streamer: tap}
	p.track, p.closer, p.melody, p.name = track, closer, m, name
	p.tap, p.ctrl = tap, ctrl

	// The callback runs with the speaker locked; it must not take p.mu.
	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		p.logger.Debug("track finished", zap.String("track", name), zap.Int("samples", tap.Played()))
	})))
	p.logger.Info("track started",
		zap.String("track", name),
		zap.Int("samples", track.Len()),
		zap.Int("rate", int(format.SampleRate)))
	return nil
}

// clearLocked silences the speaker and releases the current track. p.mu must
// be held.
func (p *Player) clearLocked() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	if p.closer != nil {
		if err := p.closer(); err != nil {
			p.logger.Warn("close track", zap.String("track", p.name), zap.Error(err))
		}
	}
	p.track, p.closer, p.melody, p.name = nil, nil, nil, ""
	p.tap, p.ctrl = nil, nil
}

// TogglePause pauses or resumes the current track.
func (p *Player) TogglePause() {
	p.mu.Lock()
	ctrl := p.ctrl
	p.mu.Unlock()
	if ctrl == nil {
		return
	}
	speaker.Lock()
	ctrl.Paused = !ctrl.Paused
	speaker.Unlock()
}

// Seek moves playback to frac of the track, clamped to [0, 1).
func (p *Player) Seek(frac float64) error {
	p.mu.Lock()
	track := p.track
	p.mu.Unlock()
	if track == nil {
		return ErrNothingPlaying
	}

	speaker.Lock()
	defer speaker.Unlock()
	total := track.Len()
	if total == 0 {
		return nil
	}
	pos := int(frac * float64(total))
	pos = max(0, min(pos, total-1))
	if err := track.Seek(pos); err != nil {
		return fmt.Errorf("seek: %w", err)
	}
	return nil
}

// Stop silences playback.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initDone {
		return
	}
	p.clearLocked()
}

// Status describes playback for the renderer.
type Status struct {
	Playing bool
	Paused  bool
	// Track is "digits" for the melody or the soundtrack's file name.
	Track string
	// Index is the sounding entry of the digit sequence, -1 for soundtracks.
	Index    int
	Position time.Duration
	Duration time.Duration
	Wave     []float64
}

// Progress is the played fraction of the track.
func (s Status) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Position) / float64(s.Duration)
}

// Status samples the current track. waveLen bounds the returned waveform.
func (p *Player) Status(waveLen int) Status {
	p.mu.Lock()
	track, m, tap, ctrl, name, rate := p.track, p.melody, p.tap, p.ctrl, p.name, p.rate
	p.mu.Unlock()
	if track == nil {
		return Status{Index: -1}
	}
	speaker.Lock()
	paused := ctrl.Paused
	pos, total := track.Position(), track.Len()
	speaker.Unlock()

	st := Status{
		Playing:  pos < total,
		Paused:   paused,
		Track:    name,
		Index:    -1,
		Position: rate.D(pos),
		Duration: rate.D(total),
		Wave:     tap.Snapshot(waveLen),
	}
	if m != nil {
		st.Index = m.IndexAt(pos)
	}
	return st
}
