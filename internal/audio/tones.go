// Package audio plays the digit sequence as a melody: one sine note per
// digit, a rest for the decimal point.
package audio

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/piverse/internal/digits"
)

const (
	DefaultSampleRate = beep.SampleRate(44100)
	DefaultNote       = 250 * time.Millisecond

	baseFrequency = 261.63 // C4
	amplitude     = 0.3
	fade          = 5 * time.Millisecond
)

// pentatonic maps digits to semitones above C4, two octaves of C major
// pentatonic.
var pentatonic = [10]int{0, 2, 4, 7, 9, 12, 14, 16, 19, 21}

// Pitch is the frequency in Hz used for a digit.
func Pitch(digit int) float64 {
	return baseFrequency * math.Pow(2, float64(pentatonic[digit])/12)
}

// Melody is a seekable streamer over the digit sequence.
type Melody struct {
	seq     digits.Sequence
	rate    beep.SampleRate
	noteLen int
	fadeLen int
	pos     int
}

// Tones returns a Melody playing each entry of seq for note.
func Tones(seq digits.Sequence, rate beep.SampleRate, note time.Duration) *Melody {
	noteLen := max(1, rate.N(note))
	return &Melody{
		seq:     seq,
		rate:    rate,
		noteLen: noteLen,
		fadeLen: min(rate.N(fade), noteLen/2),
	}
}

func (m *Melody) Stream(samples [][2]float64) (n int, ok bool) {
	total := m.Len()
	if m.pos >= total {
		return 0, false
	}
	for i := range samples {
		if m.pos >= total {
			break
		}
		v := m.sample(m.pos)
		samples[i] = [2]float64{v, v}
		m.pos++
		n++
	}
	return n, true
}

func (m *Melody) sample(pos int) float64 {
	d, ok := m.seq.Digit(pos / m.noteLen)
	if !ok {
		return 0
	}
	k := pos % m.noteLen
	env := 1.0
	if m.fadeLen > 0 {
		env = math.Min(1, math.Min(float64(k), float64(m.noteLen-1-k))/float64(m.fadeLen))
	}
	t := float64(k) / float64(m.rate)
	return amplitude * env * math.Sin(2*math.Pi*Pitch(d)*t)
}

func (m *Melody) Err() error { return nil }

// Len is the melody length in samples.
func (m *Melody) Len() int { return m.seq.Len() * m.noteLen }

func (m *Melody) Position() int { return m.pos }

func (m *Melody) Seek(p int) error {
	if p < 0 || p > m.Len() {
		return fmt.Errorf("seek %d: out of range [0, %d]", p, m.Len())
	}
	m.pos = p
	return nil
}

// NoteLen is the number of samples per digit.
func (m *Melody) NoteLen() int { return m.noteLen }

// IndexAt is the sequence index sounding at sample pos.
func (m *Melody) IndexAt(pos int) int {
	return min(pos/m.noteLen, m.seq.Len()-1)
}

// Format is the stereo, 16-bit format the melody is meant for.
func (m *Melody) Format() beep.Format {
	return beep.Format{SampleRate: m.rate, NumChannels: 2, Precision: 2}
}

// ExportWAV writes the whole melody of seq as a WAV file.
func ExportWAV(w io.WriteSeeker, seq digits.Sequence, rate beep.SampleRate, note time.Duration) error {
	m := Tones(seq, rate, note)
	if err := wav.Encode(w, m, m.Format()); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return nil
}
