package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFrame() []Command {
	return []Command{
		Clear{Color: Black},
		Path{Points: []Point{{10, 10}, {90, 20}, {50, 80}}, Color: DigitColor(3), Width: 2, Closed: true},
		Arc{Center: Point{50, 50}, Radius: 30, Color: DigitColor(7), Width: 2},
		Arc{Center: Point{50, 50}, Radius: 40, Color: Faint, Width: 1, Dash: []float64{5, 5}},
		Dot{Center: Point{20, 70}, Radius: 3, Color: Green},
		Label{Text: "3", At: Point{60, 40}, Color: White, Size: 14},
	}
}

func TestExecute_NilSink(t *testing.T) {
	assert.NotPanics(t, func() { Execute(nil, sampleFrame()) })
}

func TestCounter(t *testing.T) {
	var c Counter
	Execute(&c, sampleFrame())
	assert.EqualValues(t, 1, c.Clears())
	assert.EqualValues(t, 1, c.Paths())
	assert.EqualValues(t, 2, c.Arcs())
	assert.EqualValues(t, 1, c.Dots())
	assert.EqualValues(t, 1, c.Labels())
	assert.EqualValues(t, 6, c.Total())
}

func TestSurface_Deterministic(t *testing.T) {
	a, err := NewSurface(100, 100)
	require.NoError(t, err)
	defer a.Close()
	b, err := NewSurface(100, 100)
	require.NoError(t, err)
	defer b.Close()

	Execute(a, sampleFrame())
	Execute(b, sampleFrame())
	require.NoError(t, a.Err())
	assert.Equal(t, a.Image().Pix, b.Image().Pix)

	// redrawing on the same surface gives the same pixels again
	first := a.Image().Pix
	Execute(a, sampleFrame())
	assert.Equal(t, first, a.Image().Pix)
}

func TestSurface_Clear(t *testing.T) {
	s, err := NewSurface(4, 4)
	require.NoError(t, err)
	defer s.Close()

	s.Clear(Black)
	img := s.Image()
	r, g, b, a := img.At(2, 2).RGBA()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.EqualValues(t, 0xffff, a)
}

func TestSurface_ExportPNG(t *testing.T) {
	s, err := NewSurface(64, 48)
	require.NoError(t, err)
	defer s.Close()
	Execute(s, sampleFrame())

	before := s.Image().Pix
	var buf bytes.Buffer
	require.NoError(t, s.ExportPNG(&buf))
	assert.Equal(t, before, s.Image().Pix, "export must not touch the live surface")

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestNewSurface_BadSize(t *testing.T) {
	_, err := NewSurface(0, 10)
	assert.Error(t, err)
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 100, 100)
	Execute(s, sampleFrame())
	require.NoError(t, s.Close())

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "stroke-dasharray:5,5")
	assert.Contains(t, out, "M10.00 10.00 L90.00 20.00 L50.00 80.00 Z")
	assert.Equal(t, 4, strings.Count(out, "<path"))
}

func TestSaveSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pi-art.svg")
	require.NoError(t, SaveSVG(path, 100, 100, sampleFrame()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "</svg>")
	assert.Equal(t, 4, strings.Count(string(data), "<path"))

	err = SaveSVG(filepath.Join(t.TempDir(), "missing", "pi-art.svg"), 100, 100, sampleFrame())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDigitColor(t *testing.T) {
	assert.Equal(t, HueColor(0), DigitColor(0))
	assert.Equal(t, HueColor(108), DigitColor(3))
	assert.NotEqual(t, DigitColor(1), DigitColor(2))
}
