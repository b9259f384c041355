// Package render translates frame commands into primitive draw calls on a
// sink: the raster Surface, the SVG writer, or the Counter used in tests.
package render

import (
	"github.com/gogpu/gg"

	"github.com/iburimskiy/piverse/internal/mapper"
)

// Point is a pixel coordinate.
type Point struct {
	X, Y float64
}

// Command is one entry of a frame's draw list.
type Command interface {
	apply(Sink)
}

// Clear fills the whole surface.
type Clear struct {
	Color gg.RGBA
}

// Path connects consecutive points with straight segments.
type Path struct {
	Points []Point
	Color  gg.RGBA
	Width  float64
	Closed bool
	Dash   []float64
}

// Arc is a full stroked circle.
type Arc struct {
	Center Point
	Radius float64
	Color  gg.RGBA
	Width  float64
	Dash   []float64
}

// Dot is a filled disc.
type Dot struct {
	Center Point
	Radius float64
	Color  gg.RGBA
}

// Label draws text with its baseline starting at At.
type Label struct {
	Text  string
	At    Point
	Color gg.RGBA
	Size  float64
}

func (c Clear) apply(s Sink) { s.Clear(c.Color) }
func (c Path) apply(s Sink)  { s.DrawPath(c) }
func (c Arc) apply(s Sink)   { s.DrawArc(c) }
func (c Dot) apply(s Sink)   { s.DrawDot(c) }
func (c Label) apply(s Sink) { s.DrawLabel(c) }

// Sink receives primitive draw calls.
type Sink interface {
	Clear(c gg.RGBA)
	DrawPath(p Path)
	DrawArc(a Arc)
	DrawDot(d Dot)
	DrawLabel(l Label)
}

// Execute replays cmds in order. A nil sink means the host gave us no
// drawing context and the frame is dropped.
func Execute(s Sink, cmds []Command) {
	if s == nil {
		return
	}
	for _, c := range cmds {
		c.apply(s)
	}
}

var (
	Black = gg.RGB(0, 0, 0)
	White = gg.RGB(1, 1, 1)
	Green = gg.RGB(0, 1, 0)
	// Faint is the translucent white used for guides and connecting lines.
	Faint = gg.RGBA2(1, 1, 1, 0.2)
)

// DigitColor is the stroke color assigned to a digit.
func DigitColor(digit int) gg.RGBA {
	return HueColor(mapper.Hue(digit))
}

// HueColor applies the fixed saturation and lightness to a hue in degrees.
func HueColor(hue float64) gg.RGBA {
	return gg.HSL(hue, mapper.Saturation, mapper.Lightness)
}
