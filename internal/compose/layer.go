// Package compose holds the user's circle art: an ordered, append-only list
// of shapes drawn back to front on every frame.
package compose

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/piverse/internal/render"
)

const (
	DefaultRadius = 100
	MinRadius     = 10
	RadiusStep    = 10
)

var previewDash = []float64{5, 5}

// Layer owns the shape list of one canvas.
type Layer struct {
	width  float64
	height float64
	shapes []Shape
}

// NewLayer creates an empty layer for a width×height canvas.
func NewLayer(width, height int) *Layer {
	return &Layer{width: float64(width), height: float64(height)}
}

// Contains reports whether p lies on the canvas.
func (l *Layer) Contains(p render.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < l.width && p.Y < l.height
}

// PlaceShape appends a new shape. Its hue and rotation are derived from
// seed, so the same seed always yields the same shape. Points outside the
// canvas are ignored and ok is false.
func (l *Layer) PlaceShape(kind Kind, center render.Point, radius float64, seed uint64) (s Shape, ok bool) {
	if !l.Contains(center) {
		return Shape{}, false
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	hue := rng.Float64() * 360
	s = Shape{
		Kind:     kind,
		Center:   center,
		Radius:   radius,
		Hue:      hue,
		Color:    render.HueColor(hue),
		Rotation: rng.Float64() * 2 * math.Pi,
	}
	if kind == ConcentricRings {
		s.RingCount = Rings
	}
	l.shapes = append(l.shapes, s)
	return s, true
}

// Clear drops every shape.
func (l *Layer) Clear() {
	l.shapes = nil
}

func (l *Layer) Len() int {
	return len(l.shapes)
}

// Shapes returns a copy of the list in draw order.
func (l *Layer) Shapes() []Shape {
	return append([]Shape(nil), l.shapes...)
}

// Commands draws every shape, later shapes on top.
func (l *Layer) Commands() []render.Command {
	var cmds []render.Command
	for _, s := range l.shapes {
		cmds = append(cmds, s.Commands()...)
	}
	return cmds
}

// Preview is the dashed guide shown while the pointer hovers the canvas. It
// is always centered on the canvas, whatever the pointer position.
func (l *Layer) Preview(radius float64, active bool) []render.Command {
	if !active {
		return nil
	}
	return []render.Command{render.Arc{
		Center: render.Point{X: l.width / 2, Y: l.height / 2},
		Radius: radius,
		Color:  render.Faint,
		Width:  1,
		Dash:   previewDash,
	}}
}

// Frame is a full redraw of the canvas.
func (l *Layer) Frame(radius float64, hovering bool) []render.Command {
	cmds := []render.Command{render.Clear{Color: render.Black}}
	cmds = append(cmds, l.Commands()...)
	return append(cmds, l.Preview(radius, hovering)...)
}
