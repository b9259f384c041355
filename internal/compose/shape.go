package compose

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/piverse/internal/render"
)

const (
	// Rings is the number of arcs in a ConcentricRings shape.
	Rings = 5
	// SpiralTurns is how many full turns a Spiral shape makes.
	SpiralTurns = 3
	// SpiralSteps is the number of one-degree steps of a Spiral shape.
	SpiralSteps = 360 * SpiralTurns

	lineWidth = 2
)

// Kind is the tool a shape was placed with.
type Kind int

const (
	Circle Kind = iota
	ConcentricRings
	Spiral
)

func (k Kind) String() string {
	switch k {
	case Circle:
		return "circle"
	case ConcentricRings:
		return "concentric"
	case Spiral:
		return "spiral"
	default:
		return "unknown"
	}
}

// Next cycles through the tools.
func (k Kind) Next() Kind {
	return (k + 1) % 3
}

// ParseKind accepts the names returned by String.
func ParseKind(s string) (Kind, bool) {
	for k := Circle; k <= Spiral; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return Circle, false
}

// Shape is immutable once placed.
type Shape struct {
	Kind     Kind
	Center   render.Point
	Radius   float64
	Hue      float64
	Color    gg.RGBA
	Rotation float64
	// RingCount is only set for ConcentricRings.
	RingCount int
}

// Commands returns the strokes for the shape.
func (s Shape) Commands() []render.Command {
	switch s.Kind {
	case ConcentricRings:
		cmds := make([]render.Command, 0, Rings)
		for k := 1; k <= Rings; k++ {
			cmds = append(cmds, render.Arc{
				Center: s.Center,
				Radius: s.Radius * float64(k) / Rings,
				Color:  s.Color,
				Width:  lineWidth,
			})
		}
		return cmds
	case Spiral:
		return []render.Command{render.Path{
			Points: SpiralPoints(s.Center, s.Radius, s.Rotation),
			Color:  s.Color,
			Width:  lineWidth,
		}}
	default:
		return []render.Command{render.Arc{
			Center: s.Center,
			Radius: s.Radius,
			Color:  s.Color,
			Width:  lineWidth,
		}}
	}
}

// SpiralPoints samples a three-turn spiral at one-degree steps. The radius
// grows linearly from 0 to radius; the result has SpiralSteps+1 points.
func SpiralPoints(center render.Point, radius, rotation float64) []render.Point {
	pts := make([]render.Point, 0, SpiralSteps+1)
	for i := 0; i <= SpiralSteps; i++ {
		angle := float64(i)*math.Pi/180 + rotation
		r := radius * float64(i) / SpiralSteps
		pts = append(pts, render.Point{
			X: center.X + r*math.Cos(angle),
			Y: center.Y + r*math.Sin(angle),
		})
	}
	return pts
}
