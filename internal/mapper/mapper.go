// Package mapper turns a digit's position and value into polar coordinates.
//
// Callers are responsible for skipping the decimal point entry of a
// sequence before mapping; every function here assumes a numeric digit and
// an index inside the sequence.
package mapper

import "math"

const (
	// SpiralAngleStep is the angle advanced per digit along the spiral.
	SpiralAngleStep = 0.5

	// HueStep spreads the ten digits around the color wheel.
	HueStep = 36

	Saturation = 0.7
	Lightness  = 0.5
)

// Layout selects how a digit index is placed around the center.
type Layout int

const (
	FullCircle Layout = iota
	Spiral
)

func (l Layout) String() string {
	switch l {
	case FullCircle:
		return "full-circle"
	case Spiral:
		return "spiral"
	default:
		return "unknown"
	}
}

// PolarPoint is an angle in radians and a distance from the center.
type PolarPoint struct {
	Angle  float64
	Radius float64
}

// XY offsets the point to the given center.
func (p PolarPoint) XY(cx, cy float64) (x, y float64) {
	return cx + p.Radius*math.Cos(p.Angle), cy + p.Radius*math.Sin(p.Angle)
}

// Outward returns the point pushed further from the center by d.
func (p PolarPoint) Outward(d float64) PolarPoint {
	return PolarPoint{Angle: p.Angle, Radius: p.Radius + d}
}

// Params are the inputs shared by all layouts.
type Params struct {
	MaxRadius float64
	Rotation  float64
	// Segments is the number of spiral samples per digit.
	Segments int
	// Length is the sequence length, decimal point included.
	Length int
}

// Circle places digit index around a full turn with the radius growing with
// the digit value: digit 0 sits at MaxRadius/10, digit 9 at MaxRadius.
func Circle(index, digit int, p Params) PolarPoint {
	return PolarPoint{
		Angle:  float64(index)/float64(p.Length)*2*math.Pi + p.Rotation,
		Radius: p.MaxRadius * float64(digit+1) / 10,
	}
}

// SpiralSample places spiral sample number sample. A digit spans Segments
// consecutive samples; the digit value does not move the point.
func SpiralSample(sample int, p Params) PolarPoint {
	t := float64(sample) / float64(p.Segments)
	return PolarPoint{
		Angle:  t*SpiralAngleStep + p.Rotation,
		Radius: p.MaxRadius * t / float64(p.Length),
	}
}

// Map dispatches on the layout. For Spiral, index is the sample number.
func (l Layout) Map(index, digit int, p Params) PolarPoint {
	if l == Spiral {
		return SpiralSample(index, p)
	}
	return Circle(index, digit, p)
}

// Hue is the color wheel position of a digit in degrees.
func Hue(digit int) float64 {
	return float64((digit * HueStep) % 360)
}

// WrapPhase keeps a rotation phase inside [0, 2π).
func WrapPhase(phase float64) float64 {
	phase = math.Mod(phase, 2*math.Pi)
	if phase < 0 {
		phase += 2 * math.Pi
	}
	return phase
}
