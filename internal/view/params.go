package view

import "math"

const (
	RadiusStep   = 10
	MinRadius    = 50
	SegmentsStep = 5
	MinSegments  = 5
	SpeedStep    = 0.1
	MinSpeed     = 0.1

	// RotationStep is the phase added per tick at speed 1.
	RotationStep = 0.001
)

// Parameters is the user adjustable state of the pattern view.
type Parameters struct {
	Radius     float64 `yaml:"radius"`
	Segments   int     `yaml:"segments"`
	Speed      float64 `yaml:"speed"`
	Rotation   float64 `yaml:"-"`
	AutoRotate bool    `yaml:"auto_rotate"`
	ShowDigits bool    `yaml:"show_digits"`
	ShowLines  bool    `yaml:"show_lines"`
}

func DefaultParameters() Parameters {
	return Parameters{
		Radius:     200,
		Segments:   20,
		Speed:      1,
		AutoRotate: true,
		ShowDigits: true,
		ShowLines:  true,
	}
}

func (p *Parameters) GrowRadius()   { p.Radius += RadiusStep }
func (p *Parameters) ShrinkRadius() { p.Radius = math.Max(MinRadius, p.Radius-RadiusStep) }

func (p *Parameters) MoreDetail() { p.Segments += SegmentsStep }
func (p *Parameters) LessDetail() { p.Segments = max(MinSegments, p.Segments-SegmentsStep) }

func (p *Parameters) Faster() { p.Speed = roundTenth(p.Speed + SpeedStep) }
func (p *Parameters) Slower() { p.Speed = math.Max(MinSpeed, roundTenth(p.Speed-SpeedStep)) }

func (p *Parameters) ToggleAutoRotate() { p.AutoRotate = !p.AutoRotate }
func (p *Parameters) ToggleDigits()     { p.ShowDigits = !p.ShowDigits }
func (p *Parameters) ToggleLines()      { p.ShowLines = !p.ShowLines }

// roundTenth keeps repeated 0.1 steps from drifting.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
