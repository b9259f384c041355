package view

import (
	"github.com/iburimskiy/piverse/internal/digits"
	"github.com/iburimskiy/piverse/internal/mapper"
	"github.com/iburimskiy/piverse/internal/render"
)

const (
	patternWidth  = 800
	patternHeight = 600
)

// Pattern is the animated spiral. Each digit owns Segments samples of the
// spiral and strokes them in its own hue; the decimal point leaves a gap.
type Pattern struct {
	seq    digits.Sequence
	Params Parameters
}

func NewPattern(seq digits.Sequence, params Parameters) *Pattern {
	return &Pattern{seq: seq, Params: params}
}

func (p *Pattern) Name() string       { return NamePattern }
func (p *Pattern) Size() (int, int)   { return patternWidth, patternHeight }
func (p *Pattern) ExportName() string { return "pi-visualization.png" }

// Advance turns the spiral when auto-rotate is on. With auto-rotate off the
// frame is still redrawn every tick.
func (p *Pattern) Advance() {
	if p.Params.AutoRotate {
		p.Params.Rotation = mapper.WrapPhase(p.Params.Rotation + RotationStep*p.Params.Speed)
	}
}

func (p *Pattern) mapperParams() mapper.Params {
	return mapper.Params{
		MaxRadius: p.Params.Radius,
		Rotation:  p.Params.Rotation,
		Segments:  max(1, p.Params.Segments),
		Length:    p.seq.Len(),
	}
}

func (p *Pattern) Frame() []render.Command {
	mp := p.mapperParams()
	c := render.Point{X: patternWidth / 2, Y: patternHeight / 2}
	cmds := []render.Command{render.Clear{Color: render.Black}}
	var labels []render.Command

	for i := 0; i < p.seq.Len(); i++ {
		d, ok := p.seq.Digit(i)
		if !ok {
			continue
		}
		first := i * mp.Segments
		pts := make([]render.Point, 0, mp.Segments+1)
		for s := first; s <= first+mp.Segments; s++ {
			x, y := mapper.SpiralSample(s, mp).XY(c.X, c.Y)
			pts = append(pts, render.Point{X: x, Y: y})
		}
		cmds = append(cmds, render.Path{Points: pts, Color: render.DigitColor(d), Width: 2})

		if p.Params.ShowDigits {
			x, y := mapper.SpiralSample(first, mp).Outward(labelGap).XY(c.X, c.Y)
			labels = append(labels, render.Label{
				Text:  p.seq.Char(i),
				At:    render.Point{X: x - 5, Y: y + 5},
				Color: render.White,
				Size:  16,
			})
		}
	}
	cmds = append(cmds, labels...)

	if p.Params.ShowLines {
		var pts []render.Point
		for i := 0; i < p.seq.Len(); i++ {
			d, ok := p.seq.Digit(i)
			if !ok {
				continue
			}
			x, y := mapper.Circle(i, d, mp).XY(c.X, c.Y)
			pts = append(pts, render.Point{X: x, Y: y})
		}
		cmds = append(cmds, render.Path{Points: pts, Color: render.Faint, Width: 1})
	}
	return cmds
}
