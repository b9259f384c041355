package view

import (
	"github.com/iburimskiy/piverse/internal/digits"
	"github.com/iburimskiy/piverse/internal/mapper"
	"github.com/iburimskiy/piverse/internal/render"
)

const (
	radialSize   = 600
	radialMargin = 20
	labelGap     = 20
)

// Radial draws one spoke per digit whose length grows with the digit, and a
// faint closed outline through the spoke tips.
type Radial struct {
	seq    digits.Sequence
	params mapper.Params
}

func NewRadial(seq digits.Sequence) *Radial {
	return &Radial{
		seq: seq,
		params: mapper.Params{
			MaxRadius: radialSize/2 - radialMargin,
			Length:    seq.Len(),
		},
	}
}

func (r *Radial) Name() string       { return NameRadial }
func (r *Radial) Size() (int, int)   { return radialSize, radialSize }
func (r *Radial) ExportName() string { return "pi-radial.png" }
func (r *Radial) Advance()           {}
func (r *Radial) MaxRadius() float64 { return r.params.MaxRadius }

func (r *Radial) Frame() []render.Command {
	c := render.Point{X: radialSize / 2, Y: radialSize / 2}
	cmds := []render.Command{render.Clear{Color: render.Black}}
	var outline []render.Point

	for i := 0; i < r.seq.Len(); i++ {
		d, ok := r.seq.Digit(i)
		if !ok {
			continue
		}
		p := mapper.Circle(i, d, r.params)
		x, y := p.XY(c.X, c.Y)
		tip := render.Point{X: x, Y: y}
		outline = append(outline, tip)

		lx, ly := p.Outward(labelGap).XY(c.X, c.Y)
		cmds = append(cmds,
			render.Path{Points: []render.Point{c, tip}, Color: render.DigitColor(d), Width: 2},
			render.Label{Text: r.seq.Char(i), At: render.Point{X: lx - 4, Y: ly + 4}, Color: render.White, Size: 14},
		)
	}
	return append(cmds, render.Path{Points: outline, Color: render.Faint, Width: 1, Closed: true})
}
