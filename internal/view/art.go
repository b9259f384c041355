package view

import (
	"math"

	"github.com/iburimskiy/piverse/internal/compose"
	"github.com/iburimskiy/piverse/internal/digits"
	"github.com/iburimskiy/piverse/internal/render"
)

const (
	artWidth  = 800
	artHeight = 600

	ringSpacing = 20
	minSides    = 3
)

// Mode selects which canvas the art view shows.
type Mode int

const (
	Automatic Mode = iota
	Custom
)

func (m Mode) String() string {
	if m == Custom {
		return "custom"
	}
	return "automatic"
}

// Art is the generative art view: an automatic composition of nested
// polygons, or the user's own circle art.
type Art struct {
	seq        digits.Sequence
	layer      *compose.Layer
	mode       Mode
	tool       compose.Kind
	toolRadius float64
	hovering   bool
}

func NewArt(seq digits.Sequence, toolRadius float64) *Art {
	if toolRadius < compose.MinRadius {
		toolRadius = compose.DefaultRadius
	}
	return &Art{
		seq:        seq,
		layer:      compose.NewLayer(artWidth, artHeight),
		toolRadius: toolRadius,
	}
}

func (a *Art) Name() string       { return NameArt }
func (a *Art) Size() (int, int)   { return artWidth, artHeight }
func (a *Art) ExportName() string { return "pi-art.png" }
func (a *Art) Advance()           {}

func (a *Art) Mode() Mode             { return a.mode }
func (a *Art) SetMode(m Mode)         { a.mode = m }
func (a *Art) Tool() compose.Kind     { return a.tool }
func (a *Art) SetTool(k compose.Kind) { a.tool = k }
func (a *Art) ToolRadius() float64    { return a.toolRadius }
func (a *Art) Layer() *compose.Layer  { return a.layer }
func (a *Art) SetHover(hovering bool) { a.hovering = hovering }
func (a *Art) GrowTool()              { a.toolRadius += compose.RadiusStep }
func (a *Art) ShrinkTool() {
	a.toolRadius = math.Max(compose.MinRadius, a.toolRadius-compose.RadiusStep)
}

// ToggleMode switches between the automatic and the custom canvas.
func (a *Art) ToggleMode() {
	if a.mode == Automatic {
		a.mode = Custom
	} else {
		a.mode = Automatic
	}
}

// Click places a shape with the current tool. Clicks are ignored outside
// the canvas and in automatic mode.
func (a *Art) Click(at render.Point, seed uint64) (compose.Shape, bool) {
	if a.mode != Custom {
		return compose.Shape{}, false
	}
	return a.layer.PlaceShape(a.tool, at, a.toolRadius, seed)
}

func (a *Art) Frame() []render.Command {
	if a.mode == Custom {
		return a.layer.Frame(a.toolRadius, a.hovering)
	}
	return a.automatic()
}

// ExportFrame leaves out the hover guide.
func (a *Art) ExportFrame() []render.Command {
	if a.mode == Custom {
		return a.layer.Frame(a.toolRadius, false)
	}
	return a.automatic()
}

// automatic draws, for every digit i, a closed polygon with digit+3 sides
// at radius (i+1)*20.
func (a *Art) automatic() []render.Command {
	c := render.Point{X: artWidth / 2, Y: artHeight / 2}
	cmds := []render.Command{render.Clear{Color: render.Black}}
	for i := 0; i < a.seq.Len(); i++ {
		d, ok := a.seq.Digit(i)
		if !ok {
			continue
		}
		r := float64(i+1) * ringSpacing
		sides := d + minSides
		pts := make([]render.Point, 0, sides+1)
		for j := 0; j <= sides; j++ {
			angle := float64(j) / float64(sides) * 2 * math.Pi
			pts = append(pts, render.Point{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)})
		}
		cmds = append(cmds, render.Path{Points: pts, Color: render.DigitColor(d), Width: 2, Closed: true})
	}
	return cmds
}
