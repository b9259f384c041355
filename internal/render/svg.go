package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/gogpu/gg"
)

// SVG writes frame commands as a vector document. Call Close once the frame
// has been replayed to finish the document.
type SVG struct {
	canvas *svg.SVG
	width  int
	height int
}

// NewSVG starts a width×height document on w.
func NewSVG(w io.Writer, width, height int) *SVG {
	c := svg.New(w)
	c.Start(width, height)
	return &SVG{canvas: c, width: width, height: height}
}

func (s *SVG) Clear(c gg.RGBA) {
	s.canvas.Rect(0, 0, s.width, s.height, "fill:"+hex(c)+";"+opacity("fill", c))
}

func (s *SVG) DrawPath(p Path) {
	if len(p.Points) < 2 {
		return
	}
	var d strings.Builder
	for i, pt := range p.Points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&d, "%s%.2f %.2f ", cmd, pt.X, pt.Y)
	}
	if p.Closed {
		d.WriteString("Z")
	}
	s.canvas.Path(strings.TrimSpace(d.String()), strokeStyle(p.Color, p.Width, p.Dash))
}

func (s *SVG) DrawArc(a Arc) {
	if a.Radius <= 0 {
		return
	}
	s.canvas.Path(circlePath(a.Center, a.Radius), strokeStyle(a.Color, a.Width, a.Dash))
}

func (s *SVG) DrawDot(d Dot) {
	s.canvas.Path(circlePath(d.Center, d.Radius), "fill:"+hex(d.Color)+";"+opacity("fill", d.Color))
}

func (s *SVG) DrawLabel(l Label) {
	s.canvas.Text(int(math.Round(l.At.X)), int(math.Round(l.At.Y)), l.Text,
		fmt.Sprintf("font-family:monospace;font-size:%gpx;fill:%s;%s", l.Size, hex(l.Color), opacity("fill", l.Color)))
}

// Close ends the document.
func (s *SVG) Close() error {
	s.canvas.End()
	return nil
}

func circlePath(c Point, r float64) string {
	return fmt.Sprintf("M%.2f %.2f A%.2f %.2f 0 1 0 %.2f %.2f A%.2f %.2f 0 1 0 %.2f %.2f Z",
		c.X+r, c.Y, r, r, c.X-r, c.Y, r, r, c.X+r, c.Y)
}

func strokeStyle(c gg.RGBA, width float64, dash []float64) string {
	style := fmt.Sprintf("fill:none;stroke:%s;%s;stroke-width:%g", hex(c), opacity("stroke", c), width)
	if len(dash) > 0 {
		parts := make([]string, len(dash))
		for i, v := range dash {
			parts[i] = fmt.Sprintf("%g", v)
		}
		style += ";stroke-dasharray:" + strings.Join(parts, ",")
	}
	return style
}

func hex(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func opacity(prop string, c gg.RGBA) string {
	return fmt.Sprintf("%s-opacity:%.3g", prop, c.A)
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// SaveSVG writes cmds as a width×height document at path.
func SaveSVG(path string, width, height int, cmds []Command) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export svg: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export svg: %w", cerr)
		}
	}()
	s := NewSVG(f, width, height)
	Execute(s, cmds)
	return s.Close()
}
