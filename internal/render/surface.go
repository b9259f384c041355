package render

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/gomono"
)

// Surface is an in-memory raster of fixed size. Nothing is retained between
// frames other than the pixels themselves.
type Surface struct {
	dc     *gg.Context
	font   *text.FontSource
	faces  map[float64]text.Face
	err    error
	width  int
	height int
}

// NewSurface allocates a width×height raster.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new surface %dx%d: non-positive size", width, height)
	}
	src, err := text.NewFontSource(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	return &Surface{
		dc:     gg.NewContext(width, height),
		font:   src,
		faces:  map[float64]text.Face{},
		width:  width,
		height: height,
	}, nil
}

func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

func (s *Surface) Clear(c gg.RGBA) {
	s.dc.ClearWithColor(c)
}

func (s *Surface) DrawPath(p Path) {
	if len(p.Points) < 2 {
		return
	}
	s.stroke(p.Color, p.Width, p.Dash)
	s.dc.MoveTo(p.Points[0].X, p.Points[0].Y)
	for _, pt := range p.Points[1:] {
		s.dc.LineTo(pt.X, pt.Y)
	}
	if p.Closed {
		s.dc.ClosePath()
	}
	s.keep(s.dc.Stroke())
}

func (s *Surface) DrawArc(a Arc) {
	if a.Radius <= 0 {
		return
	}
	s.stroke(a.Color, a.Width, a.Dash)
	s.dc.DrawCircle(a.Center.X, a.Center.Y, a.Radius)
	s.keep(s.dc.Stroke())
}

func (s *Surface) DrawDot(d Dot) {
	s.dc.SetRGBA(d.Color.R, d.Color.G, d.Color.B, d.Color.A)
	s.dc.DrawPoint(d.Center.X, d.Center.Y, d.Radius)
	s.keep(s.dc.Fill())
}

func (s *Surface) DrawLabel(l Label) {
	face, ok := s.faces[l.Size]
	if !ok {
		face = s.font.Face(l.Size)
		s.faces[l.Size] = face
	}
	s.dc.SetFont(face)
	s.dc.SetRGBA(l.Color.R, l.Color.G, l.Color.B, l.Color.A)
	s.dc.DrawString(l.Text, l.At.X, l.At.Y)
}

func (s *Surface) stroke(c gg.RGBA, width float64, dash []float64) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.SetLineWidth(width)
	if len(dash) > 0 {
		s.dc.SetDash(dash...)
	} else {
		s.dc.ClearDash()
	}
}

// keep records the first rasterizer failure; drawing continues regardless.
func (s *Surface) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// Err returns the first rasterizer error seen since the surface was created.
func (s *Surface) Err() error {
	return s.err
}

// Image returns a copy of the current pixels.
func (s *Surface) Image() *image.RGBA {
	img := s.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// ExportPNG encodes the current pixels. The live surface is not touched.
func (s *Surface) ExportPNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the current pixels to path.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (s *Surface) Close() error {
	s.faces = nil
	if err := s.font.Close(); err != nil {
		return err
	}
	return s.dc.Close()
}
