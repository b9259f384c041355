// Package view computes the frames of the four π views. Every view owns its
// state and turns it into a fresh command list each tick; nothing here
// touches a real drawing surface.
package view

import (
	"fmt"

	"github.com/iburimskiy/piverse/internal/digits"
	"github.com/iburimskiy/piverse/internal/render"
)

const (
	NameRadial  = "radial"
	NameCloud   = "cloud"
	NamePattern = "pattern"
	NameArt     = "art"
)

// Names lists the views in tab order.
var Names = []string{NameRadial, NameCloud, NamePattern, NameArt}

// View is one animated canvas.
type View interface {
	Name() string
	Size() (width, height int)
	// Advance moves time dependent state one tick forward.
	Advance()
	// Frame returns a complete redraw starting with a Clear.
	Frame() []render.Command
	// ExportName is the file name offered for a PNG download.
	ExportName() string
}

// exporter is implemented by views whose exported image differs from the
// live frame.
type exporter interface {
	ExportFrame() []render.Command
}

// ExportFrame returns the commands to render for an image export.
func ExportFrame(v View) []render.Command {
	if e, ok := v.(exporter); ok {
		return e.ExportFrame()
	}
	return v.Frame()
}

// Options configures New.
type Options struct {
	Sequence   digits.Sequence
	Pattern    Parameters
	ToolRadius float64
}

// New builds the view called name.
func New(name string, opts Options) (View, error) {
	switch name {
	case NameRadial:
		return NewRadial(opts.Sequence), nil
	case NameCloud:
		return NewCloud(opts.Sequence), nil
	case NamePattern:
		return NewPattern(opts.Sequence, opts.Pattern), nil
	case NameArt:
		return NewArt(opts.Sequence, opts.ToolRadius), nil
	default:
		return nil, fmt.Errorf("unknown view %q", name)
	}
}
