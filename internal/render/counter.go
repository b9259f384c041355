package render

import (
	"sync/atomic"

	"github.com/gogpu/gg"
)

// Counter is a Sink that only counts calls. It is safe to read from another
// goroutine while a frame loop writes to it.
type Counter struct {
	clears atomic.Int64
	paths  atomic.Int64
	arcs   atomic.Int64
	dots   atomic.Int64
	labels atomic.Int64
}

func (c *Counter) Clear(gg.RGBA)   { c.clears.Add(1) }
func (c *Counter) DrawPath(Path)   { c.paths.Add(1) }
func (c *Counter) DrawArc(Arc)     { c.arcs.Add(1) }
func (c *Counter) DrawDot(Dot)     { c.dots.Add(1) }
func (c *Counter) DrawLabel(Label) { c.labels.Add(1) }

func (c *Counter) Clears() int64 { return c.clears.Load() }
func (c *Counter) Paths() int64  { return c.paths.Load() }
func (c *Counter) Arcs() int64   { return c.arcs.Load() }
func (c *Counter) Dots() int64   { return c.dots.Load() }
func (c *Counter) Labels() int64 { return c.labels.Load() }

// Total is the number of draw calls of any kind.
func (c *Counter) Total() int64 {
	return c.Clears() + c.Paths() + c.Arcs() + c.Dots() + c.Labels()
}
