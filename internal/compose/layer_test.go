package compose

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/piverse/internal/render"
)

func TestPlaceShape_Appends(t *testing.T) {
	l := NewLayer(800, 600)
	for i := 0; i < 5; i++ {
		s, ok := l.PlaceShape(Kind(i%3), render.Point{X: 100, Y: 100}, 50, uint64(i))
		require.True(t, ok)
		assert.Equal(t, i+1, l.Len())
		assert.Equal(t, s, l.Shapes()[i])
	}
	first := l.Shapes()[0]
	l.PlaceShape(Circle, render.Point{X: 10, Y: 10}, 20, 99)
	assert.Equal(t, first, l.Shapes()[0], "earlier shapes are never replaced")

	l.Clear()
	assert.Zero(t, l.Len())
	assert.Empty(t, l.Commands())
}

func TestPlaceShape_OutsideCanvas(t *testing.T) {
	l := NewLayer(800, 600)
	for _, p := range []render.Point{{X: -1, Y: 10}, {X: 10, Y: -1}, {X: 800, Y: 10}, {X: 10, Y: 600}} {
		_, ok := l.PlaceShape(Circle, p, 50, 1)
		assert.False(t, ok, "%v", p)
	}
	assert.Zero(t, l.Len())
}

func TestPlaceShape_SeedDeterministic(t *testing.T) {
	a, _ := NewLayer(800, 600).PlaceShape(Spiral, render.Point{X: 1, Y: 1}, 100, 42)
	b, _ := NewLayer(800, 600).PlaceShape(Spiral, render.Point{X: 1, Y: 1}, 100, 42)
	c, _ := NewLayer(800, 600).PlaceShape(Spiral, render.Point{X: 1, Y: 1}, 100, 43)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Rotation, c.Rotation)
	assert.GreaterOrEqual(t, a.Hue, 0.0)
	assert.Less(t, a.Hue, 360.0)
	assert.Less(t, a.Rotation, 2*math.Pi)
}

func TestConcentricRings_AlwaysFive(t *testing.T) {
	for _, radius := range []float64{10, 100, 750} {
		s := Shape{Kind: ConcentricRings, Radius: radius}
		cmds := s.Commands()
		require.Len(t, cmds, 5)
		for k, c := range cmds {
			arc := c.(render.Arc)
			assert.InDelta(t, radius*float64(k+1)/5, arc.Radius, 1e-9)
		}
	}
	s, _ := NewLayer(100, 100).PlaceShape(ConcentricRings, render.Point{X: 50, Y: 50}, 10, 1)
	assert.Equal(t, 5, s.RingCount)
}

func TestSpiral_Points(t *testing.T) {
	s := Shape{Kind: Spiral, Center: render.Point{X: 400, Y: 300}, Radius: 100, Rotation: 0}
	cmds := s.Commands()
	require.Len(t, cmds, 1)
	path := cmds[0].(render.Path)
	require.Len(t, path.Points, 1081)
	assert.False(t, path.Closed)

	assert.InDelta(t, 400, path.Points[0].X, 1e-9)
	assert.InDelta(t, 300, path.Points[0].Y, 1e-9)
	// after three full turns the spiral ends on the +X axis at full radius
	assert.InDelta(t, 500, path.Points[1080].X, 1e-9)
	assert.InDelta(t, 300, path.Points[1080].Y, 1e-9)
}

func TestCircle_SingleArc(t *testing.T) {
	cmds := Shape{Kind: Circle, Radius: 30}.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, 30.0, cmds[0].(render.Arc).Radius)
}

func TestPreview(t *testing.T) {
	l := NewLayer(800, 600)
	assert.Empty(t, l.Preview(100, false))

	cmds := l.Preview(100, true)
	require.Len(t, cmds, 1)
	arc := cmds[0].(render.Arc)
	assert.Equal(t, render.Point{X: 400, Y: 300}, arc.Center)
	assert.Equal(t, []float64{5, 5}, arc.Dash)
}

func TestFrame_Order(t *testing.T) {
	l := NewLayer(800, 600)
	l.PlaceShape(Circle, render.Point{X: 1, Y: 1}, 10, 1)
	l.PlaceShape(ConcentricRings, render.Point{X: 2, Y: 2}, 10, 2)

	cmds := l.Frame(100, true)
	require.Len(t, cmds, 1+1+5+1)
	assert.IsType(t, render.Clear{}, cmds[0])
	assert.Equal(t, render.Point{X: 1, Y: 1}, cmds[1].(render.Arc).Center)
	assert.Equal(t, render.Point{X: 2, Y: 2}, cmds[6].(render.Arc).Center)
	assert.NotNil(t, cmds[7].(render.Arc).Dash)
}

func TestKind(t *testing.T) {
	assert.Equal(t, ConcentricRings, Circle.Next())
	assert.Equal(t, Circle, Spiral.Next())
	k, ok := ParseKind("spiral")
	assert.True(t, ok)
	assert.Equal(t, Spiral, k)
	_, ok = ParseKind("square")
	assert.False(t, ok)
}
