package mapper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/piverse/internal/digits"
)

func TestCircle_RadiusMonotoneInDigit(t *testing.T) {
	p := Params{MaxRadius: 280, Length: 22}
	for i := 0; i < p.Length; i++ {
		prev := -1.0
		for d := 0; d <= 9; d++ {
			r := Circle(i, d, p).Radius
			assert.GreaterOrEqual(t, r, prev)
			prev = r
		}
		assert.InDelta(t, 28.0, Circle(i, 0, p).Radius, 1e-9)
		assert.InDelta(t, 280.0, Circle(i, 9, p).Radius, 1e-9)
	}
}

func TestCircle_PiScenario(t *testing.T) {
	seq := digits.Default()
	p := Params{MaxRadius: 280, Length: seq.Len(), Rotation: 0.25}

	d, ok := seq.Digit(0)
	assert.True(t, ok)
	pt := Circle(0, d, p)
	assert.InDelta(t, 112.0, pt.Radius, 1e-9)
	assert.InDelta(t, 0.25, pt.Angle, 1e-9)

	_, ok = seq.Digit(1)
	assert.False(t, ok)

	d, ok = seq.Digit(2)
	assert.True(t, ok)
	pt = Circle(2, d, p)
	assert.InDelta(t, 56.0, pt.Radius, 1e-9)
	assert.InDelta(t, 2.0/22*2*math.Pi+0.25, pt.Angle, 1e-9)
}

func TestSpiralSample(t *testing.T) {
	p := Params{MaxRadius: 200, Segments: 20, Length: 22}

	pt := SpiralSample(0, p)
	assert.Zero(t, pt.Radius)
	assert.Zero(t, pt.Angle)

	pt = SpiralSample(40, p)
	assert.InDelta(t, 1.0, pt.Angle, 1e-9)
	assert.InDelta(t, 200.0*2/22, pt.Radius, 1e-9)

	// digit value is ignored in spiral mode
	assert.Equal(t, Spiral.Map(40, 0, p), Spiral.Map(40, 9, p))
	assert.NotEqual(t, FullCircle.Map(3, 0, p), FullCircle.Map(3, 9, p))
}

func TestHue(t *testing.T) {
	assert.Equal(t, 0.0, Hue(0))
	assert.Equal(t, 108.0, Hue(3))

	seen := map[float64]bool{}
	for d := 0; d <= 9; d++ {
		h := Hue(d)
		assert.GreaterOrEqual(t, h, 0.0)
		assert.Less(t, h, 360.0)
		assert.False(t, seen[h], "hue %v repeated", h)
		seen[h] = true
		assert.Equal(t, h, Hue(d))
	}
}

func TestPolarPoint_XY(t *testing.T) {
	x, y := PolarPoint{Angle: math.Pi / 2, Radius: 10}.XY(100, 50)
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 60, y, 1e-9)

	out := PolarPoint{Angle: 1, Radius: 10}.Outward(20)
	assert.Equal(t, 30.0, out.Radius)
	assert.Equal(t, 1.0, out.Angle)
}

func TestWrapPhase(t *testing.T) {
	assert.InDelta(t, 0.5, WrapPhase(2*math.Pi+0.5), 1e-9)
	assert.InDelta(t, 2*math.Pi-0.5, WrapPhase(-0.5), 1e-9)
}

func TestLayoutString(t *testing.T) {
	assert.Equal(t, "full-circle", FullCircle.String())
	assert.Equal(t, "spiral", Spiral.String())
}
