package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/piverse/internal/digits"
	"github.com/iburimskiy/piverse/internal/render"
)

func TestFromDigits(t *testing.T) {
	pc := FromDigits(digits.Default())
	require.Len(t, pc.Points, 21)

	// entry 0 is '3'
	assert.InDelta(t, 0.3, pc.Points[0].X, 1e-9)
	assert.InDelta(t, 0.6, pc.Points[0].Y, 1e-9)
	assert.InDelta(t, 0, pc.Points[0].Z, 1e-9)

	// entry 2 ('1') keeps its slot after the skipped point
	assert.InDelta(t, 0.9*math.Cos(1), pc.Points[1].X, 1e-9)
	assert.InDelta(t, 0.2, pc.Points[1].Y, 1e-9)
}

func TestRotateKeepsPoints(t *testing.T) {
	pc := FromDigits(digits.Default())
	before := append([]Vec3(nil), pc.Points...)
	for i := 0; i < 10; i++ {
		pc.Rotate(0.002)
	}
	assert.InDelta(t, 0.02, pc.RotationY, 1e-12)
	assert.Equal(t, before, pc.Points)
}

func TestVec3RotateY(t *testing.T) {
	v := Vec3{X: 1}.RotateY(math.Pi / 2)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, -1, v.Z, 1e-9)
}

func TestProject(t *testing.T) {
	pc := &PointCloud{Points: []Vec3{{0, 0, 0}, {0, 0, 20}}, Size: 0.2, Color: render.Green}
	cmds := DefaultCamera().Project(pc, 800, 400)
	require.Len(t, cmds, 1, "points behind the camera are dropped")

	dot := cmds[0].(render.Dot)
	assert.InDelta(t, 400, dot.Center.X, 1e-9)
	assert.InDelta(t, 200, dot.Center.Y, 1e-9)
	assert.Greater(t, dot.Radius, 0.0)
}
