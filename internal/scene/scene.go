// Package scene keeps the retained 3D point cloud. Its transform is mutated
// between frames instead of rebuilding the points.
package scene

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/piverse/internal/digits"
	"github.com/iburimskiy/piverse/internal/render"
)

const (
	// spiral placement of the cloud
	thetaStep  = 0.5
	radiusStep = 0.3
	heightStep = 0.2

	pointSize = 0.2
)

type Vec3 struct {
	X, Y, Z float64
}

// RotateY turns v around the vertical axis.
func (v Vec3) RotateY(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// PointCloud is built once per view and only its rotation changes.
type PointCloud struct {
	Points    []Vec3
	RotationY float64
	Size      float64
	Color     gg.RGBA
}

// FromDigits lays the digits on a rising spiral: entry i sits at angle
// i*0.5, distance (i+1)*0.3 and height digit*0.2. The decimal point is
// skipped but keeps its slot.
func FromDigits(seq digits.Sequence) *PointCloud {
	pc := &PointCloud{Size: pointSize, Color: render.Green}
	for i := 0; i < seq.Len(); i++ {
		d, ok := seq.Digit(i)
		if !ok {
			continue
		}
		theta := float64(i) * thetaStep
		r := float64(i+1) * radiusStep
		pc.Points = append(pc.Points, Vec3{
			X: r * math.Cos(theta),
			Y: float64(d) * heightStep,
			Z: r * math.Sin(theta),
		})
	}
	return pc
}

// Rotate advances the cloud's Y rotation.
func (pc *PointCloud) Rotate(delta float64) {
	pc.RotationY += delta
}

// Camera is a perspective camera on the +Z axis looking at the origin.
type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV      float64
	Distance float64
	Near     float64
}

// DefaultCamera has a 75° field of view and sits at z=10.
func DefaultCamera() Camera {
	return Camera{FOV: 75, Distance: 10, Near: 0.1}
}

// Project returns one Dot per visible point on a width×height viewport.
func (c Camera) Project(pc *PointCloud, width, height int) []render.Command {
	focal := float64(height) / 2 / math.Tan(c.FOV*math.Pi/360)
	cx, cy := float64(width)/2, float64(height)/2

	cmds := make([]render.Command, 0, len(pc.Points))
	for _, p := range pc.Points {
		v := p.RotateY(pc.RotationY)
		depth := c.Distance - v.Z
		if depth <= c.Near {
			continue
		}
		scale := focal / depth
		cmds = append(cmds, render.Dot{
			Center: render.Point{X: cx + v.X*scale, Y: cy - v.Y*scale},
			Radius: math.Max(pc.Size*scale/2, 0.5),
			Color:  pc.Color,
		})
	}
	return cmds
}
