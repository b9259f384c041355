package view

import (
	"github.com/iburimskiy/piverse/internal/digits"
	"github.com/iburimskiy/piverse/internal/render"
	"github.com/iburimskiy/piverse/internal/scene"
)

const (
	cloudWidth  = 800
	cloudHeight = 400

	// CloudSpin is the Y rotation added to the cloud per tick.
	CloudSpin = 0.002
)

// Cloud renders the retained 3D point cloud. Only its rotation changes
// between frames.
type Cloud struct {
	cloud  *scene.PointCloud
	camera scene.Camera
}

func NewCloud(seq digits.Sequence) *Cloud {
	return &Cloud{cloud: scene.FromDigits(seq), camera: scene.DefaultCamera()}
}

func (c *Cloud) Name() string       { return NameCloud }
func (c *Cloud) Size() (int, int)   { return cloudWidth, cloudHeight }
func (c *Cloud) ExportName() string { return "pi-cloud.png" }
func (c *Cloud) Advance()           { c.cloud.Rotate(CloudSpin) }
func (c *Cloud) Rotation() float64  { return c.cloud.RotationY }

func (c *Cloud) Frame() []render.Command {
	cmds := []render.Command{render.Clear{Color: render.Black}}
	return append(cmds, c.camera.Project(c.cloud, cloudWidth, cloudHeight)...)
}
