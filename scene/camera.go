package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera.
type Camera struct {
	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64

	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3

	projection mgl64.Mat4
	view       mgl64.Mat4
}

// NewPerspectiveCamera returns a camera at the origin looking down -Z.
func NewPerspectiveCamera(fov, aspect, near, far float64) *Camera {
	c := &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: mgl64.Vec3{0, 0, -1},
		Up:     mgl64.Vec3{0, 1, 0},
	}
	c.UpdateProjection()
	c.updateView()
	return c
}

// SetPosition moves the camera eye and keeps its current target.
func (c *Camera) SetPosition(x, y, z float64) {
	c.Eye = mgl64.Vec3{x, y, z}
	c.updateView()
}

// LookAt orients the camera towards the given point.
func (c *Camera) LookAt(x, y, z float64) {
	c.Target = mgl64.Vec3{x, y, z}
	c.updateView()
}

// SetAspect changes the aspect ratio and recomputes the projection.
func (c *Camera) SetAspect(aspect float64) {
	c.Aspect = aspect
	c.UpdateProjection()
}

// UpdateProjection must be called after changing FOV, Aspect, Near or Far.
func (c *Camera) UpdateProjection() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

func (c *Camera) updateView() {
	c.view = mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

func (c *Camera) Projection() mgl64.Mat4 { return c.projection }

func (c *Camera) View() mgl64.Mat4 { return c.view }

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.projection.Mul4(c.view)
}

// Viewport is the pixel size of the drawing surface.
type Viewport struct {
	Width  int
	Height int
}

// Resize sets the surface size and updates the camera aspect in the same
// call, so both always agree.
func (v *Viewport) Resize(width, height int, cam *Camera) {
	if width <= 0 || height <= 0 {
		return
	}
	v.Width = width
	v.Height = height
	if cam != nil {
		cam.SetAspect(v.Aspect())
	}
}

// Aspect returns width / height.
func (v Viewport) Aspect() float64 {
	if v.Height == 0 {
		return 1
	}
	return float64(v.Width) / float64(v.Height)
}
