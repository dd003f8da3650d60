package components

import (
	"math"

	"github.com/automoto/showroom/assets"
	"github.com/automoto/showroom/scene"
	"github.com/yohamta/donburi"
)

// CameraData is the renderer side of the stage: the page container the
// scene is drawn into and the camera looking at it.
type CameraData struct {
	Viewport scene.Viewport
	Camera   *scene.Camera

	// Layout places the container on the window. Nil fills the window.
	Layout *assets.Layout
	// Frame is the container rectangle in window pixels.
	Frame assets.Rect

	// Triangles drawn in the last frame, for the debug overlay.
	Triangles int
}

// Resize fits the viewport to the container on a window of width x
// height and updates the camera aspect to match. It reports whether
// anything changed.
func (c *CameraData) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	frame := assets.Rect{Width: float64(width), Height: float64(height)}
	if c.Layout != nil {
		frame = c.Layout.Scale(c.Layout.Container.Rect, width, height)
	}
	w, h := int(math.Round(frame.Width)), int(math.Round(frame.Height))
	if w <= 0 || h <= 0 {
		return false
	}
	if frame == c.Frame && w == c.Viewport.Width && h == c.Viewport.Height {
		return false
	}
	c.Frame = frame
	c.Viewport.Resize(w, h, c.Camera)
	return true
}

// Contains reports whether the window pixel (x, y) lies in the frame.
func (c *CameraData) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= c.Frame.X && fy >= c.Frame.Y &&
		fx < c.Frame.X+c.Frame.Width && fy < c.Frame.Y+c.Frame.Height
}

var Camera = donburi.NewComponentType[CameraData]()
