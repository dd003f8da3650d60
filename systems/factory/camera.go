package factory

import (
	"github.com/automoto/showroom/archetypes"
	"github.com/automoto/showroom/assets"
	"github.com/automoto/showroom/components"
	cfg "github.com/automoto/showroom/config"
	"github.com/automoto/showroom/scene"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates the drawing surface and the perspective camera for
// the layout's container on a window of width x height.
func CreateCamera(ecs *ecs.ECS, layout *assets.Layout, width, height int) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)

	cam := scene.NewPerspectiveCamera(cfg.Camera.FOV, 1, cfg.Camera.Near, cfg.Camera.Far)
	cam.SetPosition(cfg.Camera.Eye.X(), cfg.Camera.Eye.Y(), cfg.Camera.Eye.Z())
	cam.LookAt(cfg.Camera.Target.X(), cfg.Camera.Target.Y(), cfg.Camera.Target.Z())

	data := &components.CameraData{Camera: cam, Layout: layout}
	data.Resize(width, height)
	components.Camera.Set(entry, data)
	return entry
}
