package factory

import (
	"io/fs"

	"github.com/automoto/showroom/archetypes"
	"github.com/automoto/showroom/assets"
	"github.com/automoto/showroom/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateModelLoad starts loading the chair model in the background.
func CreateModelLoad(ecs *ecs.ECS, fsys fs.FS, path string) *donburi.Entry {
	entry := archetypes.ModelLoad.Spawn(ecs)
	components.ModelLoad.SetValue(entry, components.ModelLoadData{
		Pending: assets.LoadModelAsync(fsys, path),
	})
	return entry
}
