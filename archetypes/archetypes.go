package archetypes

import (
	"github.com/automoto/showroom/components"
	"github.com/automoto/showroom/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	LayerScene ecs.LayerID = iota
	LayerOverlay
)

var (
	Stage = newArchetype(
		tags.Stage,
		components.Stage,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Trigger = newArchetype(
		tags.Trigger,
		components.Trigger,
	)
	ModelLoad = newArchetype(
		tags.Loader,
		components.ModelLoad,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerScene,
		append(a.components, cs...)...,
	))
	return e
}
