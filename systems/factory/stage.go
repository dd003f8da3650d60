package factory

import (
	"github.com/automoto/showroom/archetypes"
	"github.com/automoto/showroom/components"
	"github.com/automoto/showroom/showroom"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage builds the slab and lights. Chairs are added later by the
// model load system.
func CreateStage(ecs *ecs.ECS) *donburi.Entry {
	stage := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(stage, components.StageData{State: showroom.Build()})
	return stage
}
