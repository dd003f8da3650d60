package systems

import (
	"github.com/automoto/showroom/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances the hover tweens by one tick.
func UpdateAnimations(e *ecs.ECS) {
	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	components.Stage.Get(stageEntry).Update(1 / float64(ebiten.TPS()))
}
