package systems

import (
	"github.com/automoto/showroom/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawTrigger draws the hover element panel at its layout position. The
// label dims until the chairs are ready.
func DrawTrigger(e *ecs.ECS, screen *ebiten.Image) {
	triggerEntry, ok := components.Trigger.First(e.World)
	if !ok {
		return
	}
	trigger := components.Trigger.Get(triggerEntry)
	if trigger.Panel == nil {
		return
	}

	ready := false
	if stageEntry, ok := components.Stage.First(e.World); ok {
		ready = components.Stage.Get(stageEntry).ChairsReady()
	}
	trigger.Panel.Sync(trigger.Inside(), ready)
	trigger.Panel.UI.Draw(screen)
}
