package systems

import (
	"github.com/automoto/showroom/components"
	"github.com/automoto/showroom/showroom"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTrigger turns pointer movement over the trigger element into
// enter/leave requests on the stage.
func UpdateTrigger(e *ecs.ECS) {
	triggerEntry, ok := components.Trigger.First(e.World)
	if !ok {
		return
	}
	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	trigger := components.Trigger.Get(triggerEntry)
	stage := components.Stage.Get(stageEntry)
	input := getOrCreateInput(e)

	if trigger.Panel != nil {
		trigger.Panel.Update()
	}

	var t showroom.Transition
	if input.CursorInside {
		t = trigger.Move(input.CursorX, input.CursorY)
	} else {
		t = trigger.Release()
	}

	switch t {
	case showroom.TransitionEnter:
		stage.Enter()
	case showroom.TransitionLeave:
		stage.Leave()
	default:
		return
	}
	trigger.Last = t
}
