package systems

import (
	"github.com/automoto/showroom/components"
	"github.com/yohamta/donburi/ecs"
)

// ResizeViewport applies a new window size immediately: the drawing
// surface, the camera aspect and the trigger area all change within the
// same call, before the next frame is drawn.
func ResizeViewport(e *ecs.ECS, width, height int) bool {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return false
	}
	if !components.Camera.Get(cameraEntry).Resize(width, height) {
		return false
	}

	if triggerEntry, ok := components.Trigger.First(e.World); ok {
		trigger := components.Trigger.Get(triggerEntry)
		trigger.Resize(width, height)
		if trigger.Panel != nil {
			trigger.Panel.Place(trigger.Rect())
		}
	}
	return true
}
