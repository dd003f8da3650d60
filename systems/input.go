package systems

import (
	"github.com/automoto/showroom/archetypes"
	"github.com/automoto/showroom/components"
	cfg "github.com/automoto/showroom/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// keyBindings maps viewer actions to keyboard keys.
var keyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionToggleDebug:      {ebiten.KeyF3},
	cfg.ActionToggleFullscreen: {ebiten.KeyF11},
	cfg.ActionCycleResolution:  {ebiten.KeyF10},
}

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE any system reading actions or the pointer.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	input.CursorX, input.CursorY = ebiten.CursorPosition()
	input.CursorInside = false
	if cam, ok := components.Camera.First(ecs.World); ok {
		input.CursorInside = components.Camera.Get(cam).Contains(input.CursorX, input.CursorY)
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
