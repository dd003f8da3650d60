package factory

import (
	"github.com/automoto/showroom/archetypes"
	"github.com/automoto/showroom/assets"
	"github.com/automoto/showroom/components"
	"github.com/automoto/showroom/showroom"
	"github.com/automoto/showroom/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTrigger creates the hover element described by layout, together
// with the panel that draws it.
func CreateTrigger(ecs *ecs.ECS, layout *assets.Layout, width, height int) *donburi.Entry {
	entry := archetypes.Trigger.Spawn(ecs)

	trigger := showroom.NewTrigger(layout, width, height)
	panel := ui.NewTriggerPanel(trigger.Label)
	panel.Place(trigger.Rect())

	components.Trigger.SetValue(entry, components.TriggerData{
		Trigger: trigger,
		Panel:   panel,
	})
	return entry
}
