package factory

import (
	"github.com/automoto/showroom/archetypes"
	"github.com/automoto/showroom/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSettings creates the settings entity with the startup values.
func CreateSettings(ecs *ecs.ECS, initial components.SettingsData) *donburi.Entry {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(entry, initial)
	return entry
}
