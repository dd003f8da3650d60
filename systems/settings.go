package systems

import (
	"github.com/automoto/showroom/components"
	cfg "github.com/automoto/showroom/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug, fullscreen and resolution keys and
// writes changed settings once they have settled for a few frames.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		markSettingsDirty(settings)
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		markSettingsDirty(settings)
	}
	if GetAction(input, cfg.ActionCycleResolution).JustPressed && !settings.Fullscreen {
		settings.ResolutionIndex = (settings.ResolutionIndex + 1) % len(cfg.Settings.Resolutions)
		res := cfg.Settings.Resolutions[settings.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
		markSettingsDirty(settings)
	}

	if settings.SaveCountdown > 0 {
		settings.SaveCountdown--
		if settings.SaveCountdown == 0 {
			SaveCurrentSettings(settings)
		}
	}
}

func markSettingsDirty(s *components.SettingsData) {
	s.SaveCountdown = cfg.Settings.SaveDelayFrames
}

// MarkSettingsDirty schedules a save, used when the window is resized by
// the user.
func MarkSettingsDirty(e *ecs.ECS) {
	markSettingsDirty(GetOrCreateSettings(e))
}

func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, InitialSettings())
	}
	return components.Settings.Get(entry)
}
