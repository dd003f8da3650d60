package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/showroom/components"
	cfg "github.com/automoto/showroom/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the window settings stored on disk. Camera and
// scene state are never persisted.
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
	WindowWidth     int  `json:"windowWidth"`
	WindowHeight    int  `json:"windowHeight"`
	Debug           bool `json:"debug"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

// loaded settings, picked up by the first scene
var startupSettings *SavedSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("[persistence] Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[persistence] Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[persistence] Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("[persistence] Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the settings component and the current window size
func SaveCurrentSettings(s *components.SettingsData) {
	w, h := ebiten.WindowSize()
	_ = SaveSettings(&SavedSettings{
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		WindowWidth:     w,
		WindowHeight:    h,
		Debug:           s.Debug,
	})
}

// ApplySavedSettingsGlobal applies settings before the first scene is
// created. The window is restored here; the settings entity picks up the
// rest through InitialSettings.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	startupSettings = saved

	ebiten.SetFullscreen(saved.Fullscreen)
	if saved.Fullscreen {
		return
	}
	if saved.WindowWidth > 0 && saved.WindowHeight > 0 {
		ebiten.SetWindowSize(saved.WindowWidth, saved.WindowHeight)
	} else if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// InitialSettings returns the settings a new scene starts with: the saved
// ones when present, else the configuration defaults.
func InitialSettings() components.SettingsData {
	s := components.SettingsData{
		Debug:           cfg.Debug.Overlay,
		ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
	}
	if startupSettings != nil {
		s.Fullscreen = startupSettings.Fullscreen
		s.ResolutionIndex = startupSettings.ResolutionIndex
		s.Debug = s.Debug || startupSettings.Debug
	}
	return s
}
