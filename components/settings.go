package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores window settings and the debug overlay toggle
type SettingsData struct {
	Debug           bool
	Fullscreen      bool
	ResolutionIndex int

	// Frames left before a pending change is saved; 0 = nothing pending.
	SaveCountdown int
}

var Settings = donburi.NewComponentType[SettingsData]()
