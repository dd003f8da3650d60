package config

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleDebug
	ActionToggleFullscreen
	ActionCycleResolution
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionToggleDebug:
		return "toggle-debug"
	case ActionToggleFullscreen:
		return "toggle-fullscreen"
	case ActionCycleResolution:
		return "cycle-resolution"
	}
	return "none"
}
