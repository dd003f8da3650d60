package components

import (
	cfg "github.com/automoto/showroom/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the pointer position in surface pixels.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	CursorX, CursorY int
	CursorInside     bool // pointer within the page container
}

var Input = donburi.NewComponentType[InputData]()
