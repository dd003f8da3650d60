package components

import (
	"github.com/automoto/showroom/showroom"
	"github.com/yohamta/donburi"
)

// StageData owns the scene graph and the hover animation state.
type StageData struct {
	*showroom.State
}

var Stage = donburi.NewComponentType[StageData]()
