package components

import (
	"github.com/automoto/showroom/showroom"
	"github.com/automoto/showroom/ui"
	"github.com/yohamta/donburi"
)

type TriggerData struct {
	*showroom.Trigger

	// Panel draws the trigger element. Nil when running without a window.
	Panel *ui.TriggerPanel

	// Last transition, for the debug overlay.
	Last showroom.Transition
}

var Trigger = donburi.NewComponentType[TriggerData]()
