package tags

import "github.com/yohamta/donburi"

var (
	Stage   = donburi.NewTag().SetName("Stage")
	Trigger = donburi.NewTag().SetName("Trigger")
	Loader  = donburi.NewTag().SetName("Loader")
)
