package components

import (
	"github.com/automoto/showroom/assets"
	"github.com/yohamta/donburi"
)

// ModelLoadData tracks the single chair model request.
type ModelLoadData struct {
	Pending *assets.PendingModel
	Err     error
}

var ModelLoad = donburi.NewComponentType[ModelLoadData]()
