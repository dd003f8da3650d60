package systems

import (
	"log"

	"github.com/automoto/showroom/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateModelLoad polls the chair model request. On success the chairs are
// placed and the chair hover handlers become active; on failure the error
// is logged and the chair slots stay empty.
func UpdateModelLoad(e *ecs.ECS) {
	loadEntry, ok := components.ModelLoad.First(e.World)
	if !ok {
		return
	}
	load := components.ModelLoad.Get(loadEntry)

	res, finished, first := load.Pending.Poll()
	if !finished || !first {
		return
	}
	if res.Err != nil {
		load.Err = res.Err
		log.Printf("[loader] Error loading model: %v", res.Err)
		return
	}

	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(stageEntry)
	if err := stage.PlaceChairs(res.Model); err != nil {
		load.Err = err
		log.Printf("[loader] Could not place chairs: %v", err)
		return
	}
	log.Printf("[loader] %s loaded, %d chairs placed", res.Path, stage.ChairCount())
}
