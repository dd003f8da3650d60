package systems

import (
	"fmt"

	"github.com/automoto/showroom/components"
	cfg "github.com/automoto/showroom/config"
	"github.com/automoto/showroom/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	lines := []string{
		fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
	}

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		lines = append(lines,
			fmt.Sprintf("surface %dx%d  aspect %.3f", camera.Viewport.Width, camera.Viewport.Height, camera.Camera.Aspect),
			fmt.Sprintf("triangles %d", camera.Triangles),
		)
	}
	if loadEntry, ok := components.ModelLoad.First(e.World); ok {
		load := components.ModelLoad.Get(loadEntry)
		status := load.Pending.State().String()
		if load.Err != nil {
			status += ": " + load.Err.Error()
		}
		lines = append(lines, fmt.Sprintf("model %s (%s)", load.Pending.Path(), status))
	}
	if stageEntry, ok := components.Stage.First(e.World); ok {
		stage := components.Stage.Get(stageEntry)
		lines = append(lines,
			fmt.Sprintf("chairs %d  tweens %d  slab.x %.3f", stage.ChairCount(), stage.Animator.Active(), stage.Slab.Scale.X()),
		)
	}
	if triggerEntry, ok := components.Trigger.First(e.World); ok {
		trigger := components.Trigger.Get(triggerEntry)
		lines = append(lines, fmt.Sprintf("hover %v  last %v", trigger.Inside(), trigger.Last))

		// Outline the hit area.
		r := trigger.Rect()
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, cfg.UI.DebugText, false)
	}

	face := fonts.Small.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, 8, 16+i*14, cfg.UI.DebugText)
	}
}
