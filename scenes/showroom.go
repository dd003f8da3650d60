package scenes

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/automoto/showroom/archetypes"
	"github.com/automoto/showroom/assets"
	cfg "github.com/automoto/showroom/config"
	"github.com/automoto/showroom/systems"
	"github.com/automoto/showroom/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShowroomScene renders the table and chairs and reacts to the trigger.
type ShowroomScene struct {
	ecs  *ecs.ECS
	once sync.Once

	width, height int
}

// NewShowroomScene creates the scene. Nothing is built until the first
// Update so that the window size is known.
func NewShowroomScene() *ShowroomScene {
	return &ShowroomScene{width: cfg.C.Width, height: cfg.C.Height}
}

func (ss *ShowroomScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *ShowroomScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

// Layout is called by ebiten whenever the window size may have changed.
// Size changes are applied right away.
func (ss *ShowroomScene) Layout(width, height int) {
	if width == ss.width && height == ss.height {
		return
	}
	ss.width, ss.height = width, height
	if ss.ecs == nil {
		return
	}
	if systems.ResizeViewport(ss.ecs, width, height) && !ebiten.IsFullscreen() {
		systems.MarkSettingsDirty(ss.ecs)
	}
}

func (ss *ShowroomScene) configure() {
	layout := loadLayout()

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateModelLoad)
	ecs.AddSystem(systems.UpdateTrigger)
	ecs.AddSystem(systems.UpdateAnimations)

	ecs.AddRenderer(archetypes.LayerScene, systems.DrawScene)
	ecs.AddRenderer(archetypes.LayerOverlay, systems.DrawTrigger)
	ecs.AddRenderer(archetypes.LayerOverlay, systems.DrawDebug)

	ss.ecs = ecs

	factory.CreateSettings(ss.ecs, systems.InitialSettings())
	factory.CreateCamera(ss.ecs, layout, ss.width, ss.height)
	factory.CreateStage(ss.ecs)
	factory.CreateTrigger(ss.ecs, layout, ss.width, ss.height)

	fsys, path := modelSource(cfg.Assets.ModelPath)
	factory.CreateModelLoad(ss.ecs, fsys, path)
}

// loadLayout returns the configured page layout, or the embedded one. A
// missing container or trigger element is fatal.
func loadLayout() *assets.Layout {
	if cfg.Assets.LayoutPath == "" {
		return assets.MustLoadDefaultLayout()
	}
	fsys, path := modelSource(cfg.Assets.LayoutPath)
	layout, err := assets.LoadLayout(fsys, path)
	if err != nil {
		panic("failed to load page layout: " + err.Error())
	}
	return layout
}

// modelSource splits a host path into a file system and a slash separated
// name inside it.
func modelSource(path string) (fs.FS, string) {
	if filepath.IsAbs(path) {
		return os.DirFS(filepath.Dir(path)), filepath.Base(path)
	}
	return os.DirFS("."), filepath.ToSlash(filepath.Clean(path))
}
