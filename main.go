package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/showroom/config"
	"github.com/automoto/showroom/fonts"
	"github.com/automoto/showroom/scenes"
	"github.com/automoto/showroom/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewShowroomScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window: the drawing surface always matches its size.
func (g *Game) Layout(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		width, height = config.C.Width, config.C.Height
	}
	g.bounds = image.Rect(0, 0, width, height)
	g.scene.Layout(width, height)
	return width, height
}

func main() {
	model := flag.String("model", config.Assets.ModelPath, "Chair model (binary glTF)")
	layout := flag.String("layout", "", "Page layout TMX file (empty = built-in)")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	config.Assets.ModelPath = *model
	config.Assets.LayoutPath = *layout
	config.Debug.Overlay = *debug

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetScreenClearedEveryFrame(true)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	log.Printf("Starting showroom (model: %s)", config.Assets.ModelPath)
	// Transparent surface so the page shows through behind the scene.
	opts := &ebiten.RunGameOptions{ScreenTransparent: true}
	if err := ebiten.RunGameWithOptions(NewGame(), opts); err != nil {
		log.Fatal(err)
	}
}
