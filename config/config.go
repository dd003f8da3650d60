package config

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Config contains window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// CameraConfig contains the perspective camera setup
type CameraConfig struct {
	FOV    float64 // vertical, degrees
	Near   float64
	Far    float64
	Eye    mgl64.Vec3
	Target mgl64.Vec3
}

// SlabConfig contains the wall-mounted table configuration
type SlabConfig struct {
	Width     float64
	Height    float64
	Depth     float64
	Position  mgl64.Vec3
	Color     uint32 // 0xRRGGBB
	Metalness float64
	Roughness float64
}

// ChairPlacement is the resting transform of one chair slot
type ChairPlacement struct {
	Position mgl64.Vec3
	Yaw      float64 // radians
	Hidden   bool    // starts at scale 0 until the hover reveals it
}

// ChairConfig contains the loaded chair model configuration
type ChairConfig struct {
	Scale     float64
	Color     uint32
	Metalness float64
	Roughness float64
	Slots     [3]ChairPlacement // center, left, right
}

// LightConfig contains scene lighting
type LightConfig struct {
	SunColor         uint32
	SunIntensity     float64
	SunPosition      mgl64.Vec3
	AmbientColor     uint32
	AmbientIntensity float64
}

// HoverConfig contains the trigger animation targets
type HoverConfig struct {
	Duration          float64 // seconds
	SlabScaleXEntered float64
	SlabScaleXLeft    float64
	ChairScaleEntered float64
	ChairScaleLeft    float64
}

// AssetsConfig contains external resource locations
type AssetsConfig struct {
	ModelPath  string
	LayoutPath string // empty = embedded layout
}

// UIConfig contains colors for the page overlay
type UIConfig struct {
	Background      color.RGBA
	TriggerIdle     color.RGBA
	TriggerHover    color.RGBA
	TriggerText     color.RGBA
	TriggerDisabled color.RGBA
	DebugText       color.RGBA
	TextPadding     float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Show the debug overlay on start
}

var C *Config
var Camera CameraConfig
var Slab SlabConfig
var Chairs ChairConfig
var Lights LightConfig
var Hover HoverConfig
var Assets AssetsConfig
var UI UIConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Showroom",
		TPS:    60,
	}

	Camera = CameraConfig{
		FOV:    75,
		Near:   0.1,
		Far:    1000,
		Eye:    mgl64.Vec3{0, 2, 5}, // above and behind the table
		Target: mgl64.Vec3{0, 1, 0},
	}

	Slab = SlabConfig{
		Width:     8,
		Height:    0.2,
		Depth:     1,
		Position:  mgl64.Vec3{0, 0.1, 0},
		Color:     0x777777,
		Metalness: 0.5,
		Roughness: 0.7,
	}

	Chairs = ChairConfig{
		Scale:     0.1,
		Color:     0x808080,
		Metalness: 0.3,
		Roughness: 0.7,
		Slots: [3]ChairPlacement{
			{Position: mgl64.Vec3{0, 0.5, 2}, Yaw: math.Pi},
			{Position: mgl64.Vec3{-2.5, 0.5, 2}, Yaw: math.Pi, Hidden: true},
			{Position: mgl64.Vec3{2.5, 0.5, 2}, Yaw: math.Pi, Hidden: true},
		},
	}

	Lights = LightConfig{
		SunColor:         0xffffff,
		SunIntensity:     1,
		SunPosition:      mgl64.Vec3{5, 5, 5},
		AmbientColor:     0x444444,
		AmbientIntensity: 1,
	}

	Hover = HoverConfig{
		Duration:          0.5,
		SlabScaleXEntered: 1.45,
		SlabScaleXLeft:    1.0,
		ChairScaleEntered: 0.1,
		ChairScaleLeft:    0,
	}

	Assets = AssetsConfig{
		ModelPath: "models/gaming_chair.glb",
	}

	UI = UIConfig{
		Background:      color.RGBA{0, 0, 0, 0},
		TriggerIdle:     color.RGBA{30, 30, 36, 200},
		TriggerHover:    color.RGBA{60, 60, 72, 220},
		TriggerText:     color.RGBA{235, 235, 235, 255},
		TriggerDisabled: color.RGBA{140, 140, 140, 255},
		DebugText:       color.RGBA{0, 255, 120, 255},
		TextPadding:     12,
	}
}
