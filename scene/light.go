package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

type LightKind int

const (
	LightDirectional LightKind = iota
	LightAmbient
)

func (k LightKind) String() string {
	switch k {
	case LightDirectional:
		return "directional"
	case LightAmbient:
		return "ambient"
	}
	return "unknown"
}

// Light describes a light source. Directional lights shine from the owning
// node's world position towards the origin; ambient lights have no position.
type Light struct {
	Kind      LightKind
	Color     color.RGBA
	Intensity float64
}

// NewDirectionalLight returns a directional light from a 0xRRGGBB color.
func NewDirectionalLight(hex uint32, intensity float64) *Light {
	return &Light{Kind: LightDirectional, Color: HexColor(hex), Intensity: intensity}
}

// NewAmbientLight returns an ambient light from a 0xRRGGBB color.
func NewAmbientLight(hex uint32, intensity float64) *Light {
	return &Light{Kind: LightAmbient, Color: HexColor(hex), Intensity: intensity}
}

// radiance is the light color scaled by intensity, in 0..1 per channel.
func (l *Light) radiance() mgl64.Vec3 {
	return mgl64.Vec3{
		float64(l.Color.R) / 255,
		float64(l.Color.G) / 255,
		float64(l.Color.B) / 255,
	}.Mul(l.Intensity)
}
