package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Geometry is an indexed triangle list. Indices are counter-clockwise when
// viewed from the outside.
type Geometry struct {
	Positions []mgl64.Vec3
	Indices   []uint32
}

// TriangleCount returns the number of triangles in g.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// NewBox builds an axis aligned box of the given size centered on the origin.
func NewBox(width, height, depth float64) *Geometry {
	x, y, z := width/2, height/2, depth/2
	faces := [6][4]mgl64.Vec3{
		{{x, -y, z}, {x, -y, -z}, {x, y, -z}, {x, y, z}},     // +x
		{{-x, -y, -z}, {-x, -y, z}, {-x, y, z}, {-x, y, -z}}, // -x
		{{-x, y, z}, {x, y, z}, {x, y, -z}, {-x, y, -z}},     // +y
		{{-x, -y, -z}, {x, -y, -z}, {x, -y, z}, {-x, -y, z}}, // -y
		{{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z}},     // +z
		{{x, -y, -z}, {-x, -y, -z}, {-x, y, -z}, {x, y, -z}}, // -z
	}

	g := &Geometry{
		Positions: make([]mgl64.Vec3, 0, 24),
		Indices:   make([]uint32, 0, 36),
	}
	for _, f := range faces {
		base := uint32(len(g.Positions))
		g.Positions = append(g.Positions, f[:]...)
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}

// Material is a physically-inspired surface description.
type Material struct {
	Color     color.RGBA
	Metalness float64
	Roughness float64
}

// NewStandardMaterial returns a material from a 0xRRGGBB color.
func NewStandardMaterial(hex uint32, metalness, roughness float64) *Material {
	return &Material{
		Color:     HexColor(hex),
		Metalness: metalness,
		Roughness: roughness,
	}
}

// HexColor converts 0xRRGGBB to an opaque color.RGBA.
func HexColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xff,
	}
}
