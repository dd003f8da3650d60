package systems

import (
	"image"
	"image/color"

	"github.com/automoto/showroom/components"
	"github.com/automoto/showroom/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// maxBatchTriangles keeps each DrawTriangles call within uint16 indices.
const maxBatchTriangles = 0xffff / 3

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	triangleOp = &ebiten.DrawTrianglesOptions{AntiAlias: true}

	vertices []ebiten.Vertex
	indices  []uint16
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawScene renders the stage through the camera into the page container.
// Triangles arrive sorted far to near and are drawn in that order.
func DrawScene(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	stageEntry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	stage := components.Stage.Get(stageEntry)

	tris := scene.Rasterize(stage.Root, camera.Camera, camera.Viewport)
	camera.Triangles = len(tris)

	// Sub-images keep the parent's coordinates, so offset by the frame origin.
	ox, oy := int(camera.Frame.X), int(camera.Frame.Y)
	bounds := image.Rect(ox, oy, ox+camera.Viewport.Width, oy+camera.Viewport.Height)
	target := screen.SubImage(bounds).(*ebiten.Image)

	for start := 0; start < len(tris); start += maxBatchTriangles {
		end := min(start+maxBatchTriangles, len(tris))
		drawBatch(target, tris[start:end], float32(ox), float32(oy))
	}
}

func drawBatch(dst *ebiten.Image, tris []scene.Triangle, ox, oy float32) {
	vertices = vertices[:0]
	indices = indices[:0]
	for _, t := range tris {
		base := uint16(len(vertices))
		for _, p := range t.Points {
			vertices = append(vertices, ebiten.Vertex{
				DstX:   float32(p.X()) + ox,
				DstY:   float32(p.Y()) + oy,
				SrcX:   1.5,
				SrcY:   1.5,
				ColorR: t.Color[0],
				ColorG: t.Color[1],
				ColorB: t.Color[2],
				ColorA: t.Color[3],
			})
		}
		indices = append(indices, base, base+1, base+2)
	}
	dst.DrawTriangles(vertices, indices, whiteSubImage, triangleOp)
}
