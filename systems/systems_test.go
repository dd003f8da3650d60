package systems

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/automoto/showroom/archetypes"
	"github.com/automoto/showroom/assets"
	"github.com/automoto/showroom/components"
	"github.com/automoto/showroom/showroom"
	"github.com/automoto/showroom/systems/factory"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// spawnTrigger adds a trigger without its panel, which needs a window.
func spawnTrigger(e *ecs.ECS, layout *assets.Layout, width, height int) *components.TriggerData {
	entry := archetypes.Trigger.Spawn(e)
	components.Trigger.SetValue(entry, components.TriggerData{
		Trigger: showroom.NewTrigger(layout, width, height),
	})
	return components.Trigger.Get(entry)
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

// runModelLoad ticks the load system until the request settles.
func runModelLoad(t *testing.T, e *ecs.ECS) *components.ModelLoadData {
	t.Helper()
	entry, ok := components.ModelLoad.First(e.World)
	if !ok {
		t.Fatal("no model load entity")
	}
	load := components.ModelLoad.Get(entry)
	deadline := time.Now().Add(2 * time.Second)
	for load.Pending.State() == assets.LoadPending {
		if time.Now().After(deadline) {
			t.Fatal("model load did not finish")
		}
		UpdateModelLoad(e)
		time.Sleep(time.Millisecond)
	}
	return load
}

func triangleGLB(t *testing.T) []byte {
	t.Helper()
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	doc.Meshes = []*gltf.Mesh{{
		Name:       "seat",
		Primitives: []*gltf.Primitive{{Attributes: gltf.Attribute{gltf.POSITION: pos}}},
	}}
	doc.Nodes = []*gltf.Node{{Name: "seat", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = []uint32{0}

	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestUpdateModelLoadPlacesChairs(t *testing.T) {
	captureLog(t)
	e := newTestECS()
	stageEntry := factory.CreateStage(e)
	fsys := fstest.MapFS{"models/chair.glb": {Data: triangleGLB(t)}}
	factory.CreateModelLoad(e, fsys, "models/chair.glb")

	load := runModelLoad(t, e)
	if load.Err != nil {
		t.Fatalf("load error: %v", load.Err)
	}
	stage := components.Stage.Get(stageEntry)
	if !stage.ChairsReady() || stage.ChairCount() != 3 {
		t.Errorf("chairs ready = %v, count = %d", stage.ChairsReady(), stage.ChairCount())
	}

	// Further ticks must not place the chairs a second time.
	UpdateModelLoad(e)
	if load.Err != nil || len(stage.Root.Children()) != 6 {
		t.Errorf("second tick changed the scene: err = %v, children = %d", load.Err, len(stage.Root.Children()))
	}
}

func TestUpdateModelLoadFailure(t *testing.T) {
	logs := captureLog(t)
	e := newTestECS()
	stageEntry := factory.CreateStage(e)
	layout := assets.MustLoadDefaultLayout()
	spawnTrigger(e, layout, layout.Width, layout.Height)
	factory.CreateModelLoad(e, fstest.MapFS{}, "models/gaming_chair.glb")

	load := runModelLoad(t, e)
	if load.Err == nil {
		t.Fatal("expected a load error")
	}
	if !strings.Contains(logs.String(), "[loader] Error loading model:") {
		t.Errorf("log = %q", logs.String())
	}

	stage := components.Stage.Get(stageEntry)
	if stage.ChairsReady() || stage.ChairCount() != 0 || len(stage.Root.Children()) != 3 {
		t.Errorf("scene changed after failed load")
	}

	// Hovering afterwards only drives the slab.
	inputEntry := archetypes.Input.Spawn(e)
	input := components.Input.Get(inputEntry)
	r := layout.Trigger.Rect
	input.CursorX, input.CursorY = int(r.X+r.Width/2), int(r.Y+r.Height/2)
	input.CursorInside = true

	UpdateTrigger(e)
	if !stage.Entered() {
		t.Error("hover over the trigger was not registered")
	}
	if stage.Animator.Active() != 1 {
		t.Errorf("active tweens = %d, want only the slab", stage.Animator.Active())
	}
	if stage.ChairCount() != 0 {
		t.Errorf("chairs appeared after failed load")
	}
}

func TestResizeViewportRescalesTrigger(t *testing.T) {
	e := newTestECS()
	layout := assets.MustLoadDefaultLayout()
	cameraEntry := factory.CreateCamera(e, layout, layout.Width, layout.Height)
	trigger := spawnTrigger(e, layout, layout.Width, layout.Height)

	if !ResizeViewport(e, 640, 480) {
		t.Fatal("resize reported no change")
	}

	camera := components.Camera.Get(cameraEntry)
	if camera.Viewport.Width != 640 || camera.Viewport.Height != 480 {
		t.Errorf("viewport = %dx%d", camera.Viewport.Width, camera.Viewport.Height)
	}
	if math.Abs(camera.Camera.Aspect-640.0/480.0) > 1e-9 {
		t.Errorf("aspect = %v", camera.Camera.Aspect)
	}
	if want := layout.Scale(layout.Trigger.Rect, 640, 480); trigger.Rect() != want {
		t.Errorf("trigger rect = %+v, want %+v", trigger.Rect(), want)
	}

	if ResizeViewport(e, 640, 480) {
		t.Error("same size reported a change")
	}
	if ResizeViewport(e, 0, 480) {
		t.Error("empty size reported a change")
	}
	if camera.Viewport.Width != 640 {
		t.Errorf("empty size changed the viewport to %d", camera.Viewport.Width)
	}
}

func TestResizeViewportWithoutCamera(t *testing.T) {
	if ResizeViewport(newTestECS(), 800, 600) {
		t.Error("resize without a camera reported a change")
	}
}
