package showroom

import (
	"math"
	"testing"

	cfg "github.com/automoto/showroom/config"
	"github.com/automoto/showroom/scene"
	"github.com/go-gl/mathgl/mgl64"
)

const tol = 1e-5

// chairTemplate mimics a loaded model: meshes at several nesting depths.
func chairTemplate() *scene.Node {
	root := scene.NewGroup("model")
	body := scene.NewGroup("body")
	seat := scene.NewMesh("seat", scene.NewBox(1, 0.2, 1), scene.NewStandardMaterial(0xff0000, 0, 1))
	back := scene.NewMesh("back", scene.NewBox(1, 1, 0.2), scene.NewStandardMaterial(0x00ff00, 0, 1))
	base := scene.NewGroup("base")
	wheel := scene.NewMesh("wheel", scene.NewBox(0.1, 0.1, 0.1), scene.NewStandardMaterial(0x0000ff, 0, 1))
	root.Add(body)
	body.Add(seat, back, base)
	base.Add(wheel)
	return root
}

func settle(s *State) {
	for i := 0; i < 40; i++ {
		s.Update(1.0 / 60)
	}
}

func TestBuildBeforeLoad(t *testing.T) {
	s := Build()

	children := s.Root.Children()
	if len(children) != 3 {
		t.Fatalf("root has %d children, want slab + 2 lights", len(children))
	}
	if s.ChairCount() != 0 || s.ChairsReady() {
		t.Errorf("chairs present before load")
	}

	if s.Slab.Position != (mgl64.Vec3{0, 0.1, 0}) {
		t.Errorf("slab position = %v", s.Slab.Position)
	}
	m := s.Slab.Material
	if m.Metalness != 0.5 || m.Roughness != 0.7 || m.Color != scene.HexColor(0x777777) {
		t.Errorf("slab material = %+v", m)
	}
	if s.Sun.Light.Kind != scene.LightDirectional || s.Sun.Position != (mgl64.Vec3{5, 5, 5}) {
		t.Errorf("sun = %+v at %v", s.Sun.Light, s.Sun.Position)
	}
	if s.Ambient.Light.Kind != scene.LightAmbient || s.Ambient.Light.Color != scene.HexColor(0x444444) {
		t.Errorf("ambient = %+v", s.Ambient.Light)
	}
}

func TestPlaceChairs(t *testing.T) {
	s := Build()
	tmpl := chairTemplate()
	if err := s.PlaceChairs(tmpl); err != nil {
		t.Fatalf("PlaceChairs: %v", err)
	}

	if s.ChairCount() != 3 || len(s.Root.Children()) != 6 {
		t.Fatalf("chairs = %d, root children = %d", s.ChairCount(), len(s.Root.Children()))
	}

	materials := map[*scene.Material]bool{}
	for slot := SlotCenter; slot <= SlotRight; slot++ {
		chair := s.Chairs[slot]
		want := expectedTransform(slot)

		if !chair.Position.ApproxEqual(want.Position) {
			t.Errorf("%v position = %v, want %v", slot, chair.Position, want.Position)
		}
		if !chair.Scale.ApproxEqual(mgl64.Vec3{want.Scale, want.Scale, want.Scale}) {
			t.Errorf("%v scale = %v, want %v", slot, chair.Scale, want.Scale)
		}
		if math.Abs(math.Abs(yaw(chair))-math.Pi) > tol {
			t.Errorf("%v yaw = %v, want pi", slot, yaw(chair))
		}

		var shared *scene.Material
		meshes := 0
		chair.Traverse(func(n *scene.Node) {
			if !n.IsMesh() {
				return
			}
			meshes++
			if shared == nil {
				shared = n.Material
			}
			if n.Material != shared {
				t.Errorf("%v mesh %q has its own material", slot, n.Name)
			}
		})
		if meshes != 3 {
			t.Errorf("%v meshes = %d, want 3", slot, meshes)
		}
		if shared.Color != scene.HexColor(0x808080) || shared.Roughness != 0.7 || shared.Metalness != 0.3 {
			t.Errorf("%v material = %+v", slot, shared)
		}
		materials[shared] = true
	}
	if len(materials) != 3 {
		t.Errorf("chairs share override materials; got %d distinct", len(materials))
	}

	// Template untouched.
	tmpl.Traverse(func(n *scene.Node) {
		if n.IsMesh() && n.Material.Color == scene.HexColor(0x808080) {
			t.Errorf("template mesh %q was modified", n.Name)
		}
	})
	if s.Chairs[SlotLeft] == s.Chairs[SlotRight] {
		t.Errorf("chairs are not independent copies")
	}
}

func TestPlaceChairsOnlyOnce(t *testing.T) {
	s := Build()
	if err := s.PlaceChairs(chairTemplate()); err != nil {
		t.Fatal(err)
	}
	if err := s.PlaceChairs(chairTemplate()); err != ErrChairsPlaced {
		t.Errorf("second PlaceChairs err = %v", err)
	}
	if s.ChairCount() != 3 || len(s.Root.Children()) != 6 {
		t.Errorf("second call changed the scene")
	}
	if err := Build().PlaceChairs(nil); err == nil {
		t.Errorf("nil template accepted")
	}
}

func assertEntered(t *testing.T, s *State) {
	t.Helper()
	if math.Abs(s.Slab.Scale.X()-1.45) > tol {
		t.Errorf("slab scale.x = %v, want 1.45", s.Slab.Scale.X())
	}
	if s.Slab.Scale.Y() != 1 || s.Slab.Scale.Z() != 1 {
		t.Errorf("slab y/z scale changed: %v", s.Slab.Scale)
	}
	for _, slot := range []Slot{SlotLeft, SlotRight} {
		if !s.Chairs[slot].Scale.ApproxEqualThreshold(mgl64.Vec3{0.1, 0.1, 0.1}, tol) {
			t.Errorf("%v scale = %v, want 0.1", slot, s.Chairs[slot].Scale)
		}
	}
}

func TestHoverEnterLeave(t *testing.T) {
	s := Build()
	if err := s.PlaceChairs(chairTemplate()); err != nil {
		t.Fatal(err)
	}

	s.Enter()
	settle(s)
	assertEntered(t, s)
	if !s.Chairs[SlotCenter].Scale.ApproxEqual(mgl64.Vec3{0.1, 0.1, 0.1}) {
		t.Errorf("center chair touched: %v", s.Chairs[SlotCenter].Scale)
	}

	s.Leave()
	settle(s)
	if math.Abs(s.Slab.Scale.X()-1) > tol {
		t.Errorf("slab scale.x = %v, want 1", s.Slab.Scale.X())
	}
	for _, slot := range []Slot{SlotLeft, SlotRight} {
		if !s.Chairs[slot].Scale.ApproxEqualThreshold(mgl64.Vec3{}, tol) {
			t.Errorf("%v scale = %v, want 0", slot, s.Chairs[slot].Scale)
		}
	}
}

func TestRepeatedEnterSameEndpoint(t *testing.T) {
	s := Build()
	if err := s.PlaceChairs(chairTemplate()); err != nil {
		t.Fatal(err)
	}
	s.Enter()
	s.Update(0.1)
	s.Enter()
	s.Update(0.3)
	s.Enter()
	settle(s)
	assertEntered(t, s)
}

func TestLeaveBeforeEnterFinishes(t *testing.T) {
	s := Build()
	if err := s.PlaceChairs(chairTemplate()); err != nil {
		t.Fatal(err)
	}
	s.Enter()
	s.Update(0.2)
	s.Leave()
	settle(s)
	if math.Abs(s.Slab.Scale.X()-1) > tol {
		t.Errorf("last request should win; slab scale.x = %v", s.Slab.Scale.X())
	}
}

func TestHoverBeforeLoad(t *testing.T) {
	s := Build()

	s.Enter()
	settle(s)
	if math.Abs(s.Slab.Scale.X()-1.45) > tol {
		t.Errorf("slab should animate without chairs; scale.x = %v", s.Slab.Scale.X())
	}

	// Model arrives while the pointer is still inside.
	if err := s.PlaceChairs(chairTemplate()); err != nil {
		t.Fatal(err)
	}
	settle(s)
	assertEntered(t, s)
}

func TestHoverAfterFailedLoad(t *testing.T) {
	s := Build()
	s.Enter()
	s.Leave()
	settle(s)
	if s.ChairCount() != 0 || len(s.Root.Children()) != 3 {
		t.Errorf("scene changed without a model")
	}
}

// chairTransform describes where a slot's chair is expected to be.
type chairTransform struct {
	Position mgl64.Vec3
	Yaw      float64
	Scale    float64
}

// expectedTransform returns the resting transform of slot right after
// PlaceChairs.
func expectedTransform(slot Slot) chairTransform {
	place := cfg.Chairs.Slots[slot]
	t := chairTransform{Position: place.Position, Yaw: place.Yaw, Scale: cfg.Chairs.Scale}
	if place.Hidden {
		t.Scale = 0
	}
	return t
}

// yaw extracts the rotation about Y from a node whose rotation is a pure yaw.
func yaw(n *scene.Node) float64 {
	q := n.Rotation.Normalize()
	return 2 * math.Atan2(q.V.Y(), q.W)
}
