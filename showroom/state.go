// Package showroom holds the scene state of the table showroom and the
// hover interaction that expands the table and reveals the side chairs.
package showroom

import (
	"errors"

	"github.com/automoto/showroom/anim"
	cfg "github.com/automoto/showroom/config"
	"github.com/automoto/showroom/scene"
	"github.com/tanema/gween/ease"
)

// Slot names one of the three chair positions.
type Slot int

const (
	SlotCenter Slot = iota
	SlotLeft
	SlotRight
	slotCount
)

func (s Slot) String() string {
	switch s {
	case SlotCenter:
		return "center"
	case SlotLeft:
		return "left"
	case SlotRight:
		return "right"
	}
	return "unknown"
}

var ErrChairsPlaced = errors.New("chairs already placed")

// State is the scene state owned by the composition root. Chair slots stay
// nil until PlaceChairs succeeds.
type State struct {
	Root    *scene.Node
	Slab    *scene.Node
	Sun     *scene.Node
	Ambient *scene.Node
	Chairs  [slotCount]*scene.Node

	Animator *anim.Animator

	chairsReady bool
	entered     bool
}

// Build creates the slab and both lights.
func Build() *State {
	s := &State{
		Root:     scene.NewGroup("scene"),
		Animator: anim.NewAnimator(),
	}

	s.Slab = scene.NewMesh("table",
		scene.NewBox(cfg.Slab.Width, cfg.Slab.Height, cfg.Slab.Depth),
		scene.NewStandardMaterial(cfg.Slab.Color, cfg.Slab.Metalness, cfg.Slab.Roughness),
	)
	s.Slab.Position = cfg.Slab.Position

	s.Sun = scene.NewLightNode("sun", scene.NewDirectionalLight(cfg.Lights.SunColor, cfg.Lights.SunIntensity))
	s.Sun.Position = cfg.Lights.SunPosition

	s.Ambient = scene.NewLightNode("ambient", scene.NewAmbientLight(cfg.Lights.AmbientColor, cfg.Lights.AmbientIntensity))

	s.Root.Add(s.Slab, s.Sun, s.Ambient)
	return s
}

// ChairsReady reports whether the chair slots are populated.
func (s *State) ChairsReady() bool {
	return s.chairsReady
}

// Entered reports whether the pointer is over the trigger.
func (s *State) Entered() bool {
	return s.entered
}

// ChairCount returns how many chair slots are populated.
func (s *State) ChairCount() int {
	n := 0
	for _, c := range s.Chairs {
		if c != nil {
			n++
		}
	}
	return n
}

// PlaceChairs clones template into the three slots and adds them to the
// scene. Every mesh of a clone shares one freshly created override
// material. It may only succeed once.
func (s *State) PlaceChairs(template *scene.Node) error {
	if s.chairsReady {
		return ErrChairsPlaced
	}
	if template == nil {
		return errors.New("nil chair template")
	}

	for slot := Slot(0); slot < slotCount; slot++ {
		place := cfg.Chairs.Slots[slot]

		chair := template.Clone()
		chair.Name = "chair-" + slot.String()
		ApplyMaterial(chair, scene.NewStandardMaterial(cfg.Chairs.Color, cfg.Chairs.Metalness, cfg.Chairs.Roughness))
		chair.SetScale(cfg.Chairs.Scale)
		chair.Position = place.Position
		chair.SetRotationY(place.Yaw)
		if place.Hidden {
			chair.SetScale(0)
		}

		s.Chairs[slot] = chair
		s.Root.Add(chair)
	}
	s.chairsReady = true

	// The pointer may already be over the trigger when the model arrives.
	if s.entered {
		s.scaleSideChairs(cfg.Hover.ChairScaleEntered)
	}
	return nil
}

// ApplyMaterial assigns m to every mesh under root, however deep.
func ApplyMaterial(root *scene.Node, m *scene.Material) {
	root.Traverse(func(n *scene.Node) {
		if n.IsMesh() {
			n.Material = m
		}
	})
}

// Enter starts the expand animation.
func (s *State) Enter() {
	s.entered = true
	s.Animator.ScaleTo(s.Slab, anim.AxisX, [3]float64{cfg.Hover.SlabScaleXEntered}, cfg.Hover.Duration, ease.OutQuad)
	if s.chairsReady {
		s.scaleSideChairs(cfg.Hover.ChairScaleEntered)
	}
}

// Leave starts the collapse animation.
func (s *State) Leave() {
	s.entered = false
	s.Animator.ScaleTo(s.Slab, anim.AxisX, [3]float64{cfg.Hover.SlabScaleXLeft}, cfg.Hover.Duration, ease.OutQuad)
	if s.chairsReady {
		s.scaleSideChairs(cfg.Hover.ChairScaleLeft)
	}
}

func (s *State) scaleSideChairs(v float64) {
	for _, slot := range []Slot{SlotLeft, SlotRight} {
		s.Animator.ScaleTo(s.Chairs[slot], anim.AxesAll, [3]float64{v, v, v}, cfg.Hover.Duration, ease.OutQuad)
	}
}

// Update advances running animations by dt seconds.
func (s *State) Update(dt float64) {
	s.Animator.Update(dt)
}
