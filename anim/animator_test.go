package anim

import (
	"math"
	"testing"

	"github.com/automoto/showroom/scene"
	"github.com/tanema/gween/ease"
)

const eps = 1e-5

func run(a *Animator, seconds, step float64) {
	for t := 0.0; t < seconds; t += step {
		a.Update(step)
	}
}

func TestScaleToSingleAxis(t *testing.T) {
	n := scene.NewGroup("slab")
	a := NewAnimator()

	a.ScaleTo(n, AxisX, [3]float64{1.45, 0, 0}, 0.5, ease.OutQuad)
	if a.Active() != 1 {
		t.Fatalf("active = %d, want 1", a.Active())
	}

	run(a, 0.6, 1.0/60)

	if math.Abs(n.Scale.X()-1.45) > eps {
		t.Errorf("scale.x = %v, want 1.45", n.Scale.X())
	}
	if n.Scale.Y() != 1 || n.Scale.Z() != 1 {
		t.Errorf("untouched axes changed: %v", n.Scale)
	}
	if a.Active() != 0 {
		t.Errorf("finished tweens not dropped: %d", a.Active())
	}
}

func TestScaleToEasesOut(t *testing.T) {
	n := scene.NewGroup("chair")
	n.SetScale(0)
	a := NewAnimator()
	a.ScaleTo(n, AxesAll, [3]float64{0.1, 0.1, 0.1}, 0.5, ease.OutQuad)

	a.Update(0.25)
	// Decelerating curve: past the linear midpoint at half time.
	if n.Scale.X() <= 0.05 || n.Scale.X() >= 0.1 {
		t.Errorf("mid-tween scale = %v, want in (0.05, 0.1)", n.Scale.X())
	}
}

func TestLaterRequestRetargets(t *testing.T) {
	n := scene.NewGroup("chair")
	n.SetScale(0)
	a := NewAnimator()

	a.ScaleTo(n, AxesAll, [3]float64{0.1, 0.1, 0.1}, 0.5, ease.OutQuad)
	a.Update(0.2)
	mid := n.Scale.X()

	a.ScaleTo(n, AxesAll, [3]float64{0, 0, 0}, 0.5, ease.OutQuad)
	if a.Active() != 3 {
		t.Fatalf("active = %d, want 3 (replaced, not queued)", a.Active())
	}
	a.Update(1.0 / 60)
	if n.Scale.X() >= mid {
		t.Errorf("retargeted tween should start from %v and decrease, got %v", mid, n.Scale.X())
	}

	run(a, 0.6, 1.0/60)
	for axis := 0; axis < 3; axis++ {
		if math.Abs(n.Scale[axis]) > eps {
			t.Errorf("axis %d = %v, want 0", axis, n.Scale[axis])
		}
	}
}

func TestRepeatedRequestSameEndpoint(t *testing.T) {
	n := scene.NewGroup("slab")
	a := NewAnimator()

	for i := 0; i < 4; i++ {
		a.ScaleTo(n, AxisX, [3]float64{1.45}, 0.5, ease.OutQuad)
		a.Update(0.1)
	}
	if got, ok := a.Target(n, 0); !ok || math.Abs(got-1.45) > eps {
		t.Errorf("target = %v, %v", got, ok)
	}
	run(a, 0.6, 1.0/60)
	if math.Abs(n.Scale.X()-1.45) > eps {
		t.Errorf("scale.x = %v, want 1.45", n.Scale.X())
	}
}

func TestZeroDurationSnaps(t *testing.T) {
	n := scene.NewGroup("n")
	a := NewAnimator()
	a.ScaleTo(n, AxisY, [3]float64{0, 3, 0}, 0, nil)
	if n.Scale.Y() != 3 || a.Active() != 0 {
		t.Errorf("scale = %v active = %d", n.Scale, a.Active())
	}
}

func TestNilNodeIgnored(t *testing.T) {
	a := NewAnimator()
	a.ScaleTo(nil, AxesAll, [3]float64{1, 1, 1}, 0.5, ease.OutQuad)
	if a.Active() != 0 {
		t.Errorf("nil node should not create tracks")
	}
}
