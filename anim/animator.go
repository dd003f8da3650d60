// Package anim drives timed scale transitions of scene nodes with gween.
package anim

import (
	"github.com/automoto/showroom/scene"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Axes selects scale components.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY
	AxisZ

	AxesAll = AxisX | AxisY | AxisZ
)

func (a Axes) has(axis int) bool {
	return a&(1<<axis) != 0
}

type trackKey struct {
	node *scene.Node
	axis int
}

type track struct {
	tween  *gween.Tween
	target float32
}

// Animator owns the in-flight scale tweens. Each (node, axis) pair has at
// most one tween; a new request on the same pair replaces the old one and
// starts from the value the node currently has.
type Animator struct {
	tracks map[trackKey]*track
}

func NewAnimator() *Animator {
	return &Animator{tracks: make(map[trackKey]*track)}
}

// ScaleTo starts tweening the selected scale axes of node towards target
// over duration seconds.
func (a *Animator) ScaleTo(node *scene.Node, axes Axes, target [3]float64, duration float64, easing ease.TweenFunc) {
	if node == nil {
		return
	}
	if easing == nil {
		easing = ease.Linear
	}
	for axis := 0; axis < 3; axis++ {
		if !axes.has(axis) {
			continue
		}
		from := float32(node.Scale[axis])
		to := float32(target[axis])
		if duration <= 0 {
			node.Scale[axis] = target[axis]
			delete(a.tracks, trackKey{node, axis})
			continue
		}
		a.tracks[trackKey{node, axis}] = &track{
			tween:  gween.New(from, to, float32(duration), easing),
			target: to,
		}
	}
}

// Update advances every tween by dt seconds and writes the result back
// into the node scales. Finished tweens are dropped.
func (a *Animator) Update(dt float64) {
	for key, tr := range a.tracks {
		v, done := tr.tween.Update(float32(dt))
		if done {
			v = tr.target
			delete(a.tracks, key)
		}
		key.node.Scale[key.axis] = float64(v)
	}
}

// Active returns the number of axes currently being tweened.
func (a *Animator) Active() int {
	return len(a.tracks)
}

// Target returns the pending target of node's axis, if one is in flight.
func (a *Animator) Target(node *scene.Node, axis int) (float64, bool) {
	tr, ok := a.tracks[trackKey{node, axis}]
	if !ok {
		return 0, false
	}
	return float64(tr.target), true
}
