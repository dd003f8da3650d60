package showroom

import (
	"github.com/automoto/showroom/assets"
	"github.com/solarlune/resolv"
)

const (
	resolvTrigger = "trigger"
	resolvCursor  = "cursor"
	cellSize      = 16
)

// Transition is a pointer edge over the trigger element.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionEnter
	TransitionLeave
)

func (t Transition) String() string {
	switch t {
	case TransitionEnter:
		return "enter"
	case TransitionLeave:
		return "leave"
	}
	return "none"
}

// Trigger hit-tests the pointer against the hover element and reports
// mouseenter / mouseleave style edges.
type Trigger struct {
	Label string

	layout *assets.Layout
	space  *resolv.Space
	area   *resolv.Object
	cursor *resolv.Object
	inside bool
}

// NewTrigger builds a trigger for the layout's trigger element, sized for a
// surface of width x height. A surface without area falls back to the
// layout's own size.
func NewTrigger(layout *assets.Layout, width, height int) *Trigger {
	t := &Trigger{
		Label:  layout.Trigger.Label,
		layout: layout,
	}
	if width <= 0 || height <= 0 {
		width, height = layout.Width, layout.Height
	}
	t.rebuild(max(width, 1), max(height, 1))
	return t
}

// Resize rebuilds the collision space for a new surface size. The current
// inside/outside state is kept; the next Move re-evaluates it.
func (t *Trigger) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	t.rebuild(width, height)
}

func (t *Trigger) rebuild(width, height int) {
	r := t.layout.Scale(t.layout.Trigger.Rect, width, height)

	// Round up so the last partial row and column of pixels still get cells.
	t.space = resolv.NewSpace(roundUpToCell(width), roundUpToCell(height), cellSize, cellSize)
	t.area = resolv.NewObject(r.X, r.Y, r.Width, r.Height, resolvTrigger)
	t.cursor = resolv.NewObject(-cellSize, -cellSize, 1, 1, resolvCursor)
	t.space.Add(t.area, t.cursor)
}

func roundUpToCell(v int) int {
	return (v + cellSize - 1) / cellSize * cellSize
}

// Rect returns the trigger area in surface pixels.
func (t *Trigger) Rect() assets.Rect {
	return assets.Rect{X: t.area.X, Y: t.area.Y, Width: t.area.W, Height: t.area.H}
}

// Inside reports whether the last Move was over the trigger.
func (t *Trigger) Inside() bool {
	return t.inside
}

// Move places the pointer at (x, y) and returns the resulting edge.
func (t *Trigger) Move(x, y int) Transition {
	t.cursor.X = float64(x)
	t.cursor.Y = float64(y)
	t.cursor.Update()

	hit := false
	if check := t.cursor.Check(0, 0, resolvTrigger); check != nil {
		// Check is cell based; confirm the pointer is within the area itself.
		for _, o := range check.ObjectsByTags(resolvTrigger) {
			if contains(o, t.cursor.X, t.cursor.Y) {
				hit = true
				break
			}
		}
	}
	switch {
	case hit && !t.inside:
		t.inside = true
		return TransitionEnter
	case !hit && t.inside:
		t.inside = false
		return TransitionLeave
	}
	return TransitionNone
}

// Release reports a leave edge if the pointer was inside, used when the
// pointer exits the window entirely.
func (t *Trigger) Release() Transition {
	if !t.inside {
		return TransitionNone
	}
	t.inside = false
	return TransitionLeave
}

func contains(o *resolv.Object, x, y float64) bool {
	return x >= o.X && x < o.X+o.W && y >= o.Y && y < o.Y+o.H
}
