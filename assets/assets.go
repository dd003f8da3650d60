// Package assets loads the showroom's external resources: the chair model
// and the page layout that names the drawing container and hover trigger.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:layouts
	layoutFS embed.FS
)

// LayoutFS exposes the embedded layouts.
func LayoutFS() fs.FS {
	return layoutFS
}

// Names of the objects a page layout must provide.
const (
	PageGroup        = "page"
	ContainerElement = "tableContainer"
	TriggerElement   = "text-right"
)

var (
	ErrNoContainer = errors.New("layout has no container element")
	ErrNoTrigger   = errors.New("layout has no trigger element")
)

// Rect is an axis aligned rectangle in layout pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Element is a named rectangle of the page.
type Element struct {
	Name  string
	Class string
	Rect  Rect
	Label string
}

// Layout is the page hosting the scene. Rectangles are expressed in the
// layout's design size and scaled to the real window with Scale.
type Layout struct {
	Name      string
	Width     int
	Height    int
	Container Element
	Trigger   Element
}

// Scale maps r from layout space to a surface of size w x h.
func (l *Layout) Scale(r Rect, w, h int) Rect {
	if l.Width <= 0 || l.Height <= 0 {
		return r
	}
	sx := float64(w) / float64(l.Width)
	sy := float64(h) / float64(l.Height)
	return Rect{
		X:      r.X * sx,
		Y:      r.Y * sy,
		Width:  r.Width * sx,
		Height: r.Height * sy,
	}
}

// LoadLayout parses a Tiled TMX page layout from fsys.
func LoadLayout(fsys fs.FS, path string) (*Layout, error) {
	pageMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}

	layout := &Layout{
		Name:   path,
		Width:  pageMap.Width * pageMap.TileWidth,
		Height: pageMap.Height * pageMap.TileHeight,
	}

	var haveContainer, haveTrigger bool
	for _, og := range pageMap.ObjectGroups {
		if og.Name != PageGroup {
			continue
		}
		for _, o := range og.Objects {
			class := o.Class
			if class == "" {
				class = o.Type //nolint:staticcheck // older TMX uses type=
			}
			el := Element{
				Name:  o.Name,
				Class: class,
				Rect:  Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height},
				Label: o.Properties.GetString("label"),
			}
			switch {
			case o.Name == ContainerElement:
				layout.Container = el
				haveContainer = true
			case o.Name == TriggerElement || class == TriggerElement:
				layout.Trigger = el
				haveTrigger = true
			}
		}
	}

	if !haveContainer {
		return nil, fmt.Errorf("%s: %w", path, ErrNoContainer)
	}
	if !haveTrigger {
		return nil, fmt.Errorf("%s: %w", path, ErrNoTrigger)
	}
	return layout, nil
}

// MustLoadDefaultLayout loads the embedded showroom page.
func MustLoadDefaultLayout() *Layout {
	l, err := LoadLayout(layoutFS, "layouts/showroom.tmx")
	if err != nil {
		panic(err)
	}
	return l
}
