package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/showroom/assets"
	cfg "github.com/automoto/showroom/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TriggerPanel holds the ebitenui interface for the hover element: a
// background panel at the trigger rectangle with its label inside.
// Hit testing is done by showroom.Trigger; the panel only mirrors it.
type TriggerPanel struct {
	UI *ebitenui.UI

	root  *widget.Container
	panel *widget.Container
	label *widget.Label

	// Stored as interface for ebitenui compatibility
	face text.Face

	rect  assets.Rect
	hover bool
	ready bool
}

// NewTriggerPanel creates the panel. It has no size until Place is called.
func NewTriggerPanel(label string) *TriggerPanel {
	tp := &TriggerPanel{ready: true}

	tp.loadFonts()
	tp.buildUI(label)

	return tp
}

func (tp *TriggerPanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	tp.face = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
}

func (tp *TriggerPanel) buildUI(label string) {
	// Transparent root filling the screen; the panel is offset inside it.
	tp.root = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := int(cfg.UI.TextPadding)
	tp.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.TriggerIdle)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Left: padding, Right: padding}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(panelLayoutData(assets.Rect{})),
		),
	)

	tp.label = widget.NewLabel(
		widget.LabelOpts.Text(label, &tp.face, &widget.LabelColor{
			Idle:     cfg.UI.TriggerText,
			Disabled: cfg.UI.TriggerDisabled,
		}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
					HorizontalPosition: widget.AnchorLayoutPositionStart,
					VerticalPosition:   widget.AnchorLayoutPositionCenter,
				}),
			),
		),
	)
	tp.panel.AddChild(tp.label)
	tp.root.AddChild(tp.panel)

	tp.UI = &ebitenui.UI{
		Container: tp.root,
	}
}

func panelLayoutData(r assets.Rect) widget.AnchorLayoutData {
	return widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		Padding:            &widget.Insets{Left: int(r.X), Top: int(r.Y)},
	}
}

// Place moves and sizes the panel to r, in screen pixels.
func (tp *TriggerPanel) Place(r assets.Rect) {
	if r == tp.rect {
		return
	}
	tp.rect = r

	w := tp.panel.GetWidget()
	w.MinWidth = int(r.Width)
	w.MinHeight = int(r.Height)
	w.LayoutData = panelLayoutData(r)
	tp.root.RequestRelayout()
}

// Sync mirrors the hover state and whether the chairs can react yet. The
// label is drawn with its disabled color until ready.
func (tp *TriggerPanel) Sync(hover, ready bool) {
	if hover != tp.hover {
		tp.hover = hover
		tp.panel.SetBackgroundImage(image.NewNineSliceColor(tp.background()))
	}
	if ready != tp.ready {
		tp.ready = ready
		tp.label.GetWidget().Disabled = !ready
	}
}

func (tp *TriggerPanel) background() color.Color {
	if tp.hover {
		return cfg.UI.TriggerHover
	}
	return cfg.UI.TriggerIdle
}

// Update calls the UI's Update method
func (tp *TriggerPanel) Update() {
	tp.UI.Update()
}
