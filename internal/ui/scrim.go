package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// Scrim opacity
const (
	scrimAlpha = 96
)

// Scrim is a dimmed overlay shown behind the open navigation drawer. A tap
// or touch anywhere on it closes the drawer, matching the usual drawer
// dismiss behavior on mobile.
type Scrim struct {
	widget.BaseWidget
	onTap func()
	fill  *canvas.Rectangle
}

// NewScrim creates a scrim calling onTap when tapped or touched
func NewScrim(onTap func()) *Scrim {
	s := &Scrim{
		onTap: onTap,
		fill:  canvas.NewRectangle(color.RGBA{A: scrimAlpha}),
	}
	s.ExtendBaseWidget(s)
	return s
}

// Tapped handles desktop clicks
func (s *Scrim) Tapped(_ *fyne.PointEvent) {
	if s.onTap != nil {
		s.onTap()
	}
}

// TouchDown handles touch down events
func (s *Scrim) TouchDown(_ *mobile.TouchEvent) {}

// TouchUp handles touch up events
func (s *Scrim) TouchUp(_ *mobile.TouchEvent) {
	if s.onTap != nil {
		s.onTap()
	}
}

// TouchCancel handles touch cancel events
func (s *Scrim) TouchCancel(_ *mobile.TouchEvent) {}

// CreateRenderer creates the widget renderer
func (s *Scrim) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.fill)
}
