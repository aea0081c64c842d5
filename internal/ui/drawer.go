package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/opacgo/opacapp/internal/motion"
)

// Drawer is the sliding navigation panel. Its open and close slides run
// through a motion.Tracker, so a toggle while a slide is still in flight
// cancels it and the reverse slide picks up exactly where the panel
// currently sits instead of jumping to an endpoint.
type Drawer struct {
	overlay *fyne.Container
	panel   fyne.CanvasObject
	scrim   *Scrim

	tracker *motion.Tracker
	view    *motion.CanvasView
	handle  *motion.Handle

	// open is the direction the panel is currently heading, not necessarily
	// where it is
	open  bool
	width float32
}

// NewDrawer wraps content as a left-hand drawer animated by tracker.
func NewDrawer(content fyne.CanvasObject, tracker *motion.Tracker) *Drawer {
	d := &Drawer{
		panel:   content,
		tracker: tracker,
		width:   DrawerWidth,
	}
	d.scrim = NewScrim(d.Close)

	// The panel is laid out at its open position; the closed state is a
	// translation of -width.
	d.panel.Move(fyne.NewPos(0, 0))
	d.view = motion.NewCanvasView(d.panel)
	d.view.SetTranslation(motion.Offset{X: -d.width})

	d.overlay = container.NewWithoutLayout(d.scrim, d.panel)
	d.overlay.Hide()
	return d
}

// Overlay returns the container to stack above the main content.
func (d *Drawer) Overlay() fyne.CanvasObject {
	return d.overlay
}

// IsOpen reports whether the drawer is open or opening.
func (d *Drawer) IsOpen() bool {
	return d.open
}

// SetSize resizes the scrim and panel to the current window size.
func (d *Drawer) SetSize(size fyne.Size) {
	d.scrim.Resize(size)
	d.panel.Resize(fyne.NewSize(d.width, size.Height))
}

// Toggle opens the drawer when closed or closing, closes it otherwise.
func (d *Drawer) Toggle() {
	if d.open {
		d.Close()
	} else {
		d.Open()
	}
}

// Open slides the drawer in. If a close is still in flight it is canceled
// and the slide continues from the panel's current position.
func (d *Drawer) Open() {
	if d.open {
		return
	}
	d.open = true
	d.overlay.Show()
	d.slide(motion.Offset{X: -d.width}, motion.Offset{}, motion.Offset{}, nil)
}

// Close slides the drawer out, hiding the overlay once the slide completes.
// The terminal translation stays at the resting zero; completion snaps the
// hidden panel back there so the next open starts from a clean state.
func (d *Drawer) Close() {
	if !d.open {
		return
	}
	d.open = false
	d.slide(motion.Offset{}, motion.Offset{X: -d.width}, motion.Offset{}, func() {
		d.overlay.Hide()
	})
}

// slide cancels any running motion and starts a new one from start to end.
// The cancel stores the panel's current position on the anchor, which the
// tracker consumes to recompute the real start.
func (d *Drawer) slide(start, end, terminal motion.Offset, onEnd func()) {
	if d.handle != nil && d.handle.State() == motion.StateRunning {
		d.handle.Animation().Cancel()
	}

	h := d.tracker.Begin(d.view, d.view, d.view.BasePosition(), start, end, terminal)
	if h == nil {
		// No animation available, snap to the endpoint
		log.Printf("drawer slide not animatable, snapping")
		d.view.SetTranslation(terminal)
		if onEnd != nil {
			onEnd()
		}
		return
	}
	if onEnd != nil {
		h.Animation().AddListener(&slideListener{onEnd: onEnd})
	}
	d.handle = h
	h.Start()
}

// slideListener adapts a completion func to the motion listener surface.
// Only natural completion fires it; a canceled slide is continued by the
// next one and must not run completion side effects.
type slideListener struct {
	onEnd func()
}

func (l *slideListener) OnCancel() {}
func (l *slideListener) OnEnd() {
	if l.onEnd != nil {
		l.onEnd()
	}
}
func (l *slideListener) OnPause()  {}
func (l *slideListener) OnResume() {}
