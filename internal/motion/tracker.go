package motion

import (
	"time"

	"fyne.io/fyne/v2"
)

// Default motion parameters
const (
	DefaultDuration = 300 * time.Millisecond
)

// Tracker builds motions between a start and end translation and preserves
// visual continuity across interruptions. Canceled motions leave a saved
// position on their anchor view; the next Begin on the same anchor consumes
// it and starts from there. All methods must be called from the UI event
// loop; the tracker holds no locks.
type Tracker struct {
	driver   Driver
	curve    fyne.AnimationCurve
	duration time.Duration

	// One transient metadata slot per anchor, untyped so callers can attach
	// arbitrary tags; Begin only honors Point values.
	tags map[View]any
}

// NewTracker returns a tracker using the given animation driver.
func NewTracker(driver Driver) *Tracker {
	return &Tracker{
		driver:   driver,
		curve:    fyne.AnimationEaseInOut,
		duration: DefaultDuration,
		tags:     make(map[View]any),
	}
}

// SetDuration overrides the motion duration for subsequent Begin calls.
func (t *Tracker) SetDuration(d time.Duration) {
	if d > 0 {
		t.duration = d
	}
}

// SetCurve overrides the interpolation curve for subsequent Begin calls.
func (t *Tracker) SetCurve(curve fyne.AnimationCurve) {
	t.curve = curve
}

// Begin starts a motion for view from start to end translation. viewPos is
// the view's absolute position and terminal the translation the view should
// hold once motion has fully completed. anchor is where interrupted-position
// metadata is stored and may differ from view, e.g. when animating a copy
// used for a disappear effect.
//
// If the anchor carries a saved position from an earlier canceled motion,
// the supplied start is ignored and recomputed from it, and the saved
// position is consumed. Returns nil if the driver cannot animate the view;
// in that case no metadata is touched.
func (t *Tracker) Begin(view, anchor View, viewPos Point, start, end, terminal Offset) *Handle {
	if saved, ok := t.savedPosition(anchor); ok {
		start = Offset{
			X: float32(saved.X-viewPos.X) + terminal.X,
			Y: float32(saved.Y-viewPos.Y) + terminal.Y,
		}
	}
	// The view sits at translation start, so its absolute position is offset
	// by the start-terminal delta.
	startPos := Point{
		X: viewPos.X + round(start.X-terminal.X),
		Y: viewPos.Y + round(start.Y-terminal.Y),
	}

	view.SetTranslation(start)

	anim := t.driver.Animate(view, Line(start, end), t.curve, t.duration)
	if anim == nil {
		return nil
	}

	h := &Handle{
		tracker:  t,
		view:     view,
		anchor:   anchor,
		terminal: terminal,
		origin: Point{
			X: startPos.X - round(start.X),
			Y: startPos.Y - round(start.Y),
		},
		state: StateRunning,
		anim:  anim,
	}
	t.ClearTag(anchor)
	anim.AddListener(h)
	return h
}

// SetTag attaches transient metadata to anchor, replacing any previous value.
func (t *Tracker) SetTag(anchor View, value any) {
	if value == nil {
		delete(t.tags, anchor)
		return
	}
	t.tags[anchor] = value
}

// Tag returns the transient metadata attached to anchor, or nil.
func (t *Tracker) Tag(anchor View) any {
	return t.tags[anchor]
}

// ClearTag removes any transient metadata attached to anchor.
func (t *Tracker) ClearTag(anchor View) {
	delete(t.tags, anchor)
}

// savedPosition reads the anchor's saved position without consuming it.
// Metadata of any other shape is treated as absent.
func (t *Tracker) savedPosition(anchor View) (Point, bool) {
	pos, ok := t.tags[anchor].(Point)
	return pos, ok
}

// State is the lifecycle state of one motion handle.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateCanceled
	StateCompleted
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCanceled:
		return "canceled"
	case StateCompleted:
		return "completed"
	default:
		return "invalid"
	}
}

// Handle is one in-flight motion. It implements Listener and is registered
// with the driver's animation, so cancel/end/pause/resume events arriving
// from the engine drive the state machine below. Canceled and Completed are
// terminal; events delivered after that are ignored.
type Handle struct {
	tracker  *Tracker
	view     View
	anchor   View
	origin   Point // maps local translation back to absolute position
	terminal Offset
	paused   Offset
	state    State
	anim     Animation
}

// State returns the handle's current lifecycle state.
func (h *Handle) State() State {
	return h.state
}

// Start begins driving the motion.
func (h *Handle) Start() {
	h.anim.Start()
}

// Animation exposes the underlying motion object.
func (h *Handle) Animation() Animation {
	return h.anim
}

// OnCancel records the view's absolute position on the anchor so the next
// motion can continue from it. The view's translation is left as-is.
func (h *Handle) OnCancel() {
	if h.state == StateCanceled || h.state == StateCompleted {
		return
	}
	tr := h.view.Translation()
	h.tracker.SetTag(h.anchor, Point{
		X: round(float32(h.origin.X) + tr.X),
		Y: round(float32(h.origin.Y) + tr.Y),
	})
	h.state = StateCanceled
}

// OnEnd snaps the view to the terminal translation exactly, guarding against
// interpolation drift.
func (h *Handle) OnEnd() {
	if h.state == StateCanceled || h.state == StateCompleted {
		return
	}
	h.view.SetTranslation(h.terminal)
	h.state = StateCompleted
}

// OnPause snapshots the current translation and parks the view at terminal.
func (h *Handle) OnPause() {
	if h.state != StateRunning {
		return
	}
	h.paused = h.view.Translation()
	h.view.SetTranslation(h.terminal)
	h.state = StatePaused
}

// OnResume restores the translation snapshotted by OnPause.
func (h *Handle) OnResume() {
	if h.state != StatePaused {
		return
	}
	h.view.SetTranslation(h.paused)
	h.state = StateRunning
}
