package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/opacgo/opacapp/internal/motion"
)

// stubAnimation lets tests step progress by hand and fire lifecycle events
type stubAnimation struct {
	view      motion.View
	path      motion.Path
	listeners []motion.Listener
	started   bool
}

func (a *stubAnimation) AddListener(l motion.Listener) { a.listeners = append(a.listeners, l) }
func (a *stubAnimation) Start()                        { a.started = true }

func (a *stubAnimation) Cancel() {
	for _, l := range a.listeners {
		l.OnCancel()
	}
}

func (a *stubAnimation) Pause() {
	for _, l := range a.listeners {
		l.OnPause()
	}
}

func (a *stubAnimation) Resume() {
	for _, l := range a.listeners {
		l.OnResume()
	}
}

func (a *stubAnimation) step(progress float32) {
	a.view.SetTranslation(a.path.At(progress))
}

func (a *stubAnimation) finish() {
	a.view.SetTranslation(a.path.End)
	for _, l := range a.listeners {
		l.OnEnd()
	}
}

type stubDriver struct {
	last *stubAnimation
}

func (d *stubDriver) Animate(view motion.View, path motion.Path, curve fyne.AnimationCurve, duration time.Duration) motion.Animation {
	d.last = &stubAnimation{view: view, path: path}
	return d.last
}

func newTestDrawer() (*Drawer, *stubDriver) {
	driver := &stubDriver{}
	tracker := motion.NewTracker(driver)
	panel := canvas.NewRectangle(nil)
	return NewDrawer(panel, tracker), driver
}

func TestDrawerOpenClose(t *testing.T) {
	d, driver := newTestDrawer()

	if d.IsOpen() {
		t.Fatal("Drawer should start closed")
	}
	if got := d.view.Translation().X; got != -DrawerWidth {
		t.Fatalf("Closed drawer should sit at -width, got %v", got)
	}

	d.Open()
	if !d.IsOpen() {
		t.Error("Drawer should report open after Open")
	}
	if !driver.last.started {
		t.Error("Open should start the slide")
	}
	if driver.last.path.Start.X != -DrawerWidth || driver.last.path.End.X != 0 {
		t.Errorf("Open slide should run -width to 0, got %v to %v", driver.last.path.Start.X, driver.last.path.End.X)
	}

	driver.last.finish()
	if got := d.view.Translation().X; got != 0 {
		t.Errorf("Open drawer should sit at 0, got %v", got)
	}

	d.Close()
	if driver.last.path.Start.X != 0 || driver.last.path.End.X != -DrawerWidth {
		t.Errorf("Close slide should run 0 to -width, got %v to %v", driver.last.path.Start.X, driver.last.path.End.X)
	}

	driver.last.finish()
	// Completion parks the hidden panel back at the resting translation
	if got := d.view.Translation().X; got != 0 {
		t.Errorf("Hidden drawer should rest at 0, got %v", got)
	}
	if d.overlay.Visible() {
		t.Error("Overlay should hide after close completes")
	}
}

func TestDrawerInterruptedToggleContinuesFromCurrentPosition(t *testing.T) {
	d, driver := newTestDrawer()

	d.Open()
	opening := driver.last

	// Slide is 40% in when the user toggles again
	opening.step(0.4)
	midX := d.view.Translation().X

	d.Toggle()
	closing := driver.last
	if closing == opening {
		t.Fatal("Toggle should start a new slide")
	}

	// The reverse slide must pick up where the canceled one stopped, not at
	// the open endpoint
	if closing.path.Start.X != midX {
		t.Errorf("Reverse slide should start at %v, got %v", midX, closing.path.Start.X)
	}
	if closing.path.End.X != -DrawerWidth {
		t.Errorf("Reverse slide should end at -width, got %v", closing.path.End.X)
	}

	closing.finish()
	if d.IsOpen() {
		t.Error("Drawer should report closed after reverse slide")
	}
	if d.overlay.Visible() {
		t.Error("Overlay should hide after the reverse slide completes")
	}
}

func TestDrawerDoubleInterruption(t *testing.T) {
	d, driver := newTestDrawer()

	d.Open()
	driver.last.step(0.5)
	halfX := d.view.Translation().X

	d.Toggle() // now closing from half-open
	driver.last.step(0.5)
	quarterX := d.view.Translation().X

	d.Toggle() // opening again from quarter-open
	reopening := driver.last

	if reopening.path.Start.X != quarterX {
		t.Errorf("Second reversal should start at %v, got %v", quarterX, reopening.path.Start.X)
	}
	if reopening.path.End.X != 0 {
		t.Errorf("Second reversal should head to 0, got %v", reopening.path.End.X)
	}
	if halfX == quarterX {
		t.Error("Interruptions should capture distinct positions")
	}

	reopening.finish()
	if !d.IsOpen() {
		t.Error("Drawer should report open after the final slide")
	}
	if got := d.view.Translation().X; got != 0 {
		t.Errorf("Drawer should rest fully open, got %v", got)
	}
}
