package motion

import (
	"time"

	"fyne.io/fyne/v2"
)

// Listener receives lifecycle events from a running animation. The four
// callbacks are the only way animation state reaches the tracker.
type Listener interface {
	OnCancel()
	OnEnd()
	OnPause()
	OnResume()
}

// Animation is a drivable motion object produced by a Driver. Cancel, Pause
// and Resume dispatch the matching Listener callbacks; the end callback fires
// when the motion runs to completion on its own.
type Animation interface {
	AddListener(Listener)
	Start()
	Cancel()
	Pause()
	Resume()
}

// Driver is the host animation engine behind a narrow interface. Animate
// returns nil when the engine cannot build a motion object for the given
// view and path.
type Driver interface {
	Animate(view View, path Path, curve fyne.AnimationCurve, duration time.Duration) Animation
}

// FyneDriver drives views with fyne.Animation ticks on the Fyne event loop.
type FyneDriver struct{}

// NewFyneDriver returns a Driver backed by the Fyne animation engine.
func NewFyneDriver() *FyneDriver {
	return &FyneDriver{}
}

// Animate builds a tickable animation moving view along path.
func (d *FyneDriver) Animate(view View, path Path, curve fyne.AnimationCurve, duration time.Duration) Animation {
	if view == nil || duration <= 0 || !path.IsFinite() {
		return nil
	}
	return &fyneAnimation{
		view:     view,
		path:     path,
		curve:    curve,
		duration: duration,
	}
}

type fyneAnimation struct {
	view      View
	path      Path
	curve     fyne.AnimationCurve
	duration  time.Duration
	listeners []Listener

	anim     *fyne.Animation
	progress float32
	running  bool
	finished bool
}

func (a *fyneAnimation) AddListener(l Listener) {
	a.listeners = append(a.listeners, l)
}

func (a *fyneAnimation) Start() {
	if a.finished || a.running {
		return
	}
	a.running = true
	a.startFrom(0)
}

// startFrom runs the remaining part of the path beginning at progress base.
func (a *fyneAnimation) startFrom(base float32) {
	remaining := time.Duration(float64(a.duration) * float64(1-base))
	if remaining <= 0 {
		a.finish()
		return
	}
	a.anim = fyne.NewAnimation(remaining, func(p float32) {
		overall := base + p*(1-base)
		a.progress = overall
		a.view.SetTranslation(a.path.At(overall))
		if p >= 1 {
			a.finish()
		}
	})
	a.anim.Curve = a.curve
	a.anim.Start()
}

func (a *fyneAnimation) finish() {
	if a.finished {
		return
	}
	a.finished = true
	a.running = false
	for _, l := range a.listeners {
		l.OnEnd()
	}
}

func (a *fyneAnimation) Cancel() {
	if a.finished {
		return
	}
	if a.anim != nil {
		a.anim.Stop()
	}
	a.finished = true
	a.running = false
	for _, l := range a.listeners {
		l.OnCancel()
	}
}

func (a *fyneAnimation) Pause() {
	if a.finished || !a.running {
		return
	}
	if a.anim != nil {
		a.anim.Stop()
	}
	a.running = false
	for _, l := range a.listeners {
		l.OnPause()
	}
}

func (a *fyneAnimation) Resume() {
	if a.finished || a.running {
		return
	}
	a.running = true
	for _, l := range a.listeners {
		l.OnResume()
	}
	a.startFrom(a.progress)
}
