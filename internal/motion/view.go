package motion

import "fyne.io/fyne/v2"

// View is the minimal surface the tracker needs from a movable object:
// reading and writing its 2D translation. Implementations must be comparable
// (pointer types) so they can serve as anchor identities.
type View interface {
	Translation() Offset
	SetTranslation(Offset)
}

// CanvasView adapts a Fyne canvas object to the View interface. The object's
// position at wrap time becomes the layout base; the translation is the
// offset moved relative to that base.
type CanvasView struct {
	obj  fyne.CanvasObject
	base fyne.Position
}

// NewCanvasView wraps obj, taking its current position as translation zero.
func NewCanvasView(obj fyne.CanvasObject) *CanvasView {
	return &CanvasView{obj: obj, base: obj.Position()}
}

// Translation returns the current offset from the layout base.
func (v *CanvasView) Translation() Offset {
	pos := v.obj.Position()
	return Offset{X: pos.X - v.base.X, Y: pos.Y - v.base.Y}
}

// SetTranslation moves the object to base plus the given offset.
func (v *CanvasView) SetTranslation(o Offset) {
	v.obj.Move(fyne.NewPos(v.base.X+o.X, v.base.Y+o.Y))
}

// Object returns the wrapped canvas object.
func (v *CanvasView) Object() fyne.CanvasObject {
	return v.obj
}

// BasePosition returns the layout base as an absolute point, rounded. It is
// the usual viewPos argument for Tracker.Begin.
func (v *CanvasView) BasePosition() Point {
	return Point{X: round(v.base.X), Y: round(v.base.Y)}
}

// Rebase makes the object's current position the new translation zero.
func (v *CanvasView) Rebase() {
	v.base = v.obj.Position()
}
