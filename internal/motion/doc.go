package motion

// Package motion moves views along straight-line translation paths and keeps
// visual continuity when a transition is interrupted. When a running motion
// is canceled, the view's in-flight position is recorded against an anchor
// view; the next motion targeting the same anchor starts from that recorded
// position instead of jumping to its requested start. The animation engine
// itself sits behind the Driver interface; a Fyne-backed driver is provided.
