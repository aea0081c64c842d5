package motion

import "math"

// Offset is a 2D translation applied to a view's rendered position relative
// to its layout position.
type Offset struct {
	X, Y float32
}

// Point is an integer position in absolute (window) coordinates.
type Point struct {
	X, Y int
}

// Path is a straight-line motion between two translation offsets.
type Path struct {
	Start Offset
	End   Offset
}

// Line builds a path from start to end.
func Line(start, end Offset) Path {
	return Path{Start: start, End: end}
}

// At returns the interpolated offset for progress p in [0, 1].
func (p Path) At(progress float32) Offset {
	return Offset{
		X: p.Start.X + (p.End.X-p.Start.X)*progress,
		Y: p.Start.Y + (p.End.Y-p.Start.Y)*progress,
	}
}

// IsFinite reports whether all path coordinates are finite numbers.
func (p Path) IsFinite() bool {
	return isFinite(p.Start.X) && isFinite(p.Start.Y) &&
		isFinite(p.End.X) && isFinite(p.End.Y)
}

func isFinite(f float32) bool {
	f64 := float64(f)
	return !math.IsNaN(f64) && !math.IsInf(f64, 0)
}

func round(f float32) int {
	return int(math.Round(float64(f)))
}
