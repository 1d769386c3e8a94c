package physics

import "math"

// Overlaps reports whether two boxes overlap on both axes. Boxes that only
// share an edge do not overlap. The test is symmetric in a and b.
func Overlaps(a, b *Body) bool {
	d := a.Position.Sub(b.Position)
	return math.Abs(d.X) < a.HalfExtent.X+b.HalfExtent.X &&
		math.Abs(d.Y) < a.HalfExtent.Y+b.HalfExtent.Y
}
