// Package geom defines the small geometric vocabulary shared by the
// curvenav packages: a 3D vector value type and the helpers needed to
// measure segment lengths and detect coincident curve knots.
//
// Design notes:
//
//   - Vec3 is a plain value type (three float64 fields). It is copied, never
//     shared; all methods are pure and allocation-free.
//   - Eq is EXACT component comparison. Junction detection in pathgraph is
//     defined over exact position equality, so two knots form a junction
//     only when their coordinates are bit-identical. Quantize provides the
//     tolerance-based alternative for jittery authoring tools.
//
// Complexity: every function in this package is O(1).
package geom

import "math"

// Vec3 is a point (or displacement) in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns the component-wise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// DistSq returns the squared Euclidean distance between v and o.
// Prefer DistSq over Dist when only comparing distances: it avoids the
// square root and cannot underflow ordering.
func (v Vec3) DistSq(o Vec3) float64 {
	d := v.Sub(o)

	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// Dist returns the Euclidean distance between v and o.
func (v Vec3) Dist(o Vec3) float64 {
	return math.Sqrt(v.DistSq(o))
}

// Eq reports whether v and o are exactly equal, component by component.
// No epsilon is applied; see Quantize for tolerance-based matching.
func (v Vec3) Eq(o Vec3) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// IsFinite reports whether all three components are finite (no NaN, no ±Inf).
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// CellKey identifies one cell of a uniform 3D grid. Two positions share a
// CellKey when they fall into the same cell after quantization.
type CellKey struct {
	X, Y, Z int64
}

// Quantize maps v onto the uniform grid with the given cell size and
// returns the key of the containing cell. cell must be positive and finite;
// callers validate (pathgraph's WithJunctionTolerance option does).
//
// Positions within the same cell quantize to the same key, positions in
// different cells to different keys. Coordinates near a cell boundary may
// land on either side; callers that need boundary-safe matching should
// probe neighboring cells as well.
func Quantize(v Vec3, cell float64) CellKey {
	return CellKey{
		X: int64(math.Floor(v.X / cell)),
		Y: int64(math.Floor(v.Y / cell)),
		Z: int64(math.Floor(v.Z / cell)),
	}
}
