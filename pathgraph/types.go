// Package pathgraph defines the waypoint-graph data model, the curve-source
// collaborator contract, build options, and sentinel errors.
package pathgraph

import (
	"errors"
	"math"

	"github.com/katalvlaran/curvenav/geom"
)

// Sentinel errors for graph construction.
var (
	// ErrNilSource indicates Build was called with a nil CurveSource.
	// This is a programming error in the caller, not a data condition.
	ErrNilSource = errors.New("pathgraph: curve source is nil")

	// ErrBadPosition indicates a curve knot with a NaN or infinite
	// coordinate. All edge costs must be finite and non-negative, so such
	// input is rejected at build time.
	ErrBadPosition = errors.New("pathgraph: knot position is not finite")

	// ErrBadTolerance indicates WithJunctionTolerance was given a zero,
	// negative, or non-finite value.
	ErrBadTolerance = errors.New("pathgraph: junction tolerance must be positive and finite")
)

// CurveSource is the collaborator contract for whatever authors the curves:
// an ordered collection of curves, each an ordered list of 3D knots.
// Build reads it exactly once, synchronously, and retains no reference.
type CurveSource interface {
	// CurveCount returns the number of curves.
	CurveCount() int

	// PointCount returns the number of knots in the given curve.
	PointCount(curve int) int

	// PointPosition returns the position of one knot.
	// Called only with 0 ≤ curve < CurveCount() and 0 ≤ point < PointCount(curve).
	PointPosition(curve, point int) geom.Vec3
}

// NodeID is the stable identity of a node: which curve it came from and the
// knot's index within that curve. IDs are assigned at build time and never
// collide within one Graph.
type NodeID struct {
	Curve, Point int
}

// Edge is a directed, weighted connection to another node. The target is
// referenced by arena index, never by pointer; resolve it through the
// owning Graph. Cost is always ≥ 0: the Euclidean length of a curve
// segment, or 0 for a junction hop.
type Edge struct {
	To   int
	Cost float64
}

// Node is one graph vertex: a single curve knot with its outgoing edges.
// Nodes live in the Graph's arena; treat them as read-only after Build.
type Node struct {
	ID    NodeID
	Pos   geom.Vec3
	Edges []Edge
}

// Graph owns every Node of one build in a dense arena, in creation order
// (curve-major, point-minor), plus an identity index for NodeID lookup.
// A Graph is immutable once returned by Build: concurrent read-only queries
// are safe without locking, and a rebuild replaces the whole value.
type Graph struct {
	nodes []Node
	index map[NodeID]int
}

// BuildOption customizes Build.
type BuildOption func(*buildOptions)

// buildOptions holds resolved build configuration.
// junctionTol == 0 means exact position matching (the default).
type buildOptions struct {
	junctionTol float64
}

// WithJunctionTolerance switches junction detection from exact position
// equality to quantized-grid bucketing with the given cell size: knots
// whose positions fall into the same grid cell are linked as a junction.
// Use this when the authoring tool cannot guarantee bit-identical endpoint
// coordinates. Knots within tol of each other but straddling a cell
// boundary are not matched; pick tol comfortably larger than the expected
// jitter.
//
// tol must be positive and finite; invalid values panic with
// ErrBadTolerance (misconfiguration, detected at the call site).
func WithJunctionTolerance(tol float64) BuildOption {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(ErrBadTolerance.Error())
	}

	return func(o *buildOptions) {
		o.junctionTol = tol
	}
}

// defaultBuildOptions returns the default configuration: exact junction
// matching, no tolerance.
func defaultBuildOptions() buildOptions {
	return buildOptions{junctionTol: 0}
}
