package pathgraph

import "github.com/katalvlaran/curvenav/geom"

// Len returns the number of nodes in the arena. O(1).
func (g *Graph) Len() int { return len(g.nodes) }

// Lookup resolves a NodeID to its arena index.
// ok is false when the identity is unknown to this graph. O(1).
func (g *Graph) Lookup(id NodeID) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// Has reports whether the identity exists in this graph. O(1).
func (g *Graph) Has(id NodeID) bool {
	_, ok := g.index[id]

	return ok
}

// ID returns the identity of the node at arena index i. O(1).
func (g *Graph) ID(i int) NodeID { return g.nodes[i].ID }

// Pos returns the position of the node at arena index i. O(1).
func (g *Graph) Pos(i int) geom.Vec3 { return g.nodes[i].Pos }

// Edges returns the outgoing edges of the node at arena index i.
// The slice is owned by the graph; callers must not modify it. O(1).
func (g *Graph) Edges(i int) []Edge { return g.nodes[i].Edges }

// NodeAt returns a copy of the node at arena index i. The Edges slice in
// the copy is shared with the graph; treat it as read-only. O(1).
func (g *Graph) NodeAt(i int) Node { return g.nodes[i] }

// Polylines is the simplest CurveSource: an in-memory slice of curves,
// each a slice of knot positions. Useful for tests and for callers that
// already hold their curves as plain point lists.
type Polylines [][]geom.Vec3

// CurveCount returns the number of curves.
func (p Polylines) CurveCount() int { return len(p) }

// PointCount returns the number of knots in curve.
func (p Polylines) PointCount(curve int) int { return len(p[curve]) }

// PointPosition returns the position of one knot.
func (p Polylines) PointPosition(curve, point int) geom.Vec3 { return p[curve][point] }
