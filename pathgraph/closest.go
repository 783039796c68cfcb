package pathgraph

import "github.com/katalvlaran/curvenav/geom"

// Closest returns the arena index of the node nearest to pos by Euclidean
// distance. Ties resolve deterministically to the first node in creation
// order: the scan uses a strict < comparison, so an equally distant later
// node never displaces an earlier one.
//
// ok is false on an empty graph; there is no sentinel node.
//
// Complexity: O(P) over all nodes. Distances are compared squared, so no
// square root is taken.
func (g *Graph) Closest(pos geom.Vec3) (int, bool) {
	if len(g.nodes) == 0 {
		return 0, false
	}

	best := 0
	bestSq := g.nodes[0].Pos.DistSq(pos)
	var dSq float64
	for i := 1; i < len(g.nodes); i++ {
		dSq = g.nodes[i].Pos.DistSq(pos)
		if dSq < bestSq {
			best = i
			bestSq = dSq
		}
	}

	return best, true
}

// ClosestNode is Closest resolved to the node itself. The returned Node is
// a copy whose Edges slice is shared with the graph; treat it as read-only.
func (g *Graph) ClosestNode(pos geom.Vec3) (Node, bool) {
	i, ok := g.Closest(pos)
	if !ok {
		return Node{}, false
	}

	return g.nodes[i], true
}
