package pathgraph

import (
	"fmt"

	"github.com/katalvlaran/curvenav/geom"
)

// Build reads every curve of src once and constructs the waypoint Graph:
// one node per knot, symmetric distance-cost edges between adjacent knots
// of each curve, and zero-cost junction edges in both directions between
// every pair of distinct nodes at the same position.
//
// An empty source (zero curves, or curves with zero knots) is valid and
// yields an empty Graph. A nil source returns ErrNilSource; a knot with a
// NaN or infinite coordinate returns ErrBadPosition wrapped with the
// offending (curve, point).
//
// Complexity: O(P) time for nodes and sequential edges over P total knots;
// junction detection is O(P) expected via position buckets plus O(k²) per
// junction of k coincident knots. Memory: O(P + E).
func Build(src CurveSource, opts ...BuildOption) (*Graph, error) {
	// 1) Resolve options.
	cfg := defaultBuildOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the collaborator itself.
	if src == nil {
		return nil, ErrNilSource
	}

	// 3) Snapshot the source into the node arena, curve-major then
	//    point-minor, so arena order is the creation order every query
	//    tie-break is defined against. Negative counts are treated as
	//    empty rather than rejected.
	g := &Graph{index: make(map[NodeID]int)}
	curves := src.CurveCount()
	var c, k, points int
	var pos geom.Vec3
	for c = 0; c < curves; c++ {
		points = src.PointCount(c)
		for k = 0; k < points; k++ {
			pos = src.PointPosition(c, k)
			if !pos.IsFinite() {
				return nil, fmt.Errorf("%w: curve %d point %d", ErrBadPosition, c, k)
			}
			id := NodeID{Curve: c, Point: k}
			g.index[id] = len(g.nodes)
			g.nodes = append(g.nodes, Node{ID: id, Pos: pos})
		}
	}

	// 4) Sequential edges: each adjacent knot pair of a curve gets a
	//    bidirectional edge pair costing the Euclidean segment length.
	//    Arena indices of one curve are contiguous, so (i, i+1) within the
	//    curve are adjacent in the arena as well.
	var i, j int
	var cost float64
	for i = 0; i < len(g.nodes); i++ {
		j = i + 1
		if j >= len(g.nodes) || g.nodes[j].ID.Curve != g.nodes[i].ID.Curve {
			continue // last knot of its curve
		}
		cost = g.nodes[i].Pos.Dist(g.nodes[j].Pos)
		g.nodes[i].Edges = append(g.nodes[i].Edges, Edge{To: j, Cost: cost})
		g.nodes[j].Edges = append(g.nodes[j].Edges, Edge{To: i, Cost: cost})
	}

	// 5) Junction edges: link every pair of distinct nodes sharing a
	//    position with zero-cost edges in both directions. Nodes are
	//    bucketed by position first, so only true coincidences are
	//    pairwise-linked.
	g.linkJunctions(cfg)

	return g, nil
}

// linkJunctions groups arena nodes into position buckets and links each
// bucket's members pairwise with zero-cost edges, both directions.
//
// With the default exact matching the bucket key is the position itself,
// which detects exactly the junctions an all-pairs equality scan would.
// With a junction tolerance the key is the quantized grid cell.
//
// Edges are appended in arena order on both ends, so rebuilding from an
// unchanged source reproduces identical edge lists.
func (g *Graph) linkJunctions(cfg buildOptions) {
	if len(g.nodes) < 2 {
		return
	}

	// 1) Compute each node's bucket key and group arena indices by key.
	//    Bucket member lists inherit arena order.
	keys := make([]interface{}, len(g.nodes))
	buckets := make(map[interface{}][]int, len(g.nodes))
	for i := range g.nodes {
		if cfg.junctionTol > 0 {
			keys[i] = geom.Quantize(g.nodes[i].Pos, cfg.junctionTol)
		} else {
			keys[i] = g.nodes[i].Pos
		}
		buckets[keys[i]] = append(buckets[keys[i]], i)
	}

	// 2) Walk the arena in order; each node links to every other member of
	//    its bucket. A junction of k knots contributes k·(k−1) directed
	//    zero-cost edges overall.
	for a := range g.nodes {
		members := buckets[keys[a]]
		if len(members) < 2 {
			continue
		}
		for _, b := range members {
			if b == a {
				continue
			}
			g.nodes[a].Edges = append(g.nodes[a].Edges, Edge{To: b, Cost: 0})
		}
	}
}
