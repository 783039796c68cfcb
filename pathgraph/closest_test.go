package pathgraph_test

import (
	"testing"

	"github.com/katalvlaran/curvenav/geom"
	"github.com/katalvlaran/curvenav/pathgraph"
)

// TestClosest_NearestWins verifies the true Euclidean-nearest node is
// returned, across curves and in full 3D.
func TestClosest_NearestWins(t *testing.T) {
	src := pathgraph.Polylines{
		{v(0, 0, 0), v(10, 0, 0)},
		{v(0, 10, 0), v(0, 10, 10)},
	}
	g, err := pathgraph.Build(src)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	cases := []struct {
		name  string
		query geom.Vec3
		want  pathgraph.NodeID
	}{
		{"NearOrigin", v(1, 1, 0), pathgraph.NodeID{Curve: 0, Point: 0}},
		{"NearFarEnd", v(9, -2, 0), pathgraph.NodeID{Curve: 0, Point: 1}},
		{"NearSecondCurve", v(0, 9, 1), pathgraph.NodeID{Curve: 1, Point: 0}},
		{"HighAboveSecondCurve", v(1, 10, 12), pathgraph.NodeID{Curve: 1, Point: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			i, ok := g.Closest(tc.query)
			if !ok {
				t.Fatal("Closest reported no result on a populated graph")
			}
			if got := g.ID(i); got != tc.want {
				t.Errorf("Closest(%v) = %v; want %v", tc.query, got, tc.want)
			}
		})
	}
}

// TestClosest_TieBreakCreationOrder places two nodes equidistant from the
// query and requires the first-created one. The contract is a strict-<
// scan in arena (creation) order, not incidental container ordering.
func TestClosest_TieBreakCreationOrder(t *testing.T) {
	src := pathgraph.Polylines{
		{v(-1, 0, 0), v(-5, 0, 0)}, // node 0 at distance 1 from origin
		{v(1, 0, 0), v(5, 0, 0)},   // node 2 also at distance 1
	}
	g, err := pathgraph.Build(src)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	i, ok := g.Closest(v(0, 0, 0))
	if !ok {
		t.Fatal("Closest reported no result")
	}
	if want := (pathgraph.NodeID{Curve: 0, Point: 0}); g.ID(i) != want {
		t.Errorf("tie resolved to %v; want first-created %v", g.ID(i), want)
	}
}

// TestClosest_EmptyGraph verifies the no-result contract on zero nodes.
func TestClosest_EmptyGraph(t *testing.T) {
	g, err := pathgraph.Build(pathgraph.Polylines{})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if _, ok := g.Closest(v(0, 0, 0)); ok {
		t.Error("Closest on empty graph returned ok=true")
	}
	if _, ok := g.ClosestNode(v(0, 0, 0)); ok {
		t.Error("ClosestNode on empty graph returned ok=true")
	}
}

// TestClosest_ExactHit verifies a query exactly on a node returns it.
func TestClosest_ExactHit(t *testing.T) {
	src := pathgraph.Polylines{{v(0, 0, 0), v(3, 4, 0), v(6, 8, 0)}}
	g, err := pathgraph.Build(src)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	n, ok := g.ClosestNode(v(3, 4, 0))
	if !ok {
		t.Fatal("ClosestNode reported no result")
	}
	if want := (pathgraph.NodeID{Curve: 0, Point: 1}); n.ID != want {
		t.Errorf("ClosestNode = %v; want %v", n.ID, want)
	}
}
