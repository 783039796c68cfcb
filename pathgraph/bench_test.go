package pathgraph_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/curvenav/geom"
	"github.com/katalvlaran/curvenav/pathgraph"
)

// gridCurves authors n horizontal and n vertical polylines of n knots each
// on an integer lattice, so every crossing is a junction of two knots.
func gridCurves(n int) pathgraph.Polylines {
	curves := make(pathgraph.Polylines, 0, 2*n)
	for r := 0; r < n; r++ {
		row := make([]geom.Vec3, n)
		col := make([]geom.Vec3, n)
		for c := 0; c < n; c++ {
			row[c] = geom.Vec3{X: float64(c), Y: float64(r)}
			col[c] = geom.Vec3{X: float64(r), Y: float64(c)}
		}
		curves = append(curves, row, col)
	}

	return curves
}

// BenchmarkBuild measures construction cost, junction bucketing included,
// for lattices of growing size.
func BenchmarkBuild(b *testing.B) {
	for _, n := range []int{8, 16, 32} {
		curves := gridCurves(n)
		b.Run(fmt.Sprintf("Lattice%dx%d", n, n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := pathgraph.Build(curves); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkClosest measures the linear nearest-node scan.
func BenchmarkClosest(b *testing.B) {
	g, err := pathgraph.Build(gridCurves(32))
	if err != nil {
		b.Fatal(err)
	}
	q := geom.Vec3{X: 13.7, Y: 21.2, Z: 0.4}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := g.Closest(q); !ok {
			b.Fatal("no result")
		}
	}
}
