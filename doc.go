// Package curvenav turns authored 3D curves into a weighted waypoint graph
// and answers nearest-node and shortest-path queries over it — the
// navigation backbone for agents that move along hand-placed paths.
//
// 🚀 What is curvenav?
//
//	A small, build-once query-many navigation library:
//		• geom      — the Vec3 value type and quantized junction keys
//		• pathgraph — curve source → immutable waypoint graph, plus
//		              nearest-node snapping
//		• pathfind  — Dijkstra shortest paths with explicit unreachable
//		              and invalid-node outcomes
//		• pqueue    — the generic min-priority frontier (list or heap
//		              backing behind one three-operation contract)
//
// ✨ Why choose curvenav?
//
//   - Deterministic – fixed creation-order tie-breaking in every query,
//     identical results across frontier backings and rebuilds
//   - Honest failure modes – sentinel errors for unreachable goals and
//     unknown nodes, never a degenerate path
//   - Rock-solid after build – the graph is immutable, so concurrent
//     read-only queries need no locks
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example — two curves meeting at a junction J:
//
//	A───────J        curve 0: A → J
//	        │        curve 1: J → B (authored with the same J position)
//	        B
//
// The two J knots stay distinct nodes linked by zero-cost edges, so a path
// from A to B crosses the junction for free.
//
//	go get github.com/katalvlaran/curvenav
package curvenav
