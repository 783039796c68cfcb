// Package pathgraph converts authored 3D curves (ordered polylines of
// “knots”) into a weighted waypoint graph and answers nearest-node queries
// over it.
//
// Model:
//
//   - One Node per (curve, point) pair, identified by NodeID and stored in a
//     single dense arena in creation order (curve-major, point-minor).
//     Everything else refers to nodes by arena index.
//   - Adjacent knots of one curve are linked by a symmetric pair of directed
//     edges whose cost is the Euclidean distance between them.
//   - Knots of different (curve, point) keys that occupy exactly the same
//     position form a junction: they stay distinct nodes, linked by
//     zero-cost edges in both directions. No epsilon is applied by default —
//     curves must be authored with coincident endpoints. The
//     WithJunctionTolerance option opts into quantized-grid matching for
//     authoring pipelines with positional jitter.
//
// Lifecycle:
//
//   - Build reads the CurveSource exactly once and returns an immutable
//     Graph. Queries never mutate it, so any number of goroutines may query
//     one Graph concurrently without locking.
//   - There are no partial updates. When the curve set changes, Build a new
//     Graph and swap it in; discard the old one.
//
// Complexity:
//
//   - Build: O(P) for nodes and sequential edges, where P is the total
//     number of knots; junction detection buckets nodes by position, so it
//     is O(P) expected plus O(k²) per junction of k coincident knots.
//   - Closest: O(P) linear scan.
//
// An empty curve source is valid and yields a Graph with zero nodes; all
// queries against it report “no result” rather than failing.
package pathgraph
