// Package pathfind answers shortest-path queries over a pathgraph.Graph
// using Dijkstra's algorithm.
//
// Overview:
//
//   - FindPath returns the minimum-cost node sequence from start to goal,
//     inclusive of both, together with its total cost. All edge costs in a
//     built graph are non-negative, which is exactly the precondition
//     Dijkstra requires.
//   - The frontier is a pqueue.Queue with no decrease-key: finding a better
//     route to an already-queued node pushes a duplicate entry, and stale
//     entries are skipped when popped (“lazy decrease-key”). A stale pop is
//     a wasted step, never a correctness hazard, because relaxation always
//     compares against the best cost recorded so far.
//   - Every “cannot answer” condition is an explicit sentinel error, never a
//     degenerate path: an unknown start or goal identity is ErrNodeNotFound,
//     and an exhausted frontier is ErrNoPath. In particular FindPath never
//     reports a one-node “path” to a goal it never reached — a disconnected
//     region is an expected, recoverable outcome for the caller.
//
// Determinism: equal-cost frontier entries pop in insertion order on either
// backing, and edge lists are built in a fixed order, so FindPath is a pure
// function of the graph and its arguments. Swapping the List frontier for
// the Heap one (WithHeapFrontier) changes running time only, never the
// returned path.
//
// Complexity with the default List frontier: O(V·F + E) where F is the peak
// frontier size (the linear-scan Pop dominates); with WithHeapFrontier:
// O((V + E) log V). Space: O(V + E).
//
// FindPath runs synchronously to completion on the calling thread; there is
// no cancellation hook. Callers with unbounded graphs should cap the search
// with WithMaxCost or budget externally.
package pathfind
