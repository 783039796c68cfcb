// Package pqueue provides a minimal generic min-priority queue used as the
// frontier of the shortest-path solver.
//
// The contract is deliberately small — three operations:
//
//	Push(item, priority)            insert an entry
//	Pop() (item, priority, ok)      remove and return the minimum-priority entry
//	Len() int                       number of entries
//
// There is no decrease-key. Callers that need to lower an item's priority
// push a duplicate entry and ignore the stale one when it surfaces (the
// “lazy decrease-key” pattern used by pathfind).
//
// Two interchangeable backings implement the contract:
//
//   - List — an unsorted dense slice. Push is O(1); Pop linear-scans for the
//     minimum, O(n). The simplest correct implementation; the right choice
//     for the small frontiers typical of waypoint graphs.
//   - Heap — a binary heap over container/heap. Push and Pop are O(log n);
//     the drop-in upgrade once frontier sizes grow.
//
// Determinism: both backings break priority ties by insertion order (FIFO),
// so swapping one for the other never changes which entry Pop returns.
//
// Queues are not safe for concurrent use.
package pqueue
