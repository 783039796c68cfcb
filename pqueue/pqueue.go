package pqueue

// Queue is a min-priority queue over items of type T. Lower priority values
// are popped first; entries with equal priority are popped in insertion
// order. Duplicate items at different priorities are permitted.
type Queue[T any] interface {
	// Push inserts item with the given priority.
	Push(item T, priority float64)

	// Pop removes and returns the entry with the smallest priority.
	// ok is false when the queue is empty; item and priority are then
	// zero values.
	Pop() (item T, priority float64, ok bool)

	// Len returns the number of entries currently in the queue.
	Len() int
}

// entry is one (item, priority) pair. seq is the global insertion counter
// used by the heap backing to keep equal-priority pops FIFO.
type entry[T any] struct {
	item T
	prio float64
	seq  uint64
}

// List is the unsorted-slice backing of Queue.
//
// Push appends in O(1). Pop scans the slice for the minimum priority with a
// strict < comparison, so among equal priorities the earliest-pushed entry
// wins, then removes it while preserving the order of the remainder.
// Pop is O(n).
type List[T any] struct {
	entries []entry[T]
}

// NewList returns an empty List-backed queue.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Push inserts item with the given priority. O(1) amortized.
func (q *List[T]) Push(item T, priority float64) {
	q.entries = append(q.entries, entry[T]{item: item, prio: priority})
}

// Pop removes and returns the minimum-priority entry. O(n).
func (q *List[T]) Pop() (T, float64, bool) {
	if len(q.entries) == 0 {
		var zero T

		return zero, 0, false
	}

	// 1) Locate the minimum. Strict < keeps the first of any equal run.
	best := 0
	for i := 1; i < len(q.entries); i++ {
		if q.entries[i].prio < q.entries[best].prio {
			best = i
		}
	}

	// 2) Remove it, preserving insertion order of the remaining entries so
	//    subsequent ties still resolve FIFO.
	e := q.entries[best]
	q.entries = append(q.entries[:best], q.entries[best+1:]...)

	return e.item, e.prio, true
}

// Len returns the number of entries. O(1).
func (q *List[T]) Len() int { return len(q.entries) }
