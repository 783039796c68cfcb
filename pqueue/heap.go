package pqueue

import "container/heap"

// Heap is the binary-heap backing of Queue, built on container/heap.
// Push and Pop are O(log n). Each entry carries an insertion sequence
// number used as a secondary ordering key, so equal-priority entries pop
// FIFO exactly like the List backing.
type Heap[T any] struct {
	h   entryHeap[T]
	seq uint64
}

// NewHeap returns an empty Heap-backed queue.
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{}
}

// Push inserts item with the given priority. O(log n).
func (q *Heap[T]) Push(item T, priority float64) {
	heap.Push(&q.h, entry[T]{item: item, prio: priority, seq: q.seq})
	q.seq++
}

// Pop removes and returns the minimum-priority entry. O(log n).
func (q *Heap[T]) Pop() (T, float64, bool) {
	if q.h.Len() == 0 {
		var zero T

		return zero, 0, false
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.item, e.prio, true
}

// Len returns the number of entries. O(1).
func (q *Heap[T]) Len() int { return q.h.Len() }

// entryHeap adapts []entry to heap.Interface with (priority, seq) ordering.
type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].prio != h[j].prio {
		return h[i].prio < h[j].prio
	}

	// Equal priorities: earlier insertion wins, matching List's strict-<
	// linear scan.
	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x interface{}) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
