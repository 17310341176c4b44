package frontier

import "container/heap"

// PriorityFunc returns the ordering key of an element. Smaller keys are
// popped first.
type PriorityFunc[E any] func(E) float64

// PriorityQueue pops elements in ascending priority. Elements with equal
// priority are popped in the order they were pushed.
type PriorityQueue[E any] struct {
	h   entryHeap[E]
	key PriorityFunc[E]
	seq uint64 // next insertion sequence number
}

// NewPriorityQueue returns an empty PriorityQueue ordered by key.
// The key of an element is computed once, when it is pushed.
func NewPriorityQueue[E any](key PriorityFunc[E]) *PriorityQueue[E] {
	return &PriorityQueue[E]{key: key}
}

// Push inserts e, keeping the heap ordered.
func (pq *PriorityQueue[E]) Push(e E) {
	heap.Push(&pq.h, entry[E]{item: e, priority: pq.key(e), seq: pq.seq})
	pq.seq++
}

// Pop removes and returns the element with the smallest priority.
func (pq *PriorityQueue[E]) Pop() (E, bool) {
	if pq.h.Len() == 0 {
		var zero E
		return zero, false
	}

	return heap.Pop(&pq.h).(entry[E]).item, true
}

// Peek returns the element Pop would return, without removing it.
func (pq *PriorityQueue[E]) Peek() (E, bool) {
	if pq.h.Len() == 0 {
		var zero E
		return zero, false
	}

	return pq.h[0].item, true
}

// Empty reports whether the queue holds no elements.
func (pq *PriorityQueue[E]) Empty() bool { return pq.h.Len() == 0 }

// Len returns the number of elements in the queue.
func (pq *PriorityQueue[E]) Len() int { return pq.h.Len() }

// entry pairs an element with its cached priority and insertion sequence.
type entry[E any] struct {
	item     E
	priority float64
	seq      uint64
}

// entryHeap is a min-heap of entries ordered by (priority, seq).
type entryHeap[E any] []entry[E]

func (h entryHeap[E]) Len() int { return len(h) }

func (h entryHeap[E]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[E]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[E]) Push(x any) { *h = append(*h, x.(entry[E])) }

func (h *entryHeap[E]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[E]{}
	*h = old[:n-1]

	return e
}
