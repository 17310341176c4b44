package frontier

// compactThreshold is the number of consumed head slots after which the
// backing slice is compacted.
const compactThreshold = 64

// Queue is a first-in, first-out container.
// The zero value is an empty queue ready for use.
type Queue[E any] struct {
	items []E
	head  int // index of the next element to pop
}

// NewQueue returns an empty Queue.
func NewQueue[E any]() *Queue[E] {
	return &Queue[E]{}
}

// Push appends e at the tail of the queue.
func (q *Queue[E]) Push(e E) {
	q.items = append(q.items, e)
}

// Pop removes and returns the least recently pushed element.
func (q *Queue[E]) Pop() (E, bool) {
	var zero E
	if q.head >= len(q.items) {
		return zero, false
	}
	e := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	// Drop the consumed prefix once it dominates the slice.
	if q.head >= compactThreshold && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return e, true
}

// Peek returns the head element without removing it.
func (q *Queue[E]) Peek() (E, bool) {
	if q.head >= len(q.items) {
		var zero E
		return zero, false
	}

	return q.items[q.head], true
}

// Empty reports whether the queue holds no elements.
func (q *Queue[E]) Empty() bool { return q.head >= len(q.items) }

// Len returns the number of elements in the queue.
func (q *Queue[E]) Len() int { return len(q.items) - q.head }
