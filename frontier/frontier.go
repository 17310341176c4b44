package frontier

// Frontier is the set of elements awaiting expansion.
type Frontier[E any] interface {
	// Push adds e to the container.
	Push(e E)
	// Pop removes and returns the next element according to the container's
	// order. ok is false when the container is empty.
	Pop() (e E, ok bool)
	// Peek returns the element Pop would return without removing it.
	Peek() (e E, ok bool)
	// Empty reports whether the container holds no elements.
	Empty() bool
	// Len returns the number of held elements.
	Len() int
}

var (
	_ Frontier[int] = (*Stack[int])(nil)
	_ Frontier[int] = (*Queue[int])(nil)
	_ Frontier[int] = (*PriorityQueue[int])(nil)
)
