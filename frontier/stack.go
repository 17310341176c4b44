package frontier

// Stack is a last-in, first-out container.
// The zero value is an empty stack ready for use.
type Stack[E any] struct {
	items []E
}

// NewStack returns an empty Stack.
func NewStack[E any]() *Stack[E] {
	return &Stack[E]{}
}

// Push appends e on top of the stack.
func (s *Stack[E]) Push(e E) {
	s.items = append(s.items, e)
}

// Pop removes and returns the most recently pushed element.
func (s *Stack[E]) Pop() (E, bool) {
	var zero E
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	e := s.items[n-1]
	s.items[n-1] = zero // release reference
	s.items = s.items[:n-1]

	return e, true
}

// Peek returns the top element without removing it.
func (s *Stack[E]) Peek() (E, bool) {
	if len(s.items) == 0 {
		var zero E
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Empty reports whether the stack holds no elements.
func (s *Stack[E]) Empty() bool { return len(s.items) == 0 }

// Len returns the number of elements on the stack.
func (s *Stack[E]) Len() int { return len(s.items) }
