package search

// GoalTest reports whether state is a goal.
type GoalTest[T comparable] func(state T) bool

// Successors returns the states reachable from state in one transition.
// The order of the returned slice drives the order of exploration.
type Successors[T comparable] func(state T) []T

// Heuristic estimates the remaining cost from state to the nearest goal.
// It must never be negative.
type Heuristic[T comparable] func(state T) float64

// EdgeCost returns the cost of the transition from → to.
// It must never be negative.
type EdgeCost[T comparable] func(from, to T) float64

// Option configures a search call via functional arguments.
type Option[T comparable] func(*Options[T])

// Options holds the tunables shared by all drivers.
type Options[T comparable] struct {
	// EdgeCost prices each transition. Only AStar reads it.
	EdgeCost EdgeCost[T]

	// OnExpand is called for every node popped from the frontier, before the
	// goal test runs on it.
	OnExpand func(n *Node[T])
}

// DefaultOptions returns Options with:
//   - unit edge cost (every transition costs 1)
//   - a no-op OnExpand hook
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		EdgeCost: UnitCost[T],
		OnExpand: func(*Node[T]) {},
	}
}

// WithEdgeCost sets the transition cost used by AStar.
// A nil fn keeps the unit cost.
func WithEdgeCost[T comparable](fn EdgeCost[T]) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.EdgeCost = fn
		}
	}
}

// WithOnExpand registers a hook run for each expanded node.
func WithOnExpand[T comparable](fn func(n *Node[T])) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// UnitCost prices every transition at 1.
func UnitCost[T comparable](_, _ T) float64 { return 1 }

func buildOptions[T comparable](opts []Option[T]) Options[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
