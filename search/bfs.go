package search

import "github.com/katalvlaran/statespace/frontier"

// BreadthFirst searches from start using a FIFO frontier and returns the
// first node whose state satisfies goal, or nil if the goal is unreachable.
//
// Nodes are expanded in non-decreasing depth, so with unit edge costs the
// returned node is reached by a path with the fewest possible edges.
// A state is marked explored the moment it is first generated and is never
// queued twice.
func BreadthFirst[T comparable](start T, goal GoalTest[T], successors Successors[T], opts ...Option[T]) *Node[T] {
	o := buildOptions(opts)

	queue := frontier.NewQueue[*Node[T]]()
	queue.Push(NewNode(start, nil, 0, 0))
	explored := map[T]struct{}{start: {}}

	for !queue.Empty() {
		current, _ := queue.Pop()
		o.OnExpand(current)
		if goal(current.state) {
			return current
		}

		for _, child := range successors(current.state) {
			if _, seen := explored[child]; seen {
				continue
			}
			explored[child] = struct{}{}
			queue.Push(NewNode(child, current, 0, 0))
		}
	}

	return nil
}
