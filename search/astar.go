package search

import "github.com/katalvlaran/statespace/frontier"

// AStar searches from start with a priority frontier ordered by
// Cost+Heuristic and returns the first node popped whose state satisfies goal,
// or nil if the goal is unreachable.
//
// Transition costs come from WithEdgeCost and default to 1. For every child
// the candidate cost is current.Cost + EdgeCost(current, child); the child is
// pushed only if it has no recorded best cost yet or the candidate improves it.
// Superseded entries left in the frontier are skipped when popped.
//
// If heuristic is admissible (never overestimates) and consistent (never drops
// by more than the edge cost along an edge), the returned node carries the
// minimum achievable cost to any goal state. Ties on Cost+Heuristic are
// resolved in push order.
func AStar[T comparable](start T, goal GoalTest[T], successors Successors[T], heuristic Heuristic[T], opts ...Option[T]) *Node[T] {
	o := buildOptions(opts)

	pq := frontier.NewPriorityQueue[*Node[T]]((*Node[T]).Priority)
	pq.Push(NewNode(start, nil, 0, heuristic(start)))
	bestCost := map[T]float64{start: 0}

	for !pq.Empty() {
		current, _ := pq.Pop()
		state := current.state
		if current.cost > bestCost[state] {
			// stale: a cheaper node for this state was pushed later
			continue
		}

		o.OnExpand(current)
		if goal(state) {
			return current
		}

		for _, child := range successors(state) {
			newCost := current.cost + o.EdgeCost(state, child)
			if known, ok := bestCost[child]; ok && newCost >= known {
				continue
			}
			bestCost[child] = newCost
			pq.Push(NewNode(child, current, newCost, heuristic(child)))
		}
	}

	return nil
}
