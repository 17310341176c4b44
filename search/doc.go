// Package search implements generic state-space search over a caller-supplied
// state type: uninformed depth-first and breadth-first search, and
// heuristic-informed A*.
//
// What
//
//   - DepthFirst:   Stack frontier; finds some path, no optimality guarantee.
//   - BreadthFirst: Queue frontier; finds a path with the fewest edges.
//   - AStar:        PriorityQueue frontier ordered by Cost+Heuristic; finds a
//     minimum-cost path when the heuristic is admissible and consistent.
//   - NodeToPath:   rebuilds the start→goal state sequence from a terminal Node.
//
// The drivers know nothing about the problem domain. The caller supplies:
//
//   - a start state of any comparable type T;
//   - GoalTest[T]    reports whether a state is a goal;
//   - Successors[T]  lists the states reachable in one transition (finite, may be empty);
//   - Heuristic[T]   (AStar only) non-negative estimate of the remaining cost;
//   - EdgeCost[T]    (AStar only, optional via WithEdgeCost) defaults to 1 per edge.
//
// Result
//
//	Each driver returns the terminal *Node[T], or nil when the goal is
//	unreachable. A nil result is a normal outcome, not an error: no driver
//	returns an error or panics.
//
// Determinism
//
//	Given successors that list children in a stable order, every driver is
//	deterministic. AStar breaks ties between equal Cost+Heuristic by the order
//	in which nodes were pushed (earlier first), which decides among several
//	equal-cost optimal paths.
//
// Caller responsibilities
//
//	Inputs are not validated. Negative edge costs or an inadmissible heuristic
//	void AStar's optimality guarantee; an infinite state space without a
//	reachable goal makes every driver run forever. There is no cancellation.
//
// Complexity (V = states reached, E = transitions examined)
//
//   - DepthFirst, BreadthFirst: O(V + E) time, O(V) memory.
//   - AStar:                    O((V + E) log V) time, O(V + E) memory.
package search
