package search

import "github.com/katalvlaran/statespace/frontier"

// DepthFirst searches from start using a LIFO frontier and returns the first
// node whose state satisfies goal, or nil if the reachable space is exhausted.
//
// Children are explored in the order successors lists them: the first child
// is expanded first and its branch is followed to the end before the next
// sibling is tried. Each state is expanded at most once.
//
// DepthFirst finds some path whenever one exists in a finite state space. It
// makes no claim about path length or cost.
func DepthFirst[T comparable](start T, goal GoalTest[T], successors Successors[T], opts ...Option[T]) *Node[T] {
	o := buildOptions(opts)

	stack := frontier.NewStack[*Node[T]]()
	stack.Push(NewNode(start, nil, 0, 0))
	explored := make(map[T]struct{})

	for !stack.Empty() {
		current, _ := stack.Pop()
		state := current.state
		if _, seen := explored[state]; seen {
			// another branch reached this state first
			continue
		}
		explored[state] = struct{}{}

		o.OnExpand(current)
		if goal(state) {
			return current
		}

		children := successors(state)
		// push in reverse so children[0] sits on top
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			if _, seen := explored[child]; seen {
				continue
			}
			stack.Push(NewNode(child, current, 0, 0))
		}
	}

	return nil
}
