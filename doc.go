// Package statespace is a small toolkit for classic state-space search:
// uninformed and informed search over any comparable state type, plus
// constraint satisfaction by backtracking.
//
// 🚀 What is statespace?
//
//	A generic, dependency-light library that brings together:
//		• Frontiers: LIFO stack, FIFO queue, min-priority queue with FIFO ties
//		• Search: depth-first, breadth-first and A* with parent-chained nodes
//		• CSP: variables, domains, constraints and backtracking search
//		• Puzzles: grid mazes, missionaries & cannibals, the US city network,
//		  map colouring and N-queens
//
// ✨ Why choose statespace?
//
//   - Any comparable type is a state - no interfaces to implement
//   - Deterministic - successor order and tie-breaking fully decide the result
//   - Hooks - WithOnExpand observes every expansion without touching the search
//
// Packages:
//
//	frontier/     - Stack, Queue and PriorityQueue behind one Frontier interface
//	search/       - DepthFirst, BreadthFirst, AStar, Node, NodeToPath, membership helpers
//	csp/          - generic CSP with BacktrackingSearch; Australia and Queens problems
//	maze/         - random or parsed grid mazes with Euclidean/Manhattan heuristics
//	missionaries/ - the river-crossing puzzle as a search state
//	graph/        - thread-safe undirected adjacency-list graph and USCities
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	BreadthFirst from A to C returns [A B C]; every node remembers its parent.
//
// The statespace command (cmd/statespace) runs each puzzle from the terminal:
//
//	go install github.com/katalvlaran/statespace/cmd/statespace@latest
//	statespace maze --algo astar
package statespace
