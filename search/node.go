package search

import "slices"

// Node links a state to the node it was generated from, together with the
// accumulated path cost and the heuristic estimate at that state.
//
// Nodes are immutable once built. A node never owns its parent; many nodes may
// share one parent, and following parents always ends at the root.
type Node[T comparable] struct {
	state     T
	parent    *Node[T]
	cost      float64
	heuristic float64
}

// NewNode builds a node for state reached from parent (nil for the root).
// cost is the cumulative cost from the root; heuristic the remaining estimate.
func NewNode[T comparable](state T, parent *Node[T], cost, heuristic float64) *Node[T] {
	return &Node[T]{state: state, parent: parent, cost: cost, heuristic: heuristic}
}

// State returns the node's state.
func (n *Node[T]) State() T { return n.state }

// Parent returns the generating node, or nil for the root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// Cost returns the cumulative cost from the root. Zero in uninformed search.
func (n *Node[T]) Cost() float64 { return n.cost }

// Heuristic returns the estimated remaining cost. Zero in uninformed search.
func (n *Node[T]) Heuristic() float64 { return n.heuristic }

// Priority returns Cost+Heuristic, the A* ordering key.
func (n *Node[T]) Priority() float64 { return n.cost + n.heuristic }

// Depth returns the number of edges between n and the root.
func (n *Node[T]) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}

	return d
}

// NodeToPath walks parent links from node back to the root and returns the
// states in start → node order, both ends included. A nil node yields nil.
func NodeToPath[T comparable](node *Node[T]) []T {
	if node == nil {
		return nil
	}
	path := []T{node.state}
	for cur := node.parent; cur != nil; cur = cur.parent {
		path = append(path, cur.state)
	}
	slices.Reverse(path)

	return path
}
