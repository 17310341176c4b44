package graph

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for graph mutation.
var (
	// ErrVertexNotFound indicates a vertex value that is not in the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrIndexOutOfRange indicates a vertex index outside the graph.
	ErrIndexOutOfRange = errors.New("graph: vertex index out of range")
)

// Edge connects the vertex at index U to the vertex at index V.
type Edge struct {
	U, V int
}

// Reversed returns the edge pointing the other way.
func (e Edge) Reversed() Edge { return Edge{U: e.V, V: e.U} }

// String formats the edge as "u->v".
func (e Edge) String() string { return fmt.Sprintf("%d->%d", e.U, e.V) }

// Graph is an undirected graph whose vertices are values of type V.
// mu guards vertices and edges.
type Graph[V comparable] struct {
	mu       sync.RWMutex
	vertices []V
	index    map[V]int
	edges    [][]Edge // edges[i] holds the edges leaving vertex i
}
