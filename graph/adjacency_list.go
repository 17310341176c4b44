package graph

import (
	"fmt"
	"slices"
	"strings"
)

// New creates a graph holding vertices in the given order, with no edges.
// A repeated vertex value keeps its first index.
func New[V comparable](vertices ...V) *Graph[V] {
	g := &Graph[V]{
		vertices: make([]V, 0, len(vertices)),
		index:    make(map[V]int, len(vertices)),
		edges:    make([][]Edge, 0, len(vertices)),
	}
	for _, v := range vertices {
		g.addVertex(v)
	}

	return g
}

// VertexCount returns the number of vertices.
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of stored directed edges; each undirected
// edge counts twice.
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, es := range g.edges {
		n += len(es)
	}
	return n
}

// AddVertex appends v and returns its index. If v is already present its
// existing index is returned.
func (g *Graph[V]) AddVertex(v V) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertex(v)
}

func (g *Graph[V]) addVertex(v V) int {
	if i, ok := g.index[v]; ok {
		return i
	}
	g.vertices = append(g.vertices, v)
	g.edges = append(g.edges, nil)
	g.index[v] = len(g.vertices) - 1

	return len(g.vertices) - 1
}

// AddEdge stores e and its reverse.
func (g *Graph[V]) AddEdge(e Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.vertices)
	if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
		return fmt.Errorf("%w: %v with %d vertices", ErrIndexOutOfRange, e, n)
	}
	g.edges[e.U] = append(g.edges[e.U], e)
	g.edges[e.V] = append(g.edges[e.V], e.Reversed())

	return nil
}

// AddEdgeByIndices connects the vertices at indices u and v.
func (g *Graph[V]) AddEdgeByIndices(u, v int) error {
	return g.AddEdge(Edge{U: u, V: v})
}

// AddEdgeByVertices connects first and second, both of which must already be
// in the graph.
func (g *Graph[V]) AddEdgeByVertices(first, second V) error {
	u := g.IndexOf(first)
	if u < 0 {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, first)
	}
	v := g.IndexOf(second)
	if v < 0 {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, second)
	}

	return g.AddEdgeByIndices(u, v)
}

// VertexAt returns the vertex at index. It panics if index is out of range,
// like a slice access.
func (g *Graph[V]) VertexAt(index int) V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices[index]
}

// IndexOf returns the index of vertex, or -1 if it is not in the graph.
func (g *Graph[V]) IndexOf(vertex V) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i, ok := g.index[vertex]; ok {
		return i
	}
	return -1
}

// Vertices returns a copy of the vertices in index order.
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.vertices)
}

// NeighborsForIndex returns the vertices adjacent to the vertex at index, in
// edge insertion order. An out-of-range index yields nil.
func (g *Graph[V]) NeighborsForIndex(index int) []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if index < 0 || index >= len(g.edges) {
		return nil
	}
	out := make([]V, 0, len(g.edges[index]))
	for _, e := range g.edges[index] {
		out = append(out, g.vertices[e.V])
	}
	return out
}

// NeighborsForVertex returns the vertices adjacent to vertex. A vertex not in
// the graph has no neighbours.
func (g *Graph[V]) NeighborsForVertex(vertex V) []V {
	return g.NeighborsForIndex(g.IndexOf(vertex))
}

// EdgesForIndex returns a copy of the edges leaving the vertex at index.
func (g *Graph[V]) EdgesForIndex(index int) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if index < 0 || index >= len(g.edges) {
		return nil
	}
	return slices.Clone(g.edges[index])
}

// EdgesForVertex returns a copy of the edges leaving vertex.
func (g *Graph[V]) EdgesForVertex(vertex V) []Edge {
	return g.EdgesForIndex(g.IndexOf(vertex))
}

// String lists each vertex followed by its neighbours, one vertex per line.
func (g *Graph[V]) String() string {
	var b strings.Builder
	for i := 0; i < g.VertexCount(); i++ {
		fmt.Fprintf(&b, "%v -> %v\n", g.VertexAt(i), g.NeighborsForIndex(i))
	}
	return b.String()
}
