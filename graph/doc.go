// Package graph provides an index-based, undirected graph over any comparable
// vertex type, shaped to feed package search.
//
// Vertices live in insertion order; each is addressed by its index. Every
// edge is stored twice, once in each direction, so neighbour lists are
// symmetric. NeighborsForVertex has exactly the search.Successors signature:
//
//	g := graph.USCities()
//	n := search.BreadthFirst("Boston", func(c string) bool { return c == "Miami" }, g.NeighborsForVertex)
//	fmt.Println(search.NodeToPath(n)) // [Boston Detroit Washington Miami]
//
// Neighbour order is edge insertion order, which keeps searches over the graph
// deterministic.
//
// Errors:
//
//   - ErrVertexNotFound: an edge endpoint is not a vertex of the graph.
//   - ErrIndexOutOfRange: an edge endpoint index is outside [0, VertexCount).
//
// All methods are safe for concurrent use.
package graph
