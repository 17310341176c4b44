package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/graph"
	"github.com/katalvlaran/statespace/search"
)

func TestUSCities_Shape(t *testing.T) {
	g := graph.USCities()
	assert.Equal(t, 15, g.VertexCount())
	assert.Equal(t, 52, g.EdgeCount())
	assert.Equal(t, []string{"Detroit", "New York"}, g.NeighborsForVertex("Boston"))
}

func TestUSCities_BreadthFirst(t *testing.T) {
	g := graph.USCities()
	n := search.BreadthFirst("Boston", func(c string) bool { return c == "Miami" }, g.NeighborsForVertex)
	require.NotNil(t, n)
	assert.Equal(t, []string{"Boston", "Detroit", "Washington", "Miami"}, search.NodeToPath(n))
}

// TestUSCities_AllReachable checks every city is reachable from Seattle and
// that BFS paths only follow edges of the network.
func TestUSCities_AllReachable(t *testing.T) {
	g := graph.USCities()
	for _, city := range g.Vertices() {
		n := search.BreadthFirst("Seattle", func(c string) bool { return c == city }, g.NeighborsForVertex)
		require.NotNil(t, n, city)
		path := search.NodeToPath(n)
		for i := 0; i+1 < len(path); i++ {
			assert.Contains(t, g.NeighborsForVertex(path[i]), path[i+1])
		}
	}
}
