package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/graph"
)

func TestCityDOT(t *testing.T) {
	g := graph.New("A", "B", "C")
	require.NoError(t, g.AddEdgeByVertices("A", "B"))
	require.NoError(t, g.AddEdgeByVertices("B", "C"))

	dot := cityDOT(g, []string{"A", "B"})

	assert.Contains(t, dot, `"A" [fillcolor=palegreen, penwidth=2];`)
	assert.Contains(t, dot, `"C";`)
	assert.Contains(t, dot, `"A" -- "B" [color=red, penwidth=3];`)
	assert.Contains(t, dot, `"B" -- "C";`)
	assert.Equal(t, 2, strings.Count(dot, " -- "), "each undirected edge once")
}

func TestCityDOT_NoRoute(t *testing.T) {
	dot := cityDOT(graph.USCities(), nil)
	assert.NotContains(t, dot, "color=red")
	assert.Equal(t, 26, strings.Count(dot, " -- "))
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	svg, err := renderSVG(context.Background(), cityDOT(graph.USCities(), []string{"Boston", "Detroit"}))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "Boston")
}

func TestRenderSVG_BadDOT(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	_, err := renderSVG(context.Background(), "graph {")
	assert.Error(t, err)
}
