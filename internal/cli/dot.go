package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/statespace/graph"
)

// cityDOT renders g as an undirected DOT graph. Vertices and edges along
// route are highlighted.
func cityDOT(g *graph.Graph[string], route []string) string {
	onRoute := make(map[string]bool, len(route))
	for _, v := range route {
		onRoute[v] = true
	}
	legs := make(map[[2]string]bool, len(route))
	for i := 1; i < len(route); i++ {
		legs[[2]string{route[i-1], route[i]}] = true
		legs[[2]string{route[i], route[i-1]}] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph cities {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		if onRoute[v] {
			fmt.Fprintf(&buf, "  %q [fillcolor=palegreen, penwidth=2];\n", v)
		} else {
			fmt.Fprintf(&buf, "  %q;\n", v)
		}
	}

	buf.WriteString("\n")
	for i := 0; i < g.VertexCount(); i++ {
		for _, e := range g.EdgesForIndex(i) {
			if e.U > e.V {
				continue // each undirected edge once
			}
			u, v := g.VertexAt(e.U), g.VertexAt(e.V)
			if legs[[2]string{u, v}] {
				fmt.Fprintf(&buf, "  %q -- %q [color=red, penwidth=3];\n", u, v)
			} else {
				fmt.Fprintf(&buf, "  %q -- %q;\n", u, v)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// renderSVG renders a DOT graph to SVG in-process.
func renderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
