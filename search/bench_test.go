package search_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/statespace/search"
)

type cell struct{ r, c int }

// openGrid returns successors on an empty n×n grid with 4-connectivity.
func openGrid(n int) search.Successors[cell] {
	return func(p cell) []cell {
		out := make([]cell, 0, 4)
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			r, c := p.r+d[0], p.c+d[1]
			if r >= 0 && r < n && c >= 0 && c < n {
				out = append(out, cell{r, c})
			}
		}
		return out
	}
}

const benchGrid = 100

func benchGoal(p cell) bool { return p.r == benchGrid-1 && p.c == benchGrid-1 }

func BenchmarkBreadthFirst_Grid(b *testing.B) {
	next := openGrid(benchGrid)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.BreadthFirst(cell{}, benchGoal, next)
	}
}

func BenchmarkDepthFirst_Grid(b *testing.B) {
	next := openGrid(benchGrid)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.DepthFirst(cell{}, benchGoal, next)
	}
}

func BenchmarkAStar_GridEuclidean(b *testing.B) {
	next := openGrid(benchGrid)
	h := func(p cell) float64 {
		dr, dc := float64(benchGrid-1-p.r), float64(benchGrid-1-p.c)
		return math.Sqrt(dr*dr + dc*dc)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.AStar(cell{}, benchGoal, next, h)
	}
}
