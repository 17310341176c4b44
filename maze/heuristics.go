package maze

import (
	"math"

	"github.com/katalvlaran/statespace/search"
)

// EuclideanDistance returns the straight-line distance to goal. Admissible
// and consistent for unit-cost orthogonal moves.
func EuclideanDistance(goal Location) search.Heuristic[Location] {
	return func(l Location) float64 {
		dx := float64(l.Column - goal.Column)
		dy := float64(l.Row - goal.Row)
		return math.Sqrt(dx*dx + dy*dy)
	}
}

// ManhattanDistance returns |Δrow| + |Δcolumn| to goal, the exact cost on an
// open grid with orthogonal moves.
func ManhattanDistance(goal Location) search.Heuristic[Location] {
	return func(l Location) float64 {
		dx := math.Abs(float64(l.Column - goal.Column))
		dy := math.Abs(float64(l.Row - goal.Row))
		return dx + dy
	}
}
