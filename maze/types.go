package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction.
var (
	// ErrEmptyGrid indicates the maze has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrBadSparseness indicates a wall probability outside [0, 1].
	ErrBadSparseness = errors.New("maze: sparseness must be within [0, 1]")
	// ErrOutOfBounds indicates a start or goal location outside the grid.
	ErrOutOfBounds = errors.New("maze: location out of bounds")
	// ErrBadCell indicates an unrecognised character in a layout.
	ErrBadCell = errors.New("maze: unknown cell character")
)

// Cell is the content of one grid square, stored as its display rune.
type Cell rune

const (
	Empty   Cell = ' '
	Blocked Cell = 'X'
	Start   Cell = 'S'
	Goal    Cell = 'G'
	Path    Cell = '*'
)

// String returns the cell's display character.
func (c Cell) String() string { return string(c) }

// Location addresses a cell by row and column, both zero-based.
type Location struct {
	Row, Column int
}

// String formats the location as "(row,column)".
func (l Location) String() string { return fmt.Sprintf("(%d,%d)", l.Row, l.Column) }

// Options contains the parameters for a randomly generated maze.
type Options struct {
	Rows, Columns int
	// Sparseness is the probability that any given cell is a wall.
	Sparseness float64
	Start      Location
	Goal       Location
	// Seed drives the wall placement.
	Seed int64
}

// DefaultOptions returns a 10×10 maze with 20% walls, running from the
// top-left to the bottom-right corner, seeded with 1.
func DefaultOptions() Options {
	return Options{
		Rows:       10,
		Columns:    10,
		Sparseness: 0.2,
		Start:      Location{0, 0},
		Goal:       Location{9, 9},
		Seed:       1,
	}
}
