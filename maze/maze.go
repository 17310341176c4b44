package maze

import (
	"fmt"
	"math/rand"
	"strings"
)

// Maze is a grid of Cells with a start and a goal location.
// Only Mark and Clear mutate it after construction.
type Maze struct {
	rows, columns int
	grid          [][]Cell
	start, goal   Location
}

// New generates a maze with walls placed at random according to opts.
// The start and goal cells are never walls.
func New(opts Options) (*Maze, error) {
	if opts.Rows <= 0 || opts.Columns <= 0 {
		return nil, ErrEmptyGrid
	}
	if opts.Sparseness < 0 || opts.Sparseness > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadSparseness, opts.Sparseness)
	}
	m := &Maze{rows: opts.Rows, columns: opts.Columns, start: opts.Start, goal: opts.Goal}
	if err := m.checkEnds(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	m.grid = make([][]Cell, m.rows)
	for r := range m.grid {
		m.grid[r] = make([]Cell, m.columns)
		for c := range m.grid[r] {
			if rng.Float64() < opts.Sparseness {
				m.grid[r][c] = Blocked
			} else {
				m.grid[r][c] = Empty
			}
		}
	}
	m.restoreEnds()

	return m, nil
}

// Parse builds a maze from a fixed layout: one string per row, 'X' for a
// wall, ' ' or '.' for an open cell. 'S' and 'G' in the layout are read as
// open cells; the markers are placed at start and goal.
func Parse(layout []string, start, goal Location) (*Maze, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	m := &Maze{rows: len(layout), columns: len(layout[0]), start: start, goal: goal}
	for _, row := range layout {
		if len(row) != m.columns {
			return nil, ErrNonRectangular
		}
	}
	if err := m.checkEnds(); err != nil {
		return nil, err
	}

	m.grid = make([][]Cell, m.rows)
	for r, row := range layout {
		m.grid[r] = make([]Cell, m.columns)
		for c, ch := range []byte(row) {
			switch Cell(ch) {
			case Blocked:
				m.grid[r][c] = Blocked
			case Empty, '.', Start, Goal:
				m.grid[r][c] = Empty
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadCell, ch, Location{r, c})
			}
		}
	}
	m.restoreEnds()

	return m, nil
}

// checkEnds validates start and goal against the dimensions.
func (m *Maze) checkEnds() error {
	if !m.InBounds(m.start) {
		return fmt.Errorf("%w: start %v", ErrOutOfBounds, m.start)
	}
	if !m.InBounds(m.goal) {
		return fmt.Errorf("%w: goal %v", ErrOutOfBounds, m.goal)
	}
	return nil
}

// restoreEnds writes the start and goal markers.
func (m *Maze) restoreEnds() {
	m.grid[m.start.Row][m.start.Column] = Start
	m.grid[m.goal.Row][m.goal.Column] = Goal
}

// Rows returns the number of rows.
func (m *Maze) Rows() int { return m.rows }

// Columns returns the number of columns.
func (m *Maze) Columns() int { return m.columns }

// Start returns the start location.
func (m *Maze) Start() Location { return m.start }

// Goal returns the goal location.
func (m *Maze) Goal() Location { return m.goal }

// InBounds reports whether l lies within the grid.
func (m *Maze) InBounds(l Location) bool {
	return l.Row >= 0 && l.Row < m.rows && l.Column >= 0 && l.Column < m.columns
}

// Cell returns the content at l. l must be in bounds.
func (m *Maze) Cell(l Location) Cell { return m.grid[l.Row][l.Column] }

// GoalTest reports whether l is the goal.
func (m *Maze) GoalTest(l Location) bool { return l == m.goal }

// Successors returns the open orthogonal neighbours of l in the order
// down, up, right, left.
func (m *Maze) Successors(l Location) []Location {
	out := make([]Location, 0, 4)
	for _, d := range [4]Location{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		n := Location{l.Row + d.Row, l.Column + d.Column}
		if m.InBounds(n) && m.grid[n.Row][n.Column] != Blocked {
			out = append(out, n)
		}
	}

	return out
}

// Mark draws path onto the grid, keeping the start and goal markers.
// Locations outside the grid are ignored.
func (m *Maze) Mark(path []Location) {
	for _, l := range path {
		if m.InBounds(l) {
			m.grid[l.Row][l.Column] = Path
		}
	}
	m.restoreEnds()
}

// Clear erases path from the grid, keeping the start and goal markers.
// Locations outside the grid are ignored.
func (m *Maze) Clear(path []Location) {
	for _, l := range path {
		if m.InBounds(l) {
			m.grid[l.Row][l.Column] = Empty
		}
	}
	m.restoreEnds()
}

// String renders the grid, one line per row.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow(m.rows * (m.columns + 1))
	for _, row := range m.grid {
		for _, c := range row {
			b.WriteRune(rune(c))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
