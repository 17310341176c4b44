package maze_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/maze"
	"github.com/katalvlaran/statespace/search"
)

// fixedLayout is a 10×10 maze with a known shortest path of 18 moves from
// (0,0) to (9,9).
var fixedLayout = []string{
	"S X       ",
	"  X  XXX  ",
	"  X    X  ",
	"  XXX  X X",
	"       X  ",
	"XXXX X X  ",
	"   X X    ",
	" X X XXXX ",
	" X        ",
	" X   XX  G",
}

func fixedMaze(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.Parse(fixedLayout, maze.Location{}, maze.Location{Row: 9, Column: 9})
	require.NoError(t, err)
	return m
}

func requireWalkable(t *testing.T, m *maze.Maze, path []maze.Location) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, m.Start(), path[0])
	require.Equal(t, m.Goal(), path[len(path)-1])
	for i := 0; i+1 < len(path); i++ {
		require.Contains(t, m.Successors(path[i]), path[i+1])
	}
}

func TestParse_Errors(t *testing.T) {
	goal := maze.Location{Row: 1, Column: 1}
	_, err := maze.Parse(nil, maze.Location{}, goal)
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)

	_, err = maze.Parse([]string{"  ", " "}, maze.Location{}, goal)
	assert.ErrorIs(t, err, maze.ErrNonRectangular)

	_, err = maze.Parse([]string{"  ", "  "}, maze.Location{}, maze.Location{Row: 2, Column: 0})
	assert.ErrorIs(t, err, maze.ErrOutOfBounds)

	_, err = maze.Parse([]string{" ?", "  "}, maze.Location{}, goal)
	assert.ErrorIs(t, err, maze.ErrBadCell)
}

func TestNew_Errors(t *testing.T) {
	opts := maze.DefaultOptions()
	opts.Rows = 0
	_, err := maze.New(opts)
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)

	opts = maze.DefaultOptions()
	opts.Sparseness = 1.5
	_, err = maze.New(opts)
	assert.ErrorIs(t, err, maze.ErrBadSparseness)

	opts = maze.DefaultOptions()
	opts.Goal = maze.Location{Row: 10, Column: 10}
	_, err = maze.New(opts)
	assert.ErrorIs(t, err, maze.ErrOutOfBounds)
}

func TestNew_SeededAndEnds(t *testing.T) {
	a, err := maze.New(maze.DefaultOptions())
	require.NoError(t, err)
	b, err := maze.New(maze.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String(), "same seed must give same maze")

	assert.Equal(t, maze.Start, a.Cell(a.Start()))
	assert.Equal(t, maze.Goal, a.Cell(a.Goal()))

	opts := maze.DefaultOptions()
	opts.Sparseness = 0
	open, err := maze.New(opts)
	require.NoError(t, err)
	assert.Equal(t, 0, strings.Count(open.String(), "X"))

	opts.Sparseness = 1
	walled, err := maze.New(opts)
	require.NoError(t, err)
	assert.Equal(t, 98, strings.Count(walled.String(), "X"))
	assert.Empty(t, walled.Successors(walled.Start()))
}

func TestSuccessors_OrderAndBounds(t *testing.T) {
	m := fixedMaze(t)
	// (0,0): down open, up/left out of bounds, right open
	assert.Equal(t, []maze.Location{{Row: 1, Column: 0}, {Row: 0, Column: 1}}, m.Successors(maze.Location{}))
	// (0,1): right is a wall
	assert.Equal(t, []maze.Location{{Row: 1, Column: 1}, {Row: 0, Column: 0}}, m.Successors(maze.Location{Row: 0, Column: 1}))
}

func TestHeuristics(t *testing.T) {
	goal := maze.Location{Row: 3, Column: 4}
	assert.InDelta(t, 5.0, maze.EuclideanDistance(goal)(maze.Location{}), 1e-9)
	assert.Equal(t, 7.0, maze.ManhattanDistance(goal)(maze.Location{}))
	assert.Equal(t, 0.0, maze.EuclideanDistance(goal)(goal))
	assert.Equal(t, 0.0, maze.ManhattanDistance(goal)(goal))
}

// TestSolvers_FixedMaze runs all three drivers on the fixed layout: every
// path must be walkable, and A* (either heuristic) must be no longer than BFS.
func TestSolvers_FixedMaze(t *testing.T) {
	m := fixedMaze(t)

	dfs := search.DepthFirst(m.Start(), m.GoalTest, m.Successors)
	require.NotNil(t, dfs)
	requireWalkable(t, m, search.NodeToPath(dfs))

	bfs := search.BreadthFirst(m.Start(), m.GoalTest, m.Successors)
	require.NotNil(t, bfs)
	bfsPath := search.NodeToPath(bfs)
	requireWalkable(t, m, bfsPath)
	assert.Len(t, bfsPath, 19)

	for name, h := range map[string]search.Heuristic[maze.Location]{
		"euclidean": maze.EuclideanDistance(m.Goal()),
		"manhattan": maze.ManhattanDistance(m.Goal()),
	} {
		n := search.AStar(m.Start(), m.GoalTest, m.Successors, h)
		require.NotNil(t, n, name)
		path := search.NodeToPath(n)
		requireWalkable(t, m, path)
		assert.LessOrEqual(t, len(path), len(bfsPath), name)
		assert.Equal(t, 18.0, n.Cost(), name)
	}
}

func TestSolvers_Unreachable(t *testing.T) {
	m, err := maze.Parse([]string{
		"  X ",
		"  X ",
		"XXX ",
		"    ",
	}, maze.Location{}, maze.Location{Row: 0, Column: 3})
	require.NoError(t, err)
	// The start corner is walled in.
	assert.Nil(t, search.BreadthFirst(m.Start(), m.GoalTest, m.Successors))
	assert.Nil(t, search.DepthFirst(m.Start(), m.GoalTest, m.Successors))
	assert.Nil(t, search.AStar(m.Start(), m.GoalTest, m.Successors, maze.ManhattanDistance(m.Goal())))
}

func TestMarkClear_RoundTrip(t *testing.T) {
	m := fixedMaze(t)
	before := m.String()

	path := search.NodeToPath(search.BreadthFirst(m.Start(), m.GoalTest, m.Successors))
	m.Mark(path)
	marked := m.String()
	assert.NotEqual(t, before, marked)
	assert.Equal(t, len(path)-2, strings.Count(marked, "*"))
	assert.Equal(t, maze.Start, m.Cell(m.Start()))
	assert.Equal(t, maze.Goal, m.Cell(m.Goal()))

	m.Clear(path)
	assert.Equal(t, before, m.String())
}

func TestMarkClear_IgnoresOutOfBounds(t *testing.T) {
	m := fixedMaze(t)
	before := m.String()
	outside := []maze.Location{{Row: -1, Column: 0}, {Row: 0, Column: m.Columns()}, {Row: m.Rows(), Column: 3}}

	assert.NotPanics(t, func() { m.Mark(outside) })
	assert.Equal(t, before, m.String())
	assert.NotPanics(t, func() { m.Clear(outside) })
	assert.Equal(t, before, m.String())
}
