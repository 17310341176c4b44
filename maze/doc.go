// Package maze models a rectangular grid maze as a search problem.
//
// What:
//
//   - Maze wraps a Rows×Columns grid of Cells with a start and a goal.
//   - Location{Row, Column} is the search state; it is comparable, so it keys
//     the explored sets and distance maps of package search directly.
//   - Successors yields in-bounds, non-blocked orthogonal neighbours in the
//     fixed order down, up, right, left.
//   - EuclideanDistance and ManhattanDistance build A* heuristics toward a goal.
//   - Mark/Clear overlay a solution path on the grid and remove it again.
//
// Construction:
//
//   - New(opts): random walls, Options.Sparseness is the per-cell wall
//     probability; the fill is seeded from Options.Seed so a seed always
//     yields the same maze.
//   - Parse(layout, start, goal): fixed layout, one string per row, 'X' for
//     walls and ' ' (or '.') for open cells.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: layout rows of differing lengths.
//   - ErrBadSparseness: sparseness outside [0, 1].
//   - ErrOutOfBounds: start or goal outside the grid.
//   - ErrBadCell: unknown layout character.
//
// Complexity:
//
//   - New, Parse, String: O(Rows×Columns).
//   - Successors: O(1).
//   - Mark, Clear: O(len(path)).
package maze
