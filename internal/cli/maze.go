package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/maze"
	"github.com/katalvlaran/statespace/search"
)

// ErrUnknownAlgorithm is returned for a search algorithm name the maze
// command does not know.
var ErrUnknownAlgorithm = errors.New("cli: unknown algorithm")

type mazeFlags struct {
	algorithm  string
	heuristic  string
	rows       int
	columns    int
	sparseness float64
	seed       int64
}

func (c *CLI) mazeCommand() *cobra.Command {
	var flags mazeFlags

	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Solve a random grid maze",
		Long: `Generate a seeded random maze and solve it.

With --algo all (the default) the same maze is solved with depth-first,
breadth-first and A* search in turn.`,
		Example: `  statespace maze
  statespace maze --algo astar --heuristic manhattan --rows 20 --columns 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config.Maze
			fs := cmd.Flags()
			if fs.Changed("algo") {
				cfg.Algorithm = flags.algorithm
			}
			if fs.Changed("heuristic") {
				cfg.Heuristic = flags.heuristic
			}
			if fs.Changed("rows") {
				cfg.Rows = flags.rows
			}
			if fs.Changed("columns") {
				cfg.Columns = flags.columns
			}
			if fs.Changed("sparseness") {
				cfg.Sparseness = flags.sparseness
			}
			if fs.Changed("seed") {
				cfg.Seed = flags.seed
			}
			return c.runMaze(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVar(&flags.algorithm, "algo", AlgoAll, "search algorithm: dfs, bfs, astar or all")
	cmd.Flags().StringVar(&flags.heuristic, "heuristic", HeuristicEuclidean, "A* heuristic: euclidean or manhattan")
	cmd.Flags().IntVar(&flags.rows, "rows", 0, "maze rows")
	cmd.Flags().IntVar(&flags.columns, "columns", 0, "maze columns")
	cmd.Flags().Float64Var(&flags.sparseness, "sparseness", 0, "probability of a blocked cell")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed")

	return cmd
}

func (c *CLI) runMaze(ctx context.Context, out io.Writer, cfg MazeConfig) error {
	logger := loggerFromContext(ctx)

	full := c.config
	full.Maze = cfg
	if err := full.Validate(); err != nil {
		return err
	}

	m, err := maze.New(full.MazeOptions())
	if err != nil {
		return err
	}
	logger.Debug("generated maze", "rows", m.Rows(), "columns", m.Columns(), "seed", cfg.Seed)

	fmt.Fprint(out, renderMaze(m, c.plain))

	algorithms := []string{cfg.Algorithm}
	if cfg.Algorithm == AlgoAll {
		algorithms = []string{AlgoDFS, AlgoBFS, AlgoAStar}
	}
	for _, algo := range algorithms {
		if err := ctx.Err(); err != nil {
			return err
		}
		solution, expanded, err := solveMaze(m, algo, cfg.Heuristic)
		if err != nil {
			return err
		}
		logger.Debug("search finished", "algorithm", algo, "expanded", expanded)

		fmt.Fprintln(out)
		fmt.Fprintln(out, title(strings.ToUpper(algo), c.plain))
		if solution == nil {
			fmt.Fprintln(out, "No solution found using "+algo+"!")
			continue
		}
		path := search.NodeToPath(solution)
		m.Mark(path)
		fmt.Fprint(out, renderMaze(m, c.plain))
		m.Clear(path)
		fmt.Fprintf(out, "moves: %d, expanded: %d\n", len(path)-1, expanded)
	}

	return nil
}

// solveMaze runs the named algorithm on m and reports how many states it
// expanded.
func solveMaze(m *maze.Maze, algo, heuristic string) (*search.Node[maze.Location], int, error) {
	expanded := 0
	count := search.WithOnExpand(func(*search.Node[maze.Location]) { expanded++ })

	var solution *search.Node[maze.Location]
	switch algo {
	case AlgoDFS:
		solution = search.DepthFirst(m.Start(), m.GoalTest, m.Successors, count)
	case AlgoBFS:
		solution = search.BreadthFirst(m.Start(), m.GoalTest, m.Successors, count)
	case AlgoAStar:
		h := maze.EuclideanDistance(m.Goal())
		if heuristic == HeuristicManhattan {
			h = maze.ManhattanDistance(m.Goal())
		}
		solution = search.AStar(m.Start(), m.GoalTest, m.Successors, h, count)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}

	return solution, expanded, nil
}
