package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/statespace/maze"
	"github.com/katalvlaran/statespace/missionaries"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("cli: invalid config")

// Algorithm names accepted by the maze command.
const (
	AlgoDFS   = "dfs"
	AlgoBFS   = "bfs"
	AlgoAStar = "astar"
	AlgoAll   = "all"
)

// Heuristic names accepted by the maze command.
const (
	HeuristicEuclidean = "euclidean"
	HeuristicManhattan = "manhattan"
)

// Config is the on-disk TOML configuration.
//
//	[maze]
//	rows = 10
//	columns = 10
//	sparseness = 0.2
//	seed = 1
//	start = [0, 0]
//	goal = [9, 9]      # omitted: bottom-right corner
//	algorithm = "all"
//	heuristic = "euclidean"
//
//	[missionaries]
//	count = 3
//
//	[route]
//	from = "Boston"
//	to = "Miami"
//
//	[queens]
//	size = 8
type Config struct {
	Maze         MazeConfig         `toml:"maze"`
	Missionaries MissionariesConfig `toml:"missionaries"`
	Route        RouteConfig        `toml:"route"`
	Queens       QueensConfig       `toml:"queens"`
}

// MazeConfig holds maze generation and solver settings.
type MazeConfig struct {
	Rows       int     `toml:"rows"`
	Columns    int     `toml:"columns"`
	Sparseness float64 `toml:"sparseness"`
	Seed       int64   `toml:"seed"`
	Start      []int   `toml:"start"`
	Goal       []int   `toml:"goal"`
	Algorithm  string  `toml:"algorithm"`
	Heuristic  string  `toml:"heuristic"`
}

// MissionariesConfig holds the river-crossing puzzle size.
type MissionariesConfig struct {
	Count int `toml:"count"`
}

// RouteConfig holds the route endpoints.
type RouteConfig struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// QueensConfig holds the board size.
type QueensConfig struct {
	Size int `toml:"size"`
}

// DefaultConfig returns the classic parameters of every demonstration.
func DefaultConfig() Config {
	mo := maze.DefaultOptions()
	return Config{
		Maze: MazeConfig{
			Rows:       mo.Rows,
			Columns:    mo.Columns,
			Sparseness: mo.Sparseness,
			Seed:       mo.Seed,
			Start:      []int{mo.Start.Row, mo.Start.Column},
			Algorithm:  AlgoAll,
			Heuristic:  HeuristicEuclidean,
		},
		Missionaries: MissionariesConfig{Count: missionaries.DefaultCount},
		Route:        RouteConfig{From: "Boston", To: "Miami"},
		Queens:       QueensConfig{Size: 8},
	}
}

// LoadConfig returns DefaultConfig overlaid with the TOML file at path.
// An empty path yields the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values that the library constructors would not catch with
// a readable message.
func (c Config) Validate() error {
	if len(c.Maze.Start) != 2 || (len(c.Maze.Goal) != 0 && len(c.Maze.Goal) != 2) {
		return fmt.Errorf("%w: maze start and goal must be [row, column]", ErrInvalidConfig)
	}
	if !slices.Contains([]string{AlgoDFS, AlgoBFS, AlgoAStar, AlgoAll}, c.Maze.Algorithm) {
		return fmt.Errorf("%w: unknown maze algorithm %q", ErrInvalidConfig, c.Maze.Algorithm)
	}
	if !slices.Contains([]string{HeuristicEuclidean, HeuristicManhattan}, c.Maze.Heuristic) {
		return fmt.Errorf("%w: unknown heuristic %q", ErrInvalidConfig, c.Maze.Heuristic)
	}
	if c.Missionaries.Count < 1 {
		return fmt.Errorf("%w: missionaries count must be positive, got %d", ErrInvalidConfig, c.Missionaries.Count)
	}
	if c.Queens.Size < 1 {
		return fmt.Errorf("%w: queens size must be positive, got %d", ErrInvalidConfig, c.Queens.Size)
	}
	return nil
}

// MazeOptions converts the maze section into maze.Options. It assumes
// Validate has passed.
func (c Config) MazeOptions() maze.Options {
	goal := maze.Location{Row: c.Maze.Rows - 1, Column: c.Maze.Columns - 1}
	if len(c.Maze.Goal) == 2 {
		goal = maze.Location{Row: c.Maze.Goal[0], Column: c.Maze.Goal[1]}
	}
	return maze.Options{
		Rows:       c.Maze.Rows,
		Columns:    c.Maze.Columns,
		Sparseness: c.Maze.Sparseness,
		Seed:       c.Maze.Seed,
		Start:      maze.Location{Row: c.Maze.Start[0], Column: c.Maze.Start[1]},
		Goal:       goal,
	}
}
