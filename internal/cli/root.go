package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev" // overridden with -ldflags "-X .../internal/cli.version=..."

// CLI holds the state shared by every command.
type CLI struct {
	Logger     *log.Logger
	config     Config
	configPath string
	plain      bool
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: DefaultConfig(),
	}
}

// SetLogLevel changes the level of the CLI logger.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the command tree. The config file is loaded before any
// subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "statespace",
		Short:        "Classic state-space search problems",
		Long:         `statespace solves mazes, river crossings, routes and constraint problems with DFS, BFS, A* and backtracking search.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			if c.configPath != "" {
				c.Logger.Debug("loaded config", "path", c.configPath)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML config file")
	root.PersistentFlags().BoolVar(&c.plain, "plain", false, "disable colored output")

	root.AddCommand(c.mazeCommand())
	root.AddCommand(c.missionariesCommand())
	root.AddCommand(c.routeCommand())
	root.AddCommand(c.colorCommand())
	root.AddCommand(c.queensCommand())

	return root
}
