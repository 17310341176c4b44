package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/missionaries"
	"github.com/katalvlaran/statespace/search"
)

func (c *CLI) missionariesCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:     "missionaries",
		Aliases: []string{"mc"},
		Short:   "Solve the missionaries and cannibals river crossing",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			full := c.config
			if cmd.Flags().Changed("count") {
				full.Missionaries.Count = count
			}
			if err := full.Validate(); err != nil {
				return err
			}
			n := full.Missionaries.Count
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			prog := newProgress(logger)
			expanded := 0
			start := missionaries.Start(n)
			solution := search.BreadthFirst(start, missionaries.State.GoalTest, missionaries.State.Successors,
				search.WithOnExpand(func(*search.Node[missionaries.State]) { expanded++ }))
			prog.done("BFS finished", "count", n, "expanded", expanded)

			if solution == nil {
				_, err := fmt.Fprintln(out, "No solution found!")
				return err
			}
			path := search.NodeToPath(solution)
			fmt.Fprintln(out, title(fmt.Sprintf("%d missionaries, %d cannibals: %d crossings", n, n, len(path)-1), c.plain))
			return missionaries.Display(out, path)
		},
	}

	cmd.Flags().IntVar(&count, "count", missionaries.DefaultCount, "missionaries (and cannibals) on each side")

	return cmd
}
