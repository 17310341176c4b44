package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/csp"
)

func (c *CLI) colorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "color",
		Short: "Color the map of Australia with three colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			prog := newProgress(loggerFromContext(cmd.Context()))

			problem := csp.Australia()
			solution := problem.BacktrackingSearch(nil)
			prog.done("backtracking finished", "variables", len(problem.Variables()))
			if solution == nil {
				_, err := fmt.Fprintln(out, "No solution found!")
				return err
			}

			fmt.Fprintln(out, title("Australia", c.plain))
			for _, region := range problem.Variables() {
				fmt.Fprintf(out, "%-18s %s\n", region+":", solution[region])
			}
			return nil
		},
	}
}

func (c *CLI) queensCommand() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Place N queens on an NxN board so none attack each other",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			full := c.config
			if cmd.Flags().Changed("size") {
				full.Queens.Size = size
			}
			if err := full.Validate(); err != nil {
				return err
			}
			n := full.Queens.Size
			out := cmd.OutOrStdout()
			prog := newProgress(loggerFromContext(cmd.Context()))

			solution := csp.Queens(n).BacktrackingSearch(nil)
			prog.done("backtracking finished", "size", n)
			if solution == nil {
				_, err := fmt.Fprintf(out, "No solution for %d queens!\n", n)
				return err
			}

			fmt.Fprintln(out, title(fmt.Sprintf("%d queens", n), c.plain))
			_, err := fmt.Fprint(out, queensBoard(n, solution))
			return err
		},
	}

	cmd.Flags().IntVar(&size, "size", 8, "board size")

	return cmd
}

// queensBoard draws the board top row first. Columns and rows are 1-based.
func queensBoard(n int, columns map[int]int) string {
	var b strings.Builder
	for row := n; row >= 1; row-- {
		for col := 1; col <= n; col++ {
			if columns[col] == row {
				b.WriteByte('Q')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
