package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/graph"
	"github.com/katalvlaran/statespace/search"
)

// ErrUnknownCity is returned when a route endpoint is not in the city graph.
var ErrUnknownCity = errors.New("cli: unknown city")

func (c *CLI) routeCommand() *cobra.Command {
	var from, to, dotPath, svgPath string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the fewest-hop route between two US cities",
		Example: `  statespace route --from Seattle --to Atlanta
  statespace route --svg route.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config.Route
			if cmd.Flags().Changed("from") {
				cfg.From = from
			}
			if cmd.Flags().Changed("to") {
				cfg.To = to
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			out := cmd.OutOrStdout()

			cities := graph.USCities()
			for _, city := range []string{cfg.From, cfg.To} {
				if cities.IndexOf(city) < 0 {
					return fmt.Errorf("%w: %q", ErrUnknownCity, city)
				}
			}

			goal := func(city string) bool { return city == cfg.To }
			solution := search.BreadthFirst(cfg.From, goal, cities.NeighborsForVertex)
			var route []string
			if solution == nil {
				fmt.Fprintf(out, "No route from %s to %s!\n", cfg.From, cfg.To)
			} else {
				route = search.NodeToPath(solution)
				fmt.Fprintln(out, title(fmt.Sprintf("%s to %s: %d hops", cfg.From, cfg.To, len(route)-1), c.plain))
				fmt.Fprintln(out, strings.Join(route, " -> "))
			}

			if dotPath == "" && svgPath == "" {
				return nil
			}
			dot := cityDOT(cities, route)
			if dotPath != "" {
				if err := os.WriteFile(dotPath, []byte(dot), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", dotPath, err)
				}
				logger.Info("wrote DOT", "path", dotPath)
			}
			if svgPath != "" {
				prog := newProgress(logger)
				svg, err := renderSVG(ctx, dot)
				if err != nil {
					return err
				}
				if err := os.WriteFile(svgPath, svg, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", svgPath, err)
				}
				prog.done("wrote SVG", "path", svgPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "starting city (default from config: Boston)")
	cmd.Flags().StringVar(&to, "to", "", "destination city (default from config: Miami)")
	cmd.Flags().StringVar(&dotPath, "dot", "", "write the city graph as Graphviz DOT to this file")
	cmd.Flags().StringVar(&svgPath, "svg", "", "render the city graph with the route to this SVG file")

	return cmd
}
