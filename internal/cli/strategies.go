package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/jumppath/strategy"
)

// descriptions documents each strategy for the strategies command.
var descriptions = map[strategy.Name]string{
	strategy.DFS:           "depth-first search, first path found",
	strategy.UCSByDistance: "uniform-cost search, least total jump length",
	strategy.UCSByJumps:    "uniform-cost search, fewest jumps",
	strategy.UCSByValue:    "uniform-cost search, least sum of landing cells",
	strategy.BFS:           "breadth-first search, fewest jumps",
	strategy.Dijkstra:      "Dijkstra, least total jump length",
	strategy.AStar:         "A*, least total jump length guided by --heuristic",
}

func (c *CLI) strategiesCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "strategies",
		Short: "List search strategies in report order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			u := newUI(lipgloss.NewRenderer(out), !noColor)
			names := strategy.All()
			pad := strategy.Width(names)
			for _, n := range names {
				fmt.Fprintf(out, "%s  %s\n", u.name.Render(fmt.Sprintf("%-*s", pad, n)), u.detail.Render(descriptions[n]))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")

	return cmd
}
