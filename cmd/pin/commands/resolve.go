package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/pin/internal/core/domain"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Resolve declared dependencies and write the lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			graph, err := c.app.Resolve(cmd.Context(), ".")
			if err != nil {
				return err
			}

			printSummary(cmd, graph)
			return nil
		},
	}
}

func printSummary(cmd *cobra.Command, graph *domain.DependencyGraph) {
	resolved := graph.Resolved()
	unresolved := graph.Unresolved()

	cmd.Printf("resolved %d of %d packages\n", len(resolved), graph.Len())
	for _, name := range resolved {
		deps := graph.Edges(name)
		if len(deps) == 0 {
			cmd.Printf("  %s\n", name)
			continue
		}
		names := make([]string, len(deps))
		for i, dep := range deps {
			names[i] = dep.String()
		}
		cmd.Printf("  %s -> %s\n", name, strings.Join(names, ", "))
	}

	if len(unresolved) > 0 {
		cmd.Printf("unresolved: %s\n", joinNames(unresolved))
	}
	for _, cycle := range graph.Circular() {
		cmd.Printf("cycle: %s\n", joinNames(cycle))
	}
}

func joinNames(names []domain.InternedString) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name.String()
	}
	return strings.Join(parts, ", ")
}
