package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/aurceive/d2-crafting-cost/internal/domain"
)

// PrintPlan writes a human readable summary of plan to w.
func PrintPlan(w io.Writer, plan domain.Plan) {
	fmt.Fprintf(w, "Levels %d -> %d\n", plan.Config.StartLevel, plan.Config.EndLevel)

	if len(plan.Totals) == 0 {
		fmt.Fprintln(w, "No cost")
		return
	}

	fmt.Fprintln(w, "Total cost:")
	for _, c := range plan.Totals {
		fmt.Fprintf(w, "- %s: %d\n", c.Resource, c.Cost)
	}

	if len(plan.Steps) > 0 {
		fmt.Fprintln(w, "Per level:")
		for _, s := range plan.Steps {
			fmt.Fprintf(w, "- %d: %s\n", s.Level, formatCosts(s.Costs))
		}
	}

	PrintSources(w, plan.Sources)
}

// PrintSources writes the source suggestions for each resource.
func PrintSources(w io.Writer, list []domain.ResourceSources) {
	if len(list) == 0 {
		return
	}
	fmt.Fprintln(w, "Sources:")
	for _, rs := range list {
		fmt.Fprintf(w, "%s (%d):\n", rs.Resource, rs.Amount)
		if len(rs.Sources) == 0 {
			fmt.Fprintln(w, "- no known sources")
			continue
		}
		for _, s := range rs.Sources {
			fmt.Fprintf(w, "- %s (%d per use): %d %s\n", s.Source.Source, s.Source.Amount, s.Amount, plural(s.Amount, "use", "uses"))
		}
	}
}

func formatCosts(costs []domain.ResourceCost) string {
	parts := make([]string, 0, len(costs))
	for _, c := range costs {
		parts = append(parts, fmt.Sprintf("%s=%d", c.Resource, c.Cost))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
