package scheduler

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Render writes the schedule day by day with employees sorted within each shift,
// followed by the warnings if there are any. Sorting is for display only.
func Render(w io.Writer, res *Result) error {
	var b strings.Builder

	b.WriteString("\n=== Final Weekly Schedule ===\n")
	for _, day := range Days {
		fmt.Fprintf(&b, "\n%s:\n", day)
		for _, shift := range Shifts {
			fmt.Fprintf(&b, "  - %-9s : %s\n", shift.Title(), formatNames(res.Schedule[day][shift]))
		}
	}

	if len(res.Warnings) > 0 {
		b.WriteString("\nNotes & Warnings:\n")
		for _, warning := range res.Warnings {
			fmt.Fprintf(&b, " - %s\n", warning)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderString is Render into a string
func RenderString(res *Result) string {
	var b strings.Builder
	_ = Render(&b, res)
	return b.String()
}

func formatNames(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return strings.Join(sorted, ", ")
}
