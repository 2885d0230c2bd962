// Package report renders computed ride analytics for the terminal.
// It is a pure presentation layer: it formats values, it never computes them.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/ridegraph/pkg/analytics"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Report bundles everything one analysis run produced.
type Report struct {
	Rides     int
	Nodes     int
	Edges     int
	TopRoutes []analytics.RouteCount
	Hubs      analytics.Hubs
	// Path is the shortest path as location names; empty with PathQueried
	// set means the endpoints are disconnected.
	Path        []string
	PathQueried bool
	Stats       analytics.Stats
}

// Render writes the styled report to w.
func Render(w io.Writer, r Report) {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Ride Graph Analytics"))
	b.WriteString("\n\n")

	b.WriteString(boxStyle.Render(fmt.Sprintf(
		"rides: %d   locations: %d   edges: %d", r.Rides, r.Nodes, r.Edges)))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("Top %d routes", len(r.TopRoutes))))
	b.WriteString("\n")
	if len(r.TopRoutes) == 0 {
		b.WriteString(dimStyle.Render("  (no rides)"))
		b.WriteString("\n")
	}
	for _, rc := range r.TopRoutes {
		b.WriteString(fmt.Sprintf("  %s -> %s: %d trips\n",
			rc.Route.Origin, rc.Route.Destination, rc.Count))
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Popular hubs"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Personal: %s\n", orNone(r.Hubs.Personal)))
	b.WriteString(fmt.Sprintf("  Business: %s\n", orNone(r.Hubs.Business)))
	b.WriteString("\n")

	if r.PathQueried {
		b.WriteString(headerStyle.Render("Shortest path"))
		b.WriteString("\n")
		if len(r.Path) == 0 {
			b.WriteString(dimStyle.Render("  no path found"))
			b.WriteString("\n")
		} else {
			b.WriteString("  " + strings.Join(r.Path, " -> ") + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(headerStyle.Render("Graph hop distances"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  mean: %.2f   stddev: %.2f   max: %d\n",
		r.Stats.Mean, r.Stats.StdDev, r.Stats.Max))

	fmt.Fprint(w, b.String())
}

func orNone(name string) string {
	if name == "" {
		return dimStyle.Render("(none)")
	}
	return name
}
