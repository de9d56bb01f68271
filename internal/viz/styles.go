package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	header   lipgloss.Style
	panel    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	subtle   lipgloss.Style
	running  lipgloss.Style
	paused   lipgloss.Style
	finished lipgloss.Style
	graph    lipgloss.Style
}

func newStyles(th Theme) styles {
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(th.Primary).
			MarginBottom(1),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(th.Border).
			Padding(0, 2).
			Width(42),
		label:    lipgloss.NewStyle().Foreground(th.Muted).Width(13),
		value:    lipgloss.NewStyle().Foreground(th.Text),
		subtle:   lipgloss.NewStyle().Foreground(th.Muted),
		running:  lipgloss.NewStyle().Bold(true).Foreground(th.Sorted),
		paused:   lipgloss.NewStyle().Bold(true).Foreground(th.Accent),
		finished: lipgloss.NewStyle().Bold(true).Foreground(th.Primary),
		graph:    lipgloss.NewStyle().Foreground(th.Accent).Padding(1, 0),
	}
}

// legend renders one swatch per bar state.
func legend(th Theme) string {
	items := []struct {
		color lipgloss.Color
		name  string
	}{
		{th.Bar, "unsorted"},
		{th.Compare, "comparing"},
		{th.Swap, "swapping"},
		{th.Pivot, "pivot"},
		{th.Sorted, "sorted"},
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = lipgloss.NewStyle().Foreground(it.color).Render("█") + " " + it.name
	}
	return strings.Join(parts, "  ")
}

func separator(width int) string {
	if width < 1 {
		width = 1
	}
	return strings.Repeat("─", width)
}
