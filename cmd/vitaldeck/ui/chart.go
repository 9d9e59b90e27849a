package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vitaldeck/internal/projector"
)

// chartScale is the full-scale percent of every bar.
const chartScale = 100

// BarChart renders the risk confidence chart as horizontal bars, one per
// condition, colored by the bar's danger/safe hue. Each call renders from
// scratch; the previous chart is simply replaced on screen.
func BarChart(bars []projector.Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	if width < 20 {
		width = 20
	}

	labelWidth := 0
	for _, b := range bars {
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}

	// label + space + bar + space + "100%"
	barWidth := width - labelWidth - 7
	if barWidth < 5 {
		barWidth = 5
	}

	var sb strings.Builder
	for i, b := range bars {
		if i > 0 {
			sb.WriteByte('\n')
		}

		filled := b.Value * barWidth / chartScale
		if filled < 1 {
			filled = 1
		}
		if filled > barWidth {
			filled = barWidth
		}

		bar := lipgloss.NewStyle().
			Foreground(lipgloss.Color(b.Color)).
			Render(strings.Repeat("█", filled))
		rest := strings.Repeat("░", barWidth-filled)

		fmt.Fprintf(&sb, "%-*s %s%s %3d%%", labelWidth, b.Label, bar, rest, b.Value)
	}
	return sb.String()
}
