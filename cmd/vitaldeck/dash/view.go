// Rendering for the dashboard.
package dash

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vitaldeck/cmd/vitaldeck/ui"
	"vitaldeck/internal/projector"
)

// View renders the current page.
func (m Model) View() string {
	if m.mode == historyView {
		return m.history.View() + "\n" + m.styles.Help.Render("esc back · ↑/↓ scroll")
	}

	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render("VitalDeck — AI Smart Healthcare"))
	sb.WriteString("\n")

	left := m.styles.Card.Render(m.formView())
	right := m.styles.Card.Render(m.resultsView())
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	sb.WriteString("\n")

	if m.latest != nil {
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.Card.Render(m.metersView()),
			" ",
			m.styles.Card.Render(m.styles.Title.Render("Risk Confidence (%)")+"\n"+m.chart),
		))
		sb.WriteString("\n")
	}

	sb.WriteString(m.statusView())
	return sb.String()
}

func (m Model) formView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Patient Vitals"))
	sb.WriteString("\n")
	for i := 0; i < fieldCount; i++ {
		label := fieldLabels[i]
		style := m.styles.Muted
		if i == m.focus {
			style = m.styles.Label
		}
		sb.WriteString(style.Render(padLabel(label)))
		sb.WriteString(m.inputs[i].View())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m Model) resultsView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Disease Risk Assessment"))
	sb.WriteString("\n")

	if m.latest == nil {
		sb.WriteString(m.styles.Muted.Render("Fill in the vitals and press enter."))
		return sb.String()
	}

	for _, line := range strings.Split(m.summary, "\n") {
		if strings.HasSuffix(line, "High Risk") {
			sb.WriteString(m.styles.DangerTxt.Render(line))
		} else {
			sb.WriteString(m.styles.SafeTxt.Render(line))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Title.Render("Doctor Recommendation"))
	sb.WriteString("\n" + m.advisory + "\n\n")

	sb.WriteString(m.styles.Title.Render("Precautions"))
	sb.WriteByte('\n')
	for _, p := range m.precautions {
		sb.WriteString("• " + p + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Title.Render("Recommended Tests"))
	sb.WriteString("\n" + m.tests + "\n")

	return sb.String()
}

func (m Model) metersView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Condition Meters"))
	sb.WriteByte('\n')
	for i, meter := range m.meters {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(meter.View())
	}
	return sb.String()
}

func (m Model) statusView() string {
	help := "enter predict · ctrl+e export · ctrl+h history · ctrl+r reset · esc quit"
	if m.state == stateInFlight {
		return m.spinner.View() + " Contacting prediction service...  " + m.styles.Help.Render(help)
	}
	if m.notice != "" {
		return m.styles.Notice.Render(m.notice) + "  " + m.styles.Help.Render(help)
	}
	return m.styles.Help.Render(help)
}

// chartWidth sizes the chart pane from the window, with a floor for narrow
// terminals.
func (m Model) chartWidth() int {
	w := m.width/2 - 8
	if w < 30 {
		w = 30
	}
	return w
}

func renderChart(bars []projector.Bar, width int) string {
	return ui.BarChart(bars, width)
}

func padLabel(label string) string {
	const width = 16
	if len(label) >= width {
		return label + " "
	}
	return label + strings.Repeat(" ", width-len(label))
}
