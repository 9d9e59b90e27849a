// The Update loop and key handling for the dashboard.
package dash

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"vitaldeck/internal/logging"
	"vitaldeck/internal/projector"
)

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.history.SetSize(msg.Width-4, msg.Height-2)
		for i := range m.meters {
			m.meters[i].SetWidth(msg.Width/4 - 18)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case predictionMsg:
		return m.applyPrediction(msg)

	case predictionFailedMsg:
		m.state = stateIdle
		m.notice = fmt.Sprintf("Prediction failed: %v", msg.err)
		logging.SessionError("submission failed: %v", msg.err)
		return m, nil

	case meterFrameMsg:
		running := false
		for i := range m.meters {
			if m.meters[i].Step() {
				running = true
			}
		}
		if running {
			return m, meterFrameCmd()
		}
		return m, nil

	case exportedMsg:
		m.notice = "Report saved: " + msg.path
		return m, nil

	case exportFailedMsg:
		m.notice = fmt.Sprintf("Export failed: %v", msg.err)
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input by view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	if m.mode == historyView {
		switch msg.String() {
		case "esc", "q", "h":
			m.mode = dashboardView
			return m, nil
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "tab", "down":
		return m.moveFocus(1), nil

	case "shift+tab", "up":
		return m.moveFocus(-1), nil

	case "enter":
		if m.state == stateInFlight {
			// One submission at a time; ignore until it settles.
			return m, nil
		}
		m.state = stateInFlight
		m.notice = ""
		logging.UI("submission started")
		return m, m.submitCmd(m.buildInput())

	case "ctrl+e":
		if m.latest == nil {
			m.notice = "Please generate a prediction first"
			return m, nil
		}
		return m, m.exportCmd(m.latest)

	case "ctrl+h":
		m.mode = historyView
		m.history.SetSessions(m.ledger.Sessions())
		return m, nil

	case "ctrl+r":
		m.resetForm()
		return m, nil
	}

	// Everything else edits the focused field.
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// applyPrediction is the single place new session state enters the model:
// latest-session slot, projections, chart, meters and ledger all update here.
func (m Model) applyPrediction(msg predictionMsg) (tea.Model, tea.Cmd) {
	s := msg.session
	m.state = stateIdle
	m.latest = &s
	m.notice = ""

	a := s.Assessment
	m.summary = projector.RiskSummary(a)
	m.advisory = projector.Advisory(a)
	m.precautions = projector.Precautions(a)
	m.tests = projector.RecommendedTests(a)

	// The previous chart is discarded wholesale; only one dataset exists at
	// a time.
	m.chart = renderChart(projector.ChartSeries(a, m.rng), m.chartWidth())

	gauges := projector.GaugeValues(a)
	for i := range m.meters {
		m.meters[i].SetTarget(gauges[m.meters[i].Condition])
	}

	m.history.SetSessions(m.ledger.Append(s))
	logging.Session("session %s rendered and recorded", s.ID)

	return m, meterFrameCmd()
}

func (m Model) moveFocus(delta int) Model {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
	return m
}

func (m *Model) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.inputs[m.focus].Blur()
	m.focus = fieldName
	m.inputs[m.focus].Focus()
}
