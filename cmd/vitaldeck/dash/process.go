// Async commands for the dashboard: the prediction round-trip, the report
// export, and the meter animation clock.
package dash

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vitaldeck/cmd/vitaldeck/ui"
	"vitaldeck/internal/patient"
	"vitaldeck/internal/report"
)

// predictionMsg delivers a completed session.
type predictionMsg struct {
	session patient.Session
}

// predictionFailedMsg delivers a failed submission. No state has been mutated
// when this arrives.
type predictionFailedMsg struct {
	err error
}

// meterFrameMsg drives one animation frame for the condition meters.
type meterFrameMsg struct{}

// exportedMsg reports a written report file.
type exportedMsg struct {
	path string
}

// exportFailedMsg reports a failed export.
type exportFailedMsg struct {
	err error
}

// submitCmd runs one prediction round-trip off the UI loop. Exactly one of
// these is in flight at a time; Update enforces the guard before issuing it.
func (m Model) submitCmd(in patient.Input) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.cfg.Predictor.RequestTimeout())
		defer cancel()

		s, err := m.client.Submit(ctx, in)
		if err != nil {
			return predictionFailedMsg{err: err}
		}
		return predictionMsg{session: s}
	}
}

// exportCmd writes the latest session's report.
func (m Model) exportCmd(s *patient.Session) tea.Cmd {
	dir := m.cfg.Export.Dir
	return func() tea.Msg {
		path, err := report.Export(s, dir)
		if err != nil {
			return exportFailedMsg{err: err}
		}
		return exportedMsg{path: path}
	}
}

// meterFrameCmd schedules the next animation frame.
func meterFrameCmd() tea.Cmd {
	return tea.Tick(ui.MeterInterval, func(time.Time) tea.Msg {
		return meterFrameMsg{}
	})
}
