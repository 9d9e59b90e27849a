package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"vitaldeck/internal/ledger"
	"vitaldeck/internal/patient"
)

// HistoryPageModel renders the session history list inside a scrollable
// viewport, newest first.
type HistoryPageModel struct {
	viewport viewport.Model
	styles   Styles
	sessions []patient.Session
	width    int
	height   int
}

// NewHistoryPageModel creates the history page component.
func NewHistoryPageModel(styles Styles) HistoryPageModel {
	vp := viewport.New(80, 20)
	return HistoryPageModel{
		viewport: vp,
		styles:   styles,
	}
}

// SetSize updates the size of the viewport.
func (m *HistoryPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 3 // Reserve space for header
	m.updateContent()
}

// SetSessions replaces the rendered list in full with the given sequence.
func (m *HistoryPageModel) SetSessions(sessions []patient.Session) {
	m.sessions = sessions
	m.updateContent()
}

func (m *HistoryPageModel) updateContent() {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Patient History"))
	sb.WriteString("\n\n")

	if len(m.sessions) == 0 {
		sb.WriteString(m.styles.Muted.Render("No predictions recorded yet."))
	}
	for i, line := range ledger.Lines(m.sessions) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if m.sessions[i].Assessment.AnyRisk() {
			sb.WriteString(m.styles.DangerTxt.Render("● ") + line)
		} else {
			sb.WriteString(m.styles.SafeTxt.Render("● ") + line)
		}
	}

	m.viewport.SetContent(sb.String())
}

// Update handles messages.
func (m HistoryPageModel) Update(msg tea.Msg) (HistoryPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m HistoryPageModel) View() string {
	return m.viewport.View()
}
