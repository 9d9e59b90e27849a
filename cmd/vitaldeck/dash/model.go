// Package dash provides the interactive dashboard for VitalDeck. The
// functionality is split across files in the usual Bubble Tea shape:
//   - model.go: types, construction, Init (this file)
//   - update.go: the Update loop and key handling
//   - process.go: async submission and export commands
//   - view.go: rendering
package dash

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vitaldeck/cmd/vitaldeck/ui"
	"vitaldeck/internal/config"
	"vitaldeck/internal/ledger"
	"vitaldeck/internal/patient"
	"vitaldeck/internal/predictor"
)

// viewMode determines which page is on screen.
type viewMode int

const (
	dashboardView viewMode = iota
	historyView
)

// submitState is the single in-flight guard: while a submission is pending no
// new one can start.
type submitState int

const (
	stateIdle submitState = iota
	stateInFlight
)

// Form field indices. Order matches patient.ParseVitals.
const (
	fieldName = iota
	fieldPregnancies
	fieldGlucose
	fieldBloodPressure
	fieldSkinThickness
	fieldInsulin
	fieldBMI
	fieldDPF
	fieldAge
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Name",
	"Pregnancies",
	"Glucose",
	"Blood Pressure",
	"Skin Thickness",
	"Insulin",
	"BMI",
	"DPF",
	"Age",
}

// Model is the dashboard model.
type Model struct {
	styles ui.Styles

	// Form
	inputs [fieldCount]textinput.Model
	focus  int

	// Collaborators
	client *predictor.Client
	ledger *ledger.Manager
	cfg    *config.Config

	// Results of the most recent prediction. latest is the single-slot
	// session holder the exporter reads; it is overwritten per submission
	// and never reaches package scope.
	latest      *patient.Session
	summary     string
	advisory    string
	precautions []string
	tests       string
	chart       string // rendered chart; replaced wholesale each prediction
	meters      []ui.Meter

	history ui.HistoryPageModel

	spinner spinner.Model
	state   submitState
	mode    viewMode
	notice  string
	rng     *rand.Rand

	width  int
	height int
}

// New builds the dashboard, loading persisted history from the ledger.
func New(cfg *config.Config, client *predictor.Client, lg *ledger.Manager) Model {
	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))

	m := Model{
		styles:  styles,
		client:  client,
		ledger:  lg,
		cfg:     cfg,
		history: ui.NewHistoryPageModel(styles),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for i := 0; i < fieldCount; i++ {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = "-"
		in.CharLimit = 24
		in.Width = 16
		if i == fieldName {
			in.Placeholder = patient.AnonymousName
			in.CharLimit = 48
			in.Width = 24
		}
		m.inputs[i] = in
	}
	m.inputs[fieldName].Focus()

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = lipgloss.NewStyle().Foreground(ui.Info)

	for _, c := range patient.Conditions {
		m.meters = append(m.meters, ui.NewMeter(c))
	}

	// History survives restarts; render whatever the ledger has.
	m.history.SetSessions(lg.Load())

	return m
}

// Init starts the spinner ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// buildInput gathers the form fields into a typed input. No range validation
// happens here; blank or non-numeric vitals travel as the NaN sentinel.
func (m Model) buildInput() patient.Input {
	raw := make([]string, 0, fieldCount-1)
	for i := fieldPregnancies; i < fieldCount; i++ {
		raw = append(raw, m.inputs[i].Value())
	}
	return patient.ParseVitals(m.inputs[fieldName].Value(), raw...)
}

// Latest exposes the most recent session after the program has quit, so the
// caller can offer a final export.
func (m Model) Latest() *patient.Session {
	return m.latest
}
