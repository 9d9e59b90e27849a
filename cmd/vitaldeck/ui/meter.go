package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"vitaldeck/internal/patient"
	"vitaldeck/internal/projector"
)

// Meter animation timing. Every meter fills from empty to its target over the
// same fixed window, one step per frame.
const (
	MeterDuration = 1200 * time.Millisecond
	MeterInterval = 50 * time.Millisecond
)

var meterSteps = int(MeterDuration / MeterInterval)

// Meter is one condition gauge: a progress bar animated from empty to a target
// percent, colored by the danger flag.
type Meter struct {
	Condition patient.Condition

	bar     progress.Model
	target  float64 // 0..1
	current float64
	danger  bool
	step    float64
	running bool
}

// NewMeter creates an idle meter for a condition.
func NewMeter(c patient.Condition) Meter {
	bar := progress.New(
		progress.WithSolidFill(projector.SafeColor),
		progress.WithoutPercentage(),
	)
	bar.Width = 18
	return Meter{Condition: c, bar: bar}
}

// SetTarget discards any running animation and restarts from empty toward the
// new target.
func (m *Meter) SetTarget(g projector.Gauge) {
	fill := projector.SafeColor
	if g.Danger {
		fill = projector.DangerColor
	}
	m.bar = progress.New(
		progress.WithSolidFill(fill),
		progress.WithoutPercentage(),
	)
	m.bar.Width = 18

	m.danger = g.Danger
	m.target = float64(g.Percent) / 100
	m.current = 0
	m.step = m.target / float64(meterSteps)
	m.running = m.target > 0
}

// Step advances the animation one frame. It reports whether the meter is still
// animating.
func (m *Meter) Step() bool {
	if !m.running {
		return false
	}
	m.current += m.step
	if m.current >= m.target {
		m.current = m.target
		m.running = false
	}
	return m.running
}

// Running reports whether the animation is still in progress.
func (m *Meter) Running() bool { return m.running }

// SetWidth resizes the underlying progress bar.
func (m *Meter) SetWidth(w int) {
	if w < 8 {
		w = 8
	}
	m.bar.Width = w
}

// View renders the meter with its condition label and percent readout. The
// readout tracks the fill and lands on the exact target when the animation
// completes.
func (m Meter) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(Safe)
	if m.danger {
		labelStyle = lipgloss.NewStyle().Bold(true).Foreground(Danger)
	}
	percent := fmt.Sprintf("%d%%", int(m.current*100+0.5))
	return fmt.Sprintf("%-9s %s %4s",
		m.Condition.Title(),
		m.bar.ViewAs(m.current),
		labelStyle.Render(percent),
	)
}
