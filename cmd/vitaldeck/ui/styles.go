// Package ui provides the visual styling and widgets for the VitalDeck
// dashboard: the color theme, the risk bar chart and the condition meters.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Danger and Safe mirror the hues used by the chart and the
// meters; the rest follows the dashboard chrome.
var (
	// Dark Mode Colors (Default)
	DarkBackground = lipgloss.Color("#0e1726")
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#00bfa6")
	DarkSecondary  = lipgloss.Color("#1e2a3d")
	DarkMuted      = lipgloss.Color("#5c6b84")
	DarkBorder     = lipgloss.Color("#2a3850")

	// Light Mode Colors
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#101f38")
	LightPrimary    = lipgloss.Color("#00897b")
	LightSecondary  = lipgloss.Color("#e1e4e8")
	LightMuted      = lipgloss.Color("#8a93a3")
	LightBorder     = lipgloss.Color("#dce0e5")

	// Semantic Colors (same in both modes)
	Danger  = lipgloss.Color("#ff3d3d") // high risk
	Safe    = lipgloss.Color("#00bfa6") // low risk
	Warning = lipgloss.Color("#ffc107")
	Info    = lipgloss.Color("#2196f3")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// ThemeByName resolves a configured theme name, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles bundles the lipgloss styles used across the dashboard.
type Styles struct {
	Header    lipgloss.Style
	Title     lipgloss.Style
	Card      lipgloss.Style
	Label     lipgloss.Style
	Muted     lipgloss.Style
	DangerTxt lipgloss.Style
	SafeTxt   lipgloss.Style
	Notice    lipgloss.Style
	StatusBar lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			MarginBottom(1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(theme.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
		DangerTxt: lipgloss.NewStyle().
			Bold(true).
			Foreground(Danger),
		SafeTxt: lipgloss.NewStyle().
			Foreground(Safe),
		Notice: lipgloss.NewStyle().
			Bold(true).
			Foreground(Warning),
		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Help: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),
	}
}
