package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorSuccess = lipgloss.Color("#04B575")
	ColorDanger  = lipgloss.Color("#FF5F87")
	ColorMuted   = lipgloss.Color("#626262")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorPrimary).
			Padding(0, 2)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	EligibleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	NotEligibleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)

	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)

	StatusBarStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)
