package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("#7aa2f7")
	ColorAccent  = lipgloss.Color("#bb9af7")
	ColorSuccess = lipgloss.Color("#9ece6a")
	ColorMuted   = lipgloss.Color("#565f89")
	ColorFg      = lipgloss.Color("#c0caf5")
)

var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	OptionStyle = lipgloss.NewStyle().
			Foreground(ColorFg)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	ChosenStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	PriceStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BarFilledStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	BarEmptyStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
)
