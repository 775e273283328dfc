package ui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	colorAccent  = lipgloss.Color("208") // orange
	colorTitle   = lipgloss.Color("39")
	colorMuted   = lipgloss.Color("241")
	colorError   = lipgloss.Color("196")
	colorSuccess = lipgloss.Color("10")
	colorText    = lipgloss.Color("252")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	accentStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	labelStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(colorAccent).
			Padding(0, 3)

	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Background(lipgloss.Color("236")).
				Padding(0, 3)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(colorAccent).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(1, 2).
			Width(34)

	featuredCardStyle = cardStyle.
				BorderForeground(colorAccent).
				BorderStyle(lipgloss.ThickBorder())

	formStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(1, 3).
			Width(52)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)
)
