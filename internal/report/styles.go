package report

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorMuted   = lipgloss.Color("240") // Dark gray
	ColorWarning = lipgloss.Color("214") // Orange
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	CountStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ZeroStyle highlights jobs nobody has applied to.
	ZeroStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
