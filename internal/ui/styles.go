package ui

import "github.com/charmbracelet/lipgloss"

// Centralized lipgloss styles for the terminal output.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("63")).
			Bold(true).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	menuTitleStyle    = lipgloss.NewStyle().MarginLeft(2)
	menuQuitTextStyle = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)
