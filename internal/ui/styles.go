package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#0078D7")
	colorOK     = lipgloss.Color("#3FB950")
	colorWarn   = lipgloss.Color("#D29922")
	colorErr    = lipgloss.Color("#F85149")
	colorSub    = lipgloss.Color("#8B949E")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)
	statusStyle  = lipgloss.NewStyle().Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(colorOK)
	runningStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	pendingStyle = lipgloss.NewStyle().Foreground(colorSub)
	warnStyle    = lipgloss.NewStyle().Foreground(colorWarn)
	errStyle     = lipgloss.NewStyle().Foreground(colorErr)
	infoStyle    = lipgloss.NewStyle().Foreground(colorSub)
	helpStyle    = lipgloss.NewStyle().Foreground(colorSub).MarginTop(1)

	promptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2).
			MarginTop(1)
)
