package main

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(colorPink).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	footerStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorMantle).Padding(0, 2)
	keyStyle    = lipgloss.NewStyle().Foreground(colorPink).Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(colorLavender).Bold(true)
	pickerStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(colorLavender).Padding(0, 1)
	pickerDimStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
)
