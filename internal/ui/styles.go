package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue

	// Score tier colors
	colorEpic = lipgloss.Color("#6BCF7F") // Green
	colorFair = lipgloss.Color("#FFD93D") // Yellow
	colorPoor = lipgloss.Color("#FF8C42") // Orange
	colorFlat = lipgloss.Color("#FF6B6B") // Red

	// Title styles (no padding - paneStyle already has padding)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Pane styles
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			MarginRight(1)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorPrimary).
				Bold(true)

	// Score tier styles
	epicScoreStyle = lipgloss.NewStyle().
			Foreground(colorEpic).
			Bold(true)

	fairScoreStyle = lipgloss.NewStyle().
			Foreground(colorFair).
			Bold(true)

	poorScoreStyle = lipgloss.NewStyle().
			Foreground(colorPoor)

	flatScoreStyle = lipgloss.NewStyle().
			Foreground(colorFlat)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorFlat).
			Bold(true)
)

// scoreStyle picks the style for an overall suitability score.
func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 75:
		return epicScoreStyle
	case score >= 50:
		return fairScoreStyle
	case score >= 25:
		return poorScoreStyle
	default:
		return flatScoreStyle
	}
}
