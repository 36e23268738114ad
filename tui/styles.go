// Package tui: lipgloss palette and styles for the diagram shell.
// Kept in one place so every view renders with the same emphasis language.

package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorPrimary  = lipgloss.Color("#8B5CF6") // violet: titles, focused view
	colorAccent   = lipgloss.Color("#F59E0B") // amber: single-cell highlight
	colorBand     = lipgloss.Color("#1E3A8A") // deep blue: row/column bands
	colorText     = lipgloss.Color("#F8FAFC")
	colorMuted    = lipgloss.Color("#6B7280") // placeholders, hints
	colorSelected = lipgloss.Color("#FDE68A") // selected-cell text emphasis
	colorError    = lipgloss.Color("#EF4444")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	viewNameStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	activeViewNameStyle = viewNameStyle.
				Foreground(colorPrimary).
				Underline(true)

	cellStyle = lipgloss.NewStyle().
			Foreground(colorText)

	mutedCellStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	selectedCellStyle = lipgloss.NewStyle().
				Foreground(colorSelected).
				Background(colorBand).
				Bold(true)

	focusedCellStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorAccent).
				Bold(true)

	explanationStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true).
				MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true).
			MarginTop(1)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
