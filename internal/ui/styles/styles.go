// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling to ensure
// visual consistency across all UI components (table, panel, selector,
// and prompt rendering).
package styles

import "github.com/charmbracelet/lipgloss"

// Core colors used throughout the UI
var (
	// Primary is the main accent color, used for branch names (cyan)
	Primary lipgloss.TerminalColor = lipgloss.Color("6")

	// Secondary is used for commit hashes (magenta)
	Secondary lipgloss.TerminalColor = lipgloss.Color("5")

	// Warning is used for dates and cautionary messages (yellow)
	Warning lipgloss.TerminalColor = lipgloss.Color("3")

	// Success is used for the current branch and positive outcomes (green)
	Success lipgloss.TerminalColor = lipgloss.Color("2")

	// Error is used for error messages (red)
	Error lipgloss.TerminalColor = lipgloss.Color("1")

	// Info is used for informational panel borders (blue)
	Info lipgloss.TerminalColor = lipgloss.Color("4")

	// Muted is used for secondary/inactive text (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")

	// Normal is the standard text color (white)
	Normal lipgloss.TerminalColor = lipgloss.Color("7")

	// Accent is the highlight color for matched filter text (pink)
	Accent lipgloss.TerminalColor = lipgloss.Color("212")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// KeyStyle labels detail fields (bold cyan)
	KeyStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// Text highlighting styles
var (
	// HighlightStyle for highlighting matched characters (pink, bold, underline)
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true)
)
