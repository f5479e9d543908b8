// Package styles provides shared lipgloss styles for terminal output.
//
// This package centralizes color definitions and status symbols so all
// commands render success, error, warning, and info messages consistently.
package styles

import "charm.land/lipgloss/v2"

// Primary colors used throughout the output
var (
	// Success is used for checkmarks and positive outcomes (green)
	Success = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error = lipgloss.Color("196")

	// Warning is used for cautionary messages (yellow)
	Warning = lipgloss.Color("214")

	// Info is used for informational text (gray)
	Info = lipgloss.Color("244")

	// Muted is used for secondary text (gray)
	Muted = lipgloss.Color("240")

	// Accent is the highlight color for emphasized values (cyan/teal)
	Accent = lipgloss.Color("62")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// InfoStyle applies the info color
	InfoStyle = lipgloss.NewStyle().Foreground(Info)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)
)
