package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#10B981")
	colorWarn    = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorFg      = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Bold(true)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	StatusWarnStyle = lipgloss.NewStyle().
			Foreground(colorWarn)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(colorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
