package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	colorAccent  = lipgloss.Color("39")
	colorSubtle  = lipgloss.Color("241")
	colorOK      = lipgloss.Color("42")
	colorWarning = lipgloss.Color("214")
	colorError   = lipgloss.Color("196")
)

//nolint:gochecknoglobals // Shared styles.
var (
	// HeaderStyle renders the screen title.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// SubtleStyle renders hints and the key legend.
	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// SuccessStyle renders completed operations.
	SuccessStyle = lipgloss.NewStyle().Foreground(colorOK)

	// WarningStyle renders confirmation prompts.
	WarningStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)

	// CriticalStyle renders errors.
	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)

	// SpinnerStyle colors the loading spinner.
	SpinnerStyle = lipgloss.NewStyle().Foreground(colorAccent)
)
