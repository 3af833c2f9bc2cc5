// Package styles holds the shared lipgloss theme for terminal views.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme colors
var (
	Primary = lipgloss.Color("#7C3AED")
	Success = lipgloss.Color("#10B981")
	Warning = lipgloss.Color("#F59E0B")
	Danger  = lipgloss.Color("#EF4444")
	Info    = lipgloss.Color("#3B82F6")
	TextDim = lipgloss.Color("#9CA3AF")
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	FilePathStyle = lipgloss.NewStyle().
			Foreground(Info)

	FileSizeStyle = lipgloss.NewStyle().
			Foreground(Warning)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger)
)
