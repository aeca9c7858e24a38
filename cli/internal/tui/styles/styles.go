// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Defines colors and text styles used by the chat view

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary = lipgloss.Color("#7C3AED") // Purple
	Accent  = lipgloss.Color("#10B981") // Green
	Danger  = lipgloss.Color("#EF4444") // Red
	Muted   = lipgloss.Color("#6B7280") // Gray

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	UserLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	AssistantLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	ErrorText = lipgloss.NewStyle().
			Foreground(Danger)

	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)
)
