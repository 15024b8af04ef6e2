// Package styles provides shared lipgloss styles for CLI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Status markers used by the list and stats commands.
var (
	IconOpen = "☐"
	IconDone = "✓"
)

var (
	Done    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	Muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	Overdue = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
)

// CategoryDot renders a colored ● for a category's hex color token.
func CategoryDot(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}
