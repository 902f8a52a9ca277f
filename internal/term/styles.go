// Package term holds the shared terminal styles for the human-facing
// subcommands. Root-command stdout (the commit message itself) is never
// styled.
package term

import "github.com/charmbracelet/lipgloss"

var (
	colorMuted   = lipgloss.Color("#78716C")
	colorSuccess = lipgloss.Color("#4ADE80")
	colorDanger  = lipgloss.Color("#FF6B6B")

	Bold  = lipgloss.NewStyle().Bold(true)
	Dim   = lipgloss.NewStyle().Foreground(colorMuted)
	Green = lipgloss.NewStyle().Foreground(colorSuccess)
	Red   = lipgloss.NewStyle().Foreground(colorDanger)
)

// OK renders a green check mark.
func OK() string { return Green.Render("✓") }

// Fail renders a red cross.
func Fail() string { return Red.Render("✗") }
