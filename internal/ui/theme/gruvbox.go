package theme

import "github.com/charmbracelet/lipgloss"

// Gruvbox theme - Retro groove color scheme
// https://github.com/morhetz/gruvbox
var Gruvbox = Theme{
	Name: "gruvbox",

	// Base colors (dark mode)
	Foreground: lipgloss.Color("#EBDBB2"),
	Subtle:     lipgloss.Color("#928374"),
	Highlight:  lipgloss.Color("#3C3836"),
	Border:     lipgloss.Color("#504945"),

	// Primary colors
	Primary:   lipgloss.Color("#83A598"), // Aqua
	Secondary: lipgloss.Color("#8EC07C"), // Green
	Info:      lipgloss.Color("#83A598"), // Aqua

	// Semantic colors
	Success: lipgloss.Color("#B8BB26"), // Green
	Warning: lipgloss.Color("#FABD2F"), // Yellow
	Error:   lipgloss.Color("#FB4934"), // Red

	DueLater: lipgloss.Color("#B8BB26"), // Green
	DueSoon:  lipgloss.Color("#FE8019"), // Orange
	Overdue:  lipgloss.Color("#FB4934"), // Red

	Archived: lipgloss.Color("#928374"), // Gray
	Checked:  lipgloss.Color("#B8BB26"), // Green
	Assignee: lipgloss.Color("#D3869B"), // Purple
}
