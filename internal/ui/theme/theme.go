package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the color scheme used by listings and prompts
type Theme struct {
	Name string

	// Base colors
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color

	// Due date colors
	DueLater lipgloss.Color
	DueSoon  lipgloss.Color
	Overdue  lipgloss.Color

	// Task state colors
	Archived lipgloss.Color
	Checked  lipgloss.Color
	Assignee lipgloss.Color
}

// Styles holds pre-computed lipgloss styles based on theme
type Styles struct {
	// Headings
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style

	// Tables
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style

	// Task styles
	TaskArchived lipgloss.Style
	DueLater     lipgloss.Style
	DueSoon      lipgloss.Style
	Overdue      lipgloss.Style
	Checked      lipgloss.Style
	Unchecked    lipgloss.Style
	Assignee     lipgloss.Style
	Default      lipgloss.Style

	// Panel styles
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style

	// Prompt styles
	Prompt      lipgloss.Style
	Cursor      lipgloss.Style
	Selected    lipgloss.Style
	Placeholder lipgloss.Style
	Input       lipgloss.Style

	// Help styles
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. With color disabled every
// style renders as plain text.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewStyles creates styles from a theme for renderer r
func NewStyles(t Theme, r *lipgloss.Renderer) Styles {
	s := r.NewStyle
	return Styles{
		Title: s().
			Foreground(t.Primary).
			Bold(true),

		Subtitle: s().
			Foreground(t.Secondary).
			Italic(true),

		Label: s().
			Foreground(t.Subtle),

		Value: s().
			Foreground(t.Foreground),

		Muted: s().
			Foreground(t.Subtle),

		TableHeader: s().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),

		TableCell: s().
			Foreground(t.Foreground).
			Padding(0, 1),

		TableBorder: s().
			Foreground(t.Border),

		TaskArchived: s().
			Foreground(t.Archived).
			Strikethrough(true),

		DueLater: s().
			Foreground(t.DueLater),

		DueSoon: s().
			Foreground(t.DueSoon).
			Bold(true),

		Overdue: s().
			Foreground(t.Overdue).
			Bold(true),

		Checked: s().
			Foreground(t.Checked),

		Unchecked: s().
			Foreground(t.Foreground),

		Assignee: s().
			Foreground(t.Assignee),

		Default: s().
			Foreground(t.Warning).
			Bold(true),

		Panel: s().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		PanelTitle: s().
			Foreground(t.Primary).
			Bold(true),

		Prompt: s().
			Foreground(t.Primary).
			Bold(true),

		Cursor: s().
			Foreground(t.Primary),

		Selected: s().
			Foreground(t.Foreground).
			Background(t.Highlight),

		Placeholder: s().
			Foreground(t.Subtle),

		Input: s().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),

		HelpKey: s().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: s().
			Foreground(t.Subtle),

		Success: s().
			Foreground(t.Success),

		Error: s().
			Foreground(t.Error).
			Bold(true),
	}
}

// Default is the theme used when none is configured.
const Default = "nord"

// Available returns all available themes
func Available() []Theme {
	return []Theme{
		Nord,
		Dracula,
		Gruvbox,
		Catppuccin,
	}
}

// Names returns the names of all available themes.
func Names() []string {
	var names []string
	for _, t := range Available() {
		names = append(names, t.Name)
	}
	return names
}

// ByName returns a theme by its name
func ByName(name string) (Theme, bool) {
	for _, t := range Available() {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}
