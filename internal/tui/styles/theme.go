package styles

import (
	"treedit/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the UI styles derived from a style sheet
type Theme struct {
	Header     lipgloss.Style
	FooterKey  lipgloss.Style
	FooterDesc lipgloss.Style

	Pane        lipgloss.Style
	PaneFocused lipgloss.Style

	TreeCursor        lipgloss.Style
	TreeCursorBlurred lipgloss.Style
	TreeDir           lipgloss.Style
	TreeFile          lipgloss.Style
	Muted             lipgloss.Style

	Gutter        lipgloss.Style
	GutterCurrent lipgloss.Style
	Cursor        lipgloss.Style
}

// NewTheme builds the styles for a style sheet.
func NewTheme(s *config.StyleSheet) Theme {
	c := s.Colors
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Border))

	return Theme{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(c.Primary)).
			Align(lipgloss.Center),
		FooterKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Accent)),
		FooterDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Muted)),

		Pane:        pane,
		PaneFocused: pane.BorderForeground(lipgloss.Color(c.Accent)),

		TreeCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(c.Primary)).
			Bold(true),
		TreeCursorBlurred: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)).
			Background(lipgloss.Color(c.Border)),
		TreeDir: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Accent)).
			Bold(true),
		TreeFile: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Muted)).
			Italic(true),

		Gutter: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Muted)),
		GutterCurrent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Accent)).
			Bold(true),
		Cursor: lipgloss.NewStyle().Reverse(true),
	}
}

// Default is the theme of the built-in style sheet.
var Default = NewTheme(config.New())
