package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
//
// Styles applied to text should avoid layout-affecting options
// (padding/margin/width); the editor frame belongs in Viewport.
type Style struct {
	// Viewport frames the whole editor (border, padding, margin).
	Viewport lipgloss.Style

	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Viewport:      lipgloss.NewStyle(),
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}
