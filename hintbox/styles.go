package hintbox

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultWidth   = 28
	DefaultMaxRows = 10
)

// Styles controls the widget's rendering. Zero-valued fields fall back to
// DefaultStyles.
type Styles struct {
	// Root frames the whole widget (editor and popup).
	Root lipgloss.Style
	// Container frames the popup list.
	Container lipgloss.Style

	Hint lipgloss.Style
	// SelectedHint is layered over Hint for the selected row. Padding always
	// comes from Hint so rows stay aligned.
	SelectedHint lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Root: lipgloss.NewStyle(),
		Container: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#CCCCCC")).
			BorderBackground(lipgloss.Color("#FFFFFF")),
		Hint: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFFFF")),
		SelectedHint: lipgloss.NewStyle().Background(lipgloss.Color("#EEEEEE")),
	}
}

// selected returns the style of the selected row.
func (s Styles) selected() lipgloss.Style {
	return s.SelectedHint.Inherit(s.Hint).Padding(s.Hint.GetPadding())
}

func normalizeStyles(s Styles) Styles {
	def := DefaultStyles()
	zero := lipgloss.Style{}
	if reflect.DeepEqual(s.Root, zero) {
		s.Root = def.Root
	}
	if reflect.DeepEqual(s.Container, zero) {
		s.Container = def.Container
	}
	if reflect.DeepEqual(s.Hint, zero) {
		s.Hint = def.Hint
	}
	if reflect.DeepEqual(s.SelectedHint, zero) {
		s.SelectedHint = def.SelectedHint
	}
	return s
}

func frameLeftTop(st lipgloss.Style) (left, top int) {
	left = st.GetMarginLeft() + st.GetBorderLeftSize() + st.GetPaddingLeft()
	top = st.GetMarginTop() + st.GetBorderTopSize() + st.GetPaddingTop()
	return left, top
}
