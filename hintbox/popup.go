package hintbox

import (
	"strings"

	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/hinter/internal/grapheme"
)

// popupLayout is the placement of the open popup inside the editor view.
type popupLayout struct {
	visible bool

	// x, y is the popup's top-left corner; width includes the frame.
	x, y  int
	width int

	// first is the item shown on the first row; rows is the row count.
	first, rows int
	selected    int
	items       []string

	styles Styles
}

func (m Model) popupLayout() popupLayout {
	s := m.st.session
	items := s.Items()
	if len(items) == 0 {
		return popupLayout{}
	}

	viewW, viewH := m.editor.Width(), m.editor.Height()
	width := minInt(m.cfg.Width, viewW)
	cont := m.cfg.Styles.Container
	frameV := cont.GetVerticalFrameSize()
	if width-cont.GetHorizontalFrameSize() <= 0 {
		return popupLayout{}
	}

	rootLeft, rootTop := frameLeftTop(m.cfg.Styles.Root)
	ax, ay := m.st.anchorX-rootLeft, m.st.anchorY-rootTop

	rows := minInt(s.PageSize(), len(items))
	below := maxInt(viewH-(ay+1), 0)
	above := maxInt(ay, 0)
	showBelow := true
	if rows+frameV > below {
		switch {
		case above >= rows+frameV:
			showBelow = false
		case above > below:
			showBelow = false
			rows = above - frameV
		default:
			rows = below - frameV
		}
	}
	if rows <= 0 {
		return popupLayout{}
	}

	sel := s.SelectedIndex()
	first := s.Offset()
	if sel >= first+rows {
		first = sel - rows + 1
	}
	if sel < first {
		first = sel
	}
	first = clampInt(first, 0, len(items)-rows)

	height := rows + frameV
	y := ay + 1
	if !showBelow {
		y = ay - height
	}
	y = clampInt(y, 0, viewH-height)
	x := clampInt(ax, 0, viewW-width)

	return popupLayout{
		visible:  true,
		x:        x,
		y:        y,
		width:    width,
		first:    first,
		rows:     rows,
		selected: sel,
		items:    items,
		styles:   m.cfg.Styles,
	}
}

// itemAt maps editor-view coordinates to the item drawn there.
func (p popupLayout) itemAt(x, y int) (int, bool) {
	if !p.visible {
		return 0, false
	}
	left, top := frameLeftTop(p.styles.Container)
	row := y - p.y - top
	col := x - p.x - left
	inner := p.width - p.styles.Container.GetHorizontalFrameSize()
	if row < 0 || row >= p.rows || col < 0 || col >= inner {
		return 0, false
	}
	return p.first + row, true
}

func (p popupLayout) render() string {
	inner := p.width - p.styles.Container.GetHorizontalFrameSize()
	lines := make([]string, 0, p.rows)
	for i := p.first; i < p.first+p.rows; i++ {
		st := p.styles.Hint
		if i == p.selected {
			st = p.styles.selected()
		}
		text := strings.ReplaceAll(p.items[i], "\n", " ")
		text = grapheme.Truncate(text, inner-st.GetHorizontalFrameSize(), grapheme.DefaultTabWidth)
		lines = append(lines, st.Width(inner).MaxWidth(inner).Render(text))
	}
	return p.styles.Container.Render(strings.Join(lines, "\n"))
}

func (p popupLayout) composite(base string) string {
	if !p.visible {
		return base
	}
	return overlay.Composite(p.render(), base, overlay.Left, overlay.Top, p.x, p.y)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
