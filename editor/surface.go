package editor

import (
	"strconv"

	"github.com/iw2rmb/hinter/internal/textlayout"
)

// Surface describes the geometry text is drawn on. Overlays use it to place
// themselves relative to document positions with the same arithmetic the
// renderer uses.
type Surface struct {
	// Width and Height of the text area in cells (gutter and frame excluded).
	Width, Height int

	TabWidth int
	Wrap     WrapMode

	// Gutter is the line-number column width in cells.
	Gutter int

	// FrameLeft/FrameTop is the offset of the text area from the editor's
	// top-left corner, Viewport border/padding/margin included.
	FrameLeft, FrameTop int

	// ScrollY is the first visible visual row; ScrollX the first visible
	// cell (WrapNone only).
	ScrollY, ScrollX int
}

// Surface returns the current drawing geometry.
func (m Model) Surface() Surface {
	st := m.viewport.Style
	return Surface{
		Width:     m.contentWidth(),
		Height:    maxInt(m.visibleRowCount(), 0),
		TabWidth:  m.cfg.TabWidth,
		Wrap:      m.cfg.WrapMode,
		Gutter:    m.gutterWidth(),
		FrameLeft: st.GetMarginLeft() + st.GetBorderLeftSize() + st.GetPaddingLeft(),
		FrameTop:  st.GetMarginTop() + st.GetBorderTopSize() + st.GetPaddingTop(),
		ScrollY:   m.viewport.YOffset,
		ScrollX:   m.xOffset,
	}
}

// Layout returns the options text is laid out with for this surface.
func (s Surface) Layout() textlayout.Options {
	return textlayout.Options{Width: s.Width, Wrap: s.Wrap, TabWidth: s.TabWidth}
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return len(strconv.Itoa(m.buf.LineCount())) + 1
}

// contentWidth is the text area width in cells; 0 when the editor is unsized.
func (m Model) contentWidth() int {
	if m.viewport.Width <= 0 {
		return 0
	}
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
	return maxInt(w, 0)
}

func (m Model) layout() textlayout.Document {
	lines := make([]string, m.buf.LineCount())
	for i := range lines {
		lines[i] = m.buf.Line(i)
	}
	return textlayout.FromLines(lines, m.Surface().Layout())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
