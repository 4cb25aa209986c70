package editor

import (
	"github.com/iw2rmb/hinter/buffer"
)

// ScreenToDoc maps editor-local coordinates to a document position.
//
// (0,0) is the editor's top-left corner, frame included. Coordinates outside
// the text area are clamped into the document; gutter clicks land on column 0.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	if m.buf == nil {
		return buffer.Pos{}
	}
	s := m.Surface()
	doc := m.layout()

	x -= s.FrameLeft + s.Gutter
	y -= s.FrameTop
	if x < 0 {
		x = 0
	}
	if s.Wrap == WrapNone {
		x += s.ScrollX
	}
	row, col := doc.PosAt(s.ScrollY+y, x)
	return buffer.Pos{Row: row, Col: col}
}

// DocToScreen maps a document position to editor-local coordinates (the
// inverse of ScreenToDoc). ok is false when the position is scrolled out of
// the text area.
func (m Model) DocToScreen(p buffer.Pos) (x, y int, ok bool) {
	if m.buf == nil {
		return 0, 0, false
	}
	s := m.Surface()
	doc := m.layout()

	row, cell := doc.Caret(p.Row, p.Col)
	if s.Wrap == WrapNone {
		cell -= s.ScrollX
	}
	y = row - s.ScrollY
	ok = y >= 0 && y < s.Height && cell >= 0 && (s.Width <= 0 || cell < s.Width)

	return s.FrameLeft + s.Gutter + cell, s.FrameTop + y, ok
}

func (m Model) inTextArea(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}
