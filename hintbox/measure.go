package hintbox

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/iw2rmb/hinter/editor"
	"github.com/iw2rmb/hinter/internal/textlayout"
)

// measureSurface is an off-screen copy of the editor surface. It mirrors the
// text up to the caret, plus the rest of the caret's line so soft wraps fall
// where the editor puts them.
type measureSurface struct {
	opt   textlayout.Options
	lines []string
}

var measurePool = sync.Pool{
	New: func() any { return &measureSurface{lines: make([]string, 0, 64)} },
}

func acquireMeasure(s editor.Surface) *measureSurface {
	ms := measurePool.Get().(*measureSurface)
	ms.opt = s.Layout()
	ms.lines = ms.lines[:0]
	return ms
}

func (ms *measureSurface) release() {
	clear(ms.lines)
	ms.lines = ms.lines[:0]
	measurePool.Put(ms)
}

// mirror loads text around caret and returns the caret's logical row and
// rune column.
func (ms *measureSurface) mirror(text string, caret int) (row, col int) {
	before := runePrefix(text, caret)
	tail := text[len(before):]
	if i := strings.IndexByte(tail, '\n'); i >= 0 {
		tail = tail[:i]
	}

	for {
		i := strings.IndexByte(before, '\n')
		if i < 0 {
			break
		}
		ms.lines = append(ms.lines, before[:i])
		before = before[i+1:]
	}
	ms.lines = append(ms.lines, before+tail)
	return len(ms.lines) - 1, utf8.RuneCountInString(before)
}

// caretCoordinates returns the cell where the caret at rune offset caret is
// drawn, relative to the top-left of the surface's frame and minus the
// scroll offsets.
func caretCoordinates(s editor.Surface, text string, caret int) (x, y int) {
	ms := acquireMeasure(s)
	defer ms.release()

	row, col := ms.mirror(text, caret)
	doc := textlayout.FromLines(ms.lines, ms.opt)
	vr, cell := doc.Caret(row, col)
	if s.Wrap == editor.WrapNone {
		cell -= s.ScrollX
	}
	return s.FrameLeft + s.Gutter + cell, s.FrameTop + vr - s.ScrollY
}

func runePrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
