package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/hinter/internal/textlayout"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	doc := m.layout()
	cursor := m.buf.Cursor()
	gutter := m.gutterWidth()
	width := m.contentWidth()

	spansByLine := m.visibleHighlights(doc)

	out := make([]string, 0, doc.RowCount())
	for vr := 0; vr < doc.RowCount(); vr++ {
		row, seg, _ := doc.Row(vr)
		line := doc.Lines[row]
		first := vr == doc.FirstRow(row)

		var sb strings.Builder
		if gutter > 0 {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row && first {
				numStyle = m.cfg.Style.LineNumActive
			}
			num := fmt.Sprintf("%*s", gutter-1, "")
			if first {
				num = fmt.Sprintf("%*d", gutter-1, row+1)
			}
			sb.WriteString(numStyle.Render(num))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		cursorCol := -1
		if m.focused && row == cursor.Row && line.SegmentForCol(cursor.Col) == vr-doc.FirstRow(row) {
			cursorCol = cursor.Col
		}

		left, right := seg.StartCell, seg.StartCell+width
		if m.cfg.WrapMode == WrapNone || width <= 0 {
			left = maxInt(m.xOffset, 0)
			right = line.Width() + 1
			if width > 0 {
				right = left + width
			}
		}

		r := rowRenderer{
			style:   m.cfg.Style,
			line:    line,
			spans:   spansByLine[row],
			keys:    spanKeys(spansByLine[row], len(line.Runes)),
			cursor:  cursorCol,
			left:    left,
			right:   right,
			fullRow: m.cfg.WrapMode != WrapNone && width > 0 && seg.Cells() >= width,
		}
		sb.WriteString(r.render(seg))
		out = append(out, sb.String())
	}

	return strings.Join(out, "\n")
}

// visibleHighlights runs the highlighter for lines with at least one visible
// row.
func (m *Model) visibleHighlights(doc textlayout.Document) [][]HighlightSpan {
	spans := make([][]HighlightSpan, len(doc.Lines))
	if m.cfg.Highlighter == nil {
		return spans
	}
	h := m.visibleRowCount()
	if h <= 0 {
		return spans
	}
	cursor := m.buf.Cursor()
	start := clampInt(m.viewport.YOffset, 0, doc.RowCount())
	end := clampInt(start+h, 0, doc.RowCount())

	done := make([]bool, len(doc.Lines))
	for vr := start; vr < end; vr++ {
		row, _, _ := doc.Row(vr)
		if done[row] {
			continue
		}
		done[row] = true

		ctx := LineContext{Row: row, Text: string(doc.Lines[row].Runes), CursorCol: -1}
		if row == cursor.Row {
			ctx.CursorCol = cursor.Col
			ctx.HasCursor = true
		}
		got, err := m.cfg.Highlighter.HighlightLine(ctx)
		if err != nil {
			continue
		}
		spans[row] = normalizeHighlightSpans(got, len(doc.Lines[row].Runes))
	}
	return spans
}

type rowRenderer struct {
	style  Style
	line   textlayout.Line
	spans  []HighlightSpan
	keys   []int
	cursor int

	// left/right bound the visible cells of the line, half-open.
	left, right int
	// fullRow reports a wrapped segment that fills the whole width, so an
	// end-of-line cursor is drawn over the last cell instead of past it.
	fullRow bool
}

func (r rowRenderer) render(seg textlayout.Segment) string {
	var sb strings.Builder
	var run strings.Builder
	const cursorKey = -2
	runKey := -1

	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(r.styleFor(runKey).Render(run.String()))
		run.Reset()
	}
	emit := func(key int, text string) {
		if key != runKey {
			flush()
			runKey = key
		}
		run.WriteString(text)
	}

	lastVisible := -1
	for i := seg.StartCol; i < seg.EndCol; i = r.line.ClusterEnd(i) {
		cs, ce := r.line.CellForCol(i), r.line.CellForCol(r.line.ClusterEnd(i))
		if ce <= r.left || cs >= r.right {
			continue
		}
		lastVisible = i
	}

	eolCursor := r.cursor == seg.EndCol && r.cursor >= 0
	for i := seg.StartCol; i < seg.EndCol; {
		next := r.line.ClusterEnd(i)
		cs, ce := r.line.CellForCol(i), r.line.CellForCol(next)
		start := i
		i = next
		if ce <= r.left || cs >= r.right || ce == cs {
			continue
		}
		text := string(r.line.Runes[start:next])
		if text == "\t" || cs < r.left || ce > r.right {
			// Tabs and clipped wide clusters render as blanks.
			text = strings.Repeat(" ", minInt(ce, r.right)-maxInt(cs, r.left))
		}
		key := r.keys[start]
		if (r.cursor >= start && r.cursor < next) || (eolCursor && r.fullRow && start == lastVisible) {
			key = cursorKey
		}
		emit(key, text)
	}
	if eolCursor && !r.fullRow {
		if cell := r.line.CellForCol(r.cursor); cell >= r.left && cell < r.right {
			emit(cursorKey, " ")
		}
	}
	flush()
	return sb.String()
}

func (r rowRenderer) styleFor(key int) lipgloss.Style {
	switch {
	case key == -2:
		return r.style.Cursor
	case key >= 0 && key < len(r.spans):
		return r.spans[key].Style
	default:
		return r.style.Text
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
