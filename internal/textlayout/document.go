package textlayout

import "strings"

type rowRef struct {
	line    int
	segment int
}

// Document is the layout of a whole text: logical lines and the visual rows
// they produce.
type Document struct {
	Options Options
	Lines   []Line

	rows      []rowRef
	firstRows []int
}

// New lays out text split on '\n'.
func New(text string, opt Options) Document {
	return FromLines(strings.Split(text, "\n"), opt)
}

// FromLines lays out pre-split logical lines.
func FromLines(lines []string, opt Options) Document {
	if len(lines) == 0 {
		lines = []string{""}
	}
	d := Document{
		Options:   opt,
		Lines:     make([]Line, len(lines)),
		firstRows: make([]int, len(lines)),
	}
	for i, text := range lines {
		l := LayoutLine(text, opt)
		d.Lines[i] = l
		d.firstRows[i] = len(d.rows)
		for s := range l.Segments {
			d.rows = append(d.rows, rowRef{line: i, segment: s})
		}
	}
	return d
}

// RowCount returns the number of visual rows.
func (d Document) RowCount() int { return len(d.rows) }

// Row resolves a visual row to its logical line and segment.
func (d Document) Row(visual int) (line int, seg Segment, ok bool) {
	if visual < 0 || visual >= len(d.rows) {
		return 0, Segment{}, false
	}
	ref := d.rows[visual]
	return ref.line, d.Lines[ref.line].Segments[ref.segment], true
}

// FirstRow returns the visual row where logical line starts.
func (d Document) FirstRow(line int) int {
	if len(d.firstRows) == 0 {
		return 0
	}
	return d.firstRows[clampInt(line, 0, len(d.firstRows)-1)]
}

// Caret returns the visual row and the cell within that row where a caret at
// (row, col) is drawn. With wrapping enabled the cell is relative to the
// segment start and never exceeds Width-1; without wrapping it is relative to
// the line start.
func (d Document) Caret(row, col int) (visualRow, cell int) {
	row = clampInt(row, 0, len(d.Lines)-1)
	l := d.Lines[row]
	si := l.SegmentForCol(col)
	seg := l.Segments[si]

	cell = l.CellForCol(col)
	if d.Options.wraps() {
		cell -= seg.StartCell
		if cell > d.Options.Width-1 {
			cell = d.Options.Width - 1
		}
	}
	return d.firstRows[row] + si, cell
}

// PosAt maps a visual row and a cell within it back to a logical (row, col).
// Out-of-range coordinates are clamped into the document.
func (d Document) PosAt(visualRow, cell int) (row, col int) {
	if len(d.rows) == 0 {
		return 0, 0
	}
	ref := d.rows[clampInt(visualRow, 0, len(d.rows)-1)]
	l := d.Lines[ref.line]
	seg := l.Segments[ref.segment]
	if cell < 0 {
		cell = 0
	}
	if d.Options.wraps() {
		cell += seg.StartCell
	}
	col = l.ColForCell(cell)
	return ref.line, clampInt(col, seg.StartCol, seg.EndCol)
}
