// Package textlayout maps logical lines of text onto terminal cells.
//
// The same layout drives editor rendering, hit testing, and caret
// measurement, so every consumer agrees on where a rune lands on screen.
package textlayout

import (
	"unicode/utf8"

	"github.com/iw2rmb/hinter/internal/grapheme"
)

// WrapMode controls how long logical lines are displayed.
//
// WrapNone renders one logical line per visual row. WrapWord and WrapGrapheme
// use soft wrapping at the content width; WrapWord prefers breaking after
// whitespace. Rows never break inside a grapheme cluster.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapGrapheme
)

// Options describes the surface text is laid out on.
type Options struct {
	// Width is the content width in cells. Non-positive disables wrapping.
	Width    int
	Wrap     WrapMode
	TabWidth int
}

func (o Options) wraps() bool {
	return o.Width > 0 && o.Wrap != WrapNone
}

// Segment is one visual row of a logical line: runes [StartCol, EndCol)
// occupying cells [StartCell, EndCell) measured from the line start.
type Segment struct {
	StartCol, EndCol   int
	StartCell, EndCell int
}

func (s Segment) Cells() int { return s.EndCell - s.StartCell }

// Line is the layout of one logical line. Columns are rune indexes; cells
// are assigned per grapheme cluster.
type Line struct {
	Runes    []rune
	Segments []Segment

	// cells[i] is the start cell of the cluster containing rune i;
	// cells[len(Runes)] is the total width.
	cells []int
	// next[i] is the rune index following the cluster that contains rune i.
	next []int
}

// LayoutLine lays out a single logical line.
func LayoutLine(text string, opt Options) Line {
	runes := []rune(text)
	n := len(runes)
	l := Line{Runes: runes, cells: make([]int, n+1), next: make([]int, n)}

	used, col := 0, 0
	for _, c := range grapheme.Split(text) {
		size := utf8.RuneCountInString(c)
		w := grapheme.Width(c, used, opt.TabWidth)
		if c != "\t" && isControl(c) {
			w = 0
		}
		for i := col; i < col+size; i++ {
			l.cells[i] = used
			l.next[i] = col + size
		}
		used += w
		col += size
	}
	l.cells[n] = used

	l.Segments = wrapSegments(l, opt)
	return l
}

// Width returns the line width in cells.
func (l Line) Width() int { return l.cells[len(l.Runes)] }

// CellForCol returns the start cell of the cluster containing rune col
// (clamped).
func (l Line) CellForCol(col int) int {
	return l.cells[clampInt(col, 0, len(l.Runes))]
}

// ColForCell returns the first rune of the cluster whose cell span contains
// cell. Cells past the end map to the line end.
func (l Line) ColForCell(cell int) int {
	if cell <= 0 {
		return 0
	}
	for i := 0; i < len(l.Runes); i = l.next[i] {
		if cell < l.cells[l.next[i]] {
			return i
		}
	}
	return len(l.Runes)
}

// ClusterEnd returns the rune index following the cluster that contains col.
func (l Line) ClusterEnd(col int) int {
	if col < 0 || col >= len(l.next) {
		return clampInt(col+1, 0, len(l.Runes))
	}
	return l.next[col]
}

// SegmentForCol returns the index of the segment that displays the caret at
// col. A caret sitting exactly on a soft-wrap boundary belongs to the
// following segment.
func (l Line) SegmentForCol(col int) int {
	col = clampInt(col, 0, len(l.Runes))
	for i, seg := range l.Segments {
		if col < seg.EndCol || i == len(l.Segments)-1 {
			return i
		}
	}
	return 0
}

func wrapSegments(l Line, opt Options) []Segment {
	n := len(l.Runes)
	if !opt.wraps() || n == 0 {
		return []Segment{{StartCol: 0, EndCol: n, StartCell: 0, EndCell: l.cells[n]}}
	}

	segs := make([]Segment, 0, 1+l.cells[n]/opt.Width)
	for start := 0; start < n; {
		end := start
		for end < n {
			nx := l.next[end]
			if end > start && l.cells[nx]-l.cells[start] > opt.Width {
				break
			}
			end = nx
		}
		if opt.Wrap == WrapWord && end < n {
			if br, ok := wordBreak(l, start, end); ok {
				end = br
			}
		}
		segs = append(segs, Segment{
			StartCol:  start,
			EndCol:    end,
			StartCell: l.cells[start],
			EndCell:   l.cells[end],
		})
		start = end
	}
	return segs
}

// wordBreak finds the last cluster boundary in (start, overflow] that
// directly follows whitespace.
func wordBreak(l Line, start, overflow int) (int, bool) {
	for i := overflow; i > start; i-- {
		if l.next[i-1] == i && grapheme.IsSpace(l.Runes[i-1]) {
			return i, true
		}
	}
	return 0, false
}

func isControl(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return r < 0x20 || r == 0x7f
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
