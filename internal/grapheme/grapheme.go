// Package grapheme measures text in terminal cells.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a caller passes a non-positive tab width.
const DefaultTabWidth = 4

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// TabAdvance returns the number of cells a tab occupies when it starts at
// visualCol.
func TabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if visualCol < 0 {
		visualCol = 0
	}
	return tabWidth - visualCol%tabWidth
}

// Width returns the cell width of a grapheme cluster starting at visualCol.
func Width(cluster string, visualCol, tabWidth int) int {
	if cluster == "\t" {
		return TabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// StringWidth returns the cell width of text laid out from column 0.
func StringWidth(text string, tabWidth int) int {
	used := 0
	for _, c := range Split(text) {
		used += Width(c, used, tabWidth)
	}
	return used
}

// Truncate cuts text to at most width cells without splitting a grapheme
// cluster. A wide cluster that does not fit is replaced by blanks so the
// result is exactly min(width, StringWidth(text)) cells.
func Truncate(text string, width, tabWidth int) string {
	if width <= 0 || text == "" {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := Width(c, used, tabWidth)
		if used+w > width {
			sb.WriteString(strings.Repeat(" ", width-used))
			break
		}
		if c == "\t" {
			c = strings.Repeat(" ", w)
		}
		sb.WriteString(c)
		used += w
	}
	return sb.String()
}

// IsSpace reports whether r is Unicode whitespace.
func IsSpace(r rune) bool { return unicode.IsSpace(r) }

// IsPunct reports whether r is Unicode punctuation.
func IsPunct(r rune) bool { return unicode.IsPunct(r) }
