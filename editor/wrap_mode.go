package editor

import "github.com/iw2rmb/hinter/internal/textlayout"

// WrapMode controls how long logical lines are displayed.
//
// WrapNone renders one logical line per visual row and uses horizontal scrolling
// to keep the cursor visible. WrapWord and WrapGrapheme use soft wrapping.
type WrapMode = textlayout.WrapMode

const (
	WrapNone     = textlayout.WrapNone
	WrapWord     = textlayout.WrapWord
	WrapGrapheme = textlayout.WrapGrapheme
)

// ParseWrapMode maps "none", "word" and "grapheme" to a WrapMode.
func ParseWrapMode(s string) (WrapMode, bool) {
	switch s {
	case "", "none":
		return WrapNone, true
	case "word":
		return WrapWord, true
	case "grapheme", "char":
		return WrapGrapheme, true
	default:
		return WrapNone, false
	}
}
