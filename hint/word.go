package hint

import (
	"unicode"
	"unicode/utf8"
)

// IsWordRune reports whether r can be part of a token: a letter, a digit, or
// an underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// CurrentWord returns the longest run of word runes at the very end of before.
// It returns "" when before is empty or ends in a non-word rune.
func CurrentWord(before string) string {
	i := len(before)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(before[:i])
		if !IsWordRune(r) {
			break
		}
		i -= size
	}
	return before[i:]
}

// WordStart returns the rune offset where the token ending at caret begins.
// It equals caret when no token ends there. Only text before caret is read.
func WordStart(text string, caret int) int {
	before := runePrefix(text, caret)
	caret = utf8.RuneCountInString(before)
	return caret - utf8.RuneCountInString(CurrentWord(before))
}

// runePrefix returns the first n runes of s, clamping n into [0, len).
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
