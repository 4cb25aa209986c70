package hint

import (
	"strings"
	"unicode/utf8"
)

// Result is the outcome of splicing a candidate into text.
type Result struct {
	// Text is the full text after the replacement.
	Text string
	// Caret is the rune offset immediately after the inserted candidate.
	Caret int
	// Start and End are the rune offsets of the replaced token in the
	// original text.
	Start, End int
	// Candidate is the inserted text.
	Candidate string
}

// Splice replaces the token ending at caret with candidate, leaving the text
// before the token and everything after caret untouched. When no token ends
// at caret the candidate is inserted at caret. An empty candidate is a no-op.
func Splice(text string, caret int, candidate string) (Result, bool) {
	if candidate == "" {
		return Result{}, false
	}

	before := runePrefix(text, caret)
	after := text[len(before):]
	token := CurrentWord(before)

	end := utf8.RuneCountInString(before)
	start := end - utf8.RuneCountInString(token)

	var sb strings.Builder
	sb.Grow(len(text) - len(token) + len(candidate))
	sb.WriteString(before[:len(before)-len(token)])
	sb.WriteString(candidate)
	sb.WriteString(after)

	return Result{
		Text:      sb.String(),
		Caret:     start + utf8.RuneCountInString(candidate),
		Start:     start,
		End:       end,
		Candidate: candidate,
	}, true
}
