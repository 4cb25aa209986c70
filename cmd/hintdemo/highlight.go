package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/hinter/editor"
	"github.com/iw2rmb/hinter/hint"
)

var jsKeywords = map[string]bool{
	"async": true, "await": true, "break": true, "case": true, "catch": true,
	"class": true, "const": true, "continue": true, "default": true, "do": true,
	"else": true, "export": true, "extends": true, "finally": true, "for": true,
	"from": true, "function": true, "if": true, "import": true, "let": true,
	"new": true, "return": true, "switch": true, "this": true, "throw": true,
	"try": true, "typeof": true, "var": true, "while": true,
}

// jsHighlighter colors JavaScript keywords and line comments.
type jsHighlighter struct {
	keyword lipgloss.Style
	comment lipgloss.Style
}

func newJSHighlighter() jsHighlighter {
	return jsHighlighter{
		keyword: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		comment: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
	}
}

func (h jsHighlighter) HighlightLine(ctx editor.LineContext) ([]editor.HighlightSpan, error) {
	runes := []rune(ctx.Text)
	end := len(runes)
	var spans []editor.HighlightSpan

	if i := strings.Index(ctx.Text, "//"); i >= 0 {
		start := len([]rune(ctx.Text[:i]))
		spans = append(spans, editor.HighlightSpan{StartCol: start, EndCol: end, Style: h.comment})
		end = start
	}

	for i := 0; i < end; {
		if !hint.IsWordRune(runes[i]) {
			i++
			continue
		}
		j := i
		for j < end && hint.IsWordRune(runes[j]) {
			j++
		}
		if jsKeywords[string(runes[i:j])] {
			spans = append(spans, editor.HighlightSpan{StartCol: i, EndCol: j, Style: h.keyword})
		}
		i = j
	}
	return spans, nil
}
