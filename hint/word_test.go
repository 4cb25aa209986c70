package hint

import "testing"

func TestCurrentWord(t *testing.T) {
	cases := []struct {
		before string
		want   string
	}{
		{before: "", want: ""},
		{before: "const foo = getVal", want: "getVal"},
		{before: "foo.bar", want: "bar"},
		{before: "foo ", want: ""},
		{before: "foo(", want: ""},
		{before: "a_b9", want: "a_b9"},
		{before: "x = größe", want: "größe"},
		{before: "line1\nnext", want: "next"},
	}
	for _, tc := range cases {
		if got := CurrentWord(tc.before); got != tc.want {
			t.Fatalf("CurrentWord(%q): got %q, want %q", tc.before, got, tc.want)
		}
	}
}

func TestCurrentWord_IsMaximalTrailingRun(t *testing.T) {
	text := "let value_1 = other + thing"
	runes := []rune(text)
	for c := 0; c <= len(runes); c++ {
		got := CurrentWord(string(runes[:c]))
		n := len([]rune(got))
		if c > 0 && !IsWordRune(runes[c-1]) && got != "" {
			t.Fatalf("caret %d after non-word rune: got %q, want empty", c, got)
		}
		if n < c && IsWordRune(runes[c-n-1]) {
			t.Fatalf("caret %d: token %q is not maximal", c, got)
		}
	}
}

func TestWordStart(t *testing.T) {
	text := "πi foo bar"
	cases := []struct {
		caret, want int
	}{
		{caret: 0, want: 0},
		{caret: 2, want: 0},
		{caret: 3, want: 3},
		{caret: 5, want: 3},
		{caret: 10, want: 7},
		{caret: 99, want: 7},
		{caret: -3, want: 0},
	}
	for _, tc := range cases {
		if got := WordStart(text, tc.caret); got != tc.want {
			t.Fatalf("WordStart(%d): got %d, want %d", tc.caret, got, tc.want)
		}
	}
}

func TestWordStart_IgnoresTextAfterCaret(t *testing.T) {
	if got, want := WordStart("abc def", 2), 0; got != want {
		t.Fatalf("WordStart: got %d, want %d", got, want)
	}
	if got, want := WordStart("abc defXYZ", 6), 4; got != want {
		t.Fatalf("WordStart: got %d, want %d", got, want)
	}
}
