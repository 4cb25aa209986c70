package hint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func openSession(t *testing.T, text string) *Session {
	t.Helper()
	s := NewSession(List(sampleHints), 3)
	if !s.Refresh(text, len([]rune(text))) {
		t.Fatalf("expected refresh of %q to open the session", text)
	}
	return s
}

func TestSession_InitialStateClosed(t *testing.T) {
	s := NewSession(List(sampleHints), 0)
	if s.State() != Closed || s.Open() {
		t.Fatalf("new session should be closed")
	}
	if got, want := s.PageSize(), DefaultPageSize; got != want {
		t.Fatalf("page size: got %d, want %d", got, want)
	}
	if _, ok := s.Selected(); ok {
		t.Fatalf("closed session has no selection")
	}
	if s.Next() || s.Prev() {
		t.Fatalf("navigation while closed should be a no-op")
	}
}

func TestSession_RefreshOpensAndResetsSelection(t *testing.T) {
	s := openSession(t, "x = con")
	if diff := cmp.Diff([]string{"const", "console", "continue", "constructor", "console"}, s.Items()); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	if got, want := s.Token(), "con"; got != want {
		t.Fatalf("token: got %q, want %q", got, want)
	}
	if got, want := s.TokenStart(), 4; got != want {
		t.Fatalf("token start: got %d, want %d", got, want)
	}

	s.Next()
	s.Next()
	s.Refresh("x = cons", 8)
	if got := s.SelectedIndex(); got != 0 {
		t.Fatalf("selection after refresh: got %d, want 0", got)
	}
}

func TestSession_RefreshReportsContentChanges(t *testing.T) {
	s := openSession(t, "co")
	if s.Refresh("co", 2) {
		t.Fatalf("same list should not report a change")
	}
	if !s.Refresh("cl", 2) {
		t.Fatalf("different list should report a change")
	}
}

func TestSession_RefreshClosesOnNoMatchOrNoToken(t *testing.T) {
	s := openSession(t, "co")
	if !s.Refresh("coz", 3) {
		t.Fatalf("closing should report a change")
	}
	if s.Open() {
		t.Fatalf("no matches should close the session")
	}

	s = openSession(t, "co")
	s.Refresh("co ", 3)
	if s.Open() {
		t.Fatalf("a caret after whitespace should close the session")
	}
}

func TestSession_RefreshUsesCaretNotTextEnd(t *testing.T) {
	s := NewSession(List(sampleHints), 0)
	s.Refresh("cl zzz", 2)
	if diff := cmp.Diff([]string{"class"}, s.Items()); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_NavigationClampsWithoutWraparound(t *testing.T) {
	s := openSession(t, "con")
	last := len(s.Items()) - 1

	if s.Prev() {
		t.Fatalf("prev at index 0 should be a no-op")
	}
	if got := s.SelectedIndex(); got != 0 {
		t.Fatalf("selected: got %d, want 0", got)
	}

	for i := 0; i < 10; i++ {
		s.Next()
	}
	if got := s.SelectedIndex(); got != last {
		t.Fatalf("selected: got %d, want %d", got, last)
	}
	if s.Next() {
		t.Fatalf("next at last index should be a no-op")
	}
	if got := s.SelectedIndex(); got != last {
		t.Fatalf("selected after extra next: got %d, want %d", got, last)
	}
}

func TestSession_OffsetKeepsSelectionVisible(t *testing.T) {
	s := openSession(t, "con") // 5 items, page size 3

	s.Next()
	s.Next()
	if got := s.Offset(); got != 0 {
		t.Fatalf("offset: got %d, want 0", got)
	}
	s.Next()
	if got := s.Offset(); got != 1 {
		t.Fatalf("offset: got %d, want 1", got)
	}
	s.PageNext()
	if got, want := s.SelectedIndex(), 4; got != want {
		t.Fatalf("selected after page next: got %d, want %d", got, want)
	}
	if got, want := s.Offset(), 2; got != want {
		t.Fatalf("offset after page next: got %d, want %d", got, want)
	}
	s.PagePrev()
	if got, want := s.SelectedIndex(), 1; got != want {
		t.Fatalf("selected after page prev: got %d, want %d", got, want)
	}
	if got, want := s.Offset(), 1; got != want {
		t.Fatalf("offset after page prev: got %d, want %d", got, want)
	}
}

func TestSession_HoverRequiresPointerSource(t *testing.T) {
	s := openSession(t, "con")

	s.Key()
	s.Next()
	// A stationary pointer over row 3 must not override the keyboard selection.
	if s.Hover(3) {
		t.Fatalf("hover in keyboard mode should be ignored")
	}
	if got := s.SelectedIndex(); got != 1 {
		t.Fatalf("selected: got %d, want 1", got)
	}

	s.PointerMove()
	if s.Source() != SourcePointer {
		t.Fatalf("pointer move should switch the input source")
	}
	if !s.Hover(3) {
		t.Fatalf("hover in pointer mode should select")
	}
	if got := s.SelectedIndex(); got != 3 {
		t.Fatalf("selected: got %d, want 3", got)
	}
	if s.Hover(99) || s.Hover(-1) {
		t.Fatalf("out of range hover should be ignored")
	}

	s.Key()
	if s.Source() != SourceKeyboard {
		t.Fatalf("key should switch the input source back")
	}
}

func TestSession_ConfirmSplicesAndCloses(t *testing.T) {
	s := NewSession(List([]string{"getValue", "getter"}), 0)
	text := "const foo = getVal"
	caret := len([]rune(text))
	s.Refresh(text, caret)

	res, ok := s.Confirm(text, caret)
	if !ok {
		t.Fatalf("expected confirm to apply")
	}
	if got, want := res.Text, "const foo = getValue"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := res.Caret, 20; got != want {
		t.Fatalf("caret: got %d, want %d", got, want)
	}
	if s.Open() {
		t.Fatalf("confirm should close the session")
	}
	if _, ok := s.Confirm(res.Text, res.Caret); ok {
		t.Fatalf("confirm while closed should be a no-op")
	}
}

func TestSession_ConfirmIndexWithDuplicates(t *testing.T) {
	s := openSession(t, "console")
	if got, want := len(s.Items()), 2; got != want {
		t.Fatalf("duplicate candidates should be kept: got %d rows, want %d", got, want)
	}
	res, ok := s.ConfirmIndex(1, "console", 7)
	if !ok || res.Text != "console" {
		t.Fatalf("confirm duplicate row: got %+v ok=%v", res, ok)
	}

	s = openSession(t, "con")
	if _, ok := s.ConfirmIndex(9, "con", 3); ok {
		t.Fatalf("out of range confirm should be a no-op")
	}
	if !s.Open() {
		t.Fatalf("rejected confirm should leave the session open")
	}
}

func TestSession_DismissAndSetMatcher(t *testing.T) {
	s := openSession(t, "con")
	if !s.Dismiss() {
		t.Fatalf("dismiss should report closing")
	}
	if s.Dismiss() {
		t.Fatalf("dismiss while closed should report no change")
	}

	s.SetMatcher(List([]string{"zeta"}))
	s.Refresh("ze", 2)
	if diff := cmp.Diff([]string{"zeta"}, s.Items()); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_NilMatcherNeverOpens(t *testing.T) {
	s := NewSession(nil, 0)
	if s.Refresh("abc", 3) || s.Open() {
		t.Fatalf("nil matcher should never open")
	}
}

func TestState_String(t *testing.T) {
	if Open.String() != "open" || Closed.String() != "closed" {
		t.Fatalf("unexpected state strings: %q %q", Open, Closed)
	}
}
