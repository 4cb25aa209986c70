package hint

import "slices"

// State is the dropdown state.
type State uint8

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// InputSource records which device drove the most recent interaction. Pointer
// hover only moves the selection while the source is SourcePointer, so a row
// that re-renders under a resting mouse cannot steal a keyboard selection.
type InputSource uint8

const (
	SourceKeyboard InputSource = iota
	SourcePointer
)

// DefaultPageSize is the number of rows shown when a session is created with a
// non-positive page size.
const DefaultPageSize = 10

// Session is the per-widget autocomplete state machine.
//
// While Open, 0 <= SelectedIndex() < len(Items()). The zero value is not
// usable; construct with NewSession.
type Session struct {
	matcher  Matcher
	pageSize int

	items    []string
	selected int
	offset   int
	token    string
	start    int

	source InputSource
}

func NewSession(m Matcher, pageSize int) *Session {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Session{matcher: m, pageSize: pageSize}
}

// SetMatcher swaps the candidate source. The current list is kept until the
// next Refresh.
func (s *Session) SetMatcher(m Matcher) { s.matcher = m }

func (s *Session) State() State {
	if len(s.items) == 0 {
		return Closed
	}
	return Open
}

func (s *Session) Open() bool { return len(s.items) > 0 }

// Items returns the filtered list. Callers must not modify it.
func (s *Session) Items() []string { return s.items }

func (s *Session) SelectedIndex() int { return s.selected }

// Selected returns the highlighted candidate.
func (s *Session) Selected() (string, bool) {
	if !s.Open() {
		return "", false
	}
	return s.items[s.selected], true
}

// Token returns the token the current list was filtered with.
func (s *Session) Token() string { return s.token }

// TokenStart returns the rune offset of the token the list was filtered with.
func (s *Session) TokenStart() int { return s.start }

// Offset returns the first visible row, keeping the selection inside a window
// of PageSize rows.
func (s *Session) Offset() int { return s.offset }

func (s *Session) PageSize() int { return s.pageSize }

func (s *Session) Source() InputSource { return s.source }

// Refresh handles a text change: it detects the token ending at caret and
// filters the candidates with it. A non-empty result opens the session with
// the first row selected; an empty one closes it. The return value reports
// whether the visible list changed (opened, closed, or different content).
func (s *Session) Refresh(text string, caret int) bool {
	before := runePrefix(text, caret)
	token := CurrentWord(before)

	var items []string
	if token != "" && s.matcher != nil {
		items = s.matcher.Match(token)
	}
	if len(items) == 0 {
		return s.close()
	}

	changed := !slices.Equal(items, s.items)
	s.items = items
	s.token = token
	s.start = WordStart(text, caret)
	s.selected = 0
	s.offset = 0
	return changed
}

// Next moves the selection down by one row, stopping at the last row.
func (s *Session) Next() bool { return s.moveBy(1) }

// Prev moves the selection up by one row, stopping at the first row.
func (s *Session) Prev() bool { return s.moveBy(-1) }

// PageNext moves the selection down by one page, clamped.
func (s *Session) PageNext() bool { return s.moveBy(s.pageSize) }

// PagePrev moves the selection up by one page, clamped.
func (s *Session) PagePrev() bool { return s.moveBy(-s.pageSize) }

func (s *Session) moveBy(delta int) bool {
	if !s.Open() {
		return false
	}
	return s.selectIndex(s.selected + delta)
}

// Key records keyboard input.
func (s *Session) Key() { s.source = SourceKeyboard }

// PointerMove records pointer movement over the list.
func (s *Session) PointerMove() { s.source = SourcePointer }

// Hover selects row i when the pointer is the active input source.
func (s *Session) Hover(i int) bool {
	if !s.Open() || s.source != SourcePointer || i < 0 || i >= len(s.items) {
		return false
	}
	return s.selectIndex(i)
}

// Dismiss closes the session.
func (s *Session) Dismiss() bool { return s.close() }

// Confirm splices the selected candidate into text at caret and closes the
// session. It is a no-op while Closed.
func (s *Session) Confirm(text string, caret int) (Result, bool) {
	if !s.Open() {
		return Result{}, false
	}
	return s.ConfirmIndex(s.selected, text, caret)
}

// ConfirmIndex is Confirm for row i.
func (s *Session) ConfirmIndex(i int, text string, caret int) (Result, bool) {
	if !s.Open() || i < 0 || i >= len(s.items) {
		return Result{}, false
	}
	res, ok := Splice(text, caret, s.items[i])
	s.close()
	return res, ok
}

func (s *Session) selectIndex(i int) bool {
	i = clampInt(i, 0, len(s.items)-1)
	if i == s.selected {
		return false
	}
	s.selected = i
	switch {
	case s.selected < s.offset:
		s.offset = s.selected
	case s.selected >= s.offset+s.pageSize:
		s.offset = s.selected - s.pageSize + 1
	}
	return true
}

func (s *Session) close() bool {
	wasOpen := s.Open()
	s.items = nil
	s.selected = 0
	s.offset = 0
	s.token = ""
	s.start = 0
	return wasOpen
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
