package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/hinter/buffer"
)

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(8, 3)

	want := []string{"1 one", "2 two", "3 three"}
	if diff := cmp.Diff(want, viewLines(m)); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestView_WordWrap(t *testing.T) {
	m := New(Config{Text: "alpha beta gamma", WrapMode: WrapWord})
	m = m.Blur()
	m = m.SetSize(10, 3)

	want := []string{"alpha", "beta gamma", ""}
	if diff := cmp.Diff(want, viewLines(m)); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_WindowSizeMsg(t *testing.T) {
	m := New(Config{Text: "x"})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 12, Height: 5})
	if m.Width() != 12 || m.Height() != 5 {
		t.Fatalf("size: got %dx%d, want 12x5", m.Width(), m.Height())
	}
}

func TestModel_SyncAdoptsBufferWithoutOnChange(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{Text: "abc", OnChange: func(ev ChangeEvent) { events = append(events, ev) }})
	m = m.SetSize(10, 2)

	m.Buffer().ReplaceOffsets(0, 3, "xyz!")
	m = m.Sync()
	if len(events) != 0 {
		t.Fatalf("Sync emitted %d events, want 0", len(events))
	}
	if got, want := viewLines(m)[0], "xyz!"; got != want {
		t.Fatalf("view after Sync: got %q, want %q", got, want)
	}

	// Later updates only report their own change.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if len(events) != 1 {
		t.Fatalf("events after left: got %d, want 1", len(events))
	}
	if events[0].TextChanged {
		t.Fatalf("cursor move reported TextChanged")
	}
	if got, want := events[0].Cursor, (buffer.Pos{Row: 0, Col: 3}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestModel_WithOnChangeReplacesHandler(t *testing.T) {
	var first, second int
	m := New(Config{OnChange: func(ChangeEvent) { first++ }})
	m = m.WithOnChange(func(ChangeEvent) { second++ })

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if first != 0 || second != 1 {
		t.Fatalf("handlers: first=%d second=%d, want 0 and 1", first, second)
	}
}

func TestModel_FollowsCursorVertically(t *testing.T) {
	m := New(Config{Text: "1\n2\n3\n4\n5\n6"})
	m = m.SetSize(5, 2)

	for i := 0; i < 4; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	y, _ := m.ScrollOffset()
	if y != 3 {
		t.Fatalf("YOffset: got %d, want 3", y)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlHome})
	if y, _ = m.ScrollOffset(); y != 0 {
		t.Fatalf("YOffset after doc start: got %d, want 0", y)
	}
}

func TestModel_FollowsCursorHorizontallyWithoutWrap(t *testing.T) {
	m := New(Config{Text: "0123456789"})
	m = m.SetSize(4, 1)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if _, x := m.ScrollOffset(); x != 7 {
		t.Fatalf("xOffset: got %d, want 7", x)
	}
	if got, want := viewLines(m)[0], "789"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}
