package buffer

import "testing"

func TestBuffer_Apply_AppliesSequentiallyAgainstEvolvingState(t *testing.T) {
	b := New("hello", Options{})
	v := b.Version()

	changed := b.Apply(
		TextEdit{Range: Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 0, Col: 0}}, Text: "X"},
		TextEdit{Range: Range{Start: Pos{Row: 0, Col: 1}, End: Pos{Row: 0, Col: 2}}, Text: ""},
	)
	if !changed {
		t.Fatalf("apply reported no change")
	}

	if got, want := b.Text(), "Xello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}

	if !b.Undo() || b.Text() != "hello" {
		t.Fatalf("apply should be a single undo step, got %q", b.Text())
	}
}

func TestBuffer_Apply_ClampsOutOfBoundsRanges(t *testing.T) {
	b := New("ab\ncd", Options{})

	b.Apply(
		TextEdit{Range: Range{Start: Pos{Row: 999, Col: 999}, End: Pos{Row: 999, Col: 999}}, Text: "X"},
		TextEdit{Range: Range{Start: Pos{Row: -5, Col: -9}, End: Pos{Row: -5, Col: -9}}, Text: "Y"},
	)

	if got, want := b.Text(), "Yab\ncdX"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_Apply_NoEffectiveEditKeepsVersion(t *testing.T) {
	b := New("ab", Options{})
	v := b.Version()
	if b.Apply(TextEdit{Range: Range{Start: Pos{Col: 0}, End: Pos{Col: 1}}, Text: "a"}) {
		t.Fatalf("apply reported a change for identical text")
	}
	if b.Apply() {
		t.Fatalf("apply reported a change for no edits")
	}
	if b.Version() != v {
		t.Fatalf("version=%d, want %d", b.Version(), v)
	}
}

func TestBuffer_ReplaceOffsets(t *testing.T) {
	b := New("const foo = getVal", Options{})
	b.ReplaceOffsets(12, 18, "getValue")

	if got, want := b.Text(), "const foo = getValue"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Offset(), 20; got != want {
		t.Fatalf("offset=%d, want %d", got, want)
	}
}

func TestBuffer_ReplaceOffsets_SameTextStillMovesCursor(t *testing.T) {
	b := New("getValue", Options{})
	b.ReplaceOffsets(0, 8, "getValue")
	if got, want := b.Offset(), 8; got != want {
		t.Fatalf("offset=%d, want %d", got, want)
	}
	if b.CanUndo() {
		t.Fatalf("no textual change should not record history")
	}
}
