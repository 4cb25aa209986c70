package buffer

import "testing"

func TestBuffer_OffsetConversions(t *testing.T) {
	b := New("ab\nπテ\n", Options{})

	cases := []struct {
		off int
		pos Pos
	}{
		{off: 0, pos: Pos{Row: 0, Col: 0}},
		{off: 2, pos: Pos{Row: 0, Col: 2}},
		{off: 3, pos: Pos{Row: 1, Col: 0}},
		{off: 5, pos: Pos{Row: 1, Col: 2}},
		{off: 6, pos: Pos{Row: 2, Col: 0}},
	}
	for _, tc := range cases {
		if got := b.PosFromOffset(tc.off); got != tc.pos {
			t.Fatalf("PosFromOffset(%d)=%v, want %v", tc.off, got, tc.pos)
		}
		if got := b.OffsetFromPos(tc.pos); got != tc.off {
			t.Fatalf("OffsetFromPos(%v)=%d, want %d", tc.pos, got, tc.off)
		}
	}

	if got, want := b.RuneLen(), 6; got != want {
		t.Fatalf("rune len=%d, want %d", got, want)
	}
}

func TestBuffer_OffsetClamps(t *testing.T) {
	b := New("abc", Options{})

	if got, want := b.PosFromOffset(-4), (Pos{}); got != want {
		t.Fatalf("negative offset=%v, want %v", got, want)
	}
	if got, want := b.PosFromOffset(99), (Pos{Row: 0, Col: 3}); got != want {
		t.Fatalf("large offset=%v, want %v", got, want)
	}

	b.SetOffset(2)
	if got, want := b.Offset(), 2; got != want {
		t.Fatalf("offset=%d, want %d", got, want)
	}
}
