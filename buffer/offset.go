package buffer

// RuneLen returns the document length in runes, counting each line break as
// one rune.
func (b *Buffer) RuneLen() int {
	n := 0
	for i, line := range b.lines {
		if i > 0 {
			n++
		}
		n += len(line)
	}
	return n
}

// Offset returns the cursor as a rune offset.
func (b *Buffer) Offset() int {
	return b.OffsetFromPos(b.cursor)
}

// SetOffset moves the cursor to the given rune offset (clamped).
func (b *Buffer) SetOffset(off int) {
	b.SetCursor(b.PosFromOffset(off))
}

// PosFromOffset converts a rune offset to a document position. Offsets outside
// [0, RuneLen()] are clamped.
func (b *Buffer) PosFromOffset(off int) Pos {
	if off <= 0 {
		return Pos{}
	}
	for row, line := range b.lines {
		if off <= len(line) {
			return Pos{Row: row, Col: off}
		}
		off -= len(line) + 1
	}
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last])}
}

// OffsetFromPos converts a document position to a rune offset. The position is
// clamped into document bounds first.
func (b *Buffer) OffsetFromPos(p Pos) int {
	p = b.clampPos(p)
	off := 0
	for row := 0; row < p.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off + p.Col
}
