package buffer

// Apply applies a sequence of text edits in order as a single undo step. Each
// edit's range is interpreted against the buffer state at the time that edit
// is applied.
//
// Semantics:
// - Edit ranges are clamped into current document bounds.
// - Empty range + non-empty text inserts.
// - Cursor moves to the end of the last effective edit.
//
// Apply reports whether the text changed.
func (b *Buffer) Apply(edits ...TextEdit) bool {
	if len(edits) == 0 {
		return false
	}

	prev := b.snapshot()
	anyChanged := false
	lastCursor := b.cursor

	for _, e := range edits {
		nextCursor, changed := b.replaceRange(e.Range, e.Text)
		if !changed {
			continue
		}
		anyChanged = true
		lastCursor = nextCursor
	}

	if !anyChanged {
		return false
	}

	b.cursor = b.clampPos(lastCursor)
	b.bumpText()
	b.recordUndo(prev)
	return true
}

// ReplaceOffsets replaces the rune span [start, end) with text as one undoable
// edit and places the cursor right after the inserted text. Offsets are
// clamped; reversed offsets are swapped.
func (b *Buffer) ReplaceOffsets(start, end int, text string) {
	r := Range{Start: b.PosFromOffset(start), End: b.PosFromOffset(end)}
	if !b.edit(r, text) {
		// Nothing changed textually; still honor the cursor contract.
		b.SetCursor(b.PosFromOffset(minInt(start, end) + len([]rune(text))))
	}
}
