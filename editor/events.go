package editor

import "github.com/iw2rmb/hinter/buffer"

type ChangeEvent struct {
	Version uint64
	Cursor  buffer.Pos
	// Offset is the cursor as a rune offset into Text.
	Offset int

	// TextChanged is false for cursor-only updates.
	TextChanged bool
	Text        string
}

// NewChangeEvent snapshots b for a change notification.
func NewChangeEvent(b *buffer.Buffer, textChanged bool) ChangeEvent {
	return ChangeEvent{
		Version:     b.Version(),
		Cursor:      b.Cursor(),
		Offset:      b.Offset(),
		TextChanged: textChanged,
		Text:        b.Text(),
	}
}
