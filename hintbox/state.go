package hintbox

import (
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/hinter/editor"
	"github.com/iw2rmb/hinter/hint"
)

// state is shared by the Model and the change handler installed into the
// editor. Model copies keep pointing at the same state.
type state struct {
	session  *hint.Session
	onChange func(editor.ChangeEvent)
	logger   *log.Logger

	// anchorX/anchorY is the caret cell the popup hangs from, widget-relative.
	anchorX, anchorY int
	// reanchor asks the next update to recompute the anchor.
	reanchor bool
	// scrollY/scrollX are the editor offsets the anchor was computed with.
	scrollY, scrollX int
}

// handleChange runs hint detection for a text change, or closes the popup
// for a caret-only move, then forwards the event to the caller.
func (st *state) handleChange(ev editor.ChangeEvent) {
	if ev.TextChanged {
		wasOpen := st.session.Open()
		if st.session.Refresh(ev.Text, ev.Offset) {
			st.logTransition(wasOpen)
		}
		// The caret moved even when the matches did not.
		st.reanchor = st.session.Open()
	} else if st.session.Dismiss() {
		// A caret-only move leaves the token the list was filtered for.
		st.logger.Debug("hints dismissed", "reason", "caret")
	}
	if st.onChange != nil {
		st.onChange(ev)
	}
}

func (st *state) logTransition(wasOpen bool) {
	switch open := st.session.Open(); {
	case open && !wasOpen:
		st.logger.Debug("hints opened", "token", st.session.Token(), "matches", len(st.session.Items()))
	case open:
		st.logger.Debug("hints changed", "token", st.session.Token(), "matches", len(st.session.Items()))
	case wasOpen:
		st.logger.Debug("hints closed")
	}
}
