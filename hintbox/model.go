package hintbox

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hinter/editor"
	"github.com/iw2rmb/hinter/hint"
)

// Model is an editor with a hint dropdown.
type Model struct {
	cfg    Config
	editor editor.Model
	st     *state
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	st := &state{
		session:  hint.NewSession(cfg.Matcher, cfg.MaxRows),
		onChange: cfg.OnChange,
		logger:   cfg.Logger,
	}

	edCfg := cfg.Editor
	edCfg.OnChange = st.handleChange

	return Model{
		cfg:    cfg,
		editor: editor.New(edCfg),
		st:     st,
	}
}

func (m Model) Init() tea.Cmd { return m.editor.Init() }

// Editor returns the embedded editor.
func (m Model) Editor() editor.Model { return m.editor }

// Session exposes the hint state machine for inspection.
func (m Model) Session() *hint.Session { return m.st.session }

func (m Model) Value() string { return m.editor.Buffer().Text() }

// SetMatcher swaps the candidate source. The popup updates on the next edit.
func (m Model) SetMatcher(mt hint.Matcher) Model {
	m.cfg.Matcher = mt
	m.st.session.SetMatcher(mt)
	return m
}

// Anchor returns the widget-relative caret cell the popup hangs from.
func (m Model) Anchor() (x, y int, ok bool) {
	if !m.st.session.Open() {
		return 0, 0, false
	}
	return m.st.anchorX, m.st.anchorY, true
}

func (m Model) SetSize(width, height int) Model {
	st := m.cfg.Styles.Root
	m.editor = m.editor.SetSize(width-st.GetHorizontalFrameSize(), height-st.GetVerticalFrameSize())
	return m
}

func (m Model) Focus() Model {
	m.editor = m.editor.Focus()
	return m
}

func (m Model) Blur() Model {
	m.editor = m.editor.Blur()
	return m
}

func (m Model) Focused() bool { return m.editor.Focused() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if m.handleKey(msg) {
			return m, nil
		}
	case tea.MouseMsg:
		consumed, fwd := m.handleMouse(msg)
		if consumed {
			return m, nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(fwd)
		m.afterEditorUpdate()
		return m, cmd
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.afterEditorUpdate()
	return m, cmd
}

// handleKey consumes popup navigation keys while the popup is open.
func (m *Model) handleKey(msg tea.KeyMsg) bool {
	s := m.st.session
	s.Key()
	if !s.Open() || !m.editor.Focused() {
		return false
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Next):
		s.Next()
	case key.Matches(msg, km.Prev):
		s.Prev()
	case key.Matches(msg, km.PageNext):
		s.PageNext()
	case key.Matches(msg, km.PagePrev):
		s.PagePrev()
	case key.Matches(msg, km.Accept):
		m.accept(-1)
	case key.Matches(msg, km.Dismiss):
		s.Dismiss()
		m.st.logger.Debug("hints dismissed")
	default:
		return false
	}
	return true
}

// handleMouse routes pointer input to the popup. When the event is not
// consumed, fwd is the event translated into editor coordinates.
func (m *Model) handleMouse(msg tea.MouseMsg) (consumed bool, fwd tea.MouseMsg) {
	left, top := frameLeftTop(m.cfg.Styles.Root)
	fwd = msg
	fwd.X -= left
	fwd.Y -= top

	s := m.st.session
	if !s.Open() {
		return false, fwd
	}

	item, onRow := m.popupLayout().itemAt(fwd.X, fwd.Y)
	switch {
	case msg.Action == tea.MouseActionMotion && onRow:
		s.PointerMove()
		s.Hover(item)
		return true, fwd
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && onRow:
		m.accept(item)
		return true, fwd
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		s.Dismiss()
		m.st.logger.Debug("hints dismissed", "reason", "click")
	}
	return false, fwd
}

// accept applies row i (or the selected row when i < 0) to the editor.
func (m *Model) accept(i int) {
	buf := m.editor.Buffer()
	s := m.st.session
	text, caret := buf.Text(), buf.Offset()

	var (
		res hint.Result
		ok  bool
	)
	if i < 0 {
		res, ok = s.Confirm(text, caret)
	} else {
		res, ok = s.ConfirmIndex(i, text, caret)
	}
	if !ok {
		return
	}
	m.st.logger.Debug("hint accepted", "candidate", res.Candidate, "start", res.Start, "end", res.End)

	buf.ReplaceOffsets(res.Start, res.End, res.Candidate)
	m.editor = m.editor.Sync()
	if m.st.onChange != nil {
		m.st.onChange(editor.NewChangeEvent(buf, true))
	}
	m.editor = m.editor.Focus()
}

func (m *Model) afterEditorUpdate() {
	st := m.st
	if !st.session.Open() {
		st.reanchor = false
		return
	}
	y, x := m.editor.ScrollOffset()
	if st.reanchor || (m.cfg.RepositionOnScroll && (y != st.scrollY || x != st.scrollX)) {
		m.reanchor()
	}
}

func (m *Model) reanchor() {
	buf := m.editor.Buffer()
	m.st.anchorX, m.st.anchorY = caretCoordinates(m.surface(), buf.Text(), buf.Offset())
	m.st.scrollY, m.st.scrollX = m.editor.ScrollOffset()
	m.st.reanchor = false
}

// surface is the editor surface shifted by the root frame, so measurements
// are widget-relative.
func (m Model) surface() editor.Surface {
	s := m.editor.Surface()
	left, top := frameLeftTop(m.cfg.Styles.Root)
	s.FrameLeft += left
	s.FrameTop += top
	return s
}

func (m Model) View() string {
	view := m.editor.View()
	if m.st.session.Open() {
		view = m.popupLayout().composite(view)
	}
	return m.cfg.Styles.Root.Render(view)
}
