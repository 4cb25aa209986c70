package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hinter/buffer"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	// xOffset is the horizontal scroll in cells (WrapNone only).
	xOffset int

	lastVersion     uint64
	lastTextVersion uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.viewport.Style = cfg.Style.Viewport
	m.viewport.MouseWheelEnabled = true
	m.lastVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Config() Config { return m.cfg }

// WithOnChange returns a copy of m that reports changes to fn instead of the
// configured handler.
func (m Model) WithOnChange(fn func(ChangeEvent)) Model {
	m.cfg.OnChange = fn
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Width() int  { return m.viewport.Width }
func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// ScrollOffset returns the vertical (rows) and horizontal (cells) scroll.
func (m Model) ScrollOffset() (y, x int) { return m.viewport.YOffset, m.xOffset }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}

	m.emitChanges()
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// Sync absorbs buffer mutations made outside Update (for example by an
// overlay applying an edit) without emitting a ChangeEvent, and keeps the
// cursor in view.
func (m Model) Sync() Model {
	if m.buf == nil {
		return m
	}
	m.lastVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m *Model) emitChanges() {
	if m.buf == nil {
		return
	}
	ver, textVer := m.buf.Version(), m.buf.TextVersion()
	if ver == m.lastVersion && textVer == m.lastTextVersion {
		return
	}
	textChanged := textVer != m.lastTextVersion
	m.lastVersion = ver
	m.lastTextVersion = textVer

	m.rebuildContent()
	m.followCursor()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(NewChangeEvent(m.buf, textChanged))
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls the viewport so the cursor row (and, without wrapping,
// the cursor cell) is visible.
func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	doc := m.layout()
	cur := m.buf.Cursor()
	row, cell := doc.Caret(cur.Row, cur.Col)

	if w := m.contentWidth(); m.cfg.WrapMode == WrapNone && w > 0 {
		switch {
		case cell < m.xOffset:
			m.xOffset = cell
			m.rebuildContent()
		case cell >= m.xOffset+w:
			m.xOffset = cell - w + 1
			m.rebuildContent()
		}
	}

	h := m.visibleRowCount()
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	switch {
	case row < y:
		m.viewport.SetYOffset(row)
	case row >= y+h:
		m.viewport.SetYOffset(row - h + 1)
	}
	// Highlighting covers visible lines only.
	if m.viewport.YOffset != y && m.cfg.Highlighter != nil {
		m.rebuildContent()
	}
}

func (m Model) visibleRowCount() int {
	return m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
}
