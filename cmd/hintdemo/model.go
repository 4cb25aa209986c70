package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/hinter/editor"
	"github.com/iw2rmb/hinter/hintbox"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

// stats is updated from the widget's change callback.
type stats struct {
	edits int
}

type model struct {
	hints hintbox.Model
	stats *stats
	width int
}

func newModel(cfg hintbox.Config) model {
	st := &stats{}
	cfg.OnChange = func(ev editor.ChangeEvent) {
		if ev.TextChanged {
			st.edits++
		}
	}
	return model{hints: hintbox.New(cfg), stats: st}
}

func (m model) Init() tea.Cmd { return m.hints.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.hints = m.hints.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.hints, cmd = m.hints.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.hints.View(), m.status())
}

func (m model) status() string {
	cur := m.hints.Editor().Buffer().Cursor()
	s := m.hints.Session()

	popup := "hints: closed"
	if s.Open() {
		popup = fmt.Sprintf("hints: %d for %q", len(s.Items()), s.Token())
	}
	line := fmt.Sprintf("ln %d, col %d · %s · edits %d · ctrl+q quit", cur.Row+1, cur.Col+1, popup, m.stats.edits)
	return statusStyle.MaxWidth(maxInt(m.width, 1)).Render(line)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
