package hintbox

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		switch r {
		case '\n':
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		default:
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
	return m
}

func press(m Model, t tea.KeyType) Model {
	m, _ = m.Update(tea.KeyMsg{Type: t})
	return m
}

func viewLines(m Model) []string {
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func assertOpen(t *testing.T, m Model, want []string) {
	t.Helper()
	s := m.Session()
	if !s.Open() {
		t.Fatalf("popup closed, want open with %q", want)
	}
	got := s.Items()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("items: got %q, want %q", got, want)
	}
}
