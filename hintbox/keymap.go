package hintbox

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the bindings consumed while the popup is open. Keys that do
// not match reach the editor.
type KeyMap struct {
	Next, Prev         key.Binding
	PageNext, PagePrev key.Binding
	Accept, Dismiss    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next hint")),
		Prev:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous hint")),
		PageNext: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next page")),
		PagePrev: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "previous page")),
		Accept:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept hint")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
	}
}
