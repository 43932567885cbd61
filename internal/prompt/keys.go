package prompt

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit    key.Binding
	Interrupt key.Binding
	Quit      key.Binding
	Prev      key.Binding
	Next      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "run")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "cancel")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("Ctrl+D", "quit")),
		Prev:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓", "history")),
		Next:      key.NewBinding(key.WithKeys("down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("PgUp/PgDn", "scroll")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Prev, k.PageUp, k.Interrupt, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
