package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	quit    key.Binding
	newItem key.Binding
	rename  key.Binding
	delete  key.Binding
	stats   key.Binding
	copy    key.Binding
	refresh key.Binding
	help    key.Binding
	yes     key.Binding
	no      key.Binding
	pgUp    key.Binding
	pgDown  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/send")),
	esc:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	newItem: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	rename:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
	delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	stats:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "stats")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy reply")),
	refresh: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
	help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "about")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
	pgUp:    key.NewBinding(key.WithKeys("pgup")),
	pgDown:  key.NewBinding(key.WithKeys("pgdown")),
}

// sidebarHelp is the footer shown while the conversation list is focused.
func sidebarHelp() string {
	return helpLine(keys.tab, keys.up, keys.down, keys.enter, keys.newItem, keys.rename, keys.delete, keys.stats, keys.copy, keys.help, keys.quit)
}

func inputHelp() string {
	return helpLine(keys.tab, keys.enter, keys.refresh, keys.esc) + " • ctrl+c quit"
}

func helpLine(bindings ...key.Binding) string {
	var out string
	for i, b := range bindings {
		if i > 0 {
			out += " • "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
