package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Sort   key.Binding
	Clear  key.Binding
	Quit   key.Binding

	// ForceQuit works in every mode, including while typing.
	ForceQuit key.Binding

	Submit  key.Binding
	Cancel  key.Binding
	QtyUp   key.Binding
	QtyDown key.Binding
	Confirm key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pack")),
		Delete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Clear:  key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear list")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		QtyUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "more")),
		QtyDown: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "fewer")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
	}
}

// listHelp is appended to the list's own help.
func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Sort, k.Clear}
}
