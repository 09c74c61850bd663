package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings shown in the status bar and the help screen.
// Dispatch itself lives in the input modes.
type KeyMap struct {
	Toggle   key.Binding
	Search   key.Binding
	Dismiss  key.Binding
	Activate key.Binding
	Up       key.Binding
	Down     key.Binding
	Focus    key.Binding
	Sections key.Binding
	Help     key.Binding
	Catalog  key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+b", "m"),
			key.WithHelp("m", "menu"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open / copy link"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "sidebar/content"),
		),
		Sections: key.NewBinding(
			key.WithKeys("[", "]", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("[ ] 1-9", "jump to section"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Catalog: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "catalog"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Focus, k.Up, k.Down, k.Activate},
		{k.Search, k.Dismiss, k.Sections},
		{k.Help, k.Catalog, k.Quit},
	}
}
