package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the presenter bindings for the help view. Navigation keys are
// also accepted by present.KeyAction, which remains the single source of
// what each key does to the slide state.
type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	First   key.Binding
	Last    key.Binding
	Present key.Binding
	Theme   key.Binding
	Find    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Next:    key.NewBinding(key.WithKeys("right", "pgdown", " ", "l"), key.WithHelp("→/space", "next")),
	Prev:    key.NewBinding(key.WithKeys("left", "pgup", "h"), key.WithHelp("←", "prev")),
	First:   key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
	Last:    key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
	Present: key.NewBinding(key.WithKeys("f", "F", "esc"), key.WithHelp("f/esc", "present")),
	Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Find:    key.NewBinding(key.WithKeys("g", "/"), key.WithHelp("g", "go to slide")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Present, k.Find, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.First, k.Last},
		{k.Present, k.Theme, k.Find},
		{k.Help, k.Quit},
	}
}
