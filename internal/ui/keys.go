package ui

import "github.com/charmbracelet/bubbles/key"

// Focus is which part of the picker receives typed keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusList
)

// String returns a human-readable focus name.
func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusList:
		return "list"
	default:
		return "unknown"
	}
}

// keyMap holds every binding. Bindings marked list-only are ignored while
// the name input has focus so they can be typed as text.
type keyMap struct {
	Add        key.Binding
	Spin       key.Binding
	SpinList   key.Binding // list-only
	SwitchPane key.Binding
	Up         key.Binding // list-only
	Down       key.Binding // list-only
	Remove     key.Binding
	RemoveList key.Binding // list-only
	ToggleHelp key.Binding
	Quit       key.Binding
	QuitList   key.Binding // list-only
}

var keys = keyMap{
	Add: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add name"),
	),
	Spin: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "spin"),
	),
	SpinList: key.NewBinding(
		key.WithKeys(" ", "s"),
		key.WithHelp("space/s", "spin"),
	),
	SwitchPane: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "switch pane"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next"),
	),
	Remove: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "remove selected"),
	),
	RemoveList: key.NewBinding(
		key.WithKeys("delete", "backspace", "x"),
		key.WithHelp("del/x", "remove"),
	),
	ToggleHelp: key.NewBinding(
		key.WithKeys("f1", "?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
	QuitList: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Spin, k.SwitchPane, k.ToggleHelp, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Spin, k.SpinList},
		{k.SwitchPane, k.Up, k.Down},
		{k.Remove, k.RemoveList, k.ToggleHelp, k.Quit},
	}
}
