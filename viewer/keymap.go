package viewer

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the viewer key bindings. It implements help.KeyMap.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	RowStart, RowEnd      key.Binding
	FileStart, FileEnd    key.Binding
	PageUp, PageDown      key.Binding
	ScrollUp, ScrollDown  key.Binding

	Narrow, Widen key.Binding
	Help          key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),

		RowStart: key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("home", "row start")),
		RowEnd:   key.NewBinding(key.WithKeys("end", "$"), key.WithHelp("end", "row end")),

		// Not every terminal reports ctrl+home/ctrl+end.
		FileStart: key.NewBinding(key.WithKeys("ctrl+home", "g"), key.WithHelp("g", "first byte")),
		FileEnd:   key.NewBinding(key.WithKeys("ctrl+end", "G"), key.WithHelp("G", "last byte")),

		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+f", " "), key.WithHelp("pgdn", "page down")),

		ScrollUp:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "scroll down")),

		Narrow: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "fewer bytes per row")),
		Widen:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "more bytes per row")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.PageDown, k.PageUp}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.RowStart, k.RowEnd, k.FileStart, k.FileEnd},
		{k.PageUp, k.PageDown, k.ScrollUp, k.ScrollDown},
		{k.Narrow, k.Widen, k.Help},
	}
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}
