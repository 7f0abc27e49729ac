package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyQuit KeyName = iota
	KeyNarrower
	KeyWider
	KeyFollow
	KeyDonut
	KeyLabels
	KeyNotes
	KeyCopy
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
	"left":   KeyNarrower,
	"-":      KeyNarrower,
	"right":  KeyWider,
	"+":      KeyWider,
	"0":      KeyFollow,
	"i":      KeyDonut,
	"l":      KeyLabels,
	"n":      KeyNotes,
	"c":      KeyCopy,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	KeyNarrower: key.NewBinding(
		key.WithKeys("left", "-"),
		key.WithHelp("←", "narrower"),
	),
	KeyWider: key.NewBinding(
		key.WithKeys("right", "+"),
		key.WithHelp("→", "wider"),
	),
	KeyFollow: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "fit terminal"),
	),
	KeyDonut: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "donut"),
	),
	KeyLabels: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "labels"),
	),
	KeyNotes: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "notes"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy svg"),
	),
}
