package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level shortcuts. Per-field editing keys
// (arrows, enter, escape, tab, backspace) are interpreted by the editor's
// key state machine instead, since their meaning depends on the dropdown and
// row state.
type KeyMap struct {
	AddRow       key.Binding
	MoveRowUp    key.Binding
	MoveRowDown  key.Binding
	SaveTemplate key.Binding
	Copy         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default keybindings for Tally.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddRow: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "Add row"),
		),
		// Alt-arrows so plain arrows stay free for dropdown navigation.
		MoveRowUp: key.NewBinding(
			key.WithKeys("alt+up"),
			key.WithHelp("alt+↑/↓", "Move row up/down"),
		),
		MoveRowDown: key.NewBinding(
			key.WithKeys("alt+down"),
			key.WithHelp("alt+↑/↓", "Move row up/down"),
		),
		SaveTemplate: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Save row as template"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "Copy summary"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "Help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Save and quit"),
		),
	}
}
