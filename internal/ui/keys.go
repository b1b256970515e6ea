package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// normalKeys are active while no field is being edited.
type normalKeys struct {
	Quit    key.Binding
	Focus   key.Binding
	Up      key.Binding
	Down    key.Binding
	Edit    key.Binding
	Submit  key.Binding
	Clear   key.Binding
	Dismiss key.Binding
	Reload  key.Binding
}

// editingKeys are active while a field is being edited. Printable keys that
// match none of them are inserted into the active field.
type editingKeys struct {
	Exit      key.Binding
	Backspace key.Binding
	Newline   key.Binding
	NextField key.Binding
	FieldUp   key.Binding
	FieldDown key.Binding
	ForceQuit key.Binding
}

// KeyMap holds both binding tables.
type KeyMap struct {
	Normal  normalKeys
	Editing editingKeys
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Normal: normalKeys{
			Quit:    key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "quit")),
			Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch panel")),
			Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
			Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			Edit:    key.NewBinding(key.WithKeys("e", "i"), key.WithHelp("e", "edit")),
			Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
			Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
			Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
			Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload pages")),
		},
		Editing: editingKeys{
			Exit:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
			Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
			Newline:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
			NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
			FieldUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev field")),
			FieldDown: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next field")),
			ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		},
	}
}

func (k normalKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Focus, k.Up, k.Down, k.Edit, k.Submit, k.Clear, k.Dismiss, k.Reload}
}

func (k normalKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus},
		{k.Edit, k.Submit, k.Clear},
		{k.Dismiss, k.Reload, k.Quit},
	}
}

func (k editingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Exit, k.NextField, k.FieldUp, k.FieldDown, k.Newline, k.Backspace}
}

func (k editingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Exit, k.NextField},
		{k.FieldUp, k.FieldDown},
		{k.Newline, k.Backspace, k.ForceQuit},
	}
}

var (
	_ help.KeyMap = normalKeys{}
	_ help.KeyMap = editingKeys{}
)
