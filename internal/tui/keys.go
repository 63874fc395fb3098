package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vslugin/long-term-booking/internal/i18n"
)

// KeyMap defines the key bindings outside the form
type KeyMap struct {
	Save key.Binding
	Edit key.Binding
	Quit key.Binding
}

func NewKeyMap(cat *i18n.Catalog) KeyMap {
	return KeyMap{
		Save: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter", cat.T("save")),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "esc"),
			key.WithHelp("e", cat.T("edit")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", cat.T("quit")),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Edit, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Save, k.Edit, k.Quit}}
}
