package navigation

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds keys to intents. Orientation decides which arrows are
// forward and backward; the walk itself does not depend on it.
type KeyMap struct {
	Forward  key.Binding
	Backward key.Binding
	First    key.Binding
	Last     key.Binding
	Confirm  key.Binding
	Shortcut key.Binding
}

// DefaultKeyMap returns the bindings for an orientation. Numeric shortcuts
// 1-9 are bound only when numeric is set.
func DefaultKeyMap(o Orientation, numeric bool) KeyMap {
	km := KeyMap{
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "select"),
		),
		Shortcut: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
	}

	if o == Vertical {
		km.Forward = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next"))
		km.Backward = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev"))
	} else {
		km.Forward = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next"))
		km.Backward = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev"))
	}

	km.Shortcut.SetEnabled(numeric)

	return km
}

// Resolve maps a key press to an intent.
func (km KeyMap) Resolve(msg tea.KeyMsg) (Intent, bool) {
	switch {
	case key.Matches(msg, km.Forward):
		return Next, true
	case key.Matches(msg, km.Backward):
		return Previous, true
	case key.Matches(msg, km.First):
		return First, true
	case key.Matches(msg, km.Last):
		return Last, true
	case key.Matches(msg, km.Confirm):
		return Confirm, true
	case key.Matches(msg, km.Shortcut):
		s := msg.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			return Shortcut(int(s[0] - '0')), true
		}
	}
	return Intent{}, false
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Backward, km.Forward, km.Confirm}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Backward, km.Forward, km.First, km.Last},
		{km.Confirm, km.Shortcut},
	}
}
