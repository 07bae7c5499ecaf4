package slider

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the key bindings of a focused slider.
type KeyMap struct {
	Increase key.Binding
	Decrease key.Binding
}

// DefaultKeyMap steps up with up/right and down with down/left.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increase: key.NewBinding(
			key.WithKeys("up", "right"),
			key.WithHelp("↑/→", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("down", "left"),
			key.WithHelp("↓/←", "decrease"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
