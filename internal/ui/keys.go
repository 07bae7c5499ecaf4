package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the global shortcuts. Slider keys live in slider.KeyMap.
type keyMap struct {
	Play       key.Binding
	Pause      key.Binding
	Stop       key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	FocusNext  key.Binding
	Clear      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Play: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "play"),
		),
		Pause: key.NewBinding(
			key.WithKeys("ctrl+@", "ctrl+space"),
			key.WithHelp("ctrl+space", "pause"),
		),
		Stop: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "stop"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("ctrl+u", "alt+up"),
			key.WithHelp("ctrl+u", "volume up"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("ctrl+d", "alt+down"),
			key.WithHelp("ctrl+d", "volume down"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "focus next"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "shortcuts"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Pause, k.FocusNext, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Pause, k.Stop},
		{k.VolumeUp, k.VolumeDown, k.FocusNext},
		{k.Clear, k.Help, k.Quit},
	}
}
