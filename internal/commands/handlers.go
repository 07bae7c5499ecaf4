package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"slidelord/pkg/slider"
)

func (c *Commander) handleTrackCommand(cmd string, args []string) (string, tea.Cmd, error) {
	switch cmd {
	case "info", "i":
		return c.handleInfo()
	case "play", "p":
		return c.handlePlay()
	case "pause":
		return c.handlePause()
	case "stop":
		return c.handleStop()
	case "seek":
		return c.handleSeek(args)
	case "unload":
		_ = c.player.Stop()
		c.player.Load(nil)
		c.mode = ModeNormal
		return "Track unloaded. Returning to normal mode.", nil, nil
	case "help", "h":
		return trackHelp, nil, nil
	}
	return c.handleNormalCommand(cmd, args)
}

func (c *Commander) handleNormalCommand(cmd string, args []string) (string, tea.Cmd, error) {
	switch cmd {
	case "help", "h":
		if c.mode == ModeTrack {
			return trackHelp, nil, nil
		}
		return normalHelp, nil, nil
	case "load", "l":
		if len(args) == 0 {
			return "", nil, fmt.Errorf("usage: load <path/url>")
		}
		return c.handleLoad(strings.Join(args, " "))
	case "volume", "vol":
		return c.handleVolume(args)
	case "reverse", "rev":
		return c.handleReverse(args)
	case "theme":
		return c.handleTheme(args)
	case "quit", "q", "exit":
		return "Goodbye!", tea.Quit, nil
	case "play", "p", "pause", "stop", "seek", "info", "i", "unload":
		return "", nil, fmt.Errorf("%s: %w", cmd, errNoTrackLoaded)
	}
	return "", nil, fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmd)
}

func (c *Commander) handleReverse(args []string) (string, tea.Cmd, error) {
	if len(args) != 1 {
		return "", nil, fmt.Errorf("usage: reverse <%s|%s>", SliderSeek, SliderVolume)
	}
	name := strings.ToLower(args[0])
	if name != SliderSeek && name != SliderVolume {
		return "", nil, fmt.Errorf("unknown slider: %s", args[0])
	}
	return "Reversed " + name + " slider", func() tea.Msg { return ReverseMsg{Slider: name} }, nil
}

func (c *Commander) handleTheme(args []string) (string, tea.Cmd, error) {
	names := slider.SchemeNames()
	if len(args) != 1 {
		return "Themes: " + strings.Join(names, ", "), nil, nil
	}
	name := strings.ToLower(args[0])
	if _, ok := slider.ColorSchemes[name]; !ok {
		return "", nil, fmt.Errorf("unknown theme: %s (available: %s)", args[0], strings.Join(names, ", "))
	}
	return "Theme: " + name, func() tea.Msg { return ThemeMsg{Name: name} }, nil
}
