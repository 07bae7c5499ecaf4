package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"slidelord/internal/audio"
	"slidelord/internal/commands"
	"slidelord/pkg/slider"
)

// Update is the main update function of the player screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		cmds = append(cmds, m.updateSliders(msg)...)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-len(inputPrompt)-1, 10)
		m.help.Width = msg.Width
		m.relayout()
		cmds = append(cmds, m.updateSliders(msg)...)

	case slider.ChangeStartMsg:
		m.log.Debug("slider drag started", "slider", msg.ID)

	case slider.ChangeMsg:
		m.handleSliderChange(msg)

	case slider.ChangeCompleteMsg:
		m.log.Debug("slider change complete", "slider", msg.ID, "value", msg.Value)
		switch msg.ID {
		case seekID:
			if m.commander.CurrentTrack() != nil {
				m.mainOutput = "Seek to " + audio.FormatDuration(seconds(msg.Value))
			}
		case volumeID:
			m.mainOutput = "Volume " + m.volume.Config().FormatValue(msg.Value)
		}

	case commands.LoadStartedMsg:
		m.loading.Start("Loading "+msg.Source+"...", time.Now())
		cmds = append(cmds, m.spinner.Tick)

	case commands.TrackLoadedMsg:
		m.handleTrackLoaded(msg)

	case commands.PlaybackTickMsg:
		if msg.Gen != m.commander.TickGen() {
			break
		}
		m.syncSeek()
		if m.commander.Player().State() == audio.StatePlaying {
			cmds = append(cmds, commands.PlaybackTick(msg.Gen))
		}

	case commands.SeekedMsg:
		m.seek.SetValue(msg.Position.Seconds())

	case commands.VolumeMsg:
		m.setVolume(msg.Value)
		m.mainOutput = "Volume " + m.volume.Config().FormatValue(m.volume.Value())

	case commands.ReverseMsg:
		if err := m.toggleReverse(msg.Slider); err != nil {
			m.mainOutput = fmt.Sprintf("Error: %v", err)
		}

	case commands.ThemeMsg:
		m.cfg.Theme = msg.Name
		m.applyTheme(msg.Name)
		m.relayout()

	case commands.ShowFullInfoMsg:
		if t := m.commander.CurrentTrack(); t != nil && t.Meta != nil {
			m.mainOutput = t.Meta.String()
		}

	case ConfigMsg:
		if err := m.applyConfig(msg.Config); err != nil {
			m.mainOutput = fmt.Sprintf("Error: config reload: %v", err)
			m.log.Warn("config not applied", "err", err)
		} else {
			m.mainOutput = "Configuration reloaded."
		}

	case spinner.TickMsg:
		if m.loading.IsLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

// updateSliders forwards msg to both sliders.
func (m *Model) updateSliders(msg tea.Msg) []tea.Cmd {
	var seekCmd, volCmd tea.Cmd
	m.seek, seekCmd = m.seek.Update(msg)
	m.volume, volCmd = m.volume.Update(msg)
	return []tea.Cmd{seekCmd, volCmd}
}

// handleSliderChange mirrors the new value. Seeking follows the handle while
// dragging so the position can be scrubbed.
func (m *Model) handleSliderChange(msg slider.ChangeMsg) {
	switch msg.ID {
	case volumeID:
		m.setVolume(msg.Value)
	case seekID:
		m.seek.SetValue(msg.Value)
		if m.commander.CurrentTrack() == nil {
			return
		}
		if err := m.commander.Player().Seek(seconds(msg.Value)); err != nil {
			m.mainOutput = fmt.Sprintf("Error: %v", err)
		}
	}
}

// syncSeek moves the seek handle to the playback position unless the user
// is holding it.
func (m *Model) syncSeek() {
	if m.seek.Slider().Active() {
		return
	}
	m.seek.SetValue(m.commander.Player().Position().Seconds())
}

func (m *Model) handleTrackLoaded(msg commands.TrackLoadedMsg) {
	m.loading.Stop()
	if msg.Err != nil {
		m.mainOutput = fmt.Sprintf("Error: failed to load %s: %v", msg.Source, msg.Err)
		m.log.Error("load failed", "src", msg.Source, "err", msg.Err)
		return
	}

	m.commander.SetTrack(msg.Track)
	m.peaks = nil
	sc, err := m.seekConfig(m.cfg, msg.Track.Duration)
	if err == nil {
		err = m.seek.SetConfig(sc)
	}
	if err != nil {
		m.log.Warn("seek slider not resized", "err", err)
	}
	m.seek.SetValue(0)
	m.relayout()

	m.mainOutput = "Loaded " + msg.Source
	if msg.Track.Meta != nil {
		m.mainOutput += "\n" + msg.Track.Meta.String()
	}
}

func (m *Model) toggleReverse(name string) error {
	target := &m.seek
	if name == volumeID {
		target = &m.volume
	}
	cfg := target.Config()
	cfg.Reverse = !cfg.Reverse
	if err := target.SetConfig(cfg); err != nil {
		return err
	}
	m.relayout()
	return nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.handleInterrupt()
	}
	m.exitPrompt = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.FocusNext):
		m.setFocus((m.focus + 1) % 3)
		return m, nil
	case key.Matches(msg, m.keys.Play):
		return m.execute("play")
	case key.Matches(msg, m.keys.Pause):
		return m.execute("pause")
	case key.Matches(msg, m.keys.Stop):
		return m.execute("stop")
	case key.Matches(msg, m.keys.VolumeUp):
		return m, m.volume.Increment()
	case key.Matches(msg, m.keys.VolumeDown):
		return m, m.volume.Decrement()
	case key.Matches(msg, m.keys.Clear):
		m.mainOutput = ""
		m.clearTabCompletion()
		return m, nil
	}

	if m.focus != focusInput {
		if msg.Type == tea.KeyEsc {
			m.setFocus(focusInput)
			return m, nil
		}
		// only the focused slider reacts to keys
		return m, tea.Batch(m.updateSliders(msg)...)
	}

	switch msg.Type {
	case tea.KeyUp:
		if m.historyPos < len(m.history)-1 {
			m.historyPos++
			m.input.SetValue(m.history[len(m.history)-1-m.historyPos])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyPos > 0 {
			m.historyPos--
			m.input.SetValue(m.history[len(m.history)-1-m.historyPos])
		} else if m.historyPos == 0 {
			m.historyPos = -1
			m.input.SetValue("")
		}
		return m, nil

	case tea.KeyTab:
		m.handleTabCompletion()
		return m, nil

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyEsc:
		m.clearTabCompletion()
		return m, nil

	case tea.KeyBackspace:
		if m.input.Value() == "" {
			m.clearTabCompletion()
		}
	}

	if key.Matches(msg, m.keys.Help) && m.input.Value() == "" {
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleInterrupt unloads the track on the first ctrl+c in track mode and
// otherwise asks for a second ctrl+c before quitting.
func (m Model) handleInterrupt() (tea.Model, tea.Cmd) {
	if m.exitPrompt {
		return m, tea.Quit
	}
	if m.commander.IsInTrackMode() {
		next, cmd := m.execute("unload")
		nm := next.(Model)
		nm.seek.SetValue(0)
		return nm, cmd
	}
	m.exitPrompt = true
	m.mainOutput = "Press Ctrl+C again to exit or any other key to continue..."
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	command := strings.TrimSpace(m.input.Value())
	if command == "" {
		return m, nil
	}
	m.history = append(m.history, command)
	m.historyPos = -1
	m.clearTabCompletion()
	m.input.SetValue("")
	return m.execute(command)
}

// execute runs a command line and shows its output or error.
func (m Model) execute(line string) (tea.Model, tea.Cmd) {
	out, cmd, err := m.commander.Execute(line)
	if err != nil {
		m.mainOutput = fmt.Sprintf("Error: %v", err)
		m.log.Debug("command failed", "line", line, "err", err)
	} else if out != "" {
		m.mainOutput = out
	}
	return m, cmd
}
