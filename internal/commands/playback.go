package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"slidelord/internal/audio"
)

// PlaybackTickInterval is how often the seek slider follows playback.
const PlaybackTickInterval = time.Second / 10

var errNoTrackLoaded = errors.New("no track loaded (use 'load <path>')")

func (c *Commander) handlePlay() (string, tea.Cmd, error) {
	if c.player.State() == audio.StatePlaying {
		return "Already playing", nil, nil
	}
	if err := c.player.Play(); err != nil {
		return "", nil, fmt.Errorf("failed to play: %w", err)
	}
	c.tickGen++
	return "Playing...", PlaybackTick(c.tickGen), nil
}

func (c *Commander) handlePause() (string, tea.Cmd, error) {
	if c.player.State() != audio.StatePlaying {
		return "", nil, errors.New("no track is currently playing")
	}
	if err := c.player.Pause(); err != nil {
		return "", nil, fmt.Errorf("failed to pause: %w", err)
	}
	return "Paused", nil, nil
}

func (c *Commander) handleStop() (string, tea.Cmd, error) {
	if err := c.player.Stop(); err != nil {
		return "", nil, fmt.Errorf("failed to stop: %w", err)
	}
	return "Stopped", func() tea.Msg { return SeekedMsg{} }, nil
}

func (c *Commander) handleSeek(args []string) (string, tea.Cmd, error) {
	if len(args) != 1 {
		return "", nil, errors.New("usage: seek <[+|-]seconds|mm:ss>")
	}
	pos, err := ParsePosition(args[0], c.player.Position(), c.player.Duration())
	if err != nil {
		return "", nil, err
	}
	if err := c.player.Seek(pos); err != nil {
		return "", nil, fmt.Errorf("failed to seek: %w", err)
	}
	pos = c.player.Position()
	return "Seek to " + audio.FormatDuration(pos), func() tea.Msg { return SeekedMsg{Position: pos} }, nil
}

func (c *Commander) handleVolume(args []string) (string, tea.Cmd, error) {
	if len(args) != 1 {
		return "", nil, errors.New("usage: volume <value>")
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "%"), 64)
	if err != nil {
		return "", nil, fmt.Errorf("invalid volume %q: %w", args[0], err)
	}
	return "", func() tea.Msg { return VolumeMsg{Value: v} }, nil
}

// PlaybackTick schedules the next PlaybackTickMsg of loop gen.
func PlaybackTick(gen int) tea.Cmd {
	return tea.Tick(PlaybackTickInterval, func(time.Time) tea.Msg {
		return PlaybackTickMsg{Gen: gen}
	})
}

// ParsePosition parses an absolute position ("90", "1:30", "1:02:03") or a
// relative one ("+10", "-5") against cur, clamped to [0, dur].
func ParsePosition(s string, cur, dur time.Duration) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty position")
	}

	sign := 0
	switch s[0] {
	case '+':
		sign = 1
		s = s[1:]
	case '-':
		sign = -1
		s = s[1:]
	}

	var secs float64
	for _, part := range strings.Split(s, ":") {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid position %q", s)
		}
		secs = secs*60 + v
	}
	d := time.Duration(secs * float64(time.Second))

	switch sign {
	case 1:
		d = cur + d
	case -1:
		d = cur - d
	}
	return min(max(d, 0), dur), nil
}
