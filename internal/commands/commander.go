package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"slidelord/internal/audio"
)

// Commander interprets the command line of the player.
type Commander struct {
	player *audio.Player
	mode   Mode
	log    *slog.Logger
	// tickGen identifies the current playback tick loop.
	tickGen int

	// load is swapped in tests.
	load func(ctx context.Context, src string) (*audio.Track, error)
}

// NewCommander creates a Commander driving player.
func NewCommander(player *audio.Player, logger *slog.Logger) *Commander {
	return &Commander{
		player: player,
		mode:   ModeNormal,
		log:    logger,
		load:   audio.Load,
	}
}

func (c *Commander) Mode() Mode { return c.mode }

func (c *Commander) IsInTrackMode() bool { return c.mode == ModeTrack }

func (c *Commander) Player() *audio.Player { return c.player }

// TickGen is the generation of the live playback tick loop.
func (c *Commander) TickGen() int { return c.tickGen }

// CurrentTrack returns the loaded track, or nil.
func (c *Commander) CurrentTrack() *audio.Track { return c.player.Track() }

// SetTrack installs a track loaded by a TrackLoadedMsg.
func (c *Commander) SetTrack(t *audio.Track) {
	c.player.Load(t)
	c.mode = ModeTrack
	c.log.Info("track loaded", "name", t.Name, "duration", t.Duration)
}

// PlaybackStatus is the one-line state shown above the seek slider.
func (c *Commander) PlaybackStatus() string {
	t := c.player.Track()
	if t == nil {
		return ""
	}
	return fmt.Sprintf("[%s] %s / %s",
		c.player.State(),
		audio.FormatDuration(c.player.Position()),
		audio.FormatDuration(c.player.Duration()))
}

// Execute runs one command line. The returned command, if any, must be
// passed back to the bubbletea runtime.
func (c *Commander) Execute(input string) (string, tea.Cmd, error) {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, ":")

	// a bare path loads it
	if strings.HasPrefix(input, "/") || strings.HasPrefix(input, "./") ||
		strings.HasPrefix(input, "~/") || audio.IsURL(input) {
		return c.handleLoad(input)
	}

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return "", nil, errors.New("empty command")
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	if c.mode == ModeTrack {
		return c.handleTrackCommand(cmd, args)
	}
	return c.handleNormalCommand(cmd, args)
}

// expandPath resolves ~/ and quotes around a typed path.
func expandPath(path string) string {
	path = strings.Trim(strings.TrimSpace(path), `"'`)
	if audio.IsURL(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return filepath.Clean(path)
}
