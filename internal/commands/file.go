package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const loadTimeout = 2 * time.Minute

// handleLoad decodes in the background; the UI installs the result when the
// TrackLoadedMsg arrives.
func (c *Commander) handleLoad(src string) (string, tea.Cmd, error) {
	src = expandPath(src)
	load := c.load
	c.log.Debug("loading", "src", src)

	started := func() tea.Msg { return LoadStartedMsg{Source: src} }
	return "Loading " + src + "...", tea.Sequence(started, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		t, err := load(ctx, src)
		return TrackLoadedMsg{Source: src, Track: t, Err: err}
	}), nil
}
