package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (c *Commander) handleInfo() (string, tea.Cmd, error) {
	t := c.player.Track()
	if t == nil || t.Meta == nil {
		return "", nil, errNoTrackLoaded
	}
	return "", func() tea.Msg { return ShowFullInfoMsg{} }, nil
}
