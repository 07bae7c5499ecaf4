package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"slidelord/pkg/viz"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View lays the screen out top to bottom: title, status, overview, seek slider, a
// blank row, then the volume slider beside the output pane, the command
// line and the key help. relayout must agree with these rows.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.titleLine())
	sb.WriteString("\n")
	sb.WriteString(m.statusLine())
	sb.WriteString("\n")

	indent := lipgloss.NewStyle().PaddingLeft(sliderX)
	sb.WriteString(indent.Render(m.overviewLine()))
	sb.WriteString("\n")
	sb.WriteString(indent.Render(m.seek.View()))
	sb.WriteString("\n\n")

	volume := indent.Render(m.volume.View())
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, volume, "   ", m.outputView(lipgloss.Width(volume)+3)))
	sb.WriteString("\n")

	if m.exitPrompt {
		sb.WriteString(promptStyle.Render("Press Ctrl+C again to exit or any other key to continue..."))
		sb.WriteString("\n")
	}
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) titleLine() string {
	title := titleStyle.Render("slidelord")
	t := m.commander.CurrentTrack()
	if t == nil {
		return title
	}
	name := t.Name
	if t.Meta != nil {
		name = t.Meta.Artist + " - " + t.Meta.Title
	}
	return title + " · " + name
}

func (m Model) statusLine() string {
	if m.loading.IsLoading {
		return m.spinner.View() + " " + m.loading.Status(time.Now())
	}
	if s := m.commander.PlaybackStatus(); s != "" {
		return statusStyle.Render(s)
	}
	return statusStyle.Render("No track loaded")
}

// outputView renders command output and completions in the space right of
// the volume slider.
func (m Model) outputView(left int) string {
	content := m.mainOutput
	if m.tabOutput != "" {
		content += "\n" + m.tabOutput
	}
	if m.width > left {
		return lipgloss.NewStyle().MaxWidth(m.width - left).Render(content)
	}
	return content
}

// overviewLine draws the track's peaks with the played part highlighted.
func (m Model) overviewLine() string {
	if len(m.peaks) == 0 || m.commander.CurrentTrack() == nil {
		return ""
	}
	sc := m.seek.Config()
	played := 0.0
	if sc.Max > sc.Min {
		played = (m.seek.Value() - sc.Min) / (sc.Max - sc.Min)
	}
	return viz.Overview(m.peaks, played, sc.Reverse, m.overview)
}
