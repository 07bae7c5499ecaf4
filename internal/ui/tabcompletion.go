package ui

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"slidelord/internal/commands"
	"slidelord/pkg/slider"
	"slidelord/pkg/utils"
)

// completionKind is what the token after a command completes to.
type completionKind int

const (
	completeNothing completionKind = iota
	completeCommand
	completePath
	completeArgument
)

// TabState is the completion cycle in progress.
type TabState struct {
	Completions []string
	Index       int
	Kind        completionKind
	Command     string
	// Rendered is the input written for the current suggestion. Tab on an
	// unchanged input moves to the next suggestion.
	Rendered string
}

func (s *TabState) current() string { return s.Completions[s.Index] }

// completionDef describes a command for completion.
type completionDef struct {
	name    string
	aliases []string
	kind    completionKind
	args    []string
	desc    string
}

func (d completionDef) matches(word string) bool {
	return word == d.name || slices.Contains(d.aliases, word)
}

var completionDefs = []completionDef{
	{name: "load", aliases: []string{"l"}, kind: completePath, desc: "Load an mp3 file or URL"},
	{name: "play", aliases: []string{"p"}, desc: "Play current track"},
	{name: "pause", desc: "Pause playback"},
	{name: "stop", desc: "Stop and rewind"},
	{name: "seek", desc: "Jump to a position"},
	{name: "volume", aliases: []string{"vol"}, desc: "Set the volume"},
	{
		name:    "reverse",
		aliases: []string{"rev"},
		kind:    completeArgument,
		args:    []string{commands.SliderSeek, commands.SliderVolume},
		desc:    "Flip a slider's direction",
	},
	{name: "theme", kind: completeArgument, args: slider.SchemeNames(), desc: "Switch color theme"},
	{name: "info", aliases: []string{"i"}, desc: "Show track information"},
	{name: "unload", desc: "Unload the track"},
	{name: "help", aliases: []string{"h"}, desc: "Show help"},
	{name: "quit", aliases: []string{"q", "exit"}, desc: "Exit application"},
}

func findCompletionDef(word string) *completionDef {
	for i := range completionDefs {
		if completionDefs[i].matches(word) {
			return &completionDefs[i]
		}
	}
	return nil
}

// handleTabCompletion completes the command word, or the argument once the
// command is followed by a space.
func (m *Model) handleTabCompletion() {
	input := m.input.Value()

	if st := m.tabState; st != nil && input == st.Rendered {
		st.Index = (st.Index + 1) % len(st.Completions)
		m.renderCompletion()
		return
	}

	parts := strings.Fields(input)
	if len(parts) == 0 {
		m.startCompletion(completeCommand, "", commandCompletions(""))
		return
	}

	word := strings.ToLower(parts[0])
	def := findCompletionDef(word)
	if def == nil || (len(parts) == 1 && !strings.HasSuffix(input, " ")) {
		m.startCompletion(completeCommand, "", commandCompletions(word))
		return
	}

	switch def.kind {
	case completePath:
		m.startCompletion(completePath, parts[0], pathCompletions(strings.Join(parts[1:], " ")))
	case completeArgument:
		var partial string
		if len(parts) > 1 {
			partial = strings.ToLower(parts[1])
		}
		var args []string
		for _, a := range def.args {
			if strings.HasPrefix(a, partial) {
				args = append(args, a)
			}
		}
		m.startCompletion(completeArgument, parts[0], args)
	default:
		m.clearTabCompletion()
	}
}

// commandCompletions lists commands and aliases starting with partial.
func commandCompletions(partial string) []string {
	var out []string
	for _, def := range completionDefs {
		for _, w := range append([]string{def.name}, def.aliases...) {
			if strings.HasPrefix(w, partial) {
				out = append(out, w)
			}
		}
	}
	sort.Strings(out)
	return out
}

func pathCompletions(path string) []string {
	path = strings.Trim(strings.TrimSpace(path), `"'`)
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = strings.Replace(path, "~", home, 1)
		}
	}
	return utils.GetCompletions(path)
}

func (m *Model) startCompletion(kind completionKind, cmd string, completions []string) {
	if len(completions) == 0 {
		m.clearTabCompletion()
		return
	}
	m.tabState = &TabState{Completions: completions, Kind: kind, Command: cmd}
	m.renderCompletion()
}

// renderCompletion writes the selected suggestion into the input and lists
// the alternatives in the output pane.
func (m *Model) renderCompletion() {
	st := m.tabState
	value := st.current()
	if st.Kind != completeCommand {
		if strings.Contains(value, " ") {
			value = `"` + value + `"`
		}
		value = st.Command + " " + value
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	st.Rendered = m.input.Value()
	m.tabOutput = m.completionList()
}

func (m Model) completionList() string {
	st := m.tabState
	names := make([]string, len(st.Completions))
	width := 0
	for i, c := range st.Completions {
		names[i] = c
		if st.Kind == completePath {
			names[i] = filepath.Base(c)
			if strings.HasSuffix(c, string(os.PathSeparator)) {
				names[i] += "/"
			}
		}
		width = max(width, len(names[i]))
	}

	var sb strings.Builder
	switch st.Kind {
	case completeCommand:
		sb.WriteString("\nAvailable Commands:\n")
	case completePath:
		sb.WriteString("\nFiles:\n")
	default:
		sb.WriteString("\nArguments:\n")
	}

	cell := width + 4
	columns := max((m.width-4)/cell, 1)
	for i, name := range names {
		marker := "  "
		if i == st.Index {
			marker = "> "
		}
		sb.WriteString(marker + name)

		if st.Kind == completeCommand {
			if def := findCompletionDef(name); def != nil {
				sb.WriteString(strings.Repeat(" ", width-len(name)+2) + "- " + def.desc)
			}
			sb.WriteString("\n")
			continue
		}
		if (i+1)%columns != 0 && i < len(names)-1 {
			sb.WriteString(strings.Repeat(" ", cell-len(name)-2))
		} else {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m *Model) clearTabCompletion() {
	m.tabState = nil
	m.tabOutput = ""
}
