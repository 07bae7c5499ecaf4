package slider

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cellKind int

const (
	cellTrack cellKind = iota
	cellFill
	cellHandle
)

// trackCells is the track length in whole cells.
func (l Layout) trackCells() int {
	return max(int(round(l.Limit+2*l.Grab)), l.handleCells())
}

// handleCells is the handle length along the axis in whole cells.
func (l Layout) handleCells() int {
	return max(int(round(2*l.Grab)), 1)
}

// handleStart is the first handle cell counted from the top/left.
func (l Layout) handleStart() int {
	n, hw := l.trackCells(), l.handleCells()
	start := int(round(l.Handle))
	if l.Aria.Orientation == Horizontal {
		start = int(round(l.Handle - l.Grab))
	}
	start = min(max(start, 0), n-hw)
	if l.Reverse {
		return n - hw - start
	}
	return start
}

// cells lays out the track from the top/left. Horizontal fills grow from
// the direction edge, vertical fills from the opposite one.
func (l Layout) cells() []cellKind {
	n, hw := l.trackCells(), l.handleCells()
	cells := make([]cellKind, n)
	start := l.handleStart()
	for i := start; i < start+hw && i < n; i++ {
		cells[i] = cellHandle
	}

	fill := int(round(l.Fill))
	if l.Aria.Orientation == Horizontal {
		fill = int(round(l.Fill - l.Grab))
	}
	for i := 0; i < fill && i < n; i++ {
		idx := i
		if l.Aria.Orientation == Vertical {
			idx = n - 1 - i
		}
		if l.Reverse {
			idx = n - 1 - idx
		}
		if cells[idx] != cellHandle {
			cells[idx] = cellFill
		}
	}
	return cells
}

// labelSpan is where a label is drawn: a column range below a horizontal
// track, or a row beside a vertical one.
type labelSpan struct {
	Value float64
	Text  string
	Start int
	Width int
}

func (l Layout) labelSpans() []labelSpan {
	n := l.trackCells()
	spans := make([]labelSpan, 0, len(l.Labels))
	for _, item := range l.Labels {
		w := lipgloss.Width(item.Text)
		if l.Aria.Orientation == Vertical {
			row := int(round(item.Offset))
			if l.Reverse {
				row = n - 1 - row
			}
			spans = append(spans, labelSpan{Value: item.Value, Text: item.Text, Start: row, Width: w})
			continue
		}
		center := item.Offset
		if l.Reverse {
			center = float64(n) - item.Offset
		}
		start := max(int(round(center-float64(w)/2)), 0)
		spans = append(spans, labelSpan{Value: item.Value, Text: item.Text, Start: start, Width: w})
	}
	return spans
}

// HandleText is what the handle shows: the handle label, or the glyph.
func (st Styles) HandleText(label string) string {
	if label != "" {
		return label
	}
	return st.HandleGlyph
}

// Render draws a layout. focused highlights the handle.
func Render(l Layout, st Styles, focused bool) string {
	if l.Aria.Orientation == Vertical {
		return renderVertical(l, st, focused)
	}
	return renderHorizontal(l, st, focused)
}

func handleStyle(l Layout, st Styles, focused bool) lipgloss.Style {
	switch {
	case l.Active:
		return st.Active
	case focused:
		return st.Focused
	}
	return st.Handle
}

func renderHorizontal(l Layout, st Styles, focused bool) string {
	cells := l.cells()
	hw := l.handleCells()
	var rows []string

	if l.ShowTooltip {
		tip := st.Tooltip.Render(" " + l.Tooltip + " ")
		center := l.handleStart() + hw/2
		rows = append(rows, strings.Repeat(" ", max(center-lipgloss.Width(tip)/2, 0))+tip)
	} else {
		rows = append(rows, "")
	}

	var track strings.Builder
	for i := 0; i < len(cells); i++ {
		switch cells[i] {
		case cellHandle:
			track.WriteString(handleStyle(l, st, focused).Render(st.HandleText(l.HandleLabel)))
			i += hw - 1
		case cellFill:
			track.WriteString(st.Fill.Render(st.HorizontalFill))
		default:
			track.WriteString(st.Track.Render(st.HorizontalTrack))
		}
	}
	rows = append(rows, track.String())

	if len(l.Labels) > 0 {
		rows = append(rows, renderLabelRow(l.labelSpans(), len(cells), st))
	}
	return strings.Join(rows, "\n")
}

// renderLabelRow places labels left to right, skipping any that would
// overlap a label placed before it.
func renderLabelRow(spans []labelSpan, width int, st Styles) string {
	for _, sp := range spans {
		width = max(width, sp.Start+sp.Width)
	}
	taken := make([]bool, width)
	texts := make([]string, width)
	for _, sp := range spans {
		free := true
		for i := sp.Start; i < sp.Start+sp.Width; i++ {
			if taken[i] {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		for i := sp.Start; i < sp.Start+sp.Width; i++ {
			taken[i] = true
		}
		texts[sp.Start] = st.Label.Render(sp.Text)
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case texts[i] != "":
			b.WriteString(texts[i])
		case !taken[i]:
			b.WriteByte(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func renderVertical(l Layout, st Styles, focused bool) string {
	cells := l.cells()
	labels := make(map[int]string)
	for _, sp := range l.labelSpans() {
		if _, ok := labels[sp.Start]; !ok {
			labels[sp.Start] = sp.Text
		}
	}

	handle := st.HandleText(l.HandleLabel)
	pad := strings.Repeat(" ", max(lipgloss.Width(handle)-1, 0))
	rows := make([]string, len(cells))
	for i, c := range cells {
		var b strings.Builder
		switch c {
		case cellHandle:
			b.WriteString(handleStyle(l, st, focused).Render(handle))
		case cellFill:
			b.WriteString(st.Fill.Render(st.VerticalFill) + pad)
		default:
			b.WriteString(st.Track.Render(st.VerticalTrack) + pad)
		}
		if text, ok := labels[i]; ok {
			b.WriteString(" " + st.Label.Render(st.LabelTick+text))
		}
		if c == cellHandle && l.ShowTooltip {
			b.WriteString(" " + st.Tooltip.Render(" "+l.Tooltip+" "))
		}
		rows[i] = b.String()
	}
	return strings.Join(rows, "\n")
}
