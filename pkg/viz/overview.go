// Package viz draws a one-row amplitude overview of a track, sized to sit
// above a seek slider.
package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// levels are the bar glyphs from quietest to loudest.
var levels = []rune("▁▂▃▄▅▆▇█")

// Overview renders one glyph per peak. Peaks are in [0, 1]. The first
// played columns (counted from the right when reverse) use the played
// colors, blending from dim to bright with the peak height.
func Overview(peaks []float64, played float64, reverse bool, scheme Scheme) string {
	n := len(peaks)
	if n == 0 {
		return ""
	}
	cut := int(math.Floor(min(max(played, 0), 1)*float64(n) + 0.5))

	var sb strings.Builder
	for i := 0; i < n; i++ {
		col := i
		if reverse {
			col = n - 1 - i
		}
		p := min(max(peaks[col], 0), 1)
		glyph := string(levels[int(p*float64(len(levels)-1)+0.5)])

		from, to := scheme.Dim, scheme.Bright
		if col >= cut {
			from, to = scheme.Pending, scheme.Pending
		}
		sb.WriteString(lipgloss.NewStyle().Foreground(gradient(p, from, to)).Render(glyph))
	}
	return sb.String()
}

// Scheme colors an overview.
type Scheme struct {
	Dim     lipgloss.Color
	Bright  lipgloss.Color
	Pending lipgloss.Color
}
