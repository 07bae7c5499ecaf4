package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// gradient blends two hex colors. Non-hex colors (ANSI indexes) are
// returned unblended.
func gradient(t float64, from, to lipgloss.Color) lipgloss.Color {
	r1, g1, b1, ok1 := hexToRGB(string(from))
	r2, g2, b2, ok2 := hexToRGB(string(to))
	if !ok1 || !ok2 {
		if t < 0.5 {
			return from
		}
		return to
	}
	t = min(max(t, 0), 1)

	r := int(float64(r1) + t*float64(r2-r1))
	g := int(float64(g1) + t*float64(g2-g1))
	b := int(float64(b1) + t*float64(b2-b1))
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

func hexToRGB(hex string) (r, g, b int, ok bool) {
	if !strings.HasPrefix(hex, "#") {
		return 0, 0, 0, false
	}
	hex = hex[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0, false
	}
	return r, g, b, true
}
