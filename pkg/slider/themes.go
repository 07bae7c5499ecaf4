package slider

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// ColorScheme defines the colors a slider is drawn with.
type ColorScheme struct {
	Fill      lipgloss.Color
	Track     lipgloss.Color
	Handle    lipgloss.Color
	Text      lipgloss.Color
	Highlight lipgloss.Color
	TooltipBg lipgloss.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Fill:      lipgloss.Color("#00ff00"), // Green
		Track:     lipgloss.Color("240"),
		Handle:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("250"),
		Highlight: lipgloss.Color("#ffff00"), // Yellow
		TooltipBg: lipgloss.Color("235"),
	}
}

// ColorSchemes contains all available color schemes
var ColorSchemes = map[string]ColorScheme{
	"default": DefaultColorScheme(),
	"monokai": {
		Fill:      lipgloss.Color("#a6e22e"),
		Track:     lipgloss.Color("#75715e"),
		Handle:    lipgloss.Color("#f92672"),
		Text:      lipgloss.Color("#f8f8f2"),
		Highlight: lipgloss.Color("#e6db74"),
		TooltipBg: lipgloss.Color("#272822"),
	},
	"solarized": {
		Fill:      lipgloss.Color("#859900"),
		Track:     lipgloss.Color("#586e75"),
		Handle:    lipgloss.Color("#dc322f"),
		Text:      lipgloss.Color("#839496"),
		Highlight: lipgloss.Color("#b58900"),
		TooltipBg: lipgloss.Color("#002b36"),
	},
	"nord": {
		Fill:      lipgloss.Color("#88c0d0"),
		Track:     lipgloss.Color("#4c566a"),
		Handle:    lipgloss.Color("#5e81ac"),
		Text:      lipgloss.Color("#d8dee9"),
		Highlight: lipgloss.Color("#ebcb8b"),
		TooltipBg: lipgloss.Color("#2e3440"),
	},
	"dracula": {
		Fill:      lipgloss.Color("#50fa7b"),
		Track:     lipgloss.Color("#6272a4"),
		Handle:    lipgloss.Color("#ff79c6"),
		Text:      lipgloss.Color("#f8f8f2"),
		Highlight: lipgloss.Color("#f1fa8c"),
		TooltipBg: lipgloss.Color("#282a36"),
	},
}

// SchemeNames lists the registered color schemes alphabetically.
func SchemeNames() []string {
	names := make([]string, 0, len(ColorSchemes))
	for name := range ColorSchemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Styles are the lipgloss styles and glyphs of a rendered slider.
type Styles struct {
	Track   lipgloss.Style
	Fill    lipgloss.Style
	Handle  lipgloss.Style
	Active  lipgloss.Style
	Focused lipgloss.Style
	Label   lipgloss.Style
	Tooltip lipgloss.Style

	HorizontalTrack string
	HorizontalFill  string
	VerticalTrack   string
	VerticalFill    string
	HandleGlyph     string
	LabelTick       string
}

// NewStyles builds Styles from a color scheme.
func NewStyles(cs ColorScheme) Styles {
	return Styles{
		Track:   lipgloss.NewStyle().Foreground(cs.Track),
		Fill:    lipgloss.NewStyle().Foreground(cs.Fill),
		Handle:  lipgloss.NewStyle().Foreground(cs.Handle).Bold(true),
		Active:  lipgloss.NewStyle().Foreground(cs.Highlight).Bold(true),
		Focused: lipgloss.NewStyle().Foreground(cs.Highlight),
		Label:   lipgloss.NewStyle().Foreground(cs.Text),
		Tooltip: lipgloss.NewStyle().Foreground(cs.Highlight).Background(cs.TooltipBg),

		HorizontalTrack: "─",
		HorizontalFill:  "━",
		VerticalTrack:   "│",
		VerticalFill:    "┃",
		HandleGlyph:     "●",
		LabelTick:       "─ ",
	}
}

// DefaultStyles uses the default color scheme.
func DefaultStyles() Styles {
	return NewStyles(DefaultColorScheme())
}
