package dash

import "github.com/charmbracelet/lipgloss"

// Theme is one color palette for the dashboard. All rendering goes
// through a Theme so the carousel can swap palettes live.
type Theme struct {
	Name string

	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color

	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color

	Accent    lipgloss.Color
	AccentDim lipgloss.Color

	Healthy  lipgloss.Color
	Warning  lipgloss.Color
	Critical lipgloss.Color

	Graph lipgloss.Color
}

// Thresholds for metric severity coloring.
const (
	warningThreshold  = 70.0
	criticalThreshold = 90.0
)

// MetricColor maps a percentage to a severity color.
func (t Theme) MetricColor(percent float64) lipgloss.Color {
	switch {
	case percent >= criticalThreshold:
		return t.Critical
	case percent >= warningThreshold:
		return t.Warning
	default:
		return t.Healthy
	}
}

// themes is the carousel, in the same order as the configurable theme
// names.
var themes = []Theme{
	{
		Name:          "default",
		Background:    "#0A0A0F",
		Surface:       "#12121A",
		Border:        "#2A2A4A",
		TextPrimary:   "#FFFFFF",
		TextSecondary: "#B4B4D0",
		TextMuted:     "#6B6B8D",
		Accent:        "#FF2E97",
		AccentDim:     "#BF40FF",
		Healthy:       "#39FF14",
		Warning:       "#FFAA00",
		Critical:      "#FF0055",
		Graph:         "#00FFFF",
	},
	{
		Name:          "dracula",
		Background:    "#282A36",
		Surface:       "#343746",
		Border:        "#44475A",
		TextPrimary:   "#F8F8F2",
		TextSecondary: "#BFBFD5",
		TextMuted:     "#6272A4",
		Accent:        "#BD93F9",
		AccentDim:     "#FF79C6",
		Healthy:       "#50FA7B",
		Warning:       "#F1FA8C",
		Critical:      "#FF5555",
		Graph:         "#8BE9FD",
	},
	{
		Name:          "gruvbox",
		Background:    "#282828",
		Surface:       "#32302F",
		Border:        "#504945",
		TextPrimary:   "#EBDBB2",
		TextSecondary: "#D5C4A1",
		TextMuted:     "#928374",
		Accent:        "#FE8019",
		AccentDim:     "#D65D0E",
		Healthy:       "#B8BB26",
		Warning:       "#FABD2F",
		Critical:      "#FB4934",
		Graph:         "#83A598",
	},
	{
		Name:          "nord",
		Background:    "#2E3440",
		Surface:       "#3B4252",
		Border:        "#4C566A",
		TextPrimary:   "#ECEFF4",
		TextSecondary: "#D8DEE9",
		TextMuted:     "#616E88",
		Accent:        "#88C0D0",
		AccentDim:     "#81A1C1",
		Healthy:       "#A3BE8C",
		Warning:       "#EBCB8B",
		Critical:      "#BF616A",
		Graph:         "#8FBCBB",
	},
	{
		Name:          "solarized",
		Background:    "#002B36",
		Surface:       "#073642",
		Border:        "#586E75",
		TextPrimary:   "#FDF6E3",
		TextSecondary: "#93A1A1",
		TextMuted:     "#657B83",
		Accent:        "#268BD2",
		AccentDim:     "#6C71C4",
		Healthy:       "#859900",
		Warning:       "#B58900",
		Critical:      "#DC322F",
		Graph:         "#2AA198",
	},
	{
		Name:          "cyberpunk",
		Background:    "#0D0221",
		Surface:       "#190835",
		Border:        "#541388",
		TextPrimary:   "#F6F7F8",
		TextSecondary: "#C4B5FD",
		TextMuted:     "#7C6F9F",
		Accent:        "#F715AB",
		AccentDim:     "#9D00FF",
		Healthy:       "#0AFF9D",
		Warning:       "#FFD300",
		Critical:      "#FF124F",
		Graph:         "#00F0FF",
	},
	{
		Name:          "monokai",
		Background:    "#272822",
		Surface:       "#32332C",
		Border:        "#49483E",
		TextPrimary:   "#F8F8F2",
		TextSecondary: "#CFCFC2",
		TextMuted:     "#75715E",
		Accent:        "#F92672",
		AccentDim:     "#AE81FF",
		Healthy:       "#A6E22E",
		Warning:       "#E6DB74",
		Critical:      "#F92672",
		Graph:         "#66D9EF",
	},
	{
		Name:          "onedark",
		Background:    "#282C34",
		Surface:       "#2F333D",
		Border:        "#3D424D",
		TextPrimary:   "#ABB2BF",
		TextSecondary: "#9DA5B4",
		TextMuted:     "#5C6370",
		Accent:        "#61AFEF",
		AccentDim:     "#C678DD",
		Healthy:       "#98C379",
		Warning:       "#E5C07B",
		Critical:      "#E06C75",
		Graph:         "#56B6C2",
	},
	{
		Name:          "tokyo",
		Background:    "#1A1B26",
		Surface:       "#24283B",
		Border:        "#414868",
		TextPrimary:   "#C0CAF5",
		TextSecondary: "#A9B1D6",
		TextMuted:     "#565F89",
		Accent:        "#7AA2F7",
		AccentDim:     "#BB9AF7",
		Healthy:       "#9ECE6A",
		Warning:       "#E0AF68",
		Critical:      "#F7768E",
		Graph:         "#7DCFFF",
	},
}

// ThemeByIndex returns the carousel entry for index, wrapping as needed.
func ThemeByIndex(index int) Theme {
	if len(themes) == 0 {
		return Theme{}
	}
	i := index % len(themes)
	if i < 0 {
		i += len(themes)
	}
	return themes[i]
}

// ThemeCount is the number of themes in the carousel.
func ThemeCount() int {
	return len(themes)
}

// ThemeIndexByName resolves a configured theme name to its carousel
// index, defaulting to 0 for unknown names.
func ThemeIndexByName(name string) int {
	for i, t := range themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}
