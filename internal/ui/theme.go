package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	SelectionBg   string
	SelectionText string

	// TypeColors maps energy types to display colors; types without an
	// entry render in the accent color.
	TypeColors map[string]string
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		CardTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
	}
}

// TypeStyle returns the style for an energy type label.
func (t Theme) TypeStyle(energy string) lipgloss.Style {
	color, ok := t.TypeColors[energy]
	if !ok {
		color = t.Accent
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// Styles groups the rendered lipgloss styles for one theme.
type Styles struct {
	Logo   lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Selected  lipgloss.Style
	CardTitle lipgloss.Style
}

var draculaTheme = Theme{
	Name:       "Dracula",
	Background: "#282a36",
	Surface:    "#44475a",

	Text:    "#f8f8f2",
	Muted:   "#9ea8c7",
	Faint:   "#6272a4",
	Accent:  "#bd93f9",
	Success: "#50fa7b",
	Warning: "#f1fa8c",
	Danger:  "#ff5555",

	SelectionBg:   "#44475a",
	SelectionText: "#f8f8f2",

	TypeColors: map[string]string{
		"Grass":     "#50fa7b",
		"Fire":      "#ff5555",
		"Water":     "#8be9fd",
		"Lightning": "#f1fa8c",
		"Psychic":   "#ff79c6",
		"Fighting":  "#ffb86c",
		"Darkness":  "#6272a4",
		"Metal":     "#9ea8c7",
		"Fairy":     "#ff79c6",
		"Dragon":    "#bd93f9",
		"Colorless": "#f8f8f2",
	},
}

var slateTheme = Theme{
	Name:       "Slate",
	Background: "#1c2128",
	Surface:    "#2d333b",

	Text:    "#adbac7",
	Muted:   "#768390",
	Faint:   "#545d68",
	Accent:  "#6cb6ff",
	Success: "#57ab5a",
	Warning: "#c69026",
	Danger:  "#e5534b",

	SelectionBg:   "#2d333b",
	SelectionText: "#cdd9e5",

	TypeColors: map[string]string{
		"Grass":     "#57ab5a",
		"Fire":      "#e5534b",
		"Water":     "#6cb6ff",
		"Lightning": "#c69026",
		"Psychic":   "#b083f0",
		"Fighting":  "#cc6b2c",
		"Darkness":  "#545d68",
		"Metal":     "#768390",
		"Fairy":     "#b083f0",
		"Dragon":    "#6cb6ff",
		"Colorless": "#adbac7",
	},
}

var themes = []Theme{draculaTheme, slateTheme}

// ThemeByName returns the named theme, defaulting to the first theme when
// the name is unknown.
func ThemeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
