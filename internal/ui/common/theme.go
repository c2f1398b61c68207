package common

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// ThemeID identifies a color theme.
type ThemeID string

const (
	ThemeTokyoNight   ThemeID = "tokyo-night"
	ThemeGruvbox      ThemeID = "gruvbox"
	ThemeNord         ThemeID = "nord"
	ThemeGruvboxLight ThemeID = "gruvbox-light"
)

// ThemeColors defines all colors used by the application.
type ThemeColors struct {
	Background    color.Color
	Foreground    color.Color
	Muted         color.Color
	Border        color.Color
	BorderFocused color.Color

	Primary   color.Color
	Secondary color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Info      color.Color

	Surface1 color.Color
	Surface2 color.Color

	Selection color.Color
	Highlight color.Color
}

// Theme represents a complete color theme.
type Theme struct {
	ID     ThemeID
	Name   string
	Colors ThemeColors
	// Chroma is the syntax highlighting style paired with the theme.
	Chroma string
}

// palette lists hex colors in ThemeColors field order.
type palette [15]string

func (p palette) colors() ThemeColors {
	c := func(i int) color.Color { return lipgloss.Color(p[i]) }
	return ThemeColors{
		Background: c(0), Foreground: c(1), Muted: c(2), Border: c(3), BorderFocused: c(4),
		Primary: c(5), Secondary: c(6), Success: c(7), Warning: c(8), Error: c(9), Info: c(10),
		Surface1: c(11), Surface2: c(12),
		Selection: c(13), Highlight: c(14),
	}
}

// AvailableThemes returns all predefined themes.
func AvailableThemes() []Theme {
	return []Theme{
		{ID: ThemeTokyoNight, Name: "Tokyo Night", Chroma: "tokyonight-night", Colors: palette{
			"#1a1b26", "#a9b1d6", "#565f89", "#292e42", "#7aa2f7",
			"#7aa2f7", "#bb9af7", "#9ece6a", "#e0af68", "#f7768e", "#7dcfff",
			"#1f2335", "#24283b",
			"#33467c", "#3d59a1",
		}.colors()},
		{ID: ThemeGruvbox, Name: "Gruvbox", Chroma: "gruvbox", Colors: palette{
			"#282828", "#ebdbb2", "#928374", "#3c3836", "#fe8019",
			"#fe8019", "#d3869b", "#b8bb26", "#fabd2f", "#fb4934", "#83a598",
			"#3c3836", "#504945",
			"#504945", "#665c54",
		}.colors()},
		{ID: ThemeNord, Name: "Nord", Chroma: "nord", Colors: palette{
			"#2e3440", "#d8dee9", "#616e88", "#3b4252", "#88c0d0",
			"#88c0d0", "#b48ead", "#a3be8c", "#ebcb8b", "#bf616a", "#81a1c1",
			"#3b4252", "#434c5e",
			"#434c5e", "#4c566a",
		}.colors()},
		{ID: ThemeGruvboxLight, Name: "Gruvbox Light", Chroma: "gruvbox-light", Colors: palette{
			"#fbf1c7", "#3c3836", "#928374", "#ebdbb2", "#af3a03",
			"#af3a03", "#8f3f71", "#79740e", "#b57614", "#9d0006", "#076678",
			"#ebdbb2", "#d5c4a1",
			"#d5c4a1", "#bdae93",
		}.colors()},
	}
}

// GetTheme returns a theme by ID, defaulting to Tokyo Night.
func GetTheme(id ThemeID) Theme {
	themes := AvailableThemes()
	for _, t := range themes {
		if t.ID == id {
			return t
		}
	}
	return themes[0]
}

var currentTheme = GetTheme(ThemeTokyoNight)

// SetCurrentTheme switches the palette used by DefaultStyles.
func SetCurrentTheme(id ThemeID) {
	currentTheme = GetTheme(id)
}

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	return currentTheme
}

// NextTheme returns the theme after id in AvailableThemes, wrapping around.
func NextTheme(id ThemeID) ThemeID {
	themes := AvailableThemes()
	for i, t := range themes {
		if t.ID == id {
			return themes[(i+1)%len(themes)].ID
		}
	}
	return themes[0].ID
}
