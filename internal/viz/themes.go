package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for panels and bar states.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color

	Bar     lipgloss.Color
	Compare lipgloss.Color
	Swap    lipgloss.Color
	Sorted  lipgloss.Color
	Pivot   lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:    "classic",
		Primary: lipgloss.Color("#4a6fa5"),
		Accent:  lipgloss.Color("#ff9800"),
		Text:    lipgloss.Color("#e0e0e0"),
		Muted:   lipgloss.Color("#777777"),
		Border:  lipgloss.Color("#444466"),
		Bar:     lipgloss.Color("#4a6fa5"),
		Compare: lipgloss.Color("#ff9800"),
		Swap:    lipgloss.Color("#f44336"),
		Sorted:  lipgloss.Color("#4caf50"),
		Pivot:   lipgloss.Color("#9c27b0"),
	}

	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Primary: lipgloss.Color("#ff00ff"),
		Accent:  lipgloss.Color("#ffff00"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Border:  lipgloss.Color("#444466"),
		Bar:     lipgloss.Color("#00ffff"),
		Compare: lipgloss.Color("#ffff00"),
		Swap:    lipgloss.Color("#ff0000"),
		Sorted:  lipgloss.Color("#00ff00"),
		Pivot:   lipgloss.Color("#ff00ff"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Border:  lipgloss.Color("#005500"),
		Bar:     lipgloss.Color("#00aa00"),
		Compare: lipgloss.Color("#ffff00"),
		Swap:    lipgloss.Color("#ff5500"),
		Sorted:  lipgloss.Color("#88ff88"),
		Pivot:   lipgloss.Color("#ffffff"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Border:  lipgloss.Color("#224466"),
		Bar:     lipgloss.Color("#00a8cc"),
		Compare: lipgloss.Color("#ffd700"),
		Swap:    lipgloss.Color("#ff4444"),
		Sorted:  lipgloss.Color("#00ff88"),
		Pivot:   lipgloss.Color("#ff9ff3"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Primary: lipgloss.Color("#ff6b6b"),
		Accent:  lipgloss.Color("#feca57"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Border:  lipgloss.Color("#5d3b5e"),
		Bar:     lipgloss.Color("#ff9ff3"),
		Compare: lipgloss.Color("#feca57"),
		Swap:    lipgloss.Color("#ff4757"),
		Sorted:  lipgloss.Color("#5fd068"),
		Pivot:   lipgloss.Color("#48dbfb"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
