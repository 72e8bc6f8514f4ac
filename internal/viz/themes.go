package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	// Slow to fast particle colours.
	Speed [4]lipgloss.Color
}

// Palette returns the speed colours, slowest first.
func (t Theme) Palette() []lipgloss.Color {
	return t.Speed[:]
}

// Available themes
var (
	// ThemeClassic follows the blue-to-white ramp of the window renderer.
	ThemeClassic = Theme{
		Name:      "classic",
		Primary:   lipgloss.Color("#8888ff"),
		Secondary: lipgloss.Color("#4444ff"),
		Accent:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Speed:     [4]lipgloss.Color{"#0000ff", "#5555ff", "#aaaaff", "#ffffff"},
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"), // Magenta
		Secondary: lipgloss.Color("#00ffff"), // Cyan
		Accent:    lipgloss.Color("#ffff00"), // Yellow
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Speed:     [4]lipgloss.Color{"#5500aa", "#ff00ff", "#00ffff", "#ffff00"},
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Speed:     [4]lipgloss.Color{"#005500", "#009900", "#00ff00", "#ccffcc"},
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"), // Coral
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Speed:     [4]lipgloss.Color{"#8b6b8c", "#ff6b6b", "#feca57", "#fff5f5"},
	}

	ThemeSpectrum = Theme{
		Name:      "spectrum",
		Primary:   lipgloss.Color("#ff8800"),
		Secondary: lipgloss.Color("#0088ff"),
		Accent:    lipgloss.Color("#ff0044"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#777777"),
		Speed:     hueRamp(240, 0),
	}

	// Default theme
	CurrentTheme = ThemeClassic

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeSunset,
		ThemeSpectrum,
	}
)

// hueRamp spreads the speed colours evenly in HCL hue from one angle to
// another, slow to fast.
func hueRamp(from, to float64) [4]lipgloss.Color {
	var ramp [4]lipgloss.Color
	for i := range ramp {
		h := from + (to-from)*float64(i)/float64(len(ramp)-1)
		ramp[i] = lipgloss.Color(colorful.Hcl(h, 0.8, 0.7).Clamped().Hex())
	}
	return ramp
}

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
