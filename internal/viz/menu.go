package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// PresetInfo is the one-line description shown next to each preset.
var PresetInfo = map[string]string{
	"screen":  "full screen at rest",
	"dust":    "many light drifting grains",
	"cluster": "dense central collapse",
	"drift":   "random initial velocities",
	"heavy":   "few massive bodies",
}

// Menu lets the user pick a preset and then hands over to the live view.
type Menu struct {
	presets []string
	cursor  int
	build   func(preset string) (Model, error)
	started bool
	live    Model
	err     error
}

func NewMenu(presets []string, build func(preset string) (Model, error)) Menu {
	return Menu{presets: presets, build: build}
}

// Err reports a build failure or the step error of the live view.
func (m Menu) Err() error {
	if m.err != nil {
		return m.err
	}
	if m.started {
		return m.live.err
	}
	return nil
}

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.started {
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.presets) == 0 {
			return m, nil
		}
		live, err := m.build(m.presets[m.cursor])
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.live = live
		m.started = true
		return m, m.live.Init()
	}
	return m, nil
}

func (m Menu) View() string {
	if m.started {
		return m.live.View()
	}

	var b strings.Builder
	b.WriteString("\n  " + cyan.Render("particles") + dim.Render("  gravitational n-body") + "\n\n")
	for i, name := range m.presets {
		line := fmt.Sprintf("%-10s %s", name, dimmer.Render(PresetInfo[name]))
		if i == m.cursor {
			b.WriteString("  " + cyan.Render("▸ ") + white.Render(line) + "\n")
		} else {
			b.WriteString("    " + dim.Render(line) + "\n")
		}
	}
	b.WriteString("\n  " + dimmer.Render("↑↓ select · enter start · q quit") + "\n")
	return b.String()
}
