package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/particles/internal/engine"
	"github.com/san-kum/particles/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	gifPath         = "particles.gif"
)

type TickMsg time.Time

// Model drives a simulator from Bubble Tea ticks and draws every frame onto a
// braille canvas.
type Model struct {
	sim      *sim.Simulator
	canvas   *Canvas
	renderer *CanvasRenderer
	recorder *Recorder
	name     string
	fps      int
	running  bool
	showHelp bool
	frame    engine.Frame
	merges   int
	err      error

	activeHistory []float64
	energyHistory []float64
	mergeHistory  []float64
}

// NewModel attaches a canvas renderer to s. worldW and worldH are the extent
// of the particle coordinates that map onto the canvas.
func NewModel(s *sim.Simulator, name string, worldW, worldH, fps int, trace bool) Model {
	canvas := NewCanvas(width, height)
	renderer := NewCanvasRenderer(canvas, worldW, worldH)
	renderer.Trace = trace
	s.AddRenderer(renderer)

	if fps <= 0 {
		fps = 30
	}

	return Model{
		sim:           s,
		canvas:        canvas,
		renderer:      renderer,
		name:          name,
		fps:           fps,
		running:       true,
		activeHistory: make([]float64, 0, historyCapacity),
		energyHistory: make([]float64, 0, historyCapacity),
		mergeHistory:  make([]float64, 0, historyCapacity),
	}
}

// Err is the step failure that stopped the model, if any.
func (m Model) Err() error { return m.err }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.stopRecording()
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.step()
				if m.err != nil {
					m.stopRecording()
					return m, tea.Quit
				}
			}
		case "tab":
			m.renderer.Trace = !m.renderer.Trace
			if !m.renderer.Trace {
				m.canvas.Clear()
			}
		case "t":
			NextTheme()
		case "g":
			if m.recorder != nil {
				m.stopRecording()
			} else {
				m.recorder = NewRecorder()
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		if m.err != nil {
			m.stopRecording()
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

// step advances one frame. A failed step stops the model for good.
func (m *Model) step() {
	if m.err != nil {
		return
	}

	frame, err := m.sim.Step(context.Background())
	if err != nil {
		m.err = err
		m.running = false
		return
	}

	m.frame = frame
	m.merges += frame.Merges

	sys := m.sim.System()
	m.activeHistory = pushHistory(m.activeHistory, float64(sys.ActiveCount()))
	m.energyHistory = pushHistory(m.energyHistory, sys.KineticEnergy())
	m.mergeHistory = pushHistory(m.mergeHistory, float64(frame.Merges))

	if m.recorder != nil {
		m.recorder.Capture(m.canvas)
	}
}

func pushHistory(h []float64, v float64) []float64 {
	h = append(h, v)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	return h
}

func (m *Model) stopRecording() {
	if m.recorder == nil {
		return
	}
	if err := m.recorder.Save(gifPath); err != nil && m.err == nil {
		m.err = fmt.Errorf("save recording: %w", err)
	}
	m.recorder = nil
}

// View renders the TUI interface.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.Render(CurrentTheme))

	var s strings.Builder
	s.WriteString(headerStyle.Render(GradientText(strings.ToUpper(m.name), CurrentTheme.Secondary, CurrentTheme.Accent)) + "\n")

	switch {
	case m.err != nil:
		s.WriteString(StatusError.Render("FAILED") + "\n")
		s.WriteString(valueStyle.Render(m.err.Error()) + "\n\n")
	case m.recorder != nil:
		s.WriteString(StatusRecording.Render(fmt.Sprintf("REC %d", m.recorder.Len())) + "\n\n")
	case m.running:
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	if len(m.activeHistory) > 1 {
		chart := asciigraph.Plot(m.activeHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Active"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	sys := m.sim.System()
	energy := 0.0
	if len(m.energyHistory) > 0 {
		energy = m.energyHistory[len(m.energyHistory)-1]
	}
	trace := "off"
	if m.renderer.Trace {
		trace = "on"
	}

	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Engine().Frames())) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d / %d", sys.ActiveCount(), sys.Len())) + "\n")
	s.WriteString(labelStyle.Render("Merges") + valueStyle.Render(fmt.Sprintf("%d", m.merges)) + "\n")
	s.WriteString(labelStyle.Render("Mass") + valueStyle.Render(fmt.Sprintf("%.1f", sys.TotalMass())) + "\n")
	s.WriteString(labelStyle.Render("Kinetic") + valueStyle.Render(fmt.Sprintf("%.2f", energy)) + "\n")
	s.WriteString(labelStyle.Render("Workers") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Engine().Workers())) + "\n")
	s.WriteString(labelStyle.Render("Trace") + valueStyle.Render(trace) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(CurrentTheme.Name) + "\n")
	s.WriteString("\n" + labelStyle.Render("Merges/f") + SparklineChart(m.mergeHistory, 30) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause N:Step Q:Quit\nTab:Trace T:Theme G:Record ?:Help"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  N        - Single frame when paused ║
║  Tab      - Toggle trace mode        ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  Q/Esc    - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run shows m full screen until the user quits and returns the step error
// that stopped the simulation, if any.
func Run(m tea.Model) error {
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	switch fm := final.(type) {
	case Model:
		return fm.err
	case Menu:
		return fm.Err()
	}
	return nil
}
