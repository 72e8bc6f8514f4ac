package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/particles/internal/engine"
)

func (a *App) drawFrame(f engine.Frame) {
	rl.BeginTextureMode(a.target)
	if !a.Trace {
		rl.ClearBackground(ColBg)
	}
	for _, d := range f.Draws {
		rl.DrawPixel(int32(d.X), int32(d.Y), d.Color)
	}
	rl.EndTextureMode()
}

func (a *App) DrawHUD() {
	sys := a.Sim.System()

	rl.DrawText("particles", 30, 30, 24, ColSelect)
	rl.DrawText(fmt.Sprintf(":: %d / %d active", sys.ActiveCount(), sys.Len()), 170, 34, 16, ColText)
	rl.DrawText(fmt.Sprintf("frame %d  merges %d  workers %d", a.Sim.Engine().Frames(), a.merges, a.Sim.Engine().Workers()), 30, 60, 14, ColText)

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	if a.Trace {
		status += "  TRACE"
	}
	rl.DrawText(status, a.Width-200, 30, 16, col)

	a.DrawTelemetry()

	rl.DrawText("[SPACE] PAUSE  [N] STEP  [TAB] TRACE  [H] HUD  [ESC] QUIT", a.Width-560, a.Height-40, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, a.Height-40, 14, ColTextDim)
}

func (a *App) DrawTelemetry() {
	if len(a.Telemetry) < 2 {
		return
	}

	rectX, rectY := float32(30), float32(a.Height-120)
	width, height := float32(400), float32(60)

	minVal, maxVal := a.Telemetry[0], a.Telemetry[0]
	for _, v := range a.Telemetry {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := rectX + float32(i)/float32(len(a.Telemetry))*width
		norm := (val - minVal) / (maxVal - minVal)
		py := rectY + height - float32(norm)*height
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	rl.DrawText(fmt.Sprintf("active %.0f", a.Telemetry[len(a.Telemetry)-1]), int32(rectX+width+10), int32(rectY+height-10), 14, ColText)
}
