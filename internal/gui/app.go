package gui

import (
	"context"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/particles/internal/engine"
	"github.com/san-kum/particles/internal/sim"
)

var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

const maxTelemetry = 200

// App is a raylib window showing one simulator. Particles are drawn into an
// off-screen texture that is only cleared between frames when trace mode is
// off.
type App struct {
	Sim     *sim.Simulator
	Width   int32
	Height  int32
	Trace   bool
	Running bool
	ShowHUD bool

	// Active particle count per frame, oldest first.
	Telemetry []float64

	target  rl.RenderTexture2D
	pending *engine.Frame
	merges  int
	quit    bool
}

// NewApp must be called after the window is open.
func NewApp(s *sim.Simulator, width, height int, trace bool) *App {
	a := &App{
		Sim:       s,
		Width:     int32(width),
		Height:    int32(height),
		Trace:     trace,
		Running:   true,
		ShowHUD:   true,
		Telemetry: make([]float64, 0, maxTelemetry),
		target:    rl.LoadRenderTexture(int32(width), int32(height)),
	}

	rl.BeginTextureMode(a.target)
	rl.ClearBackground(ColBg)
	rl.EndTextureMode()

	s.AddRenderer(a)
	return a
}

// Run opens a width x height window and shows s until the window is closed,
// Esc or Q is pressed, or ctx is done. A step failure closes the window and is
// returned.
func Run(ctx context.Context, s *sim.Simulator, width, height, fps int, trace bool) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	rl.InitWindow(int32(width), int32(height), "particles")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(fps))

	app := NewApp(s, width, height, trace)
	defer app.Close()

	return app.RunLoop(ctx)
}

func (a *App) RunLoop(ctx context.Context) error {
	for !rl.WindowShouldClose() && !a.quit {
		if ctx.Err() != nil {
			return nil
		}
		if err := a.Update(ctx); err != nil {
			return err
		}
		a.Draw()
	}
	return nil
}

func (a *App) Close() {
	rl.UnloadRenderTexture(a.target)
}

// Render queues a frame for the next Draw. Raylib calls stay on the loop
// thread.
func (a *App) Render(f engine.Frame) {
	a.pending = &f
	a.merges += f.Merges

	a.Telemetry = append(a.Telemetry, float64(a.Sim.System().ActiveCount()))
	if len(a.Telemetry) > maxTelemetry {
		a.Telemetry = a.Telemetry[1:]
	}
}

func (a *App) Update(ctx context.Context) error {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return nil
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.Trace = !a.Trace
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}

	if a.Running || rl.IsKeyPressed(rl.KeyN) {
		if _, err := a.Sim.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) Draw() {
	if a.pending != nil {
		a.drawFrame(*a.pending)
		a.pending = nil
	}

	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	// Render textures are stored upside down.
	src := rl.NewRectangle(0, 0, float32(a.Width), -float32(a.Height))
	rl.DrawTextureRec(a.target.Texture, src, rl.NewVector2(0, 0), rl.White)

	if a.ShowHUD {
		a.DrawHUD()
	}

	rl.EndDrawing()
}
