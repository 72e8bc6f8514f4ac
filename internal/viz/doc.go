// Package viz renders a running particle simulation in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live view that steps a simulator on every tick
//   - [Menu]: preset picker that hands over to a [Model]
//   - [Canvas]: Braille-based pixel canvas with per-cell speed colouring
//   - [CanvasRenderer]: maps draw instructions from screen pixels to the canvas
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	N     - Advance one frame while paused
//	Tab   - Toggle trace mode
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// In trace mode earlier frames stay on the canvas, so particles leave trails.
package viz
