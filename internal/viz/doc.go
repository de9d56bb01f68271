// Package viz renders sorting runs in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: the main view, driving a [run.Controller]
//   - [BarCanvas]: eighth-block bar chart colored by bar state
//   - Theme selection with 5 built-in color schemes
//
// Frames reach the view through a non-blocking latest-frame sink throttled
// to the configured frame rate; the view also polls the controller so a
// paused run always shows its exact step.
//
// # Key Bindings
//
//	Enter - Start sorting
//	Space - Pause/Resume
//	Esc   - Stop
//	G     - Generate a new array
//	+/-   - Array size
//	←/→   - Speed
//	Tab   - Next algorithm
//	T     - Cycle color themes
//	?     - Show help
package viz
