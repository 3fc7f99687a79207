// Package viz provides terminal-based visualization for convolution sessions.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: playback view driving a session at 30 frames per second
//   - [FramePlot]/[CurvePlot]: asciigraph renderings of a single frame and
//     of the full convolution curve
//
// # Key Bindings
//
//	Space - Play/Pause the shift animation
//	R     - Reset to the left edge of the grid
//	←/→   - Step the shift by one increment
//	+/-   - Speed up / slow down playback
//	S     - Toggle mathematical vs block-step rendering
//	F     - Toggle the full convolution curve
//	?     - Show help overlay
package viz
