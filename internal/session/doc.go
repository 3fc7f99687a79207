// Package session orchestrates the expression pipeline, convolution kernels,
// and playback into one interactive convolution session.
//
//   - [Session]: holds both signals, the current time shift, and results
//   - [Playback]: the Stopped/Playing state machine that owns the shift
//     while an animation runs
//
// # Thread Safety
//
// A Session serializes all mutation behind one mutex: playback ticks,
// explicit steps, and parameter edits go through the same lock. Full-curve
// recomputation may run on another goroutine against an immutable kernel
// snapshot; ApplyFull discards results whose version is stale. Distinct
// sessions are independent and may be driven concurrently.
package session
