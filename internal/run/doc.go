// Package run owns the lifecycle of one sort at a time.
//
// A Controller holds the sequence under sort, drives an algorithm from the
// registry on its own goroutine, and exposes pause, resume and cancel. The
// state machine is:
//
//	Idle ──Start──▶ Running ◀──TogglePause──▶ Paused
//	                   │                         │
//	              (complete)                 Stop/Load
//	                   ▼                         ▼
//	               Finished                  Cancelled
//
// Finished and Cancelled behave like Idle for Start. Snapshot is safe to
// call from any goroutine; sinks may call TogglePause and Stop from within
// Render but must not call Start, Run, Load or Generate.
package run
