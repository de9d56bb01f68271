package run

import "errors"

// ErrInvalidState is returned when an operation is not allowed in the
// controller's current state.
var ErrInvalidState = errors.New("run: invalid state for operation")

type State int

const (
	Idle State = iota
	Running
	Paused
	Finished
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Active reports whether a run is in progress.
func (s State) Active() bool { return s == Running || s == Paused }

// Status is the short text shown next to the controls.
func (s State) Status() string {
	switch s {
	case Running:
		return "Sorting..."
	case Paused:
		return "Paused"
	case Finished:
		return "Sorted"
	case Cancelled:
		return "Cancelled"
	default:
		return "Ready"
	}
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
