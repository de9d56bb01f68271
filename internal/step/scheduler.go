package step

import (
	"context"
	"sync/atomic"
	"time"
)

// Scheduler renders frames and suspends the emitting algorithm between them.
type Scheduler struct {
	sink  Sink
	gate  *Gate
	delay atomic.Int64
	steps atomic.Int64
}

func New(sink Sink, delay time.Duration) *Scheduler {
	if sink == nil {
		sink = Discard
	}
	s := &Scheduler{sink: sink, gate: &Gate{}}
	s.SetDelay(delay)
	return s
}

func (s *Scheduler) Gate() *Gate { return s.gate }

// SetDelay changes the per-step delay. It is safe to call while a run is emitting.
func (s *Scheduler) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.delay.Store(int64(d))
}

func (s *Scheduler) Delay() time.Duration { return time.Duration(s.delay.Load()) }

// Steps returns the number of frames emitted since the last Reset.
func (s *Scheduler) Steps() int { return int(s.steps.Load()) }

// Reset zeroes the step count and opens the gate.
func (s *Scheduler) Reset() {
	s.steps.Store(0)
	s.gate.Resume()
}

// Hold blocks while the gate is paused, returning once it opens or ctx is
// done. Callers check ctx themselves afterwards; Hold lets a step that has
// not yet started wait out a pause before it counts anything.
func (s *Scheduler) Hold(ctx context.Context) {
	_ = s.gate.Wait(ctx)
}

// Emit renders f, then waits for the delay to elapse and the gate to open.
// A non-nil error means the run was cancelled and the caller must unwind.
func (s *Scheduler) Emit(ctx context.Context, f Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.Step = int(s.steps.Add(1))
	s.sink.Render(f)

	if d := s.Delay(); d > 0 {
		timer := time.NewTimer(d)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return s.gate.Wait(ctx)
}

// Flush renders f without suspending. Used for terminal frames.
func (s *Scheduler) Flush(f Frame) {
	f.Step = s.Steps()
	s.sink.Render(f)
}
