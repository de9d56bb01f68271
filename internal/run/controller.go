package run

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/seq"
	"github.com/san-kum/sortviz/internal/step"
)

const opFinished = "Array is fully sorted"

// Snapshot is a consistent copy of the controller's observable state.
type Snapshot struct {
	State     State           `json:"state"`
	Status    string          `json:"status"`
	Algorithm algo.Descriptor `json:"algorithm"`
	Counters  seq.Counters    `json:"counters"`
	Elapsed   int             `json:"elapsed_seconds"`
	Steps     int             `json:"steps"`
	Operation string          `json:"operation"`
	Frame     step.Frame      `json:"-"`
	Report    *metrics.Report `json:"report,omitempty"`
	Values    seq.Sequence    `json:"values"`
}

type Controller struct {
	registry *algo.Registry
	sink     step.Sink
	now      func() time.Time
	rng      *rand.Rand

	mu       sync.Mutex
	delay    time.Duration
	state    State
	store    *seq.Store
	sched    *step.Scheduler
	desc     algo.Descriptor
	gen      uint64
	cancel   context.CancelFunc
	done     chan struct{}
	owned    bool
	initial  seq.Sequence
	err      error
	started  time.Time
	stopped  time.Time
	last     step.Frame
	hasFrame bool
	report   *metrics.Report
}

func New(opts ...Option) *Controller {
	c := &Controller{
		registry: algo.NewRegistry(),
		sink:     step.Discard,
		now:      time.Now,
		delay:    config.DelayFor(config.DefaultSpeed),
		store:    seq.NewStore(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(c.now().UnixNano()))
	}
	return c
}

func (c *Controller) Registry() *algo.Registry { return c.registry }

// Load cancels any active run and replaces the sequence with a copy of s.
func (c *Controller) Load(s seq.Sequence) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadLocked(s)
}

// Generate cancels any active run and loads a fresh random sequence.
func (c *Controller) Generate(size int) seq.Sequence {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := seq.Generate(size, c.rng)
	c.loadLocked(s)
	return s.Clone()
}

func (c *Controller) loadLocked(s seq.Sequence) {
	if c.state.Active() {
		c.cancelLocked("load")
	} else {
		c.state = Idle
	}
	// A cancelled run may still be unwinding over the old store; it keeps
	// that store and its results are ignored.
	c.gen++
	c.owned = false
	c.store = seq.NewStore(s)
	c.hasFrame = false
	c.last = step.Frame{}
	c.report = nil
	c.started, c.stopped = time.Time{}, time.Time{}
}

// Start begins sorting the loaded sequence with the algorithm id on a new
// goroutine. It fails with ErrInvalidState while another run is active.
func (c *Controller) Start(ctx context.Context, id string) error {
	desc, fn, err := c.registry.Get(id)
	if err != nil {
		return err
	}

	c.mu.Lock()
	for {
		if c.state.Active() {
			state := c.state
			c.mu.Unlock()
			return fmt.Errorf("%w: start while %s", ErrInvalidState, state)
		}
		if !c.owned {
			break
		}
		// Let a cancelled run finish unwinding before reusing its store.
		done := c.done
		c.mu.Unlock()
		<-done
		c.mu.Lock()
	}
	defer c.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	c.gen++
	gen := c.gen
	done := make(chan struct{})

	c.store.Reset()
	c.sched = step.New(step.SinkFunc(func(f step.Frame) { c.record(gen, f) }), c.delay)
	c.desc = desc
	c.cancel = cancel
	c.done = done
	c.owned = true
	c.initial = c.store.Snapshot()
	c.err = nil
	c.state = Running
	c.started = c.now()
	c.stopped = time.Time{}
	c.hasFrame = false
	c.last = step.Frame{}
	c.report = nil

	r := algo.NewRun(c.store, c.sched)
	logging.Info("run started", "algorithm", desc.ID, "size", c.store.Len(), "delay", c.delay)

	go c.drive(runCtx, gen, fn, r, done)
	return nil
}

// Run starts a sort and blocks until it finishes or is cancelled.
func (c *Controller) Run(ctx context.Context, id string) (Snapshot, error) {
	if err := c.Start(ctx, id); err != nil {
		return c.Snapshot(), err
	}
	c.Wait()

	c.mu.Lock()
	err := c.err
	c.mu.Unlock()
	return c.Snapshot(), err
}

func (c *Controller) drive(ctx context.Context, gen uint64, fn algo.Func, r *algo.Run, done chan struct{}) {
	defer close(done)

	err := fn(ctx, r)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.owned = false
	c.cancel()

	if err != nil || c.state == Cancelled {
		if err == nil {
			err = context.Canceled
		}
		c.err = err
		if c.state != Cancelled {
			c.state = Cancelled
			c.stopped = c.now()
		}
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			logging.Error("run failed", "algorithm", c.desc.ID, "err", err)
		} else {
			logging.Info("run cancelled", "algorithm", c.desc.ID, "steps", c.sched.Steps())
		}
		c.mu.Unlock()
		return
	}

	final := c.finishLocked(r)
	sched := c.sched
	c.mu.Unlock()

	sched.Flush(final)
}

// finishLocked records natural completion and returns the final frame.
func (c *Controller) finishLocked(r *algo.Run) step.Frame {
	for i := 0; i < c.store.Len(); i++ {
		r.MarkSorted(i)
	}
	counters := c.store.Counters()

	c.state = Finished
	c.stopped = c.now()
	report := metrics.Analyze(counters, c.store.Len(), c.desc.Best.Time, c.desc.Worst.Time)
	c.report = &report

	logging.Info("run finished",
		"algorithm", c.desc.ID,
		"comparisons", counters.Comparisons,
		"swaps", counters.Swaps,
		"steps", c.sched.Steps(),
		"complexity", report.Label,
	)

	return step.Frame{
		Kind:      step.Finish,
		Values:    c.store.Snapshot(),
		Sorted:    r.Sorted(),
		Pivot:     -1,
		Counters:  counters,
		Operation: opFinished,
		Final:     true,
	}
}

func (c *Controller) record(gen uint64, f step.Frame) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.last = f
	c.hasFrame = true
	c.mu.Unlock()

	c.sink.Render(f)
}

// TogglePause pauses a running sort or resumes a paused one and returns the
// new state.
func (c *Controller) TogglePause() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Active() {
		return c.state, fmt.Errorf("%w: pause while %s", ErrInvalidState, c.state)
	}
	if c.sched.Gate().Toggle() {
		c.state = Paused
		logging.Info("run paused", "algorithm", c.desc.ID, "step", c.sched.Steps())
	} else {
		c.state = Running
		logging.Info("run resumed", "algorithm", c.desc.ID, "step", c.sched.Steps())
	}
	return c.state, nil
}

// Stop cancels the active run, if any. It does not wait for the run to
// unwind; use Wait for that.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Active() {
		c.cancelLocked("stop")
	}
}

func (c *Controller) cancelLocked(reason string) {
	c.state = Cancelled
	c.stopped = c.now()
	if c.cancel != nil {
		c.cancel()
	}
	logging.Debug("run cancel requested", "reason", reason, "algorithm", c.desc.ID)
}

// Wait blocks until the current run goroutine has returned.
func (c *Controller) Wait() {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done != nil {
		<-done
	}
}

// SetSpeed applies a speed slider value in [config.MinSpeed, config.MaxSpeed].
func (c *Controller) SetSpeed(speed int) {
	c.SetDelay(config.DelayFor(speed))
}

// SetDelay changes the per-step delay, including for a run in progress.
func (c *Controller) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delay = d
	if c.sched != nil {
		c.sched.SetDelay(d)
	}
}

func (c *Controller) Delay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delay
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:     c.state,
		Status:    c.state.Status(),
		Algorithm: c.desc,
		Elapsed:   c.elapsedLocked(),
		Report:    c.report,
	}
	if c.sched != nil {
		snap.Steps = c.sched.Steps()
	}

	// The store belongs to the run goroutine while it is owned.
	if c.owned {
		switch {
		case c.state == Cancelled:
			// The run is still unwinding and may hold elements outside the
			// sequence; its last frame is not a permutation of the input.
			snap.Values = c.initial.Clone()
			snap.Counters = c.last.Counters
		case c.hasFrame:
			snap.Values = c.last.Values.Clone()
			snap.Counters = c.last.Counters
		default:
			snap.Values = c.initial.Clone()
		}
	} else {
		snap.Values = c.store.Snapshot()
		snap.Counters = c.store.Counters()
	}
	if c.hasFrame {
		snap.Frame = c.last
	}

	switch {
	case c.state == Idle:
		snap.Operation = "Ready"
	case c.state == Paused:
		snap.Operation = "Paused"
	case c.state == Finished:
		snap.Operation = opFinished
	case c.hasFrame:
		snap.Operation = c.last.Operation
	}
	return snap
}

func (c *Controller) elapsedLocked() int {
	if c.started.IsZero() {
		return 0
	}
	end := c.stopped
	if end.IsZero() {
		end = c.now()
	}
	return int(end.Sub(c.started) / time.Second)
}
