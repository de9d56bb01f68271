package run

import (
	"math/rand"
	"time"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/step"
)

type Option func(*Controller)

// WithSink sets where frames are rendered. Defaults to step.Discard.
func WithSink(s step.Sink) Option {
	return func(c *Controller) {
		if s != nil {
			c.sink = s
		}
	}
}

func WithRegistry(r *algo.Registry) Option {
	return func(c *Controller) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithDelay sets the per-step delay. Zero runs without pacing.
func WithDelay(d time.Duration) Option {
	return func(c *Controller) { c.delay = d }
}

// WithClock replaces time.Now for elapsed-time accounting.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithRand sets the source used by Generate.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		if rng != nil {
			c.rng = rng
		}
	}
}
