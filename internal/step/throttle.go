package step

import (
	"time"

	"golang.org/x/time/rate"
)

type throttled struct {
	next    Sink
	limiter *rate.Limiter
}

// Throttle forwards at most fps frames per second to next. Final frames are
// always forwarded so the last picture of a run is never dropped.
func Throttle(next Sink, fps int) Sink {
	if fps <= 0 {
		return next
	}
	return &throttled{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(fps)), 1),
	}
}

func (t *throttled) Render(f Frame) {
	if f.Final || t.limiter.Allow() {
		t.next.Render(f)
	}
}
