package metrics

import "github.com/san-kum/sortviz/internal/step"

// History records the cumulative operation count seen at each frame, keeping
// at most capacity samples.
type History struct {
	name     string
	capacity int
	samples  []float64
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = 1
	}
	return &History{
		name:     "operations",
		capacity: capacity,
		samples:  make([]float64, 0, capacity),
	}
}

func (h *History) Name() string { return h.name }

func (h *History) Observe(f step.Frame) {
	h.samples = append(h.samples, float64(f.Counters.Total()))
	if len(h.samples) > h.capacity {
		h.samples = h.samples[1:]
	}
}

// Value is the most recent sample.
func (h *History) Value() float64 {
	if len(h.samples) == 0 {
		return 0
	}
	return h.samples[len(h.samples)-1]
}

func (h *History) Values() []float64 {
	out := make([]float64, len(h.samples))
	copy(out, h.samples)
	return out
}

func (h *History) Len() int { return len(h.samples) }

func (h *History) Reset() { h.samples = h.samples[:0] }
