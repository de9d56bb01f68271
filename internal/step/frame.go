package step

import "github.com/san-kum/sortviz/internal/seq"

type Kind int

const (
	Compare Kind = iota
	Swap
	Overwrite
	MarkSorted
	MarkPivot
	Finish
)

func (k Kind) String() string {
	switch k {
	case Compare:
		return "compare"
	case Swap:
		return "swap"
	case Overwrite:
		return "overwrite"
	case MarkSorted:
		return "mark-sorted"
	case MarkPivot:
		return "mark-pivot"
	case Finish:
		return "finish"
	default:
		return "unknown"
	}
}

// Frame describes one observable step together with everything a renderer
// needs to draw it. Values and index slices are owned by the frame.
type Frame struct {
	Kind      Kind
	Step      int
	Values    seq.Sequence
	Highlight []int
	Sorted    []int
	Pivot     int
	Swapping  bool
	Counters  seq.Counters
	Operation string
	Final     bool
}

// IsSorted reports whether index i is in the frame's sorted set.
func (f Frame) IsSorted(i int) bool {
	for _, s := range f.Sorted {
		if s == i {
			return true
		}
	}
	return false
}

func (f Frame) IsHighlighted(i int) bool {
	for _, h := range f.Highlight {
		if h == i {
			return true
		}
	}
	return false
}

type Sink interface {
	Render(f Frame)
}

type SinkFunc func(f Frame)

func (fn SinkFunc) Render(f Frame) { fn(f) }

// Discard drops every frame.
var Discard Sink = SinkFunc(func(Frame) {})
