package algo

import (
	"cmp"
	"context"
	"fmt"

	"github.com/san-kum/sortviz/internal/seq"
	"github.com/san-kum/sortviz/internal/step"
)

// Func sorts the sequence held by r, emitting steps as it goes.
type Func func(ctx context.Context, r *Run) error

// Run is the context shared by one algorithm invocation.
type Run struct {
	store  *seq.Store
	sched  *step.Scheduler
	sorted []int
	seen   map[int]bool
	pivot  int
	// order is the value comparison behind Compare. It is numeric order;
	// stability checks swap in an ordering that sees only part of a value.
	order  func(x, y int) int
}

func NewRun(store *seq.Store, sched *step.Scheduler) *Run {
	return &Run{
		store: store,
		sched: sched,
		seen:  make(map[int]bool),
		pivot: -1,
		order: cmp.Compare[int],
	}
}

func (r *Run) Len() int     { return r.store.Len() }
func (r *Run) At(i int) int { return r.store.At(i) }

// Sorted returns a copy of the indices marked sorted so far, in marking order.
func (r *Run) Sorted() []int {
	out := make([]int, len(r.sorted))
	copy(out, r.sorted)
	return out
}

// Every step primitive first waits out a pause, so nothing is counted or
// emitted while paused.

// Compare counts one comparison of x against y, emits a Compare step
// highlighting at, and returns -1, 0 or +1 as x is less than, equal to or
// greater than y.
func (r *Run) Compare(ctx context.Context, x, y int, op string, at ...int) (int, error) {
	r.sched.Hold(ctx)
	r.store.CountCompare()
	if err := r.emit(ctx, step.Compare, op, at, false); err != nil {
		return 0, err
	}
	return r.order(x, y), nil
}

// Swap exchanges positions i and j and counts one swap.
func (r *Run) Swap(ctx context.Context, i, j int) error {
	r.sched.Hold(ctx)
	r.store.Swap(i, j)
	r.store.CountSwap()
	return r.emit(ctx, step.Swap, fmt.Sprintf("Swapping elements at indices %d and %d", i, j), []int{i, j}, true)
}

// Overwrite writes v at k and counts it as one swap.
func (r *Run) Overwrite(ctx context.Context, k, v int, op string) error {
	r.sched.Hold(ctx)
	r.store.Set(k, v)
	r.store.CountSwap()
	return r.emit(ctx, step.Overwrite, op, []int{k}, true)
}

// Shift copies the value at from into to, counted as one swap.
func (r *Run) Shift(ctx context.Context, from, to int) error {
	r.sched.Hold(ctx)
	r.store.Set(to, r.store.At(from))
	r.store.CountSwap()
	return r.emit(ctx, step.Overwrite, fmt.Sprintf("Shifting element at index %d to the right", from), []int{from, to}, true)
}

// MarkSorted adds i to the sorted set without emitting a step.
func (r *Run) MarkSorted(i int) {
	if i < 0 || i >= r.Len() || r.seen[i] {
		return
	}
	r.seen[i] = true
	r.sorted = append(r.sorted, i)
}

// EmitSorted marks i sorted and emits a MarkSorted step.
func (r *Run) EmitSorted(ctx context.Context, i int, op string) error {
	r.sched.Hold(ctx)
	r.MarkSorted(i)
	return r.emit(ctx, step.MarkSorted, op, nil, false)
}

// EmitPivot sets the pivot index and emits a MarkPivot step.
func (r *Run) EmitPivot(ctx context.Context, i int) error {
	r.sched.Hold(ctx)
	r.pivot = i
	return r.emit(ctx, step.MarkPivot, fmt.Sprintf("Partitioning with pivot at index %d", i), nil, false)
}

func (r *Run) ClearPivot() { r.pivot = -1 }

// put writes v at k without counting or emitting. Used only to restore held
// elements when unwinding after cancellation.
func (r *Run) put(k, v int) { r.store.Set(k, v) }

func (r *Run) emit(ctx context.Context, kind step.Kind, op string, at []int, swapping bool) error {
	return r.sched.Emit(ctx, step.Frame{
		Kind:      kind,
		Values:    r.store.Snapshot(),
		Highlight: append([]int(nil), at...),
		Sorted:    r.Sorted(),
		Pivot:     r.pivot,
		Swapping:  swapping,
		Counters:  r.store.Counters(),
		Operation: op,
	})
}
