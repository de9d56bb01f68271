// Package step turns algorithm work into externally observable steps.
//
// Every unit of work is described by a [Frame] and handed to a [Sink]
// synchronously by [Scheduler.Emit]. Emit then suspends the caller for the
// configured delay and for as long as the [Gate] is paused. Cancellation is
// carried by the context: Emit returns ctx.Err() and the caller is expected
// to return it upward without doing further work.
//
// # Example
//
//	sched := step.New(sink, 50*time.Millisecond)
//	if err := sched.Emit(ctx, frame); err != nil {
//		return err
//	}
package step
