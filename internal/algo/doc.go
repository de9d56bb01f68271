// Package algo implements the five step-emitting sorting algorithms.
//
// An algorithm is a [Func] operating on a [Run]. The Run carries the
// sequence store and step scheduler for one invocation; the algorithms keep
// no state of their own beyond local variables. Every comparison and every
// write goes through a Run primitive, which counts it exactly once and emits
// exactly one step.
//
// Cancellation arrives through the context. Algorithms check it at the top of
// every inner loop iteration and return the error from any primitive
// unchanged, so it unwinds through every recursive call site. An algorithm
// holding elements outside the sequence (an insertion key, merge buffers)
// writes them back before returning, leaving a permutation of the input.
package algo
