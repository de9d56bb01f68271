// Package seq owns the sequence under sort and its operation counters.
//
//   - [Sequence]: the values being sorted, fixed length for a run
//   - [Counters]: comparison and swap totals
//   - [Store]: the mutable sequence plus counters for the active run
//
// # Thread Safety
//
// A Store is owned by exactly one run at a time and is NOT thread-safe.
// Readers on other goroutines should use [Store.Snapshot] copies carried
// by step frames instead of touching the live values.
package seq
