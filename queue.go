// Package spsc provides a fixed-capacity, allocation-free ring buffer for
// ordered hand-off between exactly one producer goroutine and exactly one
// consumer goroutine.
//
// The queue is built for real-time pipelines (e.g. decoded audio frames
// moving from a decode goroutine to a playback goroutine) where lock
// contention or unbounded latency is unacceptable. Every operation is
// non-blocking and returns immediately: a push or pop that cannot complete
// reports failure and leaves all state untouched, and retry/backoff policy
// belongs entirely to the caller.
//
// Batch transfer is the primary interface. PushRange and PopRange move whole
// slices in one call, amortizing the per-call synchronization cost across
// many elements. Both are all-or-nothing: either the entire requested count
// transfers, or nothing does.
//
// # SPSC Safety (IMPORTANT)
//
// Queue is a Single-Producer Single-Consumer (SPSC) structure.
// It is NOT safe for multiple goroutines to push concurrently, nor for
// multiple goroutines to pop concurrently.
//
// Correct usage:
//   - Exactly ONE goroutine calls Push/PushRange
//   - Exactly ONE goroutine calls Pop/PopRange
//   - These may be the same goroutine or different goroutines
//
// Violating this corrupts the queue silently. The Checked wrapper adds
// runtime guards that panic on misuse, at a small per-operation cost.
package spsc

// Compile-time interface compliance.
var (
	_ BatchQueue[int] = (*Queue[int, uint32])(nil)
	_ BatchQueue[int] = (*Checked[int, uint32])(nil)
)

// BatchQueue is the operation surface shared by the queue implementations in
// this module. It erases the index-width type parameter so callers and
// benchmarks can swap implementations behind one interface.
//
// Implementations are non-blocking: push operations return false when there
// is insufficient capacity, pop operations return false when there are
// insufficient elements. Range operations are all-or-nothing.
type BatchQueue[T any] interface {
	// Push appends a single element.
	// Returns false if the queue is full.
	Push(T) bool

	// Pop removes and returns the oldest element.
	// Returns false if the queue is empty.
	Pop() (T, bool)

	// PushRange appends all of src, or nothing.
	// Returns false if fewer than len(src) slots are free.
	PushRange(src []T) bool

	// PopRange fills all of dst with the oldest elements in FIFO order,
	// or copies nothing. Returns false if fewer than len(dst) elements
	// are stored.
	PopRange(dst []T) bool

	// Len returns the current number of stored elements.
	Len() int

	// Cap returns the fixed capacity.
	Cap() int
}
