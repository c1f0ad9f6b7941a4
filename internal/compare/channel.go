// Package compare provides baseline queue implementations used by the
// benchmarks and the cmd tools to put spsc.Queue numbers in context.
//
// These are measurement baselines, not production queues.
package compare

// Channel wraps a buffered channel behind the same batch surface as
// spsc.Queue.
//
// This is the standard library approach. Each element transfer performs a
// non-blocking channel operation via select with default. The range
// operations check remaining capacity with len() before transferring, which
// is only sound when a single goroutine drives each side; that matches the
// single-threaded benchmark loops this type exists for.
type Channel[T any] struct {
	ch chan T
}

// NewChannel creates a Channel with the specified buffer size.
func NewChannel[T any](size int) *Channel[T] {
	return &Channel[T]{
		ch: make(chan T, size),
	}
}

// Push adds an element. Returns false if the channel buffer is full.
func (q *Channel[T]) Push(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// Pop removes and returns an element. Returns false if empty.
func (q *Channel[T]) Pop() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// PushRange sends all of src, or nothing if the buffer lacks room.
func (q *Channel[T]) PushRange(src []T) bool {
	if len(src) > cap(q.ch)-len(q.ch) {
		return false
	}
	for _, v := range src {
		q.ch <- v
	}
	return true
}

// PopRange fills dst from the channel, or receives nothing if fewer than
// len(dst) elements are buffered.
func (q *Channel[T]) PopRange(dst []T) bool {
	if len(dst) > len(q.ch) {
		return false
	}
	for i := range dst {
		dst[i] = <-q.ch
	}
	return true
}

// Len returns the current number of buffered elements.
func (q *Channel[T]) Len() int {
	return len(q.ch)
}

// Cap returns the buffer capacity.
func (q *Channel[T]) Cap() int {
	return cap(q.ch)
}
