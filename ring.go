package spsc

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Index constrains the unsigned counter width used by a Queue.
//
// The write and read positions wrap around at the limit of this type;
// unsigned modular arithmetic keeps occupancy correct across wraps. The
// width is configurable mainly so tests can exercise wraparound with a
// narrow type (uint8 wraps after 256 elements) instead of waiting through
// billions of operations on the uint32 default.
type Index interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Queue is a lock-free SPSC (Single-Producer Single-Consumer) ring buffer
// with all-or-nothing batch transfer.
//
// The backing store is allocated once at construction and never resized.
// Two monotonically increasing counters track the total elements ever
// written and ever read; both are interpreted at the width of I, so they
// wrap around at the type's limit by design. Storage slots are derived from
// the counters by masking with capacity-1, which is why the capacity must be
// a power of two. There is no separate full/empty flag: occupancy is always
// the modular difference of the two counters.
//
// WARNING: Queue is NOT safe for multiple producers or multiple consumers.
// See the package documentation, or use Checked to catch misuse at runtime.
type Queue[T any, I Index] struct {
	buf  []T
	mask I

	// Padding keeps each counter on its own cache line so the producer
	// and consumer cores do not false-share.
	_ cpu.CacheLinePad

	write atomic.Uint64 // advanced only by the producer

	_ cpu.CacheLinePad

	read atomic.Uint64 // advanced only by the consumer

	_ cpu.CacheLinePad
}

// New creates a Queue with the default 32-bit index type.
// Capacity must be a positive power of two.
func New[T any](capacity int) (*Queue[T, uint32], error) {
	return NewIndexed[T, uint32](capacity)
}

// NewIndexed creates a Queue with an explicit index type.
//
// Capacity must be a positive power of two and must fit in I with at least
// one value to spare: a capacity equal to the full range of I would make a
// completely full queue indistinguishable from an empty one, so the largest
// capacity permitted for uint8 is 128.
func NewIndexed[T any, I Index](capacity int) (*Queue[T, I], error) {
	switch {
	case capacity < 1:
		return nil, ErrCapacityNotPositive
	case capacity&(capacity-1) != 0:
		return nil, ErrCapacityNotPowerOfTwo
	case uint64(capacity) > uint64(^I(0)):
		return nil, ErrCapacityExceedsIndex
	}
	return &Queue[T, I]{
		buf:  make([]T, capacity),
		mask: I(capacity - 1),
	}, nil
}

// Occupancy returns the number of elements currently stored.
//
// The result is the modular difference of the write and read positions, so
// it stays in [0, Cap()] even after either counter wraps. Safe to call from
// either the producer or the consumer goroutine.
func (q *Queue[T, I]) Occupancy() I {
	return I(q.write.Load()) - I(q.read.Load())
}

// Free returns the number of slots currently available to the producer.
func (q *Queue[T, I]) Free() I {
	return I(len(q.buf)) - q.Occupancy()
}

// Len returns Occupancy as an int, for use behind BatchQueue.
func (q *Queue[T, I]) Len() int { return int(q.Occupancy()) }

// Cap returns the fixed capacity.
func (q *Queue[T, I]) Cap() int { return len(q.buf) }

// PushRange appends all elements of src in order, or nothing.
//
// Returns false if appending len(src) elements would exceed the capacity;
// in that case no slot and neither counter is modified. An empty src
// trivially succeeds.
//
// SPSC CONTRACT: only ONE goroutine may call Push/PushRange.
func (q *Queue[T, I]) PushRange(src []T) bool {
	n := len(src)
	if n == 0 {
		return true
	}
	w := q.write.Load()
	used := I(w) - I(q.read.Load()) // acquire: consumed slots are reusable
	if uint64(used)+uint64(n) > uint64(len(q.buf)) {
		return false
	}

	// Copy in up to two segments around the wrap point.
	head := int(I(w) & q.mask)
	first := copy(q.buf[head:], src)
	copy(q.buf, src[first:])

	q.write.Store(w + uint64(n)) // release: publish the slots
	return true
}

// PopRange removes exactly len(dst) elements into dst in FIFO order, or
// nothing.
//
// Returns false if fewer than len(dst) elements are stored; in that case
// dst and the queue are left untouched. An empty dst trivially succeeds.
//
// SPSC CONTRACT: only ONE goroutine may call Pop/PopRange.
func (q *Queue[T, I]) PopRange(dst []T) bool {
	n := len(dst)
	if n == 0 {
		return true
	}
	r := q.read.Load()
	avail := I(q.write.Load()) - I(r) // acquire: published slots are readable
	if uint64(n) > uint64(avail) {
		return false
	}

	tail := int(I(r) & q.mask)
	first := copy(dst, q.buf[tail:])
	copy(dst[first:], q.buf)

	q.read.Store(r + uint64(n)) // release: slots reusable by the producer
	return true
}

// Push appends a single element. Returns false if the queue is full.
// Equivalent to PushRange of one element, without the copy bookkeeping.
func (q *Queue[T, I]) Push(v T) bool {
	w := q.write.Load()
	if I(w)-I(q.read.Load()) >= I(len(q.buf)) {
		return false
	}
	q.buf[I(w)&q.mask] = v
	q.write.Store(w + 1)
	return true
}

// Pop removes and returns the oldest element. Returns false if empty.
func (q *Queue[T, I]) Pop() (T, bool) {
	r := q.read.Load()
	w := q.write.Load()
	if I(w) == I(r) {
		var zero T
		return zero, false
	}
	v := q.buf[I(r)&q.mask]
	q.read.Store(r + 1)
	return v, true
}
