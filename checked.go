package spsc

import "sync/atomic"

// Checked wraps a Queue with runtime guards that detect violations of the
// SPSC contract.
//
// Each push entry point CASes a producer-side flag and each pop entry point
// CASes a consumer-side flag; a second goroutine entering the same side
// while the first is still inside panics immediately instead of corrupting
// the queue silently. This catches bugs early during development at a cost
// of roughly a nanosecond or two per operation, so production hot paths
// typically use the bare Queue.
type Checked[T any, I Index] struct {
	q *Queue[T, I]

	pushActive atomic.Uint32
	popActive  atomic.Uint32
}

// NewChecked creates a guarded queue with the default 32-bit index type.
func NewChecked[T any](capacity int) (*Checked[T, uint32], error) {
	return NewCheckedIndexed[T, uint32](capacity)
}

// NewCheckedIndexed creates a guarded queue with an explicit index type.
// Capacity constraints are those of NewIndexed.
func NewCheckedIndexed[T any, I Index](capacity int) (*Checked[T, I], error) {
	q, err := NewIndexed[T, I](capacity)
	if err != nil {
		return nil, err
	}
	return &Checked[T, I]{q: q}, nil
}

func (c *Checked[T, I]) enterPush() {
	if !c.pushActive.CompareAndSwap(0, 1) {
		panic("spsc: concurrent push detected - only one producer goroutine allowed")
	}
}

func (c *Checked[T, I]) enterPop() {
	if !c.popActive.CompareAndSwap(0, 1) {
		panic("spsc: concurrent pop detected - only one consumer goroutine allowed")
	}
}

// Push appends a single element. Returns false if the queue is full.
func (c *Checked[T, I]) Push(v T) bool {
	c.enterPush()
	defer c.pushActive.Store(0)
	return c.q.Push(v)
}

// Pop removes and returns the oldest element. Returns false if empty.
func (c *Checked[T, I]) Pop() (T, bool) {
	c.enterPop()
	defer c.popActive.Store(0)
	return c.q.Pop()
}

// PushRange appends all of src, or nothing.
func (c *Checked[T, I]) PushRange(src []T) bool {
	c.enterPush()
	defer c.pushActive.Store(0)
	return c.q.PushRange(src)
}

// PopRange fills all of dst in FIFO order, or copies nothing.
func (c *Checked[T, I]) PopRange(dst []T) bool {
	c.enterPop()
	defer c.popActive.Store(0)
	return c.q.PopRange(dst)
}

// Occupancy returns the number of elements currently stored.
// Safe from either goroutine, so it is not guarded.
func (c *Checked[T, I]) Occupancy() I { return c.q.Occupancy() }

// Free returns the number of slots currently available to the producer.
func (c *Checked[T, I]) Free() I { return c.q.Free() }

// Len returns Occupancy as an int.
func (c *Checked[T, I]) Len() int { return c.q.Len() }

// Cap returns the fixed capacity.
func (c *Checked[T, I]) Cap() int { return c.q.Cap() }
