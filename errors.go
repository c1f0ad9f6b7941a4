package spsc

import "errors"

// Construction errors. Runtime push/pop failure is reported by boolean
// results, never by error values: a false return is a transient "try again
// later" signal, while these represent structural misuse of the type.
var (
	// ErrCapacityNotPositive is returned for a zero or negative capacity.
	ErrCapacityNotPositive = errors.New("spsc: capacity must be positive")

	// ErrCapacityNotPowerOfTwo is returned when the capacity cannot be used
	// for bitmask indexing.
	ErrCapacityNotPowerOfTwo = errors.New("spsc: capacity must be a power of two")

	// ErrCapacityExceedsIndex is returned when the capacity does not leave
	// headroom in the index type's range.
	ErrCapacityExceedsIndex = errors.New("spsc: capacity exceeds the index type's range")
)
