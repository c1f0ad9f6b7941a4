// Package progress provides a low-overhead periodic reporter for hot loops.
//
// Checking time.Now on every iteration of a loop that moves millions of
// elements per second costs more than the work being measured. Reporter
// amortizes the clock read by only checking every N calls, and fires at most
// once per interval.
package progress

import "time"

// Reporter rate-limits progress output from a hot loop.
type Reporter struct {
	interval time.Duration
	every    int
	count    int

	last      time.Time
	lastTotal int64
}

// Report describes the window since the previous fire.
type Report struct {
	// Elapsed is the wall-clock length of the window.
	Elapsed time.Duration

	// Delta is the number of elements processed during the window.
	Delta int64

	// Rate is Delta per second.
	Rate float64
}

// New creates a Reporter that checks the clock every `every` calls and fires
// at most once per interval.
func New(interval time.Duration, every int) *Reporter {
	if every < 1 {
		every = 1
	}
	return &Reporter{
		interval: interval,
		every:    every,
		last:     time.Now(),
	}
}

// Tick records that the loop has processed `total` elements so far and
// reports whether an interval has elapsed. The clock is only consulted every
// N calls; on other calls this returns immediately.
func (r *Reporter) Tick(total int64) (Report, bool) {
	r.count++
	if r.count%r.every != 0 {
		return Report{}, false
	}

	now := time.Now()
	elapsed := now.Sub(r.last)
	if elapsed < r.interval {
		return Report{}, false
	}

	delta := total - r.lastTotal
	r.last = now
	r.lastTotal = total

	return Report{
		Elapsed: elapsed,
		Delta:   delta,
		Rate:    float64(delta) / elapsed.Seconds(),
	}, true
}

// Reset restarts the current window from now.
func (r *Reporter) Reset(total int64) {
	r.count = 0
	r.last = time.Now()
	r.lastTotal = total
}
