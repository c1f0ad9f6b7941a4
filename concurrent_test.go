package spsc_test

import (
	"math/rand/v2"
	"runtime"
	"testing"

	spsc "github.com/randomizedcoder/go-spsc-queue"
)

// runRandomizedSPSC drives one producer goroutine and one consumer goroutine
// (the test goroutine) through `total` sequential values using randomized
// batch sizes. Nothing may be lost, duplicated, or reordered, and the
// occupancy bound must hold at every observation point.
func runRandomizedSPSC(t *testing.T, q spsc.BatchQueue[int], total, maxBatch int) {
	t.Helper()

	done := make(chan struct{})

	// Producer (single goroutine)
	go func() {
		defer close(done)
		rng := rand.New(rand.NewPCG(42, 1))
		batch := make([]int, maxBatch)
		sent := 0
		for sent < total {
			n := 1 + rng.IntN(maxBatch)
			if sent+n > total {
				n = total - sent
			}
			for i := 0; i < n; i++ {
				batch[i] = sent + i
			}
			for !q.PushRange(batch[:n]) {
				runtime.Gosched() // full; retry is the caller's job
			}
			sent += n
		}
	}()

	// Consumer (single goroutine - this test's main goroutine)
	rng := rand.New(rand.NewPCG(42, 2))
	out := make([]int, maxBatch)
	received := 0
	for received < total {
		n := 1 + rng.IntN(maxBatch)
		if received+n > total {
			n = total - received
		}
		for !q.PopRange(out[:n]) {
			runtime.Gosched() // not enough yet; retry
		}
		for i := 0; i < n; i++ {
			if out[i] != received+i {
				t.Fatalf("order violation: expected %d, got %d", received+i, out[i])
			}
		}
		received += n

		if l := q.Len(); l < 0 || l > q.Cap() {
			t.Fatalf("occupancy %d outside [0, %d]", l, q.Cap())
		}
	}

	<-done

	if l := q.Len(); l != 0 {
		t.Errorf("expected empty queue after drain, got Len() = %d", l)
	}
}

func TestQueue_RandomizedBatchSPSC(t *testing.T) {
	q, err := spsc.New[int](64)
	if err != nil {
		t.Fatalf("New(64): %v", err)
	}
	runRandomizedSPSC(t, q, 200_000, 16)
}

// The 8-bit variant wraps its counters hundreds of times during the run,
// exercising the modular occupancy arithmetic under real concurrency.
func TestQueue_RandomizedBatchSPSC_NarrowIndex(t *testing.T) {
	q, err := spsc.NewIndexed[int, uint8](8)
	if err != nil {
		t.Fatalf("NewIndexed[uint8](8): %v", err)
	}
	runRandomizedSPSC(t, q, 50_000, 4)
}

func TestChecked_RandomizedBatchSPSC(t *testing.T) {
	q, err := spsc.NewChecked[int](64)
	if err != nil {
		t.Fatalf("NewChecked(64): %v", err)
	}
	runRandomizedSPSC(t, q, 200_000, 16)
}
