package spsc_test

import (
	"sync"
	"testing"

	spsc "github.com/randomizedcoder/go-spsc-queue"
)

// TestChecked_ConcurrentPush_Panics verifies that the guard catches a second
// concurrent producer.
//
// This test intentionally violates the SPSC contract to verify the guard works.
func TestChecked_ConcurrentPush_Panics(t *testing.T) {
	q, err := spsc.NewChecked[int](1024)
	if err != nil {
		t.Fatalf("NewChecked(1024): %v", err)
	}

	// We need to catch the panic
	panicked := make(chan bool, 1)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					select {
					case panicked <- true:
					default:
					}
				}
			}()
			batch := make([]int, 4)
			for j := 0; j < 1000; j++ {
				for k := range batch {
					batch[k] = n*10000 + j + k
				}
				q.PushRange(batch)
				q.Push(n*10000 + j)
			}
		}(i)
	}

	wg.Wait()

	select {
	case <-panicked:
		// Expected: the guard caught concurrent producers
		t.Log("guard correctly detected concurrent push")
	default:
		// The test may pass without panic if goroutines don't overlap
		// This is OK - it just means we didn't catch the race this time
		t.Log("no panic detected (goroutines may not have overlapped)")
	}
}

// TestChecked_ConcurrentPop_Panics verifies that the guard catches a second
// concurrent consumer.
//
// This test intentionally violates the SPSC contract to verify the guard works.
func TestChecked_ConcurrentPop_Panics(t *testing.T) {
	q, err := spsc.NewChecked[int](1024)
	if err != nil {
		t.Fatalf("NewChecked(1024): %v", err)
	}

	// Pre-fill the queue
	for i := 0; i < 1024; i++ {
		q.Push(i)
	}

	panicked := make(chan bool, 1)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					select {
					case panicked <- true:
					default:
					}
				}
			}()
			out := make([]int, 4)
			for j := 0; j < 200; j++ {
				q.PopRange(out)
				q.Pop()
			}
		}()
	}

	wg.Wait()

	select {
	case <-panicked:
		t.Log("guard correctly detected concurrent pop")
	default:
		t.Log("no panic detected (goroutines may not have overlapped)")
	}
}

// TestQueue_SPSC_Valid tests the valid SPSC pattern:
// one producer goroutine, one consumer goroutine.
func TestQueue_SPSC_Valid(t *testing.T) {
	q, err := spsc.New[int](64)
	if err != nil {
		t.Fatalf("New(64): %v", err)
	}
	count := 10000
	done := make(chan struct{})

	// Producer (single goroutine)
	go func() {
		for i := 0; i < count; i++ {
			for !q.Push(i) {
				// Spin until push succeeds
			}
		}
		close(done)
	}()

	// Consumer (single goroutine - this test's main goroutine)
	received := 0
	expected := 0
	for received < count {
		if val, ok := q.Pop(); ok {
			if val != expected {
				t.Errorf("FIFO violation: expected %d, got %d", expected, val)
			}
			expected++
			received++
		}
	}

	<-done // Wait for producer

	if received != count {
		t.Errorf("expected %d items, received %d", count, received)
	}
}
