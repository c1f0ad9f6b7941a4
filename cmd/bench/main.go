// Command bench compares SPSC hand-off implementations.
//
// Usage:
//
//	go run ./cmd/bench -n 10000000 -size 1024 -batch 64
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	ring "github.com/randomizedcoder/go-lock-free-ring"

	spsc "github.com/randomizedcoder/go-spsc-queue"
	"github.com/randomizedcoder/go-spsc-queue/internal/compare"
)

func main() {
	iterations := flag.Int("n", 10_000_000, "number of elements")
	size := flag.Int("size", 1024, "queue capacity (power of two)")
	batch := flag.Int("batch", 64, "batch size for the range operations")
	flag.Parse()

	if *batch < 1 || *batch > *size {
		fmt.Fprintln(os.Stderr, "bench: -batch must be in [1, -size]")
		os.Exit(1)
	}

	q, err := spsc.New[int](*size)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bench:", err)
		os.Exit(1)
	}
	checked, err := spsc.NewChecked[int](*size)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bench:", err)
		os.Exit(1)
	}
	ch := compare.NewChannel[int](*size)

	fmt.Printf("Benchmarking SPSC hand-off (%d elements, size=%d)\n", *iterations, *size)
	fmt.Println("─────────────────────────────────────────────────")

	// Single-element push+pop per iteration, one goroutine (pure op cost).
	singles := []struct {
		name string
		run  func(n int) time.Duration
	}{
		{"Channel", func(n int) time.Duration {
			start := time.Now()
			for i := 0; i < n; i++ {
				ch.Push(i)
				ch.Pop()
			}
			return time.Since(start)
		}},
		{"Queue", func(n int) time.Duration {
			start := time.Now()
			for i := 0; i < n; i++ {
				q.Push(i)
				q.Pop()
			}
			return time.Since(start)
		}},
		{"Checked", func(n int) time.Duration {
			start := time.Now()
			for i := 0; i < n; i++ {
				checked.Push(i)
				checked.Pop()
			}
			return time.Since(start)
		}},
		{"ShardedRing(1)", func(n int) time.Duration {
			// Comparison dep is MPSC with sharding; one shard is the
			// closest single-producer shape. Fixed 1024 capacity.
			r, _ := ring.NewShardedRing(1024, 1)
			start := time.Now()
			for i := 0; i < n; i++ {
				for !r.Write(0, i) {
					r.TryRead()
				}
				r.TryRead()
			}
			return time.Since(start)
		}},
	}

	fmt.Printf("\nSingle-element (push + pop per iteration):\n")
	var baseline float64
	for i, s := range singles {
		dur := s.run(*iterations)
		perOp := float64(dur.Nanoseconds()) / float64(*iterations)
		if i == 0 {
			baseline = perOp
		}
		fmt.Printf("  %-16s %12v  %8.2f ns/op  %6.2fx  %8.2f M/s\n",
			s.name, dur, perOp, baseline/perOp, 1000/perOp)
	}

	// Range transfer: the synchronization cost amortizes across the batch.
	in := make([]int, *batch)
	out := make([]int, *batch)
	for i := range in {
		in[i] = i
	}
	rounds := *iterations / *batch
	if rounds < 1 {
		rounds = 1
	}

	fmt.Printf("\nBatch transfer (batch=%d, push_range + pop_range per iteration):\n", *batch)

	start := time.Now()
	for i := 0; i < rounds; i++ {
		ch.PushRange(in)
		ch.PopRange(out)
	}
	chDur := time.Since(start)

	start = time.Now()
	for i := 0; i < rounds; i++ {
		q.PushRange(in)
		q.PopRange(out)
	}
	qDur := time.Since(start)

	elems := float64(rounds * *batch)
	chPerElem := float64(chDur.Nanoseconds()) / elems
	qPerElem := float64(qDur.Nanoseconds()) / elems

	fmt.Printf("  %-16s %12v  %8.2f ns/elem  %8.2f M elem/s\n", "Channel", chDur, chPerElem, 1000/chPerElem)
	fmt.Printf("  %-16s %12v  %8.2f ns/elem  %8.2f M elem/s\n", "Queue", qDur, qPerElem, 1000/qPerElem)

	if qPerElem < chPerElem {
		fmt.Printf("\n  Speedup:  %.2fx (Queue faster)\n", chPerElem/qPerElem)
	} else {
		fmt.Printf("\n  Speedup:  %.2fx (Channel faster)\n", qPerElem/chPerElem)
	}
}
