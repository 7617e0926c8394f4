// Package workpool provides the two data-parallel helpers the pixel and
// image-processing code uses to split independent per-row or per-element
// work across goroutines, grounded on the compositor's strip-blending
// pattern: split the work into contiguous chunks, one per worker, and wait
// on a sync.WaitGroup rather than pulling from a shared channel, since the
// chunk boundaries are known up front.
package workpool

import (
	"runtime"
	"sync"
)

// availableWorkers reserves one hardware thread for the caller (the
// goroutine driving the work) so a full-width parallel pass doesn't starve
// whatever scheduled it.
func availableWorkers() int {
	n := runtime.GOMAXPROCS(0) - 1
	if n < 1 {
		n = 1
	}
	return n
}

// ByIndex runs fn(i) for every i in [0, n), split across multiple
// goroutines when n is large enough to be worth it. fn must be safe to
// call concurrently with disjoint i values. Blocks until every call
// returns.
func ByIndex(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := availableWorkers()
	if n < workers*4 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// FromArray runs fn(items[i], i) for every element of items, with the same
// chunking strategy as ByIndex.
func FromArray[T any](items []T, fn func(item T, index int)) {
	ByIndex(len(items), func(i int) { fn(items[i], i) })
}
