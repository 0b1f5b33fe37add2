package util

import (
	"runtime"
	"sync"
)

// ParallelFor executes action for every index in [startInclusive,
// endExclusive) across at most workers goroutines, chunking the range so each
// worker handles a contiguous span. workers <= 0 uses GOMAXPROCS. Every index
// is visited exactly once; callers must not share mutable state between
// indices.
func ParallelFor(startInclusive, endExclusive, workers int, action func(int)) {
	n := endExclusive - startInclusive
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := startInclusive; i < endExclusive; i++ {
			action(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := startInclusive + w*chunk
		hi := lo + chunk
		if hi > endExclusive {
			hi = endExclusive
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				action(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
