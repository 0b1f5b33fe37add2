package util

import (
	"sync/atomic"
	"testing"
)

func TestParallelFor(t *testing.T) {
	for _, workers := range []int{-1, 0, 1, 2, 7, 100} {
		const n = 53
		visits := make([]int32, n)
		ParallelFor(0, n, workers, func(i int) {
			atomic.AddInt32(&visits[i], 1)
		})
		for i, v := range visits {
			if v != 1 {
				t.Fatalf("workers=%d: index %d visited %d times, want 1", workers, i, v)
			}
		}
	}
}

func TestParallelForEmptyRange(t *testing.T) {
	called := false
	ParallelFor(5, 5, 4, func(int) { called = true })
	ParallelFor(5, 3, 4, func(int) { called = true })
	if called {
		t.Fatal("action called for empty range")
	}
}
