package analysis

import (
	"sync/atomic"
	"testing"
)

func TestParallelFor(t *testing.T) {
	tests := []struct {
		n, minChunk, workers int
	}{
		{0, 10, 4},
		{5, 10, 4},
		{100, 10, 4},
		{1000, 64, 3},
		{1000, 1, 1},
		{7, 0, 16},
	}

	for _, tt := range tests {
		seen := make([]int32, tt.n)
		ParallelFor(tt.n, tt.minChunk, tt.workers, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		for i, c := range seen {
			if c != 1 {
				t.Errorf("n=%d workers=%d: index %d visited %d times", tt.n, tt.workers, i, c)
				break
			}
		}
	}
}
