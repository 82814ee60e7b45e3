package band

import (
	"sync"
	"testing"
)

func TestRun_CoversAllRows(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		workers int
	}{
		{"sequential", 100, 1},
		{"even split", 64, 8},
		{"uneven split", 100, 8},
		{"odd workers", 97, 3},
		{"more workers than rows", 4, 8},
		{"zero workers", 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mu sync.Mutex
			seen := make([]int, tt.n)
			Run(tt.n, tt.workers, func(lo, hi int) {
				mu.Lock()
				defer mu.Unlock()
				for i := lo; i < hi; i++ {
					seen[i]++
				}
			})
			for i, c := range seen {
				if c != 1 {
					t.Fatalf("row %d visited %d times", i, c)
				}
			}
		})
	}
}

func TestRun_DisjointBandsNeedNoLocking(t *testing.T) {
	n := 1024
	out := make([]int, n)
	Run(n, 8, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = i * i
		}
	})
	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}
