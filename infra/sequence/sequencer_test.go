package sequence

import (
	"sync"
	"testing"
)

func TestNextIsDenseAndOrdered(t *testing.T) {
	s := New(0)
	for i := uint64(1); i <= 100; i++ {
		if got := s.Next(); got != i {
			t.Fatalf("expected %d, got %d", i, got)
		}
	}
	if s.Current() != 100 {
		t.Fatalf("current: %d", s.Current())
	}
}

func TestResetResumes(t *testing.T) {
	s := New(0)
	s.Reset(41)
	if got := s.Next(); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestNextIsRaceFree(t *testing.T) {
	s := New(0)
	const n = 1000

	var wg sync.WaitGroup
	seen := make([]uint64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seen[i] = s.Next()
		}(i)
	}
	wg.Wait()

	uniq := make(map[uint64]bool, n)
	for _, v := range seen {
		if v == 0 || v > n || uniq[v] {
			t.Fatalf("duplicate or out-of-range value %d", v)
		}
		uniq[v] = true
	}
}
