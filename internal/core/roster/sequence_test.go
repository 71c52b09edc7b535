package roster

import "testing"

func TestSequenceNextIsMonotonic(t *testing.T) {
	var s Sequence
	prev := 0
	for i := 0; i < 100; i++ {
		n := s.Next()
		if n <= prev {
			t.Fatalf("Next() returned %d after %d", n, prev)
		}
		prev = n
	}
}

func TestSequenceObserveRaisesOnly(t *testing.T) {
	var s Sequence
	s.Observe(10)
	if got := s.Next(); got != 11 {
		t.Fatalf("expected 11 after observing 10, got %d", got)
	}

	// Observing a lower value never rewinds the counter.
	s.Observe(3)
	if got := s.Next(); got != 12 {
		t.Fatalf("expected 12 after observing lower value, got %d", got)
	}
}

func TestSequenceHigh(t *testing.T) {
	var s Sequence
	if s.High() != 0 {
		t.Fatalf("fresh sequence high = %d, want 0", s.High())
	}
	s.Next()
	s.Next()
	s.Observe(7)
	if s.High() != 7 {
		t.Fatalf("high = %d, want 7", s.High())
	}
}
