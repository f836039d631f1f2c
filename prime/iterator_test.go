package prime

import "testing"

func TestIteratorForward(t *testing.T) {
	it := NewIterator()
	want := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	for i, w := range want {
		if p := it.Next(); p != w {
			t.Fatalf("prime #%d = %d, want %d", i+1, p, w)
		}
	}
}

func TestIteratorJumpTo(t *testing.T) {
	it := NewIterator()
	it.JumpTo(1000, 2000)
	if p := it.Next(); p != 1009 {
		t.Fatalf("first prime >= 1000 is %d, want 1009", p)
	}
	if p := it.Next(); p != 1013 {
		t.Fatalf("second prime is %d, want 1013", p)
	}

	it.JumpTo(1000, 0)
	if p := it.Prev(); p != 997 {
		t.Fatalf("largest prime < 1000 is %d, want 997", p)
	}
	if p := it.Prev(); p != 991 {
		t.Fatalf("next prime down is %d, want 991", p)
	}

	// Jumping onto a prime: Next returns it, Prev does not.
	it.JumpTo(997, 0)
	if p := it.Next(); p != 997 {
		t.Fatalf("smallest prime >= 997 is %d", p)
	}
	it.JumpTo(997, 0)
	if p := it.Prev(); p != 991 {
		t.Fatalf("largest prime < 997 is %d", p)
	}
}

func TestIteratorPrevExhausted(t *testing.T) {
	it := NewIterator()
	it.JumpTo(3, 0)
	if p := it.Prev(); p != 2 {
		t.Fatalf("largest prime < 3 is %d", p)
	}
	if p := it.Prev(); p != 0 {
		t.Fatalf("below 2 the sentinel must be 0, got %d", p)
	}
}

func TestIteratorCount(t *testing.T) {
	it := NewIterator()
	it.JumpTo(2, 100000)
	count := 0
	last := int64(0)
	for p := it.Next(); p != 0 && p <= 100000; p = it.Next() {
		if p <= last {
			t.Fatalf("primes not increasing: %d after %d", p, last)
		}
		last = p
		count++
	}
	if count != 9592 {
		t.Fatalf("counted %d primes <= 10^5, want 9592", count)
	}
	if last != 99991 {
		t.Fatalf("largest prime <= 10^5 is %d, want 99991", last)
	}
}

func TestIteratorBackwardSweep(t *testing.T) {
	it := NewIterator()
	it.JumpTo(1000, 0)
	count := 0
	for p := it.Prev(); p != 0; p = it.Prev() {
		count++
	}
	if count != 168 {
		t.Fatalf("counted %d primes below 1000, want 168", count)
	}
}

func TestIteratorMixedDirections(t *testing.T) {
	it := NewIterator()
	it.JumpTo(100, 0)
	if p := it.Next(); p != 101 {
		t.Fatalf("next after 100 = %d", p)
	}
	// After returning 101 the position sits past it; Prev walks back.
	if p := it.Prev(); p != 101 {
		t.Fatalf("prev = %d, want 101", p)
	}
	if p := it.Prev(); p != 97 {
		t.Fatalf("prev = %d, want 97", p)
	}
}
