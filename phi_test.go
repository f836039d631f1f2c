package primecount

import "testing"

func TestPhiKnownValues(t *testing.T) {
	cases := []struct {
		x, a, want int64
	}{
		{10000, 3, 2666},
		{100, 4, 22},
		{1000000, 5, 207792},
		{1000000, 6, 191808},
		{1000000, 7, 180524},
		{1000000, 10, 157939},
		{1000000, 20, 128076},
		{1000000, 100, 84079},
		{100000, 30, 11165},
		{1000, 7, 179},
	}
	for _, tc := range cases {
		got, err := Phi(tc.x, tc.a)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Fatalf("phi(%d, %d) = %d, want %d", tc.x, tc.a, got, tc.want)
		}
	}
}

func TestPhiLargeA(t *testing.T) {
	// With a = pi(10^6) every prime <= 10^6 is removed; only 1 survives.
	got, err := Phi(1000000, 78498)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Fatalf("phi(10^6, 78498) = %d, want 1", got)
	}
	// Far more primes than pi(x): still just 1.
	got, err = Phi(1000, 100000)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Fatalf("phi(1000, 100000) = %d, want 1", got)
	}
}

func TestPhiEdgeCases(t *testing.T) {
	got, err := Phi(0, 5)
	if err != nil || got != 0 {
		t.Fatalf("phi(0, 5) = %d, %v", got, err)
	}
	got, err = Phi(42, 0)
	if err != nil || got != 42 {
		t.Fatalf("phi(42, 0) = %d, %v", got, err)
	}
	got, err = Phi(1, 50)
	if err != nil || got != 1 {
		t.Fatalf("phi(1, 50) = %d, %v", got, err)
	}
}

func TestPiLegendreInternal(t *testing.T) {
	cases := []struct{ x, want int64 }{
		{1, 0}, {2, 1}, {10, 4}, {1000, 168}, {100000, 9592},
	}
	for _, tc := range cases {
		if got := piLegendre(tc.x); got != tc.want {
			t.Fatalf("piLegendre(%d) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestPhiCacheConsistency(t *testing.T) {
	// The cached recursion must agree with the plain recurrence
	// phi(x, a) = phi(x, a-1) - phi(x/p_a, a-1).
	c := newPhiCache(1000)
	for _, x := range []int64{50, 777, 10000, 999999} {
		for a := int64(8); a <= 20; a++ {
			p := c.primes[a]
			want := c.phi(x, a-1) - c.phi(x/p, a-1)
			if got := c.phi(x, a); got != want {
				t.Fatalf("phi(%d, %d) = %d, recurrence gives %d", x, a, got, want)
			}
		}
	}
}
