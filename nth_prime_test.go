package primecount

import "testing"

func TestNthPrimeSmall(t *testing.T) {
	cases := []struct{ n, want int64 }{
		{1, 2},
		{2, 3},
		{3, 5},
		{6, 13},
		{25, 97},
		{100, 541},
		{1000, 7919},
		{10000, 104729},
	}
	for _, tc := range cases {
		got, err := NthPrime(tc.n)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Fatalf("nth_prime(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestNthPrimeLarge(t *testing.T) {
	// These take the estimate-then-walk path.
	cases := []struct{ n, want int64 }{
		{100000, 1299709},
		{1000000, 15485863},
	}
	for _, tc := range cases {
		got, err := NthPrime(tc.n)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Fatalf("nth_prime(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestNthPrimeInvalid(t *testing.T) {
	if _, err := NthPrime(0); err == nil {
		t.Fatal("nth_prime(0) must fail")
	}
	if _, err := NthPrime(-3); err == nil {
		t.Fatal("nth_prime(-3) must fail")
	}
}

func TestNthPrimeRoundTrip(t *testing.T) {
	// pi(nth_prime(n)) = n and nth_prime is prime-valued.
	for _, n := range []int64{1, 10, 500, 9999} {
		p, err := NthPrime(n)
		if err != nil {
			t.Fatal(err)
		}
		count, err := PiCache(p)
		if err != nil {
			t.Fatal(err)
		}
		if count != n {
			t.Fatalf("pi(nth_prime(%d)) = %d", n, count)
		}
		countBelow, err := PiCache(p - 1)
		if err != nil {
			t.Fatal(err)
		}
		if countBelow != n-1 {
			t.Fatalf("pi(nth_prime(%d) - 1) = %d", n, countBelow)
		}
	}
}

func TestLi(t *testing.T) {
	// Li(10^6) = 78627.54...; li converges fast, the floor is stable.
	got := Li(1000000)
	if got < 78626 || got > 78628 {
		t.Fatalf("Li(10^6) = %d, want ~78627", got)
	}
	if Li(1) != 0 || Li(0) != 0 {
		t.Fatal("Li below 2 must be 0")
	}
	// Li approximates pi from above in this range.
	pi6, _ := PiCache(1000000)
	if got < pi6 {
		t.Fatalf("Li(10^6) = %d below pi(10^6) = %d", got, pi6)
	}
}

func TestLiInverse(t *testing.T) {
	// LiInverse(n) is the smallest x with Li(x) >= n.
	for _, n := range []int64{10, 1000, 78498} {
		x := LiInverse(n)
		if Li(x) < n {
			t.Fatalf("Li(LiInverse(%d)) = %d < n", n, Li(x))
		}
		if x > 2 && Li(x-1) >= n {
			t.Fatalf("LiInverse(%d) = %d is not minimal", n, x)
		}
	}
	// The estimate lands near the true nth prime.
	x := LiInverse(1000)
	if x < 7000 || x > 8500 {
		t.Fatalf("LiInverse(1000) = %d, expected near 7919", x)
	}
}
