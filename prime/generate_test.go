package prime

import "testing"

func TestGenerate(t *testing.T) {
	primes := Generate(100)
	want := []int64{0, 2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43,
		47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}
	if len(primes) != len(want) {
		t.Fatalf("len = %d, want %d", len(primes), len(want))
	}
	for i := range want {
		if primes[i] != want[i] {
			t.Fatalf("primes[%d] = %d, want %d", i, primes[i], want[i])
		}
	}
}

func TestGenerateCount(t *testing.T) {
	if got := len(Generate(1000000)) - 1; got != 78498 {
		t.Fatalf("pi(10^6) = %d, want 78498", got)
	}
	if got := len(Generate(1)) - 1; got != 0 {
		t.Fatalf("pi(1) = %d", got)
	}
	if got := len(Generate(2)) - 1; got != 1 {
		t.Fatalf("pi(2) = %d", got)
	}
}

func TestPiBsearch(t *testing.T) {
	primes := Generate(1000)
	cases := []struct{ x, want int64 }{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 2}, {10, 4}, {97, 25},
		{100, 25}, {1000, 168},
	}
	for _, tc := range cases {
		if got := PiBsearch(primes, tc.x); got != tc.want {
			t.Fatalf("PiBsearch(%d) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestLeastPrimeFactors(t *testing.T) {
	const y = 10000
	lpf := LeastPrimeFactors(y)
	if lpf[1] != LpfInfinity {
		t.Fatalf("lpf[1] = %d, want the infinity sentinel", lpf[1])
	}
	isPrime := make(map[int64]bool)
	for _, p := range Generate(y)[1:] {
		isPrime[p] = true
	}
	for n := int64(2); n <= y; n++ {
		p := int64(lpf[n])
		if n%p != 0 {
			t.Fatalf("lpf[%d] = %d does not divide n", n, p)
		}
		if !isPrime[p] {
			t.Fatalf("lpf[%d] = %d is not prime", n, p)
		}
		for d := int64(2); d < p; d++ {
			if n%d == 0 {
				t.Fatalf("lpf[%d] = %d is not least (%d divides)", n, p, d)
			}
		}
	}
}

func TestMoebius(t *testing.T) {
	const y = 2000
	mu := Moebius(y)
	if mu[1] != 1 {
		t.Fatalf("mu[1] = %d", mu[1])
	}
	// sum over d | n of mu(d) must vanish for every n > 1.
	for n := int64(1); n <= y; n++ {
		sum := int32(0)
		for d := int64(1); d <= n; d++ {
			if n%d == 0 {
				sum += mu[d]
			}
		}
		want := int32(0)
		if n == 1 {
			want = 1
		}
		if sum != want {
			t.Fatalf("sum of mu over divisors of %d = %d, want %d", n, sum, want)
		}
	}
	// Spot values.
	cases := []struct {
		n    int64
		want int32
	}{
		{2, -1}, {3, -1}, {4, 0}, {6, 1}, {30, -1}, {210, 1}, {12, 0},
	}
	for _, tc := range cases {
		if mu[tc.n] != tc.want {
			t.Fatalf("mu[%d] = %d, want %d", tc.n, mu[tc.n], tc.want)
		}
	}
}

func TestPiTable(t *testing.T) {
	const limit = 100000
	pt := NewPiTable(limit)
	if pt.Limit() != limit {
		t.Fatalf("limit = %d", pt.Limit())
	}
	primes := Generate(limit)
	for _, x := range []int64{0, 1, 2, 3, 4, 63, 64, 65, 97, 1000, 99991, limit} {
		want := PiBsearch(primes, x)
		if got := pt.Pi(x); got != want {
			t.Fatalf("Pi(%d) = %d, want %d", x, got, want)
		}
	}
	if got := pt.Pi(limit); got != 9592 {
		t.Fatalf("pi(10^5) = %d, want 9592", got)
	}
}
