package imath

import (
	"math"
	"testing"
)

func TestIrootExact(t *testing.T) {
	// r^k <= n < (r+1)^k must hold exactly for every n.
	for _, k := range []int{2, 3, 4, 6} {
		for n := int64(0); n < 100000; n++ {
			r := Iroot(k, n)
			if !powLE(uint64(r), k, uint64(n)) {
				t.Fatalf("iroot(%d, %d) = %d: r^k > n", k, n, r)
			}
			if powLE(uint64(r+1), k, uint64(n)) {
				t.Fatalf("iroot(%d, %d) = %d: (r+1)^k <= n", k, n, r)
			}
		}
	}
}

func TestIrootProperty(t *testing.T) {
	values := []int64{0, 1, 2, 63, 64, 65, 1 << 20, 1<<31 - 1, 1 << 40, math.MaxInt64}
	for _, k := range []int{2, 3, 4, 6} {
		for _, n := range values {
			r := Iroot(k, n)
			if !powLE(uint64(r), k, uint64(n)) {
				t.Fatalf("iroot(%d, %d) = %d: r^k > n", k, n, r)
			}
			if powLE(uint64(r+1), k, uint64(n)) {
				t.Fatalf("iroot(%d, %d) = %d: (r+1)^k <= n", k, n, r)
			}
		}
	}
}

func TestIrootUint64Max(t *testing.T) {
	x := Int128FromUint64(math.MaxUint64)
	cases := []struct {
		k    int
		want uint64
	}{
		{2, 4294967295},
		{3, 2642245},
		{4, 65535},
		{6, 1625},
	}
	for _, tc := range cases {
		if got := Iroot128(tc.k, x); got != tc.want {
			t.Fatalf("iroot128(%d, 2^64-1) = %d, want %d", tc.k, got, tc.want)
		}
	}
}

func TestIroot128Large(t *testing.T) {
	// 10^22 = (10^11)^2, so its square root is exactly 10^11.
	x, ok := Int128FromString("10000000000000000000000")
	if !ok {
		t.Fatal("parse 10^22")
	}
	if got := ISqrt128(x); got != 100000000000 {
		t.Fatalf("isqrt(10^22) = %d", got)
	}
	if got := Iroot128(3, x); got != 21544346 {
		// 21544346^3 <= 10^22 < 21544347^3
		t.Fatalf("iroot3(10^22) = %d", got)
	}
	for _, k := range []int{2, 3, 4, 6} {
		r := Iroot128(k, x)
		if !pow128LE(r, k, x) {
			t.Fatalf("iroot128(%d): r^k > x", k)
		}
		if pow128LE(r+1, k, x) {
			t.Fatalf("iroot128(%d): (r+1)^k <= x", k)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{6, 3, 2},
		{-6, 3, -2},
	}
	for _, tc := range cases {
		if got := FloorDiv(tc.a, tc.b); got != tc.want {
			t.Fatalf("FloorDiv(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestILog2(t *testing.T) {
	if got := ILog2(1); got != 0 {
		t.Fatalf("ILog2(1) = %d", got)
	}
	if got := ILog2(1024); got != 10 {
		t.Fatalf("ILog2(1024) = %d", got)
	}
	if got := ILog2(1025); got != 10 {
		t.Fatalf("ILog2(1025) = %d", got)
	}
}

func TestNextPow2(t *testing.T) {
	cases := []struct{ x, want int64 }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {64, 64}, {65, 128},
	}
	for _, tc := range cases {
		if got := NextPow2(tc.x); got != tc.want {
			t.Fatalf("NextPow2(%d) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestInBetween(t *testing.T) {
	if got := InBetween(2, 1, 10); got != 2 {
		t.Fatalf("clamp low: %d", got)
	}
	if got := InBetween(2, 11, 10); got != 10 {
		t.Fatalf("clamp high: %d", got)
	}
	if got := InBetween(2, 5, 10); got != 5 {
		t.Fatalf("clamp mid: %d", got)
	}
}
