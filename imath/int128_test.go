package imath

import (
	"math"
	"testing"
)

func TestInt128Conversions(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -42, math.MaxInt64, math.MinInt64} {
		x := Int128FromInt64(v)
		if !x.IsInt64() {
			t.Fatalf("%d: IsInt64 = false", v)
		}
		if x.Int64() != v {
			t.Fatalf("%d: round trip gave %d", v, x.Int64())
		}
	}
	big := Int128{Hi: 1, Lo: 0} // 2^64
	if big.IsInt64() {
		t.Fatal("2^64 claims to fit in int64")
	}
}

func TestInt128AddSub(t *testing.T) {
	a := Int128FromUint64(math.MaxUint64) // 2^64 - 1
	b := a.AddInt64(1)                    // 2^64
	if b.Hi != 1 || b.Lo != 0 {
		t.Fatalf("2^64 = {%d, %d}", b.Hi, b.Lo)
	}
	if c := b.SubInt64(1); c.Cmp(a) != 0 {
		t.Fatalf("2^64 - 1 mismatch: %s", c)
	}
	if s := Int128FromInt64(-5).Add(Int128FromInt64(7)); s.Int64() != 2 {
		t.Fatalf("-5 + 7 = %s", s)
	}
	if s := Int128FromInt64(5).Sub(Int128FromInt64(7)); s.Int64() != -2 {
		t.Fatalf("5 - 7 = %s", s)
	}
}

func TestInt128MulDiv(t *testing.T) {
	// 10^10 * 10^10 = 10^20, which does not fit in 64 bits.
	p := Mul64(1e10, 1e10)
	if p.String() != "100000000000000000000" {
		t.Fatalf("10^10 * 10^10 = %s", p)
	}
	if q := p.Div64(1e10); q.CmpInt64(1e10) != 0 {
		t.Fatalf("10^20 / 10^10 = %s", q)
	}
	if m := p.AddInt64(7).Mod64(10); m != 7 {
		t.Fatalf("(10^20 + 7) %% 10 = %d", m)
	}
	if n := Mul64(-3, 5); n.Int64() != -15 {
		t.Fatalf("-3 * 5 = %s", n)
	}
	if q := Int128FromInt64(-15).Div64(4); q.Int64() != -3 {
		t.Fatalf("-15 / 4 = %s (truncation expected)", q)
	}
}

func TestInt128MulInt64(t *testing.T) {
	x, _ := Int128FromString("10000000000000000000000") // 10^22
	y := x.MulInt64(3)
	if y.String() != "30000000000000000000000" {
		t.Fatalf("3 * 10^22 = %s", y)
	}
	if z := y.Div64(3); z.Cmp(x) != 0 {
		t.Fatalf("(3 * 10^22) / 3 = %s", z)
	}
}

func TestInt128String(t *testing.T) {
	cases := []string{
		"0",
		"1",
		"-1",
		"9223372036854775807",
		"-9223372036854775808",
		"18446744073709551616",
		"10000000000000000000000",
		"170141183460469231731687303715884105727",
	}
	for _, s := range cases {
		v, ok := Int128FromString(s)
		if !ok {
			t.Fatalf("parse %q failed", s)
		}
		if got := v.String(); got != s {
			t.Fatalf("round trip %q gave %q", s, got)
		}
	}
	if _, ok := Int128FromString("170141183460469231731687303715884105728"); ok {
		t.Fatal("2^127 should not parse")
	}
	if _, ok := Int128FromString("12x3"); ok {
		t.Fatal("junk should not parse")
	}
}

func TestInt128Cmp(t *testing.T) {
	values := []Int128{
		Int128FromInt64(math.MinInt64),
		Int128FromInt64(-1),
		Int128FromInt64(0),
		Int128FromInt64(1),
		Int128FromUint64(math.MaxUint64),
		{Hi: 1, Lo: 0},
		{Hi: 5, Lo: 42},
	}
	for i := range values {
		for j := range values {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := values[i].Cmp(values[j]); got != want {
				t.Fatalf("Cmp(%s, %s) = %d, want %d", values[i], values[j], got, want)
			}
		}
	}
}
