package main

import (
	"testing"

	"github.com/pmath/primecount/imath"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"42", "42"},
		{"1e15", "1000000000000000"},
		{"2^40", "1099511627776"},
		{"2^3^2", "512"}, // right-associative
		{"(1+3)*5", "20"},
		{"10%3", "1"},
		{"7/2", "3"},
		{"-5+6", "1"},
		{"1e15+1", "1000000000000001"},
		{"2^64", "18446744073709551616"},
		{"10^22", "10000000000000000000000"},
		{"3*1e2-50", "250"},
		{" 1 + 2 ", "3"},
		{"-(2+3)", "-5"},
	}
	for _, tc := range cases {
		got, err := parseNumber(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		want, ok := imath.Int128FromString(tc.want)
		if !ok {
			t.Fatalf("bad expectation %q", tc.want)
		}
		if got.Cmp(want) != 0 {
			t.Fatalf("parse %q = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseNumberErrors(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"1e",
		"2^",
		"(1+2",
		"1/0",
		"5%0",
		"2^-3",
		"1..2",
		"12abc",
		"2^9999999",
		"1e999",
	}
	for _, in := range cases {
		if _, err := parseNumber(in); err == nil {
			t.Fatalf("parse %q should fail", in)
		}
	}
}

func TestParseNumberOverflow(t *testing.T) {
	// 2^127 does not fit in a signed 128-bit integer.
	if _, err := parseNumber("2^127"); err == nil {
		t.Fatal("2^127 should overflow")
	}
	if _, err := parseNumber("2^126"); err != nil {
		t.Fatalf("2^126 should fit: %v", err)
	}
}

func TestToInt64(t *testing.T) {
	v, err := toInt64(imath.Int128FromInt64(123))
	if err != nil || v != 123 {
		t.Fatalf("toInt64(123) = %d, %v", v, err)
	}
	big, _ := imath.Int128FromString("10000000000000000000000")
	if _, err := toInt64(big); err == nil {
		t.Fatal("10^22 must not fit in int64")
	}
}
