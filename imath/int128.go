// The MIT License (MIT)
//
// # Copyright (c) 2024 The primecount authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package imath

import (
	"math"
	"math/bits"
	"strconv"
)

// Int128 is a signed 128-bit integer in two's complement form: the value
// is Hi*2^64 + Lo. All prime-counting arithmetic that can leave the 64-bit
// range goes through this type.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Int128FromInt64 sign-extends v to 128 bits.
func Int128FromInt64(v int64) Int128 {
	if v < 0 {
		return Int128{Hi: -1, Lo: uint64(v)}
	}
	return Int128{Lo: uint64(v)}
}

// Int128FromUint64 zero-extends v to 128 bits.
func Int128FromUint64(v uint64) Int128 {
	return Int128{Lo: v}
}

// Int128FromString parses a decimal integer with an optional leading sign.
// The second return value reports whether the input was a valid integer
// whose magnitude is at most 2^127 - 1; -2^127 is rejected.
func Int128FromString(s string) (Int128, bool) {
	if s == "" {
		return Int128{}, false
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return Int128{}, false
	}
	// Largest value that can still be multiplied by 10 without leaving
	// the signed 128-bit range.
	maxDiv10 := Int128{Hi: math.MaxInt64, Lo: ^uint64(0)}.Div64(10)
	r := Int128{}
	for i := 0; i < len(s); i++ {
		d := s[i]
		if d < '0' || d > '9' {
			return Int128{}, false
		}
		if r.Cmp(maxDiv10) > 0 {
			return Int128{}, false
		}
		r = r.MulInt64(10).AddInt64(int64(d - '0'))
		if r.Sign() < 0 {
			return Int128{}, false
		}
	}
	if neg {
		r = r.Neg()
	}
	return r, true
}

// IsZero reports whether a == 0.
func (a Int128) IsZero() bool {
	return a.Hi == 0 && a.Lo == 0
}

// Sign returns -1, 0 or +1.
func (a Int128) Sign() int {
	if a.Hi < 0 {
		return -1
	}
	if a.Hi == 0 && a.Lo == 0 {
		return 0
	}
	return 1
}

// IsInt64 reports whether a fits in an int64.
func (a Int128) IsInt64() bool {
	if a.Hi == 0 {
		return a.Lo <= math.MaxInt64
	}
	return a.Hi == -1 && a.Lo >= 1<<63
}

// Int64 truncates a to 64 bits. The caller checks IsInt64 first.
func (a Int128) Int64() int64 {
	return int64(a.Lo)
}

// Add returns a + b.
func (a Int128) Add(b Int128) Int128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	return Int128{a.Hi + b.Hi + int64(carry), lo}
}

// Sub returns a - b.
func (a Int128) Sub(b Int128) Int128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	return Int128{a.Hi - b.Hi - int64(borrow), lo}
}

// AddInt64 returns a + v.
func (a Int128) AddInt64(v int64) Int128 {
	return a.Add(Int128FromInt64(v))
}

// SubInt64 returns a - v.
func (a Int128) SubInt64(v int64) Int128 {
	return a.Sub(Int128FromInt64(v))
}

// Neg returns -a.
func (a Int128) Neg() Int128 {
	lo, borrow := bits.Sub64(0, a.Lo, 0)
	return Int128{-a.Hi - int64(borrow), lo}
}

// Cmp returns -1, 0 or +1 ordering a against b.
func (a Int128) Cmp(b Int128) int {
	if a.Hi != b.Hi {
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	}
	if a.Lo != b.Lo {
		if a.Lo < b.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// CmpInt64 compares a against a 64-bit value.
func (a Int128) CmpInt64(v int64) int {
	return a.Cmp(Int128FromInt64(v))
}

// Mul64 returns the full signed 128-bit product of two 64-bit integers.
func Mul64(a, b int64) Int128 {
	neg := false
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = -uint64(a)
		neg = !neg
	}
	if b < 0 {
		ub = -uint64(b)
		neg = !neg
	}
	hi, lo := bits.Mul64(ua, ub)
	r := Int128{int64(hi), lo}
	if neg {
		r = r.Neg()
	}
	return r
}

// MulInt64 returns a * v. The product must fit in 128 bits.
func (a Int128) MulInt64(v int64) Int128 {
	neg := false
	ua := a
	if ua.Sign() < 0 {
		ua = ua.Neg()
		neg = !neg
	}
	uv := uint64(v)
	if v < 0 {
		uv = -uint64(v)
		neg = !neg
	}
	hi1, lo := bits.Mul64(ua.Lo, uv)
	hi := uint64(ua.Hi)*uv + hi1
	r := Int128{int64(hi), lo}
	if neg {
		r = r.Neg()
	}
	return r
}

// Div64 returns the quotient a / v truncated toward zero. v must be
// non-zero and |a|/|v| must fit in 128 bits (always true for |v| >= 1).
func (a Int128) Div64(v int64) Int128 {
	neg := false
	ua := a
	if ua.Sign() < 0 {
		ua = ua.Neg()
		neg = !neg
	}
	uv := uint64(v)
	if v < 0 {
		uv = -uint64(v)
		neg = !neg
	}
	qhi := uint64(ua.Hi) / uv
	rem := uint64(ua.Hi) % uv
	qlo, _ := bits.Div64(rem, ua.Lo, uv)
	q := Int128{int64(qhi), qlo}
	if neg {
		q = q.Neg()
	}
	return q
}

// Mod64 returns a - (a/v)*v, taking the sign of a.
func (a Int128) Mod64(v int64) int64 {
	q := a.Div64(v)
	return a.Sub(q.MulInt64(v)).Int64()
}

// Float64 converts a to the nearest float64. Used only for estimates,
// never for exact results.
func (a Int128) Float64() float64 {
	if a.Hi < 0 {
		return -a.Neg().Float64()
	}
	return float64(a.Hi)*0x1p64 + float64(a.Lo)
}

// String formats a in decimal.
func (a Int128) String() string {
	if a.IsInt64() {
		return strconv.FormatInt(a.Int64(), 10)
	}
	neg := a.Sign() < 0
	u := a
	if neg {
		u = u.Neg()
	}
	const chunk = int64(1e18)
	var tail []uint64
	for u.Hi != 0 {
		q := u.Div64(chunk)
		tail = append(tail, uint64(u.Sub(q.MulInt64(chunk)).Int64()))
		u = q
	}
	s := strconv.FormatUint(u.Lo, 10)
	for i := len(tail) - 1; i >= 0; i-- {
		part := strconv.FormatUint(tail[i], 10)
		for len(part) < 18 {
			part = "0" + part
		}
		s += part
	}
	if neg {
		s = "-" + s
	}
	return s
}
