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

// Package imath provides exact integer square/cube/4th/6th roots, floor
// division and 128-bit arithmetic for the prime counting algorithms.
// Floating point is used only as an initial estimate which is then fixed
// up by exact integer exponentiation.
package imath

import (
	"math"
	"math/bits"
)

// ISqrt returns the greatest r with r*r <= x. Undefined for x < 0.
func ISqrt(x int64) int64 {
	return Iroot(2, x)
}

// Iroot returns the greatest r with r^k <= x for k in {2, 3, 4, 6}.
// Undefined for x < 0.
func Iroot(k int, x int64) int64 {
	return int64(irootU64(k, uint64(x)))
}

// IrootU64 returns the greatest r with r^k <= x over the full uint64 range.
func IrootU64(k int, x uint64) uint64 {
	return irootU64(k, x)
}

func irootU64(k int, x uint64) uint64 {
	switch k {
	case 2, 3, 4, 6:
	default:
		panic("imath: unsupported root")
	}
	if x == 0 {
		return 0
	}
	r := uint64(math.Pow(float64(x), 1/float64(k)))
	for r > 0 && !powLE(r, k, x) {
		r--
	}
	for powLE(r+1, k, x) {
		r++
	}
	return r
}

// powLE reports whether r^k <= x; an overflowing power counts as greater.
func powLE(r uint64, k int, x uint64) bool {
	p := uint64(1)
	for i := 0; i < k; i++ {
		hi, lo := bits.Mul64(p, r)
		if hi != 0 {
			return false
		}
		p = lo
	}
	return p <= x
}

// ISqrt128 returns the greatest r with r*r <= x. Undefined for x < 0.
func ISqrt128(x Int128) uint64 {
	return Iroot128(2, x)
}

// Iroot128 returns the greatest r with r^k <= x for k in {2, 3, 4, 6}.
// Undefined for x < 0.
func Iroot128(k int, x Int128) uint64 {
	switch k {
	case 2, 3, 4, 6:
	default:
		panic("imath: unsupported root")
	}
	if x.Hi == 0 {
		return irootU64(k, x.Lo)
	}
	r := uint64(math.Pow(x.Float64(), 1/float64(k)))
	for r > 0 && !pow128LE(r, k, x) {
		r--
	}
	for pow128LE(r+1, k, x) {
		r++
	}
	return r
}

// pow128LE reports whether r^k <= x in 128-bit arithmetic; an overflowing
// power counts as greater. x must be non-negative.
func pow128LE(r uint64, k int, x Int128) bool {
	phi, plo := uint64(0), uint64(1)
	for i := 0; i < k; i++ {
		h2, _ := bits.Mul64(phi, r)
		if h2 != 0 {
			return false
		}
		hi1, lo := bits.Mul64(plo, r)
		nhi, carry := bits.Add64(phi*r, hi1, 0)
		if carry != 0 || nhi > math.MaxInt64 {
			return false
		}
		phi, plo = nhi, lo
	}
	if phi != uint64(x.Hi) {
		return phi < uint64(x.Hi)
	}
	return plo <= x.Lo
}

// FloorDiv returns floor(a / b) for b != 0.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ILog returns an integer approximation of the natural logarithm.
// Used only to size tables, never for correctness.
func ILog(x int64) int64 {
	if x < 2 {
		return 0
	}
	return int64(math.Log(float64(x)))
}

// ILog2 returns floor(log2(x)) for x > 0.
func ILog2(x uint64) int64 {
	return int64(bits.Len64(x)) - 1
}

// NextPow2 returns the smallest power of two >= x.
func NextPow2(x int64) int64 {
	if x <= 1 {
		return 1
	}
	return 1 << uint(bits.Len64(uint64(x-1)))
}

// InBetween clamps x to [min, max].
func InBetween(min, x, max int64) int64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
