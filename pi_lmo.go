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

package primecount

import (
	"github.com/pkg/errors"
	"github.com/pmath/primecount/imath"
	"github.com/pmath/primecount/phitiny"
	"github.com/pmath/primecount/prime"
)

// lmoY derives y = alpha * x^(1/3) for the Lagarias-Miller-Odlyzko
// decomposition, clamped to [x^(1/3), sqrt(x)] so every tuning factor
// yields a valid (and identical) result.
func lmoY(x int64) int64 {
	alpha := getAlpha(x, 1e15, 2, 300)
	x13 := imath.Iroot(3, x)
	y := imath.InBetween(x13, int64(alpha*float64(x13)), imath.ISqrt(x))
	if y < 1 {
		y = 1
	}
	return y
}

// PiLmoSimple counts the primes <= x with the Lagarias-Miller-Odlyzko
// algorithm, computing the special leaves with one unsegmented sieve of
// Eratosthenes. Space: O(x/y). The segmented PiLmo is the workhorse; this
// variant stays around as the readable reference and for cross-checking.
func PiLmoSimple(x int64) (int64, error) {
	if x < 0 {
		return 0, errors.Errorf("pi_lmo: x must be >= 0, got %d", x)
	}
	if x < 2 {
		return 0, nil
	}

	y := lmoY(x)
	p2v := p2(imath.Int128FromInt64(x), y, GetNumThreads())

	mu := prime.Moebius(y)
	lpf := prime.LeastPrimeFactors(y)
	primes := prime.Generate(y)
	piY := int64(len(primes)) - 1
	c := min64(piY, phitiny.MaxA)

	s1 := ordinaryLeaves(x, y, c, lpf, mu)
	s2 := s2Simple(x, y, c, primes, lpf, mu)
	phi := s1 + s2
	return phi + piY - 1 - p2v.Int64(), nil
}

// s2Simple computes the special-leaf contribution with an unsegmented
// sieve: for each b the leaves are visited with m walking downward, so
// the phi argument x/(prime*m) walks upward and each phi value is the
// running count of unsieved positions.
func s2Simple(x, y, c int64, primes []int64, lpf, mu []int32) int64 {
	limit := x/y + 1
	piY := int64(len(primes)) - 1
	result := int64(0)
	b := int64(1)
	sv := make([]byte, limit)
	for i := range sv {
		sv[i] = 1
	}

	// phi(y, b) nodes with b <= c contribute nothing, so the multiples of
	// the first c primes are simply sieved out up front.
	for ; b <= c; b++ {
		p := primes[b]
		for k := p; k < limit; k += p {
			sv[k] = 0
		}
	}

	for ; b < piY; b++ {
		p := primes[b]
		i := int64(1)
		phi := int64(0)

		for m := y; m > y/p; m-- {
			if mu[m] != 0 && p < int64(lpf[m]) {
				// A special leaf: its value is phi(x/(p*m), b-1), the
				// number of unsieved positions <= x/(p*m) after removing
				// the multiples of the first b-1 primes.
				xn := x / (p * m)
				for ; i <= xn; i++ {
					phi += int64(sv[i])
				}
				result -= int64(mu[m]) * phi
			}
		}

		// Remove the multiples of the b-th prime; the even ones are
		// already gone.
		for k := p; k < limit; k += p * 2 {
			sv[k] = 0
		}
	}

	return result
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
