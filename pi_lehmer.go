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
)

// PiLehmer counts the primes <= x with Lehmer's formula. With
// a = pi(x^(1/4)), b = pi(sqrt(x)), c = pi(x^(1/3)):
//
//	pi(x) = phi(x, a) + (b+a-2)(b-a+1)/2
//	      - sum_{a<i<=b} pi(x/p_i)
//	      - sum_{a<i<=c} sum_{i<=j<=pi(sqrt(x/p_i))} (pi(x/(p_i*p_j)) - (j-1))
func PiLehmer(x int64) (int64, error) {
	if x < 0 {
		return 0, errors.Errorf("pi_lehmer: x must be >= 0, got %d", x)
	}
	if x < 2 {
		return 0, nil
	}

	sq := imath.ISqrt(x)
	cache := newPhiCache(sq)
	a := cache.pi.Pi(imath.Iroot(4, x))
	b := cache.pi.Pi(sq)
	c := cache.pi.Pi(imath.Iroot(3, x))

	// pi(w) for w up to x^(3/4): the table answers w <= sqrt(x), the
	// rest falls back to Legendre's formula.
	piAny := func(w int64) int64 {
		if w <= cache.pi.Limit() {
			return cache.pi.Pi(w)
		}
		return piLegendre(w)
	}

	sum := cache.phi(x, a) + (b+a-2)*(b-a+1)/2
	for i := a + 1; i <= b; i++ {
		w := x / cache.primes[i]
		sum -= piAny(w)
		if i <= c {
			bi := cache.pi.Pi(imath.ISqrt(w))
			for j := i; j <= bi; j++ {
				sum -= cache.pi.Pi(w/cache.primes[j]) - (j - 1)
			}
		}
	}
	return sum, nil
}
