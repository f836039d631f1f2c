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

// PiMeissel counts the primes <= x with Meissel's formula:
// pi(x) = phi(x, a) + a - 1 - P2(x, x^(1/3)) with a = pi(x^(1/3)).
func PiMeissel(x int64, threads int) (int64, error) {
	if x < 0 {
		return 0, errors.Errorf("pi_meissel: x must be >= 0, got %d", x)
	}
	if x < 2 {
		return 0, nil
	}
	if threads < 1 {
		threads = GetNumThreads()
	}

	x13 := imath.Iroot(3, x)
	cache := newPhiCache(imath.ISqrt(x))
	a := cache.pi.Pi(x13)
	phi := cache.phi(x, a)
	p2v := p2(imath.Int128FromInt64(x), x13, threads)
	return phi + a - 1 - p2v.Int64(), nil
}
