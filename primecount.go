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

// Package primecount computes pi(x), the number of primes <= x, with
// combinatorial algorithms running in sub-linear time and memory:
// Legendre, Meissel, Lehmer, Lagarias-Miller-Odlyzko and a two-parameter
// decomposition for the largest inputs. All entry points are pure modulo
// the process-wide tuning overrides and the cached lookup tables.
package primecount

import (
	"github.com/pkg/errors"
	"github.com/pmath/primecount/imath"
	"github.com/pmath/primecount/prime"
)

// piSmallCutoff routes small inputs to the lookup table, below which the
// sieve-backed decompositions pay more in setup than they save.
const piSmallCutoff = int64(1) << 16

// Pi counts the primes <= x, picking the fastest algorithm for the size
// of x.
func Pi(x int64) (int64, error) {
	if x < 0 {
		return 0, errors.Errorf("pi: x must be >= 0, got %d", x)
	}
	if x < piSmallCutoff {
		return piCacheLookup(x), nil
	}
	return PiGourdon64(x, GetNumThreads())
}

// Pi128 counts the primes <= x for x beyond the 64-bit range (x < 2^90).
func Pi128(x imath.Int128) (imath.Int128, error) {
	if x.Sign() < 0 {
		return imath.Int128{}, errors.Errorf("pi: x must be >= 0, got %s", x)
	}
	if x.IsInt64() {
		v, err := Pi(x.Int64())
		return imath.Int128FromInt64(v), err
	}
	return PiGourdon128(x, GetNumThreads())
}

// CountPrimes counts the primes <= stop by direct sieving. It backs the
// sieve-only mode of the command-line tool and the cross-checking tests.
func CountPrimes(stop int64) int64 {
	if stop < 2 {
		return 0
	}
	it := prime.NewIterator()
	it.JumpTo(2, stop)
	count := int64(0)
	for p := it.Next(); p != 0 && p <= stop; p = it.Next() {
		count++
	}
	return count
}
