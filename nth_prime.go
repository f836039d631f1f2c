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
	"github.com/pmath/primecount/prime"
)

// nthPrimeDirect is the cutoff below which the iterator is simply walked
// from the beginning.
const nthPrimeDirect = 100000

// NthPrime returns the n-th prime (1-based): NthPrime(1) = 2.
func NthPrime(n int64) (int64, error) {
	if n < 1 {
		return 0, errors.Errorf("nth_prime: n must be >= 1, got %d", n)
	}

	it := prime.NewIterator()
	if n < nthPrimeDirect {
		p := int64(0)
		for i := int64(0); i < n; i++ {
			p = it.Next()
		}
		return p, nil
	}

	// Jump close with the inverse logarithmic integral, count exactly,
	// then walk the iterator the remaining distance.
	guess := LiInverse(n)
	count := piGourdon(imath.Int128FromInt64(guess), GetNumThreads()).Int64()
	it.JumpTo(guess+1, 0)

	if count >= n {
		p := it.Prev() // the count-th prime
		for count > n {
			p = it.Prev()
			count--
		}
		return p, nil
	}
	p := int64(0)
	for count < n {
		p = it.Next()
		count++
	}
	return p, nil
}
