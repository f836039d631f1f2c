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
	"sync"

	"github.com/pmath/primecount/imath"
	"github.com/pmath/primecount/prime"
)

// p2 computes the semi-prime correction term
//
//	P2(x, y) = sum over primes y < p <= sqrt(x) of (pi(x/p) - pi(p) + 1).
//
// With A = pi(sqrt(x)), B = pi(y) and the prime indices running from B+1
// to A, the pi(p) part telescopes:
//
//	P2 = sum pi(x/p) - (A(A+1) - B(B+1))/2 + (A - B).
//
// The remaining sum streams two prime sources per worker: a backward
// iterator over p (so x/p increases) and a forward counting sweep over the
// primes q <= x/p. Workers own disjoint p-ranges and anchor their counts
// with piLegendre at the range boundary.
func p2(x imath.Int128, y int64, threads int) imath.Int128 {
	sqrtx := int64(imath.ISqrt128(x))
	if y >= sqrtx {
		return imath.Int128{}
	}
	a := piLegendre(sqrtx)
	b := piLegendre(y)
	if a <= b {
		return imath.Int128{}
	}

	threads = idealNumThreads(threads, sqrtx-y, 1<<13)
	bounds := make([]int64, threads+1)
	for i := 0; i <= threads; i++ {
		bounds[i] = y + (sqrtx-y)*int64(i)/int64(threads)
	}

	sums := make([]imath.Int128, threads)
	var wg sync.WaitGroup
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sums[i] = p2Chunk(x, bounds[i], bounds[i+1])
		}(i)
	}
	wg.Wait()

	sum := imath.Int128{}
	for i := 0; i < threads; i++ {
		sum = sum.Add(sums[i])
	}
	correction := imath.Mul64(a, a+1).Sub(imath.Mul64(b, b+1)).Div64(2)
	return sum.Sub(correction).AddInt64(a - b)
}

// p2Chunk returns sum of pi(x/p) over the primes p in (lo, hi].
func p2Chunk(x imath.Int128, lo, hi int64) imath.Int128 {
	sum := imath.Int128{}
	pit := prime.NewIterator()
	pit.JumpTo(hi+1, lo)
	p := pit.Prev()
	if p <= lo {
		return sum
	}
	u := x.Div64(p).Int64()
	count := piLegendre(u)
	qit := prime.NewIterator()
	qit.JumpTo(u+1, x.Div64(lo+1).Int64())
	q := qit.Next()
	for ; p > lo; p = pit.Prev() {
		u = x.Div64(p).Int64()
		for q != 0 && q <= u {
			count++
			q = qit.Next()
		}
		sum = sum.AddInt64(count)
	}
	return sum
}
