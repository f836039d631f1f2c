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
	"sync/atomic"

	"github.com/pmath/primecount/imath"
	"github.com/pmath/primecount/prime"
)

// acTerm computes the easy special leaves of the two-parameter
// decomposition. A leaf (b, m) with u = x/(primes[b]*m) is easy when
// u <= z and u < primes[b]^2: after removing the first b-1 primes the
// survivors <= u are 1 plus the primes in (primes[b-1], u], so
// phi(u, b-1) = 1 + max(0, pi(u) - (b-1)) comes straight from the pi
// table, no sieving required.
//
// Workers claim b values from a shared monotonic counter with a relaxed
// fetch-and-increment; each b is consumed whole by one worker, so the
// total is independent of the interleaving.
func acTerm(x imath.Int128, y, z, c int64, primes []int64, lpf, mu []int32, pi *prime.PiTable, threads int) imath.Int128 {
	piY := int64(len(primes)) - 1
	threads = idealNumThreads(threads, piY-c, 64)

	counter := c // next b to hand out is counter+1
	sums := make([]imath.Int128, threads)

	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			sum := imath.Int128{}
			for {
				b := atomic.AddInt64(&counter, 1)
				if b >= piY {
					break
				}
				p := primes[b]
				pSquared := p * p
				xp := x.Div64(p)
				// m walks downward, so u walks upward; past z no leaf of
				// this b can be easy anymore.
				for m := y; m > y/p; m-- {
					u := xp.Div64(m)
					if u.CmpInt64(z) > 0 {
						break
					}
					if mu[m] == 0 || p >= int64(lpf[m]) {
						continue
					}
					u64 := u.Int64()
					if u64 < pSquared {
						phi := int64(1)
						if v := pi.Pi(u64) - (b - 1); v > 0 {
							phi += v
						}
						if mu[m] > 0 {
							sum = sum.SubInt64(phi)
						} else {
							sum = sum.AddInt64(phi)
						}
					}
				}
			}
			sums[w] = sum
		}(w)
	}
	wg.Wait()

	total := imath.Int128{}
	for w := 0; w < threads; w++ {
		total = total.Add(sums[w])
	}
	return total
}
