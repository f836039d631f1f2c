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
	"time"

	"github.com/pmath/primecount/imath"
	"github.com/pmath/primecount/sieve"
)

// dTerm computes the hard special leaves of the two-parameter
// decomposition: everything acTerm's pi-table shortcut cannot answer goes
// through the segmented Fenwick-counted sieve, exactly like the LMO
// special-leaf computation but with 128-bit x and the easy leaves skipped.
// Workers claim segment indices from the same shared fetch-and-increment
// counter pattern; the round geometry is driven by the load balancer.
func dTerm(x imath.Int128, y, z, c int64, primes []int64, lpf, mu []int32, threads int) imath.Int128 {
	limit := x.Div64(y).AddInt64(1).Int64()
	piY := int64(len(primes)) - 1
	maxSize := imath.NextPow2(imath.ISqrt(limit))
	if maxSize < minSegmentSize {
		maxSize = minSegmentSize
	}
	lb := newLoadBalancer(minSegmentSize, maxSize)
	st := newStatus()
	phiTotal := make([]int64, piY+1)
	d := imath.Int128{}
	low := int64(1)

	for low < limit {
		segmentSize := lb.segmentSize
		remaining := (limit - low + segmentSize - 1) / segmentSize
		round := min64(remaining, int64(threads)*lb.segmentsPerThread)
		t := threads
		if int64(t) > round {
			t = int(round)
		}

		timings := make([]float64, t)
		sums := make([]imath.Int128, round)
		phis := make([][]int64, round)
		muSums := make([][]int64, round)
		counter := int64(-1)

		var wg sync.WaitGroup
		for i := 0; i < t; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				start := time.Now()
				sv := sieve.New(segmentSize)
				for {
					j := atomic.AddInt64(&counter, 1)
					if j >= round {
						break
					}
					segLow := low + segmentSize*j
					segHigh := min64(segLow+segmentSize, limit)
					phiT := make([]int64, piY+1)
					muT := make([]int64, piY+1)
					sums[j] = dSegment(x, y, z, c, segLow, segHigh, sv, primes, lpf, mu, phiT, muT)
					phis[j] = phiT
					muSums[j] = muT
				}
				timings[i] = time.Since(start).Seconds()
			}(i)
		}
		wg.Wait()

		// Sequential fix-up in segment order.
		for j := int64(0); j < round; j++ {
			d = d.Add(sums[j])
			for b := c + 1; b < piY; b++ {
				d = d.Add(imath.Mul64(muSums[j][b], phiTotal[b]))
				phiTotal[b] += phis[j][b]
			}
		}

		low += segmentSize * round
		lb.adjust(timings)
		st.print(low, limit)
	}
	st.done()
	return d
}

// dSegment processes one segment of the hard-leaf sieve.
func dSegment(x imath.Int128, y, z, c, segLow, segHigh int64, sv *sieve.Sieve, primes []int64, lpf, mu []int32, phiT, muT []int64) imath.Int128 {
	piY := int64(len(primes)) - 1
	sv.Init(segLow, segHigh)
	d := imath.Int128{}

	for b := int64(1); b <= c; b++ {
		p := primes[b]
		for k := ((segLow + p - 1) / p) * p; k < segHigh; k += p {
			sv.CrossOff(k)
		}
	}

	for b := c + 1; b < piY; b++ {
		p := primes[b]
		xp := x.Div64(p)

		maxM := y
		if v := xp.Div64(segLow); v.CmpInt64(y) < 0 {
			maxM = v.Int64()
		}
		if p >= maxM {
			// No further b has leaves at this or any later position.
			break
		}
		minM := y / p
		if v := xp.Div64(segHigh); v.CmpInt64(minM) > 0 {
			if v.CmpInt64(maxM) >= 0 {
				minM = maxM
			} else {
				minM = v.Int64()
			}
		}

		pSquared := p * p
		for m := maxM; m > minM; m-- {
			if mu[m] != 0 && p < int64(lpf[m]) {
				xn := xp.Div64(m).Int64()
				if xn <= z && xn < pSquared {
					continue // easy leaf, counted by the pi table
				}
				d = d.SubInt64(int64(mu[m]) * sv.Count(xn))
				muT[b] -= int64(mu[m])
			}
		}

		phiT[b] = sv.CountAll()
		k := ((segLow + p - 1) / p) * p
		if (k/p)%2 == 0 {
			k += p
		}
		for ; k < segHigh; k += 2 * p {
			sv.CrossOff(k)
		}
	}

	return d
}
