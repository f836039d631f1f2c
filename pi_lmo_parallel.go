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

	"github.com/pkg/errors"
	"github.com/pmath/primecount/imath"
	"github.com/pmath/primecount/phitiny"
	"github.com/pmath/primecount/prime"
	"github.com/pmath/primecount/sieve"
)

// PiLmo counts the primes <= x with the Lagarias-Miller-Odlyzko
// algorithm, computing the special leaves with a segmented sieve across a
// balanced worker pool. threads < 1 selects the configured default.
func PiLmo(x int64, threads int) (int64, error) {
	if x < 0 {
		return 0, errors.Errorf("pi_lmo: x must be >= 0, got %d", x)
	}
	if x < 2 {
		return 0, nil
	}
	if threads < 1 {
		threads = GetNumThreads()
	}

	y := lmoY(x)
	p2v := p2(imath.Int128FromInt64(x), y, threads)

	mu := prime.Moebius(y)
	lpf := prime.LeastPrimeFactors(y)
	primes := prime.Generate(y)
	piY := int64(len(primes)) - 1
	c := min64(piY, phitiny.MaxA)

	s1 := ordinaryLeaves(x, y, c, lpf, mu)
	s2 := s2Parallel(x, y, c, primes, lpf, mu, threads)
	phi := s1 + s2
	return phi + piY - 1 - p2v.Int64(), nil
}

// s2Parallel evaluates the special leaves over segments of [1, x/y] with
// dynamic self-scheduling: one shared monotonic counter issues the next
// segment index and every worker fetches-and-increments it to claim work,
// no locks on the hot path. A round spans threads*segmentsPerThread
// segments; at the round join the per-segment records are reduced in
// segment order (each segment's leaves still owe the survivor counts of
// all segments before it) and the per-thread timings feed the balancer,
// once per round.
func s2Parallel(x, y, c int64, primes []int64, lpf, mu []int32, threads int) int64 {
	limit := x/y + 1
	piY := int64(len(primes)) - 1
	maxSize := imath.NextPow2(imath.ISqrt(limit))
	if maxSize < minSegmentSize {
		maxSize = minSegmentSize
	}
	lb := newLoadBalancer(minSegmentSize, maxSize)
	st := newStatus()
	phiTotal := make([]int64, piY+1)
	s2 := int64(0)
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
		sums := make([]int64, round)
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
					sums[j] = s2Segment(x, y, c, segLow, segHigh, sv, primes, lpf, mu, phiT, muT)
					phis[j] = phiT
					muSums[j] = muT
				}
				timings[i] = time.Since(start).Seconds()
			}(i)
		}
		wg.Wait()

		// Sequential fix-up in segment order.
		for j := int64(0); j < round; j++ {
			s2 += sums[j]
			for b := c + 1; b < piY; b++ {
				s2 += muSums[j][b] * phiTotal[b]
				phiTotal[b] += phis[j][b]
			}
		}

		low += segmentSize * round
		lb.adjust(timings)
		st.print(low, limit)
	}
	st.done()
	return s2
}

// s2Segment processes one segment. For each b the leaves are visited with
// m walking downward so the phi argument walks upward, matching the
// monotone state of the Fenwick-counted sieve; then the multiples of
// primes[b] are crossed off. The leaf values here count survivors inside
// the segment only; phiT and muT carry what the caller needs to add the
// contributions of the segments before this one.
func s2Segment(x, y, c, segLow, segHigh int64, sv *sieve.Sieve, primes []int64, lpf, mu []int32, phiT, muT []int64) int64 {
	piY := int64(len(primes)) - 1
	sv.Init(segLow, segHigh)
	s2 := int64(0)

	for b := int64(1); b <= c; b++ {
		p := primes[b]
		for k := ((segLow + p - 1) / p) * p; k < segHigh; k += p {
			sv.CrossOff(k)
		}
	}

	for b := c + 1; b < piY; b++ {
		p := primes[b]
		minM := max64(x/(p*segHigh), y/p)
		maxM := min64(x/(p*segLow), y)
		if p >= maxM {
			// No further b has leaves at this or any later position.
			break
		}

		for m := maxM; m > minM; m-- {
			if mu[m] != 0 && p < int64(lpf[m]) {
				xn := x / (p * m)
				s2 -= int64(mu[m]) * sv.Count(xn)
				muT[b] -= int64(mu[m])
			}
		}

		phiT[b] = sv.CountAll()
		// Cross off the odd multiples; the even ones died with the
		// pre-sieved first prime.
		k := ((segLow + p - 1) / p) * p
		if (k/p)%2 == 0 {
			k += p
		}
		for ; k < segHigh; k += 2 * p {
			sv.CrossOff(k)
		}
	}

	return s2
}
