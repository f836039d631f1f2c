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

import "math"

// minSegmentSize is the smallest sieve segment the balancer will use.
const minSegmentSize = int64(1) << 6

// loadBalancer grows or shrinks the segment size (and, once the segment
// is maxed out, the number of segments per thread) between rounds of the
// special-leaf computation. The relative standard deviation of the
// per-thread timings of the previous round is the imbalance signal: a low
// RSD means the threads can take more work, a growing RSD means they
// should take less.
type loadBalancer struct {
	segmentSize       int64 // power of two in [minSize, maxSize]
	segmentsPerThread int64 // >= 1
	minSize           int64
	maxSize           int64
	oldRSD            float64
}

func newLoadBalancer(minSize, maxSize int64) *loadBalancer {
	return &loadBalancer{
		segmentSize:       minSize,
		segmentsPerThread: 1,
		minSize:           minSize,
		maxSize:           maxSize,
		oldRSD:            40,
	}
}

func getAverage(timings []float64) float64 {
	if len(timings) == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range timings {
		sum += t
	}
	return sum / float64(len(timings))
}

func relativeStandardDeviation(timings []float64) float64 {
	average := getAverage(timings)
	if average == 0 {
		return 0
	}
	sumMeanSquared := 0.0
	for _, t := range timings {
		mean := t - average
		sumMeanSquared += mean * mean
	}
	divisor := math.Max(1, float64(len(timings)-1))
	standardDeviation := math.Sqrt(sumMeanSquared / divisor)
	return 100 * standardDeviation / average
}

func increaseSize(rsd, oldRSD, seconds float64) bool {
	return seconds < 10 && (seconds < 0.01 || rsd < oldRSD)
}

func decreaseSize(rsd, oldRSD, seconds float64) bool {
	return seconds > 0.01 && rsd > oldRSD
}

func adjustSegments(segments float64, oldSegments int64, seconds float64) bool {
	return (segments < float64(oldSegments) && seconds > 0.01) ||
		(segments > float64(oldSegments) && seconds < 10)
}

// adjust updates the segment geometry from one round's per-thread timings.
// The RSD is clamped to a 5x band around the previous value so a single
// outlier round cannot destabilize the schedule.
func (lb *loadBalancer) adjust(timings []float64) {
	seconds := getAverage(timings)
	rsd := relativeStandardDeviation(timings)
	rsd = inBetweenFloat(math.Max(1, lb.oldRSD/5), rsd, lb.oldRSD*5)

	if lb.segmentSize < lb.maxSize {
		if increaseSize(rsd, lb.oldRSD, seconds) {
			lb.segmentSize <<= 1
		} else if decreaseSize(rsd, lb.oldRSD, seconds) {
			if lb.segmentSize > lb.minSize {
				lb.segmentSize >>= 1
			}
		}
	} else {
		segments := math.Max(1, float64(lb.segmentsPerThread)*lb.oldRSD/rsd)
		// rsd >= 1 after the clamp, but guard the quotient anyway so a
		// non-finite value can never be truncated into segmentsPerThread.
		if !math.IsNaN(segments) && !math.IsInf(segments, 0) &&
			adjustSegments(segments, lb.segmentsPerThread, seconds) {
			lb.segmentsPerThread = int64(segments)
		}
	}

	lb.oldRSD = rsd
}

func inBetweenFloat(min, x, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
