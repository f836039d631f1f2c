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

const eulerGamma = 0.577215664901532860606512090082402431

// li evaluates the logarithmic integral via the rapidly converging series
// li(t) = gamma + ln(ln t) + sum_{k>=1} (ln t)^k / (k * k!).
func li(t float64) float64 {
	if t <= 1 {
		return 0
	}
	logt := math.Log(t)
	sum := eulerGamma + math.Log(logt)
	term := 1.0
	for k := 1; k < 200; k++ {
		term *= logt / float64(k)
		delta := term / float64(k)
		sum += delta
		if delta < 1e-18*math.Abs(sum) {
			break
		}
	}
	return sum
}

// Li returns floor(Li(x)) where Li(x) = li(x) - li(2) approximates pi(x).
// It is an analytic helper, clearly separate from the exact counters.
func Li(x int64) int64 {
	if x < 2 {
		return 0
	}
	return int64(li(float64(x)) - li(2))
}

// LiInverse returns the smallest x with Li(x) >= n; Li_inverse(pi-ish n)
// is a close nth-prime estimate and seeds the exact nth-prime search.
func LiInverse(n int64) int64 {
	if n < 1 {
		return 2
	}
	lo, hi := int64(2), int64(16)
	for Li(hi) < n {
		if hi > math.MaxInt64/2 {
			break
		}
		hi *= 2
	}
	for lo < hi {
		mid := lo + (hi-lo)/2
		if Li(mid) < n {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
