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
	"math"
	"sync"

	"github.com/pmath/primecount/imath"
)

// Tuning factors size y (and z) as multiples of x^(1/3). They trade sieve
// memory against leaf work and change performance only: every admissible
// value yields the same pi(x), because y and z are clamped to their valid
// ranges at the use sites and the easy/hard leaf split is an exact
// partition for every z.
var (
	tuningMu      sync.Mutex
	alphaOverride float64 // 0 = auto
	alphaYOver    float64
	alphaZOver    float64
)

// SetAlpha overrides the LMO tuning factor. v <= 0 restores automatic
// selection.
func SetAlpha(v float64) {
	tuningMu.Lock()
	defer tuningMu.Unlock()
	if v <= 0 {
		v = 0
	}
	alphaOverride = v
}

// SetAlphaY overrides the y tuning factor of the two-parameter algorithm.
// v <= 0 restores automatic selection.
func SetAlphaY(v float64) {
	tuningMu.Lock()
	defer tuningMu.Unlock()
	if v <= 0 {
		v = 0
	}
	alphaYOver = v
}

// SetAlphaZ overrides the z tuning factor of the two-parameter algorithm.
// v <= 0 restores automatic selection.
func SetAlphaZ(v float64) {
	tuningMu.Lock()
	defer tuningMu.Unlock()
	if v <= 0 {
		v = 0
	}
	alphaZOver = v
}

// getAlpha interpolates the tuning factor against log10(x) relative to
// log10(xMin), clamped to [aMin, aMax].
func getAlpha(x int64, xMin, aMin, aMax float64) float64 {
	tuningMu.Lock()
	o := alphaOverride
	tuningMu.Unlock()
	if o > 0 {
		return inBetweenFloat(aMin, o, aMax)
	}
	return alphaInterpolate(float64(x), xMin, aMin, aMax)
}

func alphaInterpolate(x, xMin, aMin, aMax float64) float64 {
	if x < 10 {
		return aMin
	}
	t := math.Log10(x) / math.Log10(xMin)
	return inBetweenFloat(aMin, aMin*t*t*t, aMax)
}

// getAlphaY returns the y tuning factor for the two-parameter algorithm.
// Overrides are honored unclamped here; the caller clamps y itself, which
// is what keeps arbitrary overrides result-preserving.
func getAlphaY(x imath.Int128) float64 {
	tuningMu.Lock()
	o := alphaYOver
	tuningMu.Unlock()
	if o > 0 {
		return o
	}
	return alphaInterpolate(x.Float64(), 1e16, 2, 60)
}

// getAlphaZ returns the z tuning factor; z = alphaZ * y.
func getAlphaZ(x imath.Int128) float64 {
	tuningMu.Lock()
	o := alphaZOver
	tuningMu.Unlock()
	if o > 0 {
		return o
	}
	return alphaInterpolate(x.Float64(), 1e16, 1.5, 8)
}
