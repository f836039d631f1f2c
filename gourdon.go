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
	"github.com/pmath/primecount/phitiny"
	"github.com/pmath/primecount/prime"
)

const (
	// maxSieveY caps y at MaxInt32: the lpf table entries stay in 32
	// bits and every primes[b]*m product and primes[b]^2 stays in 64.
	maxSieveY = int64(1)<<31 - 1
	// maxPiTableZ caps the memory of the easy-leaf pi table.
	maxPiTableZ = int64(1) << 31
)

// maxGourdonX is 2^90: below it x^(1/3) fits the sieve-table range and
// x/y and every phi argument fit in 64 bits. Larger inputs return an
// overflow error.
var maxGourdonX = imath.Int128{Hi: 1 << 26, Lo: 0}

// PiGourdon64 counts the primes <= x with the two-parameter (y, z)
// decomposition: ordinary leaves, pi-table easy leaves, sieved hard
// leaves and the semi-prime term. threads < 1 selects the configured
// default.
func PiGourdon64(x int64, threads int) (int64, error) {
	if x < 0 {
		return 0, errors.Errorf("pi_gourdon: x must be >= 0, got %d", x)
	}
	if x < 2 {
		return 0, nil
	}
	if threads < 1 {
		threads = GetNumThreads()
	}
	return piGourdon(imath.Int128FromInt64(x), threads).Int64(), nil
}

// PiGourdon128 is PiGourdon64 for 128-bit x, supporting x < 2^90.
func PiGourdon128(x imath.Int128, threads int) (imath.Int128, error) {
	if x.Sign() < 0 {
		return imath.Int128{}, errors.Errorf("pi_gourdon: x must be >= 0, got %s", x)
	}
	if x.CmpInt64(2) < 0 {
		return imath.Int128{}, nil
	}
	if x.Cmp(maxGourdonX) >= 0 {
		return imath.Int128{}, errors.Errorf("pi_gourdon: x=%s exceeds the supported range (< 2^90)", x)
	}
	if threads < 1 {
		threads = GetNumThreads()
	}
	return piGourdon(x, threads), nil
}

// piGourdon assembles
//
//	pi(x) = Sigma + AC + D + pi(y) - 1 - B
//
// with y = alpha_y * x^(1/3) and z = alpha_z * y. Sigma is the ordinary
// leaves, AC + D is an exact partition of the special leaves into
// pi-table easy leaves and sieved hard leaves, and B is the semi-prime
// term over (y, sqrt(x)]. The partition holds for every admissible (y, z),
// which is what makes the tuning factors result-preserving.
func piGourdon(x imath.Int128, threads int) imath.Int128 {
	x13 := int64(imath.Iroot128(3, x))
	sqrtx := int64(imath.ISqrt128(x))

	alphaY := getAlphaY(x)
	alphaZ := getAlphaZ(x)
	y := imath.InBetween(x13, int64(alphaY*float64(x13)), min64(sqrtx, maxSieveY))
	if y < 1 {
		y = 1
	}
	xdy := x.Div64(y).Int64()
	z := imath.InBetween(y, int64(alphaZ*float64(y)), min64(xdy, maxPiTableZ))

	mu := prime.Moebius(y)
	lpf := prime.LeastPrimeFactors(y)
	primes := prime.Generate(y)
	piY := int64(len(primes)) - 1
	c := min64(piY, phitiny.MaxA)

	sigma := ordinaryLeaves128(x, y, c, lpf, mu)
	piTab := prime.NewPiTable(z)
	ac := acTerm(x, y, z, c, primes, lpf, mu, piTab, threads)
	d := dTerm(x, y, z, c, primes, lpf, mu, threads)
	b := p2(x, y, threads)

	return sigma.Add(ac).Add(d).AddInt64(piY - 1).Sub(b)
}
