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

// phiCache evaluates phi(x, a) via the recurrence
// phi(x, a) = phi(x, a-1) - phi(x / p_a, a-1), with the PhiTiny tables as
// the base and a pi lookup shortcut once only primes above sqrt(x) remain.
// One cache serves one top-level computation; it is not safe for
// concurrent use.
type phiCache struct {
	primes []int64
	pi     *prime.PiTable
	cache  map[uint64]int64
}

// newPhiCache builds a cache whose primes and pi table cover [0, limit].
func newPhiCache(limit int64) *phiCache {
	if limit < 2 {
		limit = 2
	}
	return &phiCache{
		primes: prime.Generate(limit),
		pi:     prime.NewPiTable(limit),
		cache:  make(map[uint64]int64),
	}
}

const (
	phiCacheMaxX = int64(1) << 44
	phiCacheMaxA = int64(1) << 16
)

func phiCacheKey(x, a int64) (uint64, bool) {
	if x >= phiCacheMaxX || a >= phiCacheMaxA {
		return 0, false
	}
	return uint64(x)<<16 | uint64(a), true
}

// phi returns phi(x, a) for 0 <= a <= len(primes)-1.
func (c *phiCache) phi(x, a int64) int64 {
	if x < 1 {
		return 0
	}
	if a == 0 {
		return x
	}
	if a <= phitiny.MaxA {
		return phitiny.Phi(x, a)
	}
	// Once the first a primes include every prime <= sqrt(x), the
	// survivors are 1 and the primes in (p_a, x].
	if x <= c.pi.Limit() && a >= c.pi.Pi(imath.ISqrt(x)) {
		v := c.pi.Pi(x) - a + 1
		if v < 1 {
			v = 1
		}
		return v
	}
	key, cacheable := phiCacheKey(x, a)
	if cacheable {
		if v, ok := c.cache[key]; ok {
			return v
		}
	}
	sum := phitiny.Phi(x, phitiny.MaxA)
	for i := int64(phitiny.MaxA) + 1; i <= a; i++ {
		sum -= c.phi(x/c.primes[i], i-1)
	}
	if cacheable {
		c.cache[key] = sum
	}
	return sum
}

// piLegendre counts the primes <= x using Legendre's formula. It backs
// the worker anchors of the P2 computation, so it must stay self-contained.
func piLegendre(x int64) int64 {
	if x < 2 {
		return 0
	}
	sq := imath.ISqrt(x)
	c := newPhiCache(sq)
	a := c.pi.Pi(sq)
	return c.phi(x, a) + a - 1
}

// PiLegendre counts the primes <= x using Legendre's formula:
// pi(x) = phi(x, a) + a - 1 with a = pi(sqrt(x)).
func PiLegendre(x int64) (int64, error) {
	if x < 0 {
		return 0, errors.Errorf("pi_legendre: x must be >= 0, got %d", x)
	}
	return piLegendre(x), nil
}

// Phi counts the integers in [1, x] that are coprime to the first a
// primes.
func Phi(x, a int64) (int64, error) {
	if x < 0 {
		return 0, errors.Errorf("phi: x must be >= 0, got %d", x)
	}
	if a < 0 {
		return 0, errors.Errorf("phi: a must be >= 0, got %d", a)
	}
	if x == 0 {
		return 0, nil
	}
	if a <= phitiny.MaxA {
		return phitiny.Phi(x, a), nil
	}
	sq := imath.ISqrt(x)
	c := newPhiCache(sq)
	piSq := c.pi.Pi(sq)
	if a >= piSq {
		// Every prime <= sqrt(x) is removed: the survivors are 1 plus
		// the primes in (p_a, x].
		v := piLegendre(x) - a + 1
		if v < 1 {
			v = 1
		}
		return v, nil
	}
	return c.phi(x, a), nil
}
