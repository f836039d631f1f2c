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

// Package phitiny serves phi(x, a) for a <= MaxA from precomputed tables.
// The integers coprime to the first a primes repeat with period
// P = p1*...*pa, hence phi(x, a) = (x/P)*phi(P, a) + phi(x mod P, a) with
// phi(., a) tabulated up to P. Tables are built once per process and are
// safe for concurrent readers afterwards.
package phitiny

import (
	"sync"

	"github.com/pmath/primecount/imath"
)

// MaxA is the largest a the tables cover.
const MaxA = 7

var tinyPrimes = [MaxA + 1]int64{0, 2, 3, 5, 7, 11, 13, 17}

var (
	buildOnce  sync.Once
	primorials [MaxA + 1]int64
	totients   [MaxA + 1]int64 // phi(P, a)
	tables     [MaxA + 1][]int32
)

func build() {
	primorials[0] = 1
	totients[0] = 1
	for a := 1; a <= MaxA; a++ {
		p := tinyPrimes[a]
		P := primorials[a-1] * p
		primorials[a] = P
		coprime := make([]byte, P)
		for i := int64(0); i < P; i++ {
			coprime[i] = 1
		}
		for b := 1; b <= a; b++ {
			for m := int64(0); m < P; m += tinyPrimes[b] {
				coprime[m] = 0
			}
		}
		t := make([]int32, P)
		count := int32(0)
		for i := int64(1); i < P; i++ {
			count += int32(coprime[i])
			t[i] = count
		}
		tables[a] = t
		totients[a] = int64(count)
	}
}

// Primorial returns p1*...*pa for a <= MaxA.
func Primorial(a int64) int64 {
	buildOnce.Do(build)
	return primorials[a]
}

// Prime returns the a-th tiny prime for 1 <= a <= MaxA.
func Prime(a int64) int64 {
	return tinyPrimes[a]
}

// Phi returns phi(x, a), the count of integers in [1, x] coprime to the
// first a primes. a must be in [0, MaxA]; x < 0 is undefined.
func Phi(x, a int64) int64 {
	if x < 1 {
		return 0
	}
	if a == 0 {
		return x
	}
	if a > MaxA {
		panic("phitiny: a > MaxA")
	}
	buildOnce.Do(build)
	P := primorials[a]
	return (x/P)*totients[a] + int64(tables[a][x%P])
}

// Phi128 is Phi for 128-bit x. The result can exceed 64 bits.
func Phi128(x imath.Int128, a int64) imath.Int128 {
	if x.Sign() < 1 {
		return imath.Int128{}
	}
	if a == 0 {
		return x
	}
	if a > MaxA {
		panic("phitiny: a > MaxA")
	}
	buildOnce.Do(build)
	P := primorials[a]
	q := x.Div64(P)
	r := x.Sub(q.MulInt64(P)).Int64()
	return q.MulInt64(totients[a]).AddInt64(int64(tables[a][r]))
}
