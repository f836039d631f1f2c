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

// Package prime generates the small-prime tables consumed by the
// combinatorial prime counting algorithms: the primes themselves, the
// least-prime-factor and Moebius tables, packed pi(n) lookup tables and a
// bidirectional prime iterator.
package prime

import (
	"math"
	"sort"
)

// LpfInfinity is the least-prime-factor sentinel stored for n = 1. It is
// greater than any prime that fits the tables.
const LpfInfinity = math.MaxInt32

// sieveTo returns a byte sieve s with s[n] != 0 iff n is prime, for n <= y.
func sieveTo(y int64) []byte {
	if y < 0 {
		y = 0
	}
	s := make([]byte, y+1)
	for i := int64(2); i <= y; i++ {
		s[i] = 1
	}
	for i := int64(2); i*i <= y; i++ {
		if s[i] != 0 {
			for j := i * i; j <= y; j += i {
				s[j] = 0
			}
		}
	}
	return s
}

// Generate returns all primes <= y as a 1-indexed table: primes[0] is an
// unused 0 sentinel so primes[b] is the b-th prime. The table is immutable
// after construction.
func Generate(y int64) []int64 {
	s := sieveTo(y)
	estimate := int64(8)
	if y > 16 {
		estimate = int64(float64(y)/math.Log(float64(y))*1.1) + 8
	}
	primes := make([]int64, 1, estimate)
	for n := int64(2); n <= y; n++ {
		if s[n] != 0 {
			primes = append(primes, n)
		}
	}
	return primes
}

// LeastPrimeFactors returns lpf[0..y] with lpf[n] the smallest prime
// dividing n and lpf[1] = LpfInfinity.
func LeastPrimeFactors(y int64) []int32 {
	lpf := make([]int32, y+1)
	if y >= 1 {
		lpf[1] = LpfInfinity
	}
	for i := int64(2); i <= y; i++ {
		if lpf[i] == 0 {
			for j := i; j <= y; j += i {
				if lpf[j] == 0 {
					lpf[j] = int32(i)
				}
			}
		}
	}
	return lpf
}

// Moebius returns mu[0..y] with mu[n] in {-1, 0, +1}.
func Moebius(y int64) []int32 {
	mu := make([]int32, y+1)
	for i := int64(1); i <= y; i++ {
		mu[i] = 1
	}
	// Flip the sign once per prime divisor, then zero out the multiples
	// of prime squares.
	isComposite := make([]byte, y+1)
	for i := int64(2); i <= y; i++ {
		if isComposite[i] == 0 {
			for j := i; j <= y; j += i {
				if j > i {
					isComposite[j] = 1
				}
				mu[j] = -mu[j]
			}
			ii := i * i
			for j := ii; j <= y; j += ii {
				mu[j] = 0
			}
		}
	}
	return mu
}

// PiBsearch returns the number of primes <= x by binary search over a
// 1-indexed primes table.
func PiBsearch(primes []int64, x int64) int64 {
	// primes[1..len-1] is sorted; find the first index with primes[i] > x.
	i := sort.Search(len(primes)-1, func(i int) bool {
		return primes[i+1] > x
	})
	return int64(i)
}
