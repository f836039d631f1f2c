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

package prime

import (
	"math"
	"sort"
)

// presieveCap bounds the memory (in bytes) the iterator may retain across
// JumpTo calls for its base-prime table.
const presieveCap = 200 * 1024

// maxIteratorPos is the largest position the iterator will sieve past.
// Next returns 0 beyond it.
const maxIteratorPos = int64(1) << 62

// Iterator yields primes in both directions. It is a value type owning its
// primes buffer and sieve state; a copy shares the immutable base table
// and also the block buffer, which sieving refills in place, so a
// moved-from value must not be reused.
//
// After JumpTo(start, stopHint), Next returns the smallest prime >= start
// and Prev the largest prime < start. Both return 0 when exhausted.
type Iterator struct {
	start     int64
	stopHint  int64
	base      []int64 // 1-indexed, primes <= baseLimit
	baseLimit int64
	block     []int64 // primes in [blockLow, blockHigh)
	blockLow  int64
	blockHigh int64
}

// NewIterator returns an iterator positioned before 2.
func NewIterator() *Iterator {
	return &Iterator{stopHint: maxIteratorPos}
}

// JumpTo resets the logical position while retaining the base-prime table
// as long as it stays under the presieve cap.
func (it *Iterator) JumpTo(start, stopHint int64) {
	it.start = start
	it.stopHint = stopHint
	if it.stopHint <= 0 {
		it.stopHint = maxIteratorPos
	}
	it.block = nil
	it.blockLow, it.blockHigh = 0, 0
	if len(it.base)*8 > presieveCap {
		it.base = nil
		it.baseLimit = 0
	}
}

// Next returns the smallest prime >= the current position, or 0 once the
// supported range is exhausted.
func (it *Iterator) Next() int64 {
	if it.start < 2 {
		it.start = 2
	}
	for {
		if it.start > maxIteratorPos {
			return 0
		}
		if it.start >= it.blockLow && it.start < it.blockHigh {
			i := sort.Search(len(it.block), func(i int) bool {
				return it.block[i] >= it.start
			})
			if i < len(it.block) {
				p := it.block[i]
				it.start = p + 1
				return p
			}
			it.start = it.blockHigh
			continue
		}
		it.generate(it.start)
	}
}

// Prev returns the largest prime < the current position, or 0 below 2.
func (it *Iterator) Prev() int64 {
	target := it.start - 1
	for {
		if target < 2 {
			return 0
		}
		if target >= it.blockLow && target < it.blockHigh {
			i := sort.Search(len(it.block), func(i int) bool {
				return it.block[i] > target
			})
			if i > 0 {
				p := it.block[i-1]
				it.start = p
				return p
			}
			target = it.blockLow - 1
			continue
		}
		it.generateBackward(target)
	}
}

// blockSize picks a segment length proportional to sqrt of the position.
func blockSize(pos int64) int64 {
	size := int64(1) << 16
	for size*size < pos && size < 1<<26 {
		size <<= 1
	}
	return size
}

// ensureBase extends the base-prime table to cover sieving up to hi.
func (it *Iterator) ensureBase(hi int64) {
	need := isqrt64(hi) + 1
	if need <= it.baseLimit {
		return
	}
	// Grow geometrically so repeated small extensions stay cheap, and
	// size for the stop hint when one was given.
	limit := need
	if it.stopHint < maxIteratorPos {
		if h := isqrt64(it.stopHint) + 1; h > limit {
			limit = h
		}
	}
	if l := it.baseLimit * 2; l > limit {
		limit = l
	}
	it.base = Generate(limit)
	it.baseLimit = limit
}

// generate sieves the block starting at lo and stores its primes.
func (it *Iterator) generate(lo int64) {
	if lo < 2 {
		lo = 2
	}
	hi := lo + blockSize(lo)
	it.sieveBlock(lo, hi)
}

// generateBackward sieves the block ending at target (inclusive).
func (it *Iterator) generateBackward(target int64) {
	hi := target + 1
	lo := hi - blockSize(target)
	if lo < 2 {
		lo = 2
	}
	it.sieveBlock(lo, hi)
}

// sieveBlock fills it.block with the primes in [lo, hi).
func (it *Iterator) sieveBlock(lo, hi int64) {
	it.ensureBase(hi)
	n := hi - lo
	marks := make([]byte, n)
	for b := 1; b < len(it.base); b++ {
		p := it.base[b]
		if p*p >= hi {
			break
		}
		start := ((lo + p - 1) / p) * p
		if start < p*p {
			start = p * p
		}
		for m := start; m < hi; m += p {
			marks[m-lo] = 1
		}
	}
	it.block = it.block[:0]
	for i := int64(0); i < n; i++ {
		if marks[i] == 0 {
			it.block = append(it.block, lo+i)
		}
	}
	it.blockLow, it.blockHigh = lo, hi
}

// isqrt64 is a local exact integer square root (avoids importing imath).
func isqrt64(x int64) int64 {
	if x < 1 {
		return 0
	}
	r := int64(math.Sqrt(float64(x)))
	for r > 0 && r*r > x {
		r--
	}
	for (r+1)*(r+1) <= x {
		r++
	}
	return r
}
