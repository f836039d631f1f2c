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

import "math/bits"

// PiTable answers pi(n) for n <= Limit() in O(1) from a bitmap packed 64
// numbers per word with a running count per word. Immutable after
// construction and safe for concurrent readers.
type PiTable struct {
	limit  int64
	counts []int64
	words  []uint64
}

// NewPiTable builds a pi lookup table for all n <= limit.
func NewPiTable(limit int64) *PiTable {
	s := sieveTo(limit)
	n := limit/64 + 1
	t := &PiTable{
		limit:  limit,
		counts: make([]int64, n),
		words:  make([]uint64, n),
	}
	count := int64(0)
	for w := int64(0); w < n; w++ {
		t.counts[w] = count
		var bitsW uint64
		base := w * 64
		for b := int64(0); b < 64; b++ {
			v := base + b
			if v > limit {
				break
			}
			if s[v] != 0 {
				bitsW |= 1 << uint(b)
			}
		}
		t.words[w] = bitsW
		count += int64(bits.OnesCount64(bitsW))
	}
	return t
}

// Limit returns the largest n the table can answer.
func (t *PiTable) Limit() int64 {
	return t.limit
}

// Pi returns the number of primes <= n. n must be <= Limit().
func (t *PiTable) Pi(n int64) int64 {
	if n < 2 {
		return 0
	}
	w := n / 64
	b := uint(n % 64)
	mask := ^uint64(0) >> (63 - b)
	return t.counts[w] + int64(bits.OnesCount64(t.words[w]&mask))
}
