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

// Package sieve implements the ordinary-sieve engine of the special-leaf
// computation: a byte sieve over one segment [low, low+size) paired with a
// Fenwick counter of the surviving positions, so that crossing out a
// multiple costs O(log size) and counting survivors below a bound costs
// O(log size). All deletions go through CrossOff, which writes the sieve
// bit and updates the tree in one place; the two therefore agree at every
// observable moment.
package sieve

// Sieve is one worker's reusable segment buffer. Not safe for concurrent
// use; every worker owns its own.
type Sieve struct {
	low  int64
	high int64
	n    int64 // current segment length
	set  []byte
	tree []int32
}

// New returns a sieve whose buffers hold segments up to maxSize.
func New(maxSize int64) *Sieve {
	return &Sieve{
		set:  make([]byte, maxSize),
		tree: make([]int32, maxSize+1),
	}
}

// Init re-initializes the buffers for the segment [low, high): every
// position survives and the Fenwick tree holds the all-ones prefix sums.
// high-low must not exceed the size passed to New.
func (s *Sieve) Init(low, high int64) {
	n := high - low
	if n < 0 || n > int64(len(s.set)) {
		panic("sieve: segment exceeds buffer")
	}
	s.low = low
	s.high = high
	s.n = n
	for i := int64(0); i < n; i++ {
		s.set[i] = 1
	}
	// For an all-ones array the Fenwick node value is its subtree size.
	for i := int64(1); i <= n; i++ {
		s.tree[i] = int32(i & -i)
	}
}

// Low returns the first position of the current segment.
func (s *Sieve) Low() int64 {
	return s.low
}

// High returns the position one past the current segment.
func (s *Sieve) High() int64 {
	return s.high
}

// CrossOff removes the absolute position pos from the segment. Positions
// outside [low, high) and positions already removed are ignored, so
// re-crossing a composite is harmless.
func (s *Sieve) CrossOff(pos int64) {
	if pos < s.low || pos >= s.high {
		return
	}
	i := pos - s.low
	if s.set[i] == 0 {
		return
	}
	s.set[i] = 0
	for j := i + 1; j <= s.n; j += j & -j {
		s.tree[j]--
	}
}

// Count returns the number of surviving positions in [low, pos]. pos must
// lie inside the current segment.
func (s *Sieve) Count(pos int64) int64 {
	sum := int64(0)
	for j := pos - s.low + 1; j > 0; j -= j & -j {
		sum += int64(s.tree[j])
	}
	return sum
}

// CountAll returns the number of surviving positions in the segment.
func (s *Sieve) CountAll() int64 {
	if s.n == 0 {
		return 0
	}
	return s.Count(s.high - 1)
}
