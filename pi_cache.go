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
	"sync"

	"github.com/pkg/errors"
	"github.com/pmath/primecount/imath"
	"github.com/pmath/primecount/prime"
)

// piCacheMaxX bounds the process-wide lookup table; beyond it the
// sieve-backed algorithms are the right tool.
const piCacheMaxX = int64(1) << 32

var (
	piCacheMu    sync.Mutex
	piCacheTable *prime.PiTable
)

// PiCache answers pi(x) from a process-wide packed lookup table that is
// grown on demand. Intended for small x and for cross-checking the
// sieve-backed algorithms.
func PiCache(x int64) (int64, error) {
	if x < 0 {
		return 0, errors.Errorf("pi_cache: x must be >= 0, got %d", x)
	}
	if x >= piCacheMaxX {
		return 0, errors.Errorf("pi_cache: x=%d exceeds the table limit %d", x, piCacheMaxX)
	}
	return piCacheLookup(x), nil
}

func piCacheLookup(x int64) int64 {
	if x < 2 {
		return 0
	}
	piCacheMu.Lock()
	defer piCacheMu.Unlock()
	if piCacheTable == nil || piCacheTable.Limit() < x {
		limit := imath.NextPow2(x)
		if limit < 1<<16 {
			limit = 1 << 16
		}
		piCacheTable = prime.NewPiTable(limit)
	}
	return piCacheTable.Pi(x)
}
