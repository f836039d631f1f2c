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
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

var printStatusFlag int32

// SetPrintStatus toggles progress printing of the long-running sieve
// phases to stderr.
func SetPrintStatus(enabled bool) {
	v := int32(0)
	if enabled {
		v = 1
	}
	atomic.StoreInt32(&printStatusFlag, v)
}

// status prints the progress of a segmented traversal, at most once per
// 0.1 seconds.
type status struct {
	enabled bool
	last    time.Time
}

func newStatus() *status {
	return &status{enabled: atomic.LoadInt32(&printStatusFlag) != 0}
}

func (st *status) print(low, limit int64) {
	if !st.enabled {
		return
	}
	now := time.Now()
	if now.Sub(st.last) < 100*time.Millisecond {
		return
	}
	st.last = now
	if low > limit {
		low = limit
	}
	percent := 100.0
	if limit > 0 {
		percent = 100 * float64(low) / float64(limit)
	}
	fmt.Fprintf(os.Stderr, "\rStatus: %.0f%%", percent)
}

func (st *status) done() {
	if st.enabled {
		fmt.Fprintf(os.Stderr, "\rStatus: 100%%\n")
	}
}
