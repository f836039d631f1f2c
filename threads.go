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
	"runtime"
	"sync/atomic"
)

var numThreads int64 // 0 = hardware concurrency

// SetNumThreads overrides the worker count used by the parallel
// algorithms. n < 1 restores the default.
func SetNumThreads(n int) {
	if n < 1 {
		n = 0
	}
	atomic.StoreInt64(&numThreads, int64(n))
}

// GetNumThreads returns the configured worker count, defaulting to the
// hardware concurrency.
func GetNumThreads() int {
	if v := atomic.LoadInt64(&numThreads); v > 0 {
		return int(v)
	}
	return runtime.NumCPU()
}

// idealNumThreads caps threads so every worker gets at least perThread
// units of work.
func idealNumThreads(threads int, work, perThread int64) int {
	if perThread < 1 {
		perThread = 1
	}
	max := work / perThread
	if max < 1 {
		max = 1
	}
	if int64(threads) > max {
		return int(max)
	}
	if threads < 1 {
		return 1
	}
	return threads
}
