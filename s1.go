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
	"github.com/pmath/primecount/imath"
	"github.com/pmath/primecount/phitiny"
)

// ordinaryLeaves computes the S1 term: the squarefree n <= y whose prime
// factors all exceed the c-th prime contribute mu(n) * phi(x/n, c), with
// phi served from the PhiTiny tables.
func ordinaryLeaves(x, y, c int64, lpf, mu []int32) int64 {
	pc := int64(0)
	if c > 0 {
		pc = phitiny.Prime(c)
	}
	sum := int64(0)
	for n := int64(1); n <= y; n++ {
		if mu[n] != 0 && int64(lpf[n]) > pc {
			sum += int64(mu[n]) * phitiny.Phi(x/n, c)
		}
	}
	return sum
}

// ordinaryLeaves128 is ordinaryLeaves for 128-bit x; the partial sums can
// exceed 64 bits.
func ordinaryLeaves128(x imath.Int128, y, c int64, lpf, mu []int32) imath.Int128 {
	pc := int64(0)
	if c > 0 {
		pc = phitiny.Prime(c)
	}
	sum := imath.Int128{}
	for n := int64(1); n <= y; n++ {
		if mu[n] != 0 && int64(lpf[n]) > pc {
			term := phitiny.Phi128(x.Div64(n), c)
			if mu[n] > 0 {
				sum = sum.Add(term)
			} else {
				sum = sum.Sub(term)
			}
		}
	}
	return sum
}
