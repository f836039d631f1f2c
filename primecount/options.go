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

package main

import (
	"github.com/urfave/cli"

	"github.com/pmath/primecount/imath"
)

// Options holds the parsed command line: one boolean per algorithm mode,
// the shared knobs, and the numeric arguments. It is a local value built
// at parse time and passed down explicitly.
type Options struct {
	Legendre   bool
	Meissel    bool
	Lehmer     bool
	Lmo        bool
	LmoSimple  bool
	Li         bool
	LiInverse  bool
	NthPrime   bool
	Phi        bool
	Primesieve bool
	Threads    int
	Status     bool
	Backup     string
	Test       bool
	Numbers    []imath.Int128
}

// parseOptions copies the flags into an Options value and evaluates the
// positional and --number arguments as exact arithmetic expressions.
func parseOptions(c *cli.Context) (*Options, error) {
	opt := &Options{}
	opt.Legendre = c.Bool("legendre")
	opt.Meissel = c.Bool("meissel")
	opt.Lehmer = c.Bool("lehmer")
	opt.Lmo = c.Bool("lmo")
	opt.LmoSimple = c.Bool("lmo_simple")
	opt.Li = c.Bool("Li")
	opt.LiInverse = c.Bool("Li_inverse")
	opt.NthPrime = c.Bool("nthprime")
	opt.Phi = c.Bool("phi")
	opt.Primesieve = c.Bool("primesieve")
	opt.Threads = c.Int("threads")
	opt.Status = c.Bool("status")
	opt.Backup = c.String("backup")
	opt.Test = c.Bool("test")

	args := append([]string{}, c.Args()...)
	args = append(args, c.StringSlice("number")...)
	for _, arg := range args {
		n, err := parseNumber(arg)
		if err != nil {
			return nil, err
		}
		opt.Numbers = append(opt.Numbers, n)
	}
	return opt, nil
}
