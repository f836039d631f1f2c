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
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/pmath/primecount"
	"github.com/pmath/primecount/imath"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		// Enable timestamps + file:line to simplify debugging self-built binaries.
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "primecount"
	myApp.Usage = "count the primes below x"
	myApp.ArgsUsage = "x [a]"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "gourdon, g",
			Usage: "count primes with the two-parameter decomposition (default)",
		},
		cli.BoolFlag{
			Name:  "legendre",
			Usage: "count primes with Legendre's formula",
		},
		cli.BoolFlag{
			Name:  "lehmer, l",
			Usage: "count primes with Lehmer's formula",
		},
		cli.BoolFlag{
			Name:  "lmo",
			Usage: "count primes with the Lagarias-Miller-Odlyzko algorithm",
		},
		cli.BoolFlag{
			Name:  "lmo_simple",
			Usage: "count primes with the unsegmented Lagarias-Miller-Odlyzko algorithm",
		},
		cli.BoolFlag{
			Name:  "meissel, m",
			Usage: "count primes with Meissel's formula",
		},
		cli.BoolFlag{
			Name:  "Li",
			Usage: "approximate pi(x) with the logarithmic integral",
		},
		cli.BoolFlag{
			Name:  "Li_inverse",
			Usage: "approximate the x-th prime with the inverse logarithmic integral",
		},
		cli.BoolFlag{
			Name:  "nthprime, n",
			Usage: "calculate the x-th prime",
		},
		cli.BoolFlag{
			Name:  "phi",
			Usage: "phi(x, a): count the numbers <= x coprime to the first a primes",
		},
		cli.BoolFlag{
			Name:  "primesieve, p",
			Usage: "count primes with a plain segmented sieve",
		},
		cli.IntFlag{
			Name:  "threads, t",
			Value: 0,
			Usage: "number of worker threads, 0 = all CPU cores",
		},
		cli.StringSliceFlag{
			Name:  "number",
			Usage: "numeric argument given as a flag; arithmetic expressions are evaluated exactly",
		},
		cli.BoolFlag{
			Name:  "status, s",
			Usage: "print the progress of the computation to stderr",
		},
		cli.StringFlag{
			Name:  "backup",
			Value: "",
			Usage: "append the result to a snappy-compressed journal file",
		},
		cli.BoolFlag{
			Name:  "test",
			Usage: "run the self-tests and exit",
		},
	}
	myApp.Action = run
	myApp.OnUsageError = func(c *cli.Context, err error, _ bool) error {
		// Unknown or malformed options: show the help text and fail.
		cli.ShowAppHelp(c)
		return err
	}
	if err := myApp.Run(os.Args); err != nil {
		log.Printf("%+v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	opt, err := parseOptions(c)
	if err != nil {
		cli.ShowAppHelp(c)
		return cli.NewExitError(err.Error(), 1)
	}

	if opt.Threads > 0 {
		primecount.SetNumThreads(opt.Threads)
	}
	primecount.SetPrintStatus(opt.Status)

	if opt.Test {
		return selfTest()
	}
	if len(opt.Numbers) == 0 {
		cli.ShowAppHelp(c)
		return cli.NewExitError("missing numeric argument x", 1)
	}

	x := opt.Numbers[0]
	threads := primecount.GetNumThreads()
	if opt.Status {
		log.Println("version:", VERSION)
		log.Println("threads:", threads)
		log.Println("x:", x)
	}

	start := time.Now()
	result, algorithm, err := dispatch(opt)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	elapsed := time.Since(start)

	fmt.Println(result)

	if opt.Backup != "" {
		rec := journalRecord{
			X:         x.String(),
			Result:    result.String(),
			Algorithm: algorithm,
			Threads:   threads,
			Seconds:   elapsed.Seconds(),
			Date:      start.Format(time.RFC3339),
		}
		if err := appendJournal(opt.Backup, rec); err != nil {
			log.Println("backup:", err)
		}
	}
	return nil
}

// dispatch runs the selected algorithm and names it for the journal.
func dispatch(opt *Options) (imath.Int128, string, error) {
	threads := primecount.GetNumThreads()
	x := opt.Numbers[0]

	switch {
	case opt.Legendre:
		x64, err := toInt64(x)
		if err != nil {
			return imath.Int128{}, "", err
		}
		v, err := primecount.PiLegendre(x64)
		return imath.Int128FromInt64(v), "legendre", err

	case opt.Meissel:
		x64, err := toInt64(x)
		if err != nil {
			return imath.Int128{}, "", err
		}
		v, err := primecount.PiMeissel(x64, threads)
		return imath.Int128FromInt64(v), "meissel", err

	case opt.Lehmer:
		x64, err := toInt64(x)
		if err != nil {
			return imath.Int128{}, "", err
		}
		v, err := primecount.PiLehmer(x64)
		return imath.Int128FromInt64(v), "lehmer", err

	case opt.Lmo:
		x64, err := toInt64(x)
		if err != nil {
			return imath.Int128{}, "", err
		}
		v, err := primecount.PiLmo(x64, threads)
		return imath.Int128FromInt64(v), "lmo", err

	case opt.LmoSimple:
		x64, err := toInt64(x)
		if err != nil {
			return imath.Int128{}, "", err
		}
		v, err := primecount.PiLmoSimple(x64)
		return imath.Int128FromInt64(v), "lmo_simple", err

	case opt.Li:
		x64, err := toInt64(x)
		if err != nil {
			return imath.Int128{}, "", err
		}
		return imath.Int128FromInt64(primecount.Li(x64)), "Li", nil

	case opt.LiInverse:
		x64, err := toInt64(x)
		if err != nil {
			return imath.Int128{}, "", err
		}
		return imath.Int128FromInt64(primecount.LiInverse(x64)), "Li_inverse", nil

	case opt.NthPrime:
		n, err := toInt64(x)
		if err != nil {
			return imath.Int128{}, "", err
		}
		v, err := primecount.NthPrime(n)
		return imath.Int128FromInt64(v), "nthprime", err

	case opt.Phi:
		if len(opt.Numbers) < 2 {
			return imath.Int128{}, "", errors.New("phi requires two arguments: x and a")
		}
		x64, err := toInt64(x)
		if err != nil {
			return imath.Int128{}, "", err
		}
		a, err := toInt64(opt.Numbers[1])
		if err != nil {
			return imath.Int128{}, "", err
		}
		v, err := primecount.Phi(x64, a)
		return imath.Int128FromInt64(v), "phi", err

	case opt.Primesieve:
		x64, err := toInt64(x)
		if err != nil {
			return imath.Int128{}, "", err
		}
		return imath.Int128FromInt64(primecount.CountPrimes(x64)), "primesieve", nil

	default:
		if x.IsInt64() {
			v, err := primecount.PiGourdon64(x.Int64(), threads)
			return imath.Int128FromInt64(v), "gourdon", err
		}
		v, err := primecount.PiGourdon128(x, threads)
		return v, "gourdon", err
	}
}

func toInt64(x imath.Int128) (int64, error) {
	if !x.IsInt64() {
		return 0, errors.Errorf("%s does not fit the 64-bit range of this mode", x)
	}
	return x.Int64(), nil
}
