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
	"math/big"

	"github.com/pkg/errors"

	"github.com/pmath/primecount/imath"
)

// Numeric command-line arguments may be arithmetic expressions such as
// 1e15, 2^40 or (1+3)*5. This is a small recursive-descent evaluator over
// + - * / % ^ ( ) and decimal/scientific literals; everything is computed
// exactly in big integers and must fit in 128 bits at the end.

type exprParser struct {
	input string
	pos   int
}

func parseNumber(s string) (imath.Int128, error) {
	p := &exprParser{input: s}
	v, err := p.parseExpr()
	if err != nil {
		return imath.Int128{}, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return imath.Int128{}, errors.Errorf("invalid expression %q at position %d", s, p.pos)
	}
	return bigToInt128(v, s)
}

func bigToInt128(v *big.Int, s string) (imath.Int128, error) {
	if v.BitLen() > 127 {
		return imath.Int128{}, errors.Errorf("%q does not fit in 128 bits", s)
	}
	abs := new(big.Int).Abs(v)
	lo := new(big.Int).And(abs, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi := new(big.Int).Rsh(abs, 64).Uint64()
	r := imath.Int128{Hi: int64(hi), Lo: lo}
	if v.Sign() < 0 {
		r = r.Neg()
	}
	return r, nil
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// parseExpr handles + and -.
func (p *exprParser) parseExpr() (*big.Int, error) {
	v, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			w, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			v.Add(v, w)
		case '-':
			p.pos++
			w, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			v.Sub(v, w)
		default:
			return v, nil
		}
	}
}

// parseTerm handles *, / and %.
func (p *exprParser) parseTerm() (*big.Int, error) {
	v, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			w, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			v.Mul(v, w)
		case '/':
			p.pos++
			w, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			if w.Sign() == 0 {
				return nil, errors.New("division by zero")
			}
			v.Quo(v, w)
		case '%':
			p.pos++
			w, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			if w.Sign() == 0 {
				return nil, errors.New("modulo by zero")
			}
			v.Rem(v, w)
		default:
			return v, nil
		}
	}
}

// parseUnary handles leading signs.
func (p *exprParser) parseUnary() (*big.Int, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return v.Neg(v), nil
	case '+':
		p.pos++
		return p.parseUnary()
	}
	return p.parsePower()
}

// parsePower handles the right-associative ^ operator.
func (p *exprParser) parsePower() (*big.Int, error) {
	v, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek() != '^' {
		return v, nil
	}
	p.pos++
	e, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if e.Sign() < 0 {
		return nil, errors.New("negative exponent")
	}
	if !e.IsInt64() || e.Int64() > 1<<20 {
		return nil, errors.New("exponent too large")
	}
	r := new(big.Int).Exp(v, e, nil)
	if r.BitLen() > 512 {
		return nil, errors.New("value out of range")
	}
	return r, nil
}

// parsePrimary handles parentheses and literals.
func (p *exprParser) parsePrimary() (*big.Int, error) {
	ch := p.peek()
	if ch == '(' {
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, errors.New("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	}
	return p.parseLiteral()
}

// parseLiteral reads a decimal literal with an optional scientific
// exponent, e.g. 1234 or 1e15. Only integer-valued literals are accepted.
func (p *exprParser) parseLiteral() (*big.Int, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return nil, errors.Errorf("expected a number at position %d", p.pos)
	}
	mantissa, ok := new(big.Int).SetString(p.input[start:p.pos], 10)
	if !ok {
		return nil, errors.Errorf("invalid number %q", p.input[start:p.pos])
	}
	if p.pos < len(p.input) && (p.input[p.pos] == 'e' || p.input[p.pos] == 'E') {
		p.pos++
		expStart := p.pos
		for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
			p.pos++
		}
		if p.pos == expStart {
			return nil, errors.New("missing exponent digits")
		}
		exp, ok := new(big.Int).SetString(p.input[expStart:p.pos], 10)
		if !ok || !exp.IsInt64() || exp.Int64() > 100 {
			return nil, errors.Errorf("invalid exponent %q", p.input[expStart:p.pos])
		}
		scale := new(big.Int).Exp(big.NewInt(10), exp, nil)
		mantissa.Mul(mantissa, scale)
	}
	return mantissa, nil
}
