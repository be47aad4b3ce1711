// Package polyn is for arithmetic with univariate polynomials of low degree
// and for finding their real roots in closed form.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"bytes"
	"fmt"
	"math"

	"github.com/npillmayer/bezlight"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the polynomials tracer.
func T() tracing.Trace {
	return tracing.Select("bezlight.polyn")
}

// Polynomial is a type for univariate polynomials
//
//	c.0 + c.1 t + c.2 t² + ... c.n tⁿ .
//
// We store the coefficients only. Index i holds the coefficient of tⁱ,
// index 0 is the constant term.
type Polynomial []float64

// New creates a polynomial from coefficients in ascending order of the exponent.
//
// Use it as
//
//	polyn.New(8, 5, 2)
//
// to get
//
//	P(t) = 8 + 5t + 2t²
func New(c ...float64) Polynomial {
	p := make(Polynomial, len(c))
	copy(p, c)
	return p
}

// NewConstantPolynomial creates a Polynomial consisting of just a constant term.
func NewConstantPolynomial(c float64) Polynomial {
	return Polynomial{c}
}

// Coeff gets the coefficient for term tⁱ.
//
// Example:
//
//	p = 1 + 3t²
//
// ⇒
//
//	coeff(2) = 3
func (p Polynomial) Coeff(i int) float64 {
	if i < 0 || i >= len(p) {
		return 0
	}
	return p[i]
}

// Degree returns the exponent of the highest term with a coefficient ≠ 0
// (within ε). The zero polynomial has degree -1.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if !bezlight.Is0(p[i]) {
			return i
		}
	}
	return -1
}

// IsConstant checks wether a Polynomial is a constant, i.e. p = { c }?
// Returns the constant and a flag.
func (p Polynomial) IsConstant() (float64, bool) {
	if p.Degree() <= 0 {
		return p.Coeff(0), true
	}
	return 0, false
}

// Add adds two Polynomials. Returns a new Polynomial.
func (p Polynomial) Add(p2 Polynomial) Polynomial {
	n := max(len(p), len(p2))
	r := make(Polynomial, n)
	for i := range r {
		r[i] = p.Coeff(i) + p2.Coeff(i)
	}
	return r
}

// Scaled returns a new Polynomial with every coefficient multiplied by a.
func (p Polynomial) Scaled(a float64) Polynomial {
	r := make(Polynomial, len(p))
	for i, c := range p {
		r[i] = c * a
	}
	return r
}

// Eval evaluates p at t, using Horner's scheme.
func (p Polynomial) Eval(t float64) float64 {
	v := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		v = v*t + p[i]
	}
	return v
}

// Roots returns the real roots of p. Polynomials up to degree 3 are supported,
// the length of p decides which solver is used (degenerate leading
// coefficients are handled by the solvers). Roots will panic for polynomials
// with more than 4 coefficients.
//
// Roots are not filtered to any interval and are not sorted.
func (p Polynomial) Roots() []float64 {
	switch len(p) {
	case 0, 1:
		return nil
	case 2:
		return SolveLinear(p[1], p[0])
	case 3:
		return SolveQuadratic(p[2], p[1], p[0])
	case 4:
		return SolveCubic(p[3], p[2], p[1], p[0])
	}
	panic(fmt.Sprintf("cannot solve polynomial of degree %d", len(p)-1))
}

// String creates a readable string representation for a Polynomial.
// Coefficients are printed with %g, terms with coefficient 0 are omitted.
func (p Polynomial) String() string {
	var buffer bytes.Buffer
	first := true
	for i, c := range p {
		if bezlight.Is0(c) && (i > 0 || len(p) > 1) {
			continue
		}
		if !first {
			if c < 0 {
				buffer.WriteString(" - ")
			} else {
				buffer.WriteString(" + ")
			}
			c = math.Abs(c)
		}
		first = false
		switch i {
		case 0:
			buffer.WriteString(fmt.Sprintf("%g", c))
		case 1:
			buffer.WriteString(fmt.Sprintf("%gt", c))
		default:
			buffer.WriteString(fmt.Sprintf("%gt^%d", c, i))
		}
	}
	if first {
		return "0"
	}
	return buffer.String()
}
