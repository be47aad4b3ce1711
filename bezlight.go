/*
Package bezlight implements pairs, colors and numeric predicates for a
kernel of Bezier curve geometry and illumination.

Sub-packages build on these types:

	polyn   – closed-form roots of low-degree polynomials
	bezier  – quadratic and cubic Bezier segments, sampling, line intersection
	light   – shading and shadow detection for a single point light
	curves  – simple and composite (C¹-continuous) curves

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezlight

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bezlight'
func tracer() tracing.Trace {
	return tracing.Select("bezlight")
}

// === Numeric Data Type =====================================================

// Epsilon is the absolute tolerance for all floating point comparisons.
// It is a domain constant and must not be changed.
const Epsilon float64 = 1e-9

// Equal is a predicate: is |a - b| ≤ ε ?
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// InUnitInterval is a predicate: is 0 ≤ t ≤ 1, within ε ?
func InUnitInterval(t float64) bool {
	return (t > 0 || Is0(t)) && (t < 1 || Is1(t))
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsNaN is a predicate: does either part of p hold NaN?
func (p Pair) IsNaN() bool {
	return cmplx.IsNaN(p.C())
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs, component-wise within ε.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Dot is the inner product of p and q.
func (p Pair) Dot(q Pair) float64 {
	return p.X()*q.X() + p.Y()*q.Y()
}

// Magnitude is the euclidean length of p.
func (p Pair) Magnitude() float64 {
	return math.Hypot(p.X(), p.Y())
}

// Unit returns p scaled to length 1.
// The unit vector of (0,0) has NaN parts, callers have to be prepared for this.
func (p Pair) Unit() Pair {
	m := p.Magnitude()
	return P(p.X()/m, p.Y()/m)
}

// Perpendicular returns p rotated counter-clockwise by 90°, i.e. (-y,x).
func (p Pair) Perpendicular() Pair {
	return P(-p.Y(), p.X())
}

// Distance returns the euclidean distance between p and q.
func (p Pair) Distance(q Pair) float64 {
	return (q - p).Magnitude()
}

// Reflected returns the point reflection of p through center c, i.e. 2c - p.
func (p Pair) Reflected(c Pair) Pair {
	return c + (c - p)
}

// Between is a predicate: does r lie on the straight line segment from p to q?
// The test compares |pq| with |pr|+|rq| within ε.
func Between(p, r, q Pair) bool {
	return Equal(p.Distance(q), p.Distance(r)+r.Distance(q))
}

// === Colors ================================================================

// Color is an RGB triple with components in [0,1].
type Color struct {
	R, G, B float64
}

// Black is the color of shadowed samples and the default color of samples
// which have not been lit.
var Black = Color{}

// Gray creates a gray level color, clamping the intensity to [0,1].
func Gray(intensity float64) Color {
	if intensity < 0 || math.IsNaN(intensity) {
		intensity = 0
	} else if intensity > 1 {
		intensity = 1
	}
	return Color{R: intensity, G: intensity, B: intensity}
}

// IsBlack is a predicate: is c black?
func (c Color) IsBlack() bool {
	return c == Black
}

// RGBA makes Color an image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	conv := func(x float64) uint32 {
		return uint32(math.Round(x * 0xffff))
	}
	return conv(c.R), conv(c.G), conv(c.B), 0xffff
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%.3f,%.3f,%.3f)", c.R, c.G, c.B)
}
