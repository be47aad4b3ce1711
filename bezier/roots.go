package bezier

import (
	"github.com/npillmayer/bezlight"
	"github.com/npillmayer/bezlight/polyn"
)

// PowerBasis returns the x- and y-coordinates of seg as polynomials in t,
// i.e. the Bernstein form expanded to powers of t.
// Incomplete segments return nil polynomials.
func (seg *Segment) PowerBasis() (polyn.Polynomial, polyn.Polynomial) {
	if !seg.IsFull() {
		return nil, nil
	}
	var c []bezlight.Pair // c[i] is the coefficient of tⁱ
	p := &seg.pts
	switch seg.kind {
	case Quadratic:
		p0, p1, p2 := p[0].Pos, p[1].Pos, p[2].Pos
		c = []bezlight.Pair{
			p0,
			(p1 - p0).Scaled(2),
			p0 - p1.Scaled(2) + p2,
		}
	case Cubic:
		p0, p1, p2, p3 := p[0].Pos, p[1].Pos, p[2].Pos, p[3].Pos
		c = []bezlight.Pair{
			p0,
			(p1 - p0).Scaled(3),
			p0.Scaled(3) - p1.Scaled(6) + p2.Scaled(3),
			p3 - p2.Scaled(3) + p1.Scaled(3) - p0,
		}
	}
	x := make(polyn.Polynomial, len(c))
	y := make(polyn.Polynomial, len(c))
	for i, ci := range c {
		x[i], y[i] = ci.F()
	}
	return x, y
}

// Line returns the coefficients of the implicit equation A·x + B·y + C = 0
// of the straight line through p and l.
func Line(p, l bezlight.Pair) (A, B, C float64) {
	A = l.Y() - p.Y()
	B = p.X() - l.X()
	C = p.Y()*l.X() - p.X()*l.Y()
	return
}

// LinePolynomial substitutes seg into the equation of the line through p
// and l. The roots of the result are the curve parameters where seg crosses
// the line.
func (seg *Segment) LinePolynomial(p, l bezlight.Pair) polyn.Polynomial {
	x, y := seg.PowerBasis()
	if x == nil {
		return nil
	}
	A, B, C := Line(p, l)
	return x.Scaled(A).Add(y.Scaled(B)).Add(polyn.NewConstantPolynomial(C))
}

// LineRoots returns all real curve parameters t where seg crosses the
// straight line through p and l. Roots are not restricted to [0,1]; this
// is the caller's business.
//
// An empty result means that the line does not cross the curve, or that
// the line is degenerate (p = l). Incomplete segments have no roots.
//
// LineRoots does not alter seg and is safe for concurrent use.
func (seg *Segment) LineRoots(p, l bezlight.Pair) []float64 {
	lp := seg.LinePolynomial(p, l)
	if lp == nil {
		return nil
	}
	if _, ok := lp.IsConstant(); ok {
		tracer().Debugf("line %s–%s is degenerate or misses %s", p, l, seg.kind)
		return nil
	}
	roots := lp.Roots()
	tracer().Debugf("line %s–%s crosses %s at t=%v", p, l, seg.kind, roots)
	return roots
}
