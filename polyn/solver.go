package polyn

import (
	"math"

	"github.com/npillmayer/bezlight"
)

const twoPi = 2.0 * math.Pi
const fourPi = 4.0 * math.Pi

// SolveLinear finds the root of b·t + c = 0.
// For b = 0 (within ε) there is no single root and the result is empty.
func SolveLinear(b, c float64) []float64 {
	if bezlight.Is0(b) {
		return nil
	}
	return finite(-c / b)
}

// SolveQuadratic finds the real roots of a·t² + b·t + c = 0 by the
// quadratic formula. Both roots are returned, even if they coincide.
// A negative discriminant yields no roots; this is not an error.
//
// If a vanishes (within ε) the equation is solved as a linear one.
func SolveQuadratic(a, b, c float64) []float64 {
	if bezlight.Is0(a) {
		T().Debugf("quadratic degenerates to linear equation")
		return SolveLinear(b, c)
	}
	sq := math.Sqrt(b*b - 4*a*c)
	root1 := (-b + sq) / (2 * a)
	root2 := (-b - sq) / (2 * a)
	if math.IsNaN(root1) || math.IsNaN(root2) {
		return nil
	}
	return []float64{root1, root2}
}

// SolveCubic finds the real roots of a3·t³ + a2·t² + a1·t + a0 = 0.
//
// The equation is normalized to a monic cubic and solved with Cardano's
// method, see SolveMonicCubic. If a3 vanishes (within ε), normalization is
// impossible and the equation is solved as a quadratic one.
func SolveCubic(a3, a2, a1, a0 float64) []float64 {
	if bezlight.Is0(a3) {
		T().Debugf("cubic degenerates to quadratic equation")
		return SolveQuadratic(a2, a1, a0)
	}
	return SolveMonicCubic(a2/a3, a1/a3, a0/a3)
}

// SolveMonicCubic finds the real roots of t³ + a·t² + b·t + c = 0.
//
// With
//
//	Q = (3b − a²) / 9,  R = (9ab − 27c − 2a³) / 54,  Δ = Q³ + R²
//
// the branches are:
//
//	Δ > 0:  one real root    S + T − a/3, where S = ∛(R+√Δ), T = ∛(R−√Δ)
//	Δ < 0:  three real roots 2√(−Q)·cos((θ+2πk)/3) − a/3, θ = acos(R/√(−Q³))
//	Δ = 0:  repeated roots   2∛R − a/3 and ∛R − a/3
func SolveMonicCubic(a, b, c float64) []float64 {
	Q := (3*b - a*a) / 9.0
	R := (9*a*b - 27*c - 2*a*a*a) / 54.0
	D := Q*Q*Q + R*R
	a3 := a / 3.0
	var roots []float64
	if D > 0.0 { // one real root
		sqrtD := math.Sqrt(D)
		S := math.Cbrt(R + sqrtD)
		T := math.Cbrt(R - sqrtD)
		roots = []float64{S + T - a3}
	} else if D < 0.0 { // three distinct real roots
		theta := math.Acos(clamp(R / math.Sqrt(-Q*Q*Q)))
		sqrtQ := math.Sqrt(-Q)
		roots = []float64{
			2.0*sqrtQ*math.Cos(theta/3.0) - a3,
			2.0*sqrtQ*math.Cos((theta+twoPi)/3.0) - a3,
			2.0*sqrtQ*math.Cos((theta+fourPi)/3.0) - a3,
		}
	} else { // three real roots, at least two equal
		cbrtR := math.Cbrt(R)
		roots = []float64{2*cbrtR - a3, cbrtR - a3}
	}
	return finite(roots...)
}

// acos of values slightly outside [-1,1] due to rounding would be NaN.
func clamp(x float64) float64 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}

// finite drops NaN and Inf values.
func finite(xs ...float64) []float64 {
	r := xs[:0]
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			r = append(r, x)
		}
	}
	if len(r) == 0 {
		return nil
	}
	return r
}
