package bezier

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/npillmayer/bezlight"
)

// Kind tells the degree of a segment. There are exactly two kinds.
type Kind uint8

// Quadratic segments have 3 control points, cubic segments have 4.
const (
	Quadratic Kind = 2
	Cubic     Kind = 3
)

// Degree returns the polynomial degree of a kind.
func (k Kind) Degree() int {
	return int(k)
}

// Slots returns the number of control points for a kind.
func (k Kind) Slots() int {
	return int(k) + 1
}

func (k Kind) String() string {
	switch k {
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Binomial coefficients C(n,i) for n = 2, 3.
var binomials = [...][]float64{
	Quadratic: {1, 2, 1},
	Cubic:     {1, 3, 3, 1},
}

// nan is returned for geometry queries on incomplete segments.
var nan = bezlight.Pair(cmplx.NaN())

// SamplePoint is a point on a segment at parameter T, together with its
// color. Sample points are produced by Segment.Sample.
type SamplePoint struct {
	T     float64        // curve parameter in [0,1]
	Pos   bezlight.Pair  // position on the curve
	Color bezlight.Color // black, unless lit by a light source
}

func (sp SamplePoint) String() string {
	return fmt.Sprintf("t=%.4f %s %s", sp.T, sp.Pos, sp.Color)
}

// Segment is a Bezier curve of degree 2 or 3.
// Create segments with NewQuadratic, NewCubic or New.
type Segment struct {
	kind    Kind
	pts     [4]ControlPoint // only kind.Slots() are used
	n       int             // number of control points added
	samples []SamplePoint   // re-created by every call to Sample
}

// New creates an empty segment of a given kind. Kinds other than Quadratic
// and Cubic are a programming error and New will panic.
func New(kind Kind) *Segment {
	if kind != Quadratic && kind != Cubic {
		panic(fmt.Sprintf("cannot create segment of %s", kind))
	}
	return &Segment{kind: kind}
}

// NewQuadratic creates an empty quadratic segment.
func NewQuadratic() *Segment {
	return New(Quadratic)
}

// NewCubic creates an empty cubic segment.
func NewCubic() *Segment {
	return New(Cubic)
}

// Kind returns the kind of seg.
func (seg *Segment) Kind() Kind {
	return seg.kind
}

// Degree returns the polynomial degree of seg.
func (seg *Segment) Degree() int {
	return seg.kind.Degree()
}

// N returns the number of control points added so far.
func (seg *Segment) N() int {
	return seg.n
}

// IsFull is a predicate: have all control point slots been filled?
func (seg *Segment) IsFull() bool {
	return seg.n == seg.kind.Slots()
}

// AddControlPoint appends a control point at p, as long as there is a free
// slot. Adding to a full segment is silently ignored. Returns true if p has
// been accepted.
func (seg *Segment) AddControlPoint(p bezlight.Pair) bool {
	if seg.IsFull() {
		tracer().Debugf("%s segment is full, ignoring control point %s", seg.kind, p)
		return false
	}
	seg.pts[seg.n] = NewControlPoint(p)
	seg.n++
	return true
}

// ControlPoint returns the position of control point i.
// It will panic if i is not a filled slot.
func (seg *Segment) ControlPoint(i int) bezlight.Pair {
	seg.check(i)
	return seg.pts[i].Pos
}

// SetControlPoint moves control point i to p, keeping its drag state.
// It will panic if i is not a filled slot.
func (seg *Segment) SetControlPoint(i int, p bezlight.Pair) {
	seg.check(i)
	seg.pts[i].Pos = p
}

// ControlPoints returns the positions of all control points added so far.
func (seg *Segment) ControlPoints() []bezlight.Pair {
	cps := make([]bezlight.Pair, seg.n)
	for i := range cps {
		cps[i] = seg.pts[i].Pos
	}
	return cps
}

// Start returns the first control point, or NaN for an empty segment.
func (seg *Segment) Start() bezlight.Pair {
	if seg.n == 0 {
		return nan
	}
	return seg.pts[0].Pos
}

// End returns the last control point, or NaN for an incomplete segment.
func (seg *Segment) End() bezlight.Pair {
	if !seg.IsFull() {
		return nan
	}
	return seg.pts[seg.n-1].Pos
}

func (seg *Segment) check(i int) {
	if i < 0 || i >= seg.n {
		panic(fmt.Sprintf("control point index %d out of range [0,%d)", i, seg.n))
	}
}

// --- Geometry --------------------------------------------------------------

// Evaluate calculates the point at parameter t, using the Bernstein form
//
//	Σ C(n,i) · (1−t)ⁿ⁻ⁱ · tⁱ · P.i
//
// Evaluate(0) is the start point and Evaluate(1) the end point, exactly.
// Values of t outside [0,1] extrapolate the curve.
func (seg *Segment) Evaluate(t float64) bezlight.Pair {
	if !seg.IsFull() {
		return nan
	}
	n := seg.kind.Degree()
	var x, y float64
	for i := 0; i <= n; i++ {
		b := binomials[seg.kind][i] * math.Pow(1-t, float64(n-i)) * math.Pow(t, float64(i))
		x += b * seg.pts[i].Pos.X()
		y += b * seg.pts[i].Pos.Y()
	}
	return bezlight.P(x, y)
}

// Derivative calculates the first derivative (tangent vector) at t.
func (seg *Segment) Derivative(t float64) bezlight.Pair {
	if !seg.IsFull() {
		return nan
	}
	p := &seg.pts
	switch seg.kind {
	case Quadratic:
		p0, p1, p2 := p[0].Pos, p[1].Pos, p[2].Pos
		return (p1-p0).Scaled(2*(1-t)) + (p2-p1).Scaled(2*t)
	case Cubic:
		p0, p1, p2, p3 := p[0].Pos, p[1].Pos, p[2].Pos, p[3].Pos
		a := p3 - p2.Scaled(3) + p1.Scaled(3) - p0
		b := p2.Scaled(2) - p1.Scaled(4) + p0.Scaled(2)
		c := p1 - p0
		return (a.Scaled(t*t) + b.Scaled(t) + c).Scaled(3)
	}
	panic("unreachable")
}

// Sample calculates count points on the segment, at parameters
// t = 0, 1/(count−1), 2/(count−1), …, 1. The last sample is always at t = 1,
// exactly. Samples are re-created in full on every call; slices returned by
// earlier calls are not touched.
//
// Incomplete segments have no samples. count has to be at least 2; this is
// the caller's responsibility, Sample returns no samples otherwise.
func (seg *Segment) Sample(count int) []SamplePoint {
	seg.samples = nil
	if !seg.IsFull() {
		return nil
	}
	if count < 2 {
		tracer().Errorf("cannot sample %s segment with %d samples", seg.kind, count)
		return nil
	}
	samples := make([]SamplePoint, count)
	inc := 1.0 / float64(count-1)
	for k := range samples {
		t := float64(k) * inc
		if k == count-1 || bezlight.Is1(t) {
			t = 1
		}
		samples[k] = SamplePoint{T: t, Pos: seg.Evaluate(t), Color: bezlight.Black}
	}
	seg.samples = samples
	return seg.Samples()
}

// Samples returns a copy of the samples of the last call to Sample.
func (seg *Segment) Samples() []SamplePoint {
	return slices.Clone(seg.samples)
}

// SampleCount returns the number of samples of the last call to Sample.
func (seg *Segment) SampleCount() int {
	return len(seg.samples)
}

// SampleAt returns sample i of the last call to Sample.
func (seg *Segment) SampleAt(i int) SamplePoint {
	return seg.samples[i]
}

// Colorize sets the color of sample i. It is meant to be called by shading
// passes only, and concurrent calls for different i are safe.
func (seg *Segment) Colorize(i int, c bezlight.Color) {
	seg.samples[i].Color = c
}

// --- Editing ---------------------------------------------------------------

// ControlPointAt returns the index of the first control point whose hit
// square contains p.
func (seg *Segment) ControlPointAt(p bezlight.Pair) (int, bool) {
	for i := 0; i < seg.n; i++ {
		if seg.pts[i].Overlaps(p) {
			return i, true
		}
	}
	return -1, false
}

// Select grabs control point i for dragging, starting at pointer position at.
func (seg *Segment) Select(i int, at bezlight.Pair) {
	seg.check(i)
	seg.pts[i].Select(at)
}

// InverseSelect grabs control point i for dragging in inverse direction.
func (seg *Segment) InverseSelect(i int, at bezlight.Pair) {
	seg.check(i)
	seg.pts[i].InverseSelect(at)
}

// Direction returns the drag direction of control point i.
func (seg *Segment) Direction(i int) DragDir {
	seg.check(i)
	return seg.pts[i].Direction()
}

// Selected returns the indices of all selected control points.
func (seg *Segment) Selected() []int {
	var sel []int
	for i := 0; i < seg.n; i++ {
		if seg.pts[i].IsSelected() {
			sel = append(sel, i)
		}
	}
	return sel
}

// Deselect releases all control points.
func (seg *Segment) Deselect() {
	for i := 0; i < seg.n; i++ {
		seg.pts[i].Deselect()
	}
}

// Drag moves all selected control points, see ControlPoint.Drag.
// Samples are not updated; clients have to call Sample again.
func (seg *Segment) Drag(to bezlight.Pair) {
	for i := 0; i < seg.n; i++ {
		seg.pts[i].Drag(to)
	}
}

func (seg *Segment) String() string {
	return fmt.Sprintf("%s%v", seg.kind, seg.ControlPoints())
}
