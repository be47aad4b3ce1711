package bezier

import (
	"math"
	"testing"

	"github.com/npillmayer/bezlight"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quadratic() *Segment {
	seg := NewQuadratic()
	seg.AddControlPoint(bezlight.P(0, 0))
	seg.AddControlPoint(bezlight.P(50, 50))
	seg.AddControlPoint(bezlight.P(100, 0))
	return seg
}

func cubic() *Segment {
	seg := NewCubic()
	seg.AddControlPoint(bezlight.P(10, 100))
	seg.AddControlPoint(bezlight.P(40, 20))
	seg.AddControlPoint(bezlight.P(120, 30))
	seg.AddControlPoint(bezlight.P(150, 110))
	return seg
}

func TestAddControlPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewQuadratic()
	assert.Equal(t, 3, seg.Kind().Slots())
	assert.Equal(t, 2, seg.Degree())
	seg.AddControlPoint(bezlight.P(0, 0))
	seg.AddControlPoint(bezlight.P(50, 50))
	assert.Equal(t, 2, seg.N())
	assert.False(t, seg.IsFull())
	assert.True(t, seg.AddControlPoint(bezlight.P(100, 0)))
	assert.True(t, seg.IsFull())
	assert.False(t, seg.AddControlPoint(bezlight.P(200, 0)))
	assert.Equal(t, 3, seg.N())
	assert.Equal(t, []bezlight.Pair{0, 50 + 50i, 100}, seg.ControlPoints())
	assert.Panics(t, func() { seg.ControlPoint(3) })
	assert.Panics(t, func() { New(Kind(4)) })
}

func TestIncompleteSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewCubic()
	seg.AddControlPoint(bezlight.P(0, 0))
	seg.AddControlPoint(bezlight.P(1, 1))
	assert.Empty(t, seg.Sample(10))
	assert.Empty(t, seg.LineRoots(bezlight.P(0, 0), bezlight.P(5, 5)))
	assert.True(t, seg.Evaluate(0.5).IsNaN())
	assert.True(t, seg.Derivative(0.5).IsNaN())
	assert.True(t, seg.End().IsNaN())
}

func TestEndpointInterpolation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, seg := range []*Segment{quadratic(), cubic()} {
		assert.True(t, seg.Evaluate(0).Equal(seg.Start()), "%s: start", seg)
		assert.True(t, seg.Evaluate(1).Equal(seg.End()), "%s: end", seg)
	}
	assert.True(t, quadratic().Evaluate(0.5).Equal(bezlight.P(50, 25)))
}

func TestDerivative(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	const h = 1e-6
	for _, seg := range []*Segment{quadratic(), cubic()} {
		for _, x := range []float64{0.1, 0.25, 0.5, 0.9} {
			num := (seg.Evaluate(x+h) - seg.Evaluate(x-h)).Scaled(1 / (2 * h))
			d := seg.Derivative(x)
			assert.InDelta(t, num.X(), d.X(), 1e-4, "%s at %g", seg, x)
			assert.InDelta(t, num.Y(), d.Y(), 1e-4, "%s at %g", seg, x)
		}
	}
	// end tangents point along the control polygon
	seg := cubic()
	assert.True(t, seg.Derivative(0).Equal((seg.ControlPoint(1) - seg.ControlPoint(0)).Scaled(3)))
	assert.True(t, seg.Derivative(1).Equal((seg.ControlPoint(3) - seg.ControlPoint(2)).Scaled(3)))
}

func TestSampleCount(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := cubic()
	for n := 2; n <= 1000; n++ {
		samples := seg.Sample(n)
		require.Len(t, samples, n)
		require.Equal(t, 0.0, samples[0].T)
		require.Equal(t, 1.0, samples[n-1].T)
		require.True(t, samples[n-1].Pos.Equal(seg.End()))
	}
	assert.Empty(t, seg.Sample(1))
	assert.Equal(t, 0, seg.SampleCount())
}

func TestSamplesAreFresh(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := quadratic()
	first := seg.Sample(5)
	seg.SetControlPoint(1, bezlight.P(50, -50))
	second := seg.Sample(5)
	assert.True(t, first[2].Pos.Equal(bezlight.P(50, 25)))
	assert.True(t, second[2].Pos.Equal(bezlight.P(50, -25)))
	for i, sp := range second {
		assert.Equal(t, float64(i)/4, sp.T)
		assert.True(t, sp.Color.IsBlack())
	}
}

func TestRootPlausibility(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := quadratic()
	roots := seg.LineRoots(bezlight.P(0, 0), bezlight.P(10, 10))
	require.NotEmpty(t, roots)
	for _, r := range roots {
		assert.InDelta(t, 0.0, r, bezlight.Epsilon)
	}
}

func TestQuadraticRoots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := quadratic()
	// horizontal line y = 10 crosses the arch twice
	roots := seg.LineRoots(bezlight.P(-10, 10), bezlight.P(200, 10))
	require.Len(t, roots, 2)
	for _, r := range roots {
		assert.InDelta(t, 10.0, seg.Evaluate(r).Y(), 1e-9)
	}
	// y = 100 is above the apex
	assert.Empty(t, seg.LineRoots(bezlight.P(0, 100), bezlight.P(10, 100)))
	// degenerate line
	assert.Empty(t, seg.LineRoots(bezlight.P(0, 100), bezlight.P(0, 100)))
}

func TestCubicRoots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := cubic()
	p, l := bezlight.P(0, 60), bezlight.P(200, 60)
	roots := seg.LineRoots(p, l)
	inside := 0
	for _, r := range roots {
		assert.InDelta(t, 60.0, seg.Evaluate(r).Y(), 1e-6)
		if bezlight.InUnitInterval(r) {
			inside++
		}
	}
	assert.Equal(t, 2, inside)
	// S-shaped curve crossed three times by the x-axis
	s := NewCubic()
	s.AddControlPoint(bezlight.P(0, -10))
	s.AddControlPoint(bezlight.P(30, 40))
	s.AddControlPoint(bezlight.P(60, -40))
	s.AddControlPoint(bezlight.P(90, 10))
	roots = s.LineRoots(bezlight.P(-5, 0), bezlight.P(100, 0))
	require.Len(t, roots, 3)
	for _, r := range roots {
		assert.True(t, bezlight.InUnitInterval(r))
		assert.InDelta(t, 0.0, s.Evaluate(r).Y(), 1e-6)
	}
}

func TestDegenerateCubic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// a cubic with a vanishing t³ term along y: the line polynomial has
	// leading coefficient 0 and is solved as a quadratic
	seg := NewCubic()
	seg.AddControlPoint(bezlight.P(0, 0))
	seg.AddControlPoint(bezlight.P(10, 20))
	seg.AddControlPoint(bezlight.P(20, 20))
	seg.AddControlPoint(bezlight.P(30, 0))
	x, y := seg.PowerBasis()
	assert.InDelta(t, 0.0, x.Coeff(3), 1e-9)
	assert.InDelta(t, 0.0, x.Coeff(2), 1e-9)
	assert.InDelta(t, 0.0, y.Coeff(3), 1e-9)
	roots := seg.LineRoots(bezlight.P(-5, 10), bezlight.P(50, 10))
	require.Len(t, roots, 2)
	for _, r := range roots {
		assert.False(t, math.IsNaN(r))
		assert.InDelta(t, 10.0, seg.Evaluate(r).Y(), 1e-6)
	}
}

func TestCubicRepeatedLineRoot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// y(t) = t³ − 3t + 2 = (t−1)²(t+2): the curve touches the x-axis at its
	// end point and the line polynomial has a vanishing discriminant
	seg := NewCubic()
	seg.AddControlPoint(bezlight.P(0, 2))
	seg.AddControlPoint(bezlight.P(1, 1))
	seg.AddControlPoint(bezlight.P(2, 0))
	seg.AddControlPoint(bezlight.P(3, 0))
	_, y := seg.PowerBasis()
	for i, c := range []float64{2, -3, 0, 1} {
		assert.InDelta(t, c, y.Coeff(i), 1e-9)
	}
	roots := seg.LineRoots(bezlight.P(0, 0), bezlight.P(1, 0))
	require.Len(t, roots, 2)
	assert.InDelta(t, -2.0, roots[0], 1e-9)
	assert.InDelta(t, 0.0, seg.Evaluate(roots[0]).Y(), 1e-9)
	assert.InDelta(t, -1.0, roots[1], 1e-9)
	for _, r := range roots {
		assert.False(t, bezlight.InUnitInterval(r))
	}
}

func TestHitAndDrag(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := quadratic()
	_, ok := seg.ControlPointAt(bezlight.P(100, 100))
	assert.False(t, ok)
	i, ok := seg.ControlPointAt(bezlight.P(10, 10))
	require.True(t, ok)
	assert.Equal(t, 0, i)
	seg.Select(0, bezlight.P(5, 5))
	assert.Equal(t, []int{0}, seg.Selected())
	seg.InverseSelect(2, bezlight.P(5, 5))
	seg.Drag(bezlight.P(8, 9))
	assert.True(t, seg.ControlPoint(0).Equal(bezlight.P(3, 4)))
	assert.True(t, seg.ControlPoint(1).Equal(bezlight.P(50, 50)))
	assert.True(t, seg.ControlPoint(2).Equal(bezlight.P(97, -4)))
	seg.Drag(bezlight.P(9, 9))
	assert.True(t, seg.ControlPoint(0).Equal(bezlight.P(4, 4)))
	seg.Deselect()
	assert.Empty(t, seg.Selected())
	seg.Drag(bezlight.P(100, 100))
	assert.True(t, seg.ControlPoint(0).Equal(bezlight.P(4, 4)))
}

func TestBoundingBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := cubic()
	box, ok := seg.BoundingBox()
	require.True(t, ok)
	assert.Equal(t, 10.0, box.Min.X)
	assert.Equal(t, 20.0, box.Min.Y)
	assert.Equal(t, 150.0, box.Max.X)
	assert.Equal(t, 110.0, box.Max.Y)
	for _, sp := range seg.Sample(50) {
		assert.True(t, sp.Pos.X() >= box.Min.X && sp.Pos.X() <= box.Max.X)
		assert.True(t, sp.Pos.Y() >= box.Min.Y && sp.Pos.Y() <= box.Max.Y)
	}
	_, ok = NewCubic().BoundingBox()
	assert.False(t, ok)
}
