package light

import (
	"math"
	"testing"

	"github.com/npillmayer/bezlight"
	"github.com/npillmayer/bezlight/bezier"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segment(kind bezier.Kind, pts ...bezlight.Pair) *bezier.Segment {
	seg := bezier.New(kind)
	for _, p := range pts {
		seg.AddControlPoint(p)
	}
	return seg
}

// arch from (0,0) over (50,25) to (100,0)
func arch() *bezier.Segment {
	return segment(bezier.Quadratic, bezlight.P(0, 0), bezlight.P(50, 50), bezlight.P(100, 0))
}

func TestNoLight(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := arch()
	seg.Sample(10)
	Illuminate([]*bezier.Segment{seg}, nil)
	for _, sp := range seg.Samples() {
		assert.True(t, sp.Color.IsBlack())
	}
}

func TestSelfShadow(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := arch()
	seg.Sample(3)
	// end point (100,0), start point (0,0) and the light are collinear
	Illuminate([]*bezier.Segment{seg}, NewSource(bezlight.P(-100, 0)))
	samples := seg.Samples()
	assert.True(t, samples[2].Color.IsBlack(), "near sample must be shadowed")
	_, ok := Occluder(seg, true, samples[2], bezlight.P(-100, 0))
	assert.True(t, ok)
	_, ok = Occluder(seg, true, samples[0], bezlight.P(-100, 0))
	assert.False(t, ok, "far sample has nothing between itself and the light")
}

func TestLambertShading(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := arch()
	seg.Sample(3)
	l := bezlight.P(50, -100)
	Illuminate([]*bezier.Segment{seg}, NewSource(l))
	samples := seg.Samples()
	// apex faces the light straight on
	assert.Equal(t, bezlight.Gray(1), samples[1].Color)
	// start point: normal (1,-1)/√2, direction to light (1,-2)/√5
	want := 3 / math.Sqrt(10)
	assert.InDelta(t, want, samples[0].Color.R, 1e-9)
	for _, sp := range samples {
		assert.GreaterOrEqual(t, sp.Color.R, 0.0)
		assert.LessOrEqual(t, sp.Color.R, 1.0)
		assert.Equal(t, sp.Color.R, sp.Color.G)
		assert.Equal(t, sp.Color.R, sp.Color.B)
	}
	// light on the other side of the curve
	Illuminate([]*bezier.Segment{seg}, NewSource(bezlight.P(50, 200)))
	assert.True(t, seg.SampleAt(1).Color.IsBlack())
}

func TestShadowAcrossSegments(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	lit := arch()
	blocker := segment(bezier.Quadratic, bezlight.P(0, -50), bezlight.P(50, -50), bezlight.P(100, -50))
	lit.Sample(3)
	blocker.Sample(3)
	scene := []*bezier.Segment{lit, blocker}
	Illuminate(scene, NewSource(bezlight.P(50, -100)))
	assert.True(t, lit.SampleAt(1).Color.IsBlack(), "apex is behind the blocker")
	assert.Equal(t, bezlight.Gray(1), blocker.SampleAt(1).Color)
	// without the blocker the apex is lit
	Illuminate(scene[:1], NewSource(bezlight.P(50, -100)))
	assert.Equal(t, bezlight.Gray(1), lit.SampleAt(1).Color)
}

func TestIncompleteSegmentsInScene(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	lit := arch()
	lit.Sample(5)
	partial := segment(bezier.Cubic, bezlight.P(0, -50), bezlight.P(100, -50))
	partial.Sample(5)
	require.NotPanics(t, func() {
		Illuminate([]*bezier.Segment{lit, partial}, NewSource(bezlight.P(50, -100)))
	})
	assert.Equal(t, bezlight.Gray(1), lit.SampleAt(2).Color)
	assert.Equal(t, 0, partial.SampleCount())
}

func TestParallelMatchesSequential(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mk := func() []*bezier.Segment {
		a := segment(bezier.Cubic, bezlight.P(0, 0), bezlight.P(40, 120), bezlight.P(120, -60), bezlight.P(160, 60))
		b := segment(bezier.Cubic, bezlight.P(160, 60), bezlight.P(200, 180), bezlight.P(260, 0), bezlight.P(300, 90))
		c := segment(bezier.Quadratic, bezlight.P(-20, 150), bezlight.P(150, 250), bezlight.P(320, 150))
		for _, s := range []*bezier.Segment{a, b, c} {
			s.Sample(300)
		}
		return []*bezier.Segment{a, b, c}
	}
	src := NewSource(bezlight.P(140, 300))
	seq, par := mk(), mk()
	Illuminator{}.Illuminate(seq, src)
	Illuminator{Workers: 4}.Illuminate(par, src)
	shadowed := 0
	for s := range seq {
		require.Equal(t, seq[s].Samples(), par[s].Samples())
		for _, sp := range seq[s].Samples() {
			if sp.Color.IsBlack() {
				shadowed++
			}
		}
	}
	t.Logf("%d samples without light", shadowed)
}

func TestSourceDrag(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	src := NewSource(bezlight.P(10, 10))
	assert.True(t, src.Overlaps(bezlight.P(15, 5)))
	src.Select(bezlight.P(15, 5))
	src.Drag(bezlight.P(25, 0))
	assert.True(t, src.Pos.Equal(bezlight.P(20, 5)))
	src.Deselect()
	assert.False(t, src.IsSelected())
}
