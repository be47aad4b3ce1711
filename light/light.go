/*
Package light colors the samples of Bezier segments as lit by a single
point light source.

For every sample, the straight line from the sample to the light is
intersected with every segment of the scene. If one of the intersection
points lies between the sample and the light, the sample is in the shadow
of the curve and colored black. Otherwise it is shaded by the cosine of the
angle between the curve normal and the direction to the light (Lambert's
law), clamped at 0.

Shadows may be cast by any segment onto any other: clients pass all the
segments of a scene at once.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package light

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/sync/errgroup"

	"github.com/npillmayer/bezlight"
	"github.com/npillmayer/bezlight/bezier"
)

// tracer writes to trace with key 'bezlight.light'
func tracer() tracing.Trace {
	return tracing.Select("bezlight.light")
}

// Source is a point light source. It may be hit-tested, selected and
// dragged like a control point.
type Source struct {
	bezier.ControlPoint
}

// NewSource creates a light source at p.
func NewSource(p bezlight.Pair) *Source {
	return &Source{ControlPoint: bezier.NewControlPoint(p)}
}

// chunk is the number of samples a worker shades in one go.
const chunk = 64

// Illuminator runs the shading pass. The zero value shades sequentially.
type Illuminator struct {
	Workers int // number of concurrent workers; ≤ 1 means sequential
}

// Illuminate colors the current samples of all segments with the
// sequential zero Illuminator.
func Illuminate(segs []*bezier.Segment, src *Source) {
	Illuminator{}.Illuminate(segs, src)
}

// Illuminate colors the current samples of all segments of a scene.
// If src is nil there is no light and samples keep their color.
//
// Segments have to be sampled before. The geometry of the segments and the
// light position must not change while Illuminate is running; every sample
// is written by exactly one worker.
func (il Illuminator) Illuminate(segs []*bezier.Segment, src *Source) {
	if src == nil {
		tracer().Debugf("no light source, skipping illumination")
		return
	}
	sc := newScene(segs, src.Pos)
	if il.Workers <= 1 {
		for s, seg := range segs {
			sc.shadeRange(s, 0, seg.SampleCount())
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(il.Workers)
	for s, seg := range segs {
		for from := 0; from < seg.SampleCount(); from += chunk {
			to := min(from+chunk, seg.SampleCount())
			g.Go(func() error {
				sc.shadeRange(s, from, to)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		tracer().Errorf("illumination: %v", err)
	}
}

// scene holds the read-only state of one illumination pass.
type scene struct {
	segs  []*bezier.Segment
	boxes []polyclip.Rectangle // bounding boxes of the control polygons
	full  []bool               // segment has all control points
	light bezlight.Pair
}

func newScene(segs []*bezier.Segment, light bezlight.Pair) *scene {
	sc := &scene{
		segs:  segs,
		boxes: make([]polyclip.Rectangle, len(segs)),
		full:  make([]bool, len(segs)),
		light: light,
	}
	for i, seg := range segs {
		sc.boxes[i], _ = seg.BoundingBox()
		sc.full[i] = seg.IsFull()
	}
	return sc
}

func (sc *scene) shadeRange(s, from, to int) {
	seg := sc.segs[s]
	for i := from; i < to; i++ {
		sp := seg.SampleAt(i)
		if sc.occluded(s, sp) {
			seg.Colorize(i, bezlight.Black)
		} else {
			seg.Colorize(i, Lambert(seg, sp, sc.light))
		}
	}
}

// occluded checks if any segment has a point between sample sp of segment
// owner and the light.
func (sc *scene) occluded(owner int, sp bezier.SamplePoint) bool {
	lbox := lineBox(sp.Pos, sc.light)
	for s, seg := range sc.segs {
		if !sc.full[s] || !sc.boxes[s].Overlaps(lbox) {
			continue
		}
		if r, ok := Occluder(seg, s == owner, sp, sc.light); ok {
			tracer().Debugf("sample %s shadowed by %s", sp.Pos, r)
			return true
		}
	}
	return false
}

// Occluder looks for a point on seg which lies on the straight line between
// sample sp and light l. If sp has been sampled from seg itself, self has
// to be true; the root re-identifying sp is skipped then.
func Occluder(seg *bezier.Segment, self bool, sp bezier.SamplePoint, l bezlight.Pair) (bezlight.Pair, bool) {
	for _, t := range seg.LineRoots(sp.Pos, l) {
		if !bezlight.InUnitInterval(t) {
			continue
		}
		if self && bezlight.Equal(t, sp.T) {
			continue
		}
		r := seg.Evaluate(t)
		if bezlight.Between(sp.Pos, r, l) {
			return r, true
		}
	}
	return bezlight.Origin, false
}

// Lambert shades sample sp of seg for a light at l. The intensity is the
// dot product of the unit normal (the tangent turned clockwise) and the
// unit vector from the sample to the light, clamped at 0.
func Lambert(seg *bezier.Segment, sp bezier.SamplePoint, l bezlight.Pair) bezlight.Color {
	normal := -seg.Derivative(sp.T).Unit().Perpendicular()
	toLight := (l - sp.Pos).Unit()
	intensity := max(normal.Dot(toLight), 0)
	return bezlight.Gray(intensity)
}

// lineBox is the bounding box of the line from p to q, widened by ε.
func lineBox(p, q bezlight.Pair) polyclip.Rectangle {
	const e = bezlight.Epsilon
	return polyclip.Rectangle{
		Min: polyclip.Point{X: min(p.X(), q.X()) - e, Y: min(p.Y(), q.Y()) - e},
		Max: polyclip.Point{X: max(p.X(), q.X()) + e, Y: max(p.Y(), q.Y()) + e},
	}
}
