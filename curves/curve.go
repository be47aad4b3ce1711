/*
Package curves combines Bezier segments and a light source into curves
which editing collaborators (views, mouse handlers) can work with.

There are two kinds of curves: Simple curves consist of a single quadratic
or cubic segment. Composite curves are chains of cubic segments, joined with
tangent continuity: at every joint, the first tangent handle of a segment is
the point reflection of the last tangent handle of its predecessor through
the joint.

Curves do not recompute their geometry on their own. After adding or
dragging control points or the light, clients call Recompute and then read
the colored samples:

	c := curves.NewComposite()
	for _, p := range points {
	    c.AddControlPoint(p)
	}
	c.SetLight(bezlight.P(100, -50))
	c.Recompute(20)
	for _, sp := range c.Samples() {
	    draw(sp.Pos, sp.Color)
	}

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curves

import (
	"fmt"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/bezlight"
	"github.com/npillmayer/bezlight/bezier"
	"github.com/npillmayer/bezlight/light"
)

// tracer writes to trace with key 'bezlight.curves'
func tracer() tracing.Trace {
	return tracing.Select("bezlight.curves")
}

// Curve is the interface for collaborators which edit and display curves.
type Curve interface {
	AddControlPoint(p bezlight.Pair)            // append a control point, if there is room
	Recompute(samples int)                      // re-sample and illuminate
	Samples() []bezier.SamplePoint              // colored samples of the last Recompute
	ControlPointAt(p bezlight.Pair) (Ref, bool) // hit test
	Select(at bezlight.Pair) bool               // grab control points and light at a position
	Deselect()                                  // release everything
	Drag(to bezlight.Pair)                      // move grabbed points
	SetLight(p bezlight.Pair) bool              // place the light source
	Light() *light.Source                       // the light source, or nil
}

// Role tells if a control point is an end point or a tangent handle.
type Role uint8

// Segments start and end at end points, the control points in between
// are tangent handles.
const (
	Endpoint Role = iota
	Handle
)

func (r Role) String() string {
	if r == Handle {
		return "handle"
	}
	return "endpoint"
}

// Ref identifies a control point within a curve.
type Ref struct {
	Segment  int  // index of the segment
	Slot     int  // index of the control point within the segment
	Role     Role // end point or tangent handle
	Mirrored bool // position is derived from a neighbouring segment
}

func (r Ref) String() string {
	m := ""
	if r.Mirrored {
		m = ", mirrored"
	}
	return fmt.Sprintf("[%d.%d %s%s]", r.Segment, r.Slot, r.Role, m)
}

// roleOf returns the role of slot i in a segment of kind k.
func roleOf(k bezier.Kind, i int) Role {
	if i == 0 || i == k.Degree() {
		return Endpoint
	}
	return Handle
}

// lighting is the part common to all curves: an optional light source and
// the illumination settings.
type lighting struct {
	src *light.Source
	il  light.Illuminator
}

// SetLight places the light source at p. There is at most one light per
// curve; if it is already present, SetLight does nothing and returns false.
func (lt *lighting) SetLight(p bezlight.Pair) bool {
	if lt.src != nil {
		return false
	}
	lt.src = light.NewSource(p)
	tracer().Debugf("light source placed at %s", p)
	return true
}

// Light returns the light source, or nil.
func (lt *lighting) Light() *light.Source {
	return lt.src
}

// RemoveLight removes the light source. Samples will keep their default
// color from the next Recompute on.
func (lt *lighting) RemoveLight() {
	lt.src = nil
}

// Configure reads the number of illumination workers from conf
// (key bezier.workers).
func (lt *lighting) Configure(conf schuko.Configuration) {
	lt.il.Workers = bezlight.Workers(conf)
	tracer().Infof("illumination uses %d worker(s)", lt.il.Workers)
}

func (lt *lighting) lightAt(p bezlight.Pair) bool {
	return lt.src != nil && lt.src.Overlaps(p)
}

func (lt *lighting) selectLight(at bezlight.Pair) bool {
	if !lt.lightAt(at) {
		return false
	}
	lt.src.Select(at)
	return true
}

func (lt *lighting) deselectLight() {
	if lt.src != nil {
		lt.src.Deselect()
	}
}

func (lt *lighting) dragLight(to bezlight.Pair) {
	if lt.src != nil {
		lt.src.Drag(to)
	}
}

func (lt *lighting) illuminate(segs []*bezier.Segment) {
	lt.il.Illuminate(segs, lt.src)
}

// collect concatenates the samples of segs.
func collect(segs []*bezier.Segment) []bezier.SamplePoint {
	var samples []bezier.SamplePoint
	for _, seg := range segs {
		samples = append(samples, seg.Samples()...)
	}
	return samples
}
