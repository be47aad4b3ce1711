package curves

import (
	"github.com/npillmayer/bezlight"
	"github.com/npillmayer/bezlight/bezier"
)

// Simple is a curve made of a single quadratic or cubic segment.
type Simple struct {
	lighting
	seg *bezier.Segment
}

var _ Curve = (*Simple)(nil)

// NewQuadratic creates a curve consisting of one quadratic segment.
func NewQuadratic() *Simple {
	return &Simple{seg: bezier.NewQuadratic()}
}

// NewCubic creates a curve consisting of one cubic segment.
func NewCubic() *Simple {
	return &Simple{seg: bezier.NewCubic()}
}

// Segment returns the segment of c.
func (c *Simple) Segment() *bezier.Segment {
	return c.seg
}

// IsFull is a predicate: have all control points been placed?
func (c *Simple) IsFull() bool {
	return c.seg.IsFull()
}

// AddControlPoint appends a control point at p. It is ignored if the
// segment is already complete.
func (c *Simple) AddControlPoint(p bezlight.Pair) {
	c.seg.AddControlPoint(p)
}

// Recompute samples the segment and illuminates the samples, if there is
// a light source.
func (c *Simple) Recompute(samples int) {
	c.seg.Sample(samples)
	c.illuminate([]*bezier.Segment{c.seg})
}

// Samples returns the samples of the last Recompute, ordered by t.
func (c *Simple) Samples() []bezier.SamplePoint {
	return c.seg.Samples()
}

// ControlPointAt returns a reference to the control point at p.
func (c *Simple) ControlPointAt(p bezlight.Pair) (Ref, bool) {
	i, ok := c.seg.ControlPointAt(p)
	if !ok {
		return Ref{}, false
	}
	return Ref{Segment: 0, Slot: i, Role: roleOf(c.seg.Kind(), i)}, true
}

// Select grabs the control point and the light source at position at.
// It returns false if there is nothing to grab.
func (c *Simple) Select(at bezlight.Pair) bool {
	found := false
	if i, ok := c.seg.ControlPointAt(at); ok {
		c.seg.Select(i, at)
		found = true
	}
	if c.selectLight(at) {
		found = true
	}
	return found
}

// Deselect releases all control points and the light.
func (c *Simple) Deselect() {
	c.seg.Deselect()
	c.deselectLight()
}

// Drag moves the grabbed control point and light to follow the pointer.
func (c *Simple) Drag(to bezlight.Pair) {
	c.seg.Drag(to)
	c.dragLight(to)
}
