package curves

import (
	"slices"

	polyclip "github.com/akavel/polyclip-go"

	"github.com/npillmayer/bezlight"
	"github.com/npillmayer/bezlight/bezier"
)

// Slots of a cubic segment.
const (
	first  = 0
	second = 1
	third  = 2
	last   = 3
)

// Composite is a chain of cubic segments with tangent continuity at the
// joints.
//
// For every pair of adjacent segments i and i+1, the first two control
// points of segment i+1 are mirrored: they are not edited directly but
// derived from segment i,
//
//	P₀(i+1) = E        P₁(i+1) = 2E − T
//
// where E is the end point and T the last tangent handle of segment i.
// Every mutation re-derives the mirrored points from their sources.
type Composite struct {
	lighting
	segs  []*bezier.Segment
	lines []Line
}

var _ Curve = (*Composite)(nil)

// Joint is the shared end point of two adjacent segments.
type Joint struct {
	Left, Right int           // indices of the adjacent segments
	At          bezlight.Pair // position of the joint
}

// Line is a straight line between two points. Composite curves produce
// lines connecting the two tangent handles at every joint, for display.
type Line struct {
	From, To bezlight.Pair
}

// NewComposite creates a composite curve with one empty cubic segment.
func NewComposite() *Composite {
	return &Composite{segs: []*bezier.Segment{bezier.NewCubic()}}
}

// Segments returns the segments of c, in order. The last segment is the
// one control points are added to; it may be incomplete.
func (c *Composite) Segments() []*bezier.Segment {
	return slices.Clone(c.segs)
}

// Lines returns the joint visualization lines of the last Recompute.
func (c *Composite) Lines() []Line {
	return slices.Clone(c.lines)
}

// Joints returns the joints between adjacent segments.
func (c *Composite) Joints() []Joint {
	joints := make([]Joint, 0, len(c.segs)-1)
	for i := 0; i+1 < len(c.segs); i++ {
		joints = append(joints, Joint{Left: i, Right: i + 1, At: c.segs[i].ControlPoint(last)})
	}
	return joints
}

func (c *Composite) active() *bezier.Segment {
	return c.segs[len(c.segs)-1]
}

// AddControlPoint adds a control point to the active segment. When the
// active segment becomes complete, a new segment is started. Its first two
// control points are set from the completed segment: the end point E, and
// the reflection of the last tangent handle through E.
func (c *Composite) AddControlPoint(p bezlight.Pair) {
	seg := c.active()
	seg.AddControlPoint(p)
	if !seg.IsFull() {
		return
	}
	E := seg.ControlPoint(last)
	T := seg.ControlPoint(third)
	next := bezier.NewCubic()
	next.AddControlPoint(E)
	next.AddControlPoint(T.Reflected(E))
	c.segs = append(c.segs, next)
	tracer().Debugf("segment #%d complete, starting segment #%d at %s", len(c.segs)-2, len(c.segs)-1, E)
}

// IsMirrored is a predicate: is slot i of segment s derived from the
// preceding segment?
func (c *Composite) IsMirrored(s, i int) bool {
	return s > 0 && (i == first || i == second)
}

// Resolve maps a control point to the control point it is derived from,
// together with the direction in which the source follows a drag of r.
// Control points which are not mirrored resolve to themselves.
func (c *Composite) Resolve(r Ref) (Ref, bezier.DragDir) {
	if !c.IsMirrored(r.Segment, r.Slot) {
		return r, bezier.Forward
	}
	src := Ref{Segment: r.Segment - 1}
	if r.Slot == first {
		src.Slot, src.Role = last, Endpoint
		return src, bezier.Forward
	}
	src.Slot, src.Role = third, Handle
	return src, bezier.Inverse
}

func (c *Composite) ref(s, i int) Ref {
	return Ref{Segment: s, Slot: i, Role: roleOf(bezier.Cubic, i), Mirrored: c.IsMirrored(s, i)}
}

// ControlPointAt returns a reference to the first control point at p,
// searching segments in order.
func (c *Composite) ControlPointAt(p bezlight.Pair) (Ref, bool) {
	for s, seg := range c.segs {
		if i, ok := seg.ControlPointAt(p); ok {
			return c.ref(s, i), true
		}
	}
	return Ref{}, false
}

// Select grabs all control points at position at, and the light source if
// it is there. Selection propagates so that a drag keeps the curve smooth:
//
//   - grabbing an end point grabs its adjacent tangent handle(s) as well,
//     so the handles move together with the joint;
//   - grabbing a mirrored tangent handle grabs its source handle in inverse
//     direction;
//   - grabbing a tangent handle at a joint moves the mirrored handle on the
//     other side in inverse direction.
//
// Mirrored control points themselves are never grabbed, they follow their
// sources. Select returns false if there is nothing to grab.
func (c *Composite) Select(at bezlight.Pair) bool {
	found := false
	for s, seg := range c.segs {
		if i, ok := seg.ControlPointAt(at); ok {
			c.grab(c.ref(s, i), at)
			found = true
		}
	}
	if c.selectLight(at) {
		found = true
	}
	return found
}

func (c *Composite) grab(r Ref, at bezlight.Pair) {
	src, dir := c.Resolve(r)
	c.grabSlot(src.Segment, src.Slot, dir, at)
	switch src.Slot {
	case first:
		c.grabSlot(src.Segment, second, bezier.Forward, at)
	case last:
		c.grabSlot(src.Segment, third, bezier.Forward, at)
	}
}

// grabSlot selects a single control point. A control point already grabbed
// keeps its direction.
func (c *Composite) grabSlot(s, i int, dir bezier.DragDir, at bezlight.Pair) {
	seg := c.segs[s]
	if i >= seg.N() || seg.Direction(i) != bezier.Unselected {
		return
	}
	tracer().Debugf("grab control point %s %s", c.ref(s, i), dir)
	if dir == bezier.Inverse {
		seg.InverseSelect(i, at)
	} else {
		seg.Select(i, at)
	}
}

// Selected returns references to all grabbed control points.
func (c *Composite) Selected() []Ref {
	var refs []Ref
	for s, seg := range c.segs {
		for _, i := range seg.Selected() {
			refs = append(refs, c.ref(s, i))
		}
	}
	return refs
}

// Deselect releases all control points and the light.
func (c *Composite) Deselect() {
	for _, seg := range c.segs {
		seg.Deselect()
	}
	c.deselectLight()
}

// Drag moves all grabbed control points and the light, then re-derives
// the mirrored control points.
func (c *Composite) Drag(to bezlight.Pair) {
	for _, seg := range c.segs {
		seg.Drag(to)
	}
	c.dragLight(to)
	c.enforceContinuity()
}

// Move places a control point at p. Moving a mirrored control point moves
// its source such that the mirrored point ends up at p.
func (c *Composite) Move(r Ref, p bezlight.Pair) {
	src, dir := c.Resolve(r)
	seg := c.segs[src.Segment]
	if dir == bezier.Inverse {
		E := seg.ControlPoint(last)
		p = p.Reflected(E)
	}
	seg.SetControlPoint(src.Slot, p)
	c.enforceContinuity()
}

// enforceContinuity re-derives the mirrored control points of every
// segment from its predecessor.
func (c *Composite) enforceContinuity() {
	for s := 1; s < len(c.segs); s++ {
		prev, seg := c.segs[s-1], c.segs[s]
		E := prev.ControlPoint(last)
		T := prev.ControlPoint(third)
		seg.SetControlPoint(first, E)
		seg.SetControlPoint(second, T.Reflected(E))
	}
}

// Recompute samples every segment, illuminates the samples of all segments
// together (so every segment may cast shadows onto every other), and
// rebuilds the joint visualization lines.
func (c *Composite) Recompute(samples int) {
	for _, seg := range c.segs {
		seg.Sample(samples)
	}
	c.illuminate(c.segs)
	c.updateLines()
}

func (c *Composite) updateLines() {
	c.lines = c.lines[:0]
	for s := 0; s+1 < len(c.segs); s++ {
		c.lines = append(c.lines, Line{
			From: c.segs[s].ControlPoint(third),
			To:   c.segs[s+1].ControlPoint(second),
		})
	}
}

// Samples returns the samples of all segments of the last Recompute, in
// segment order, each segment ordered by t.
func (c *Composite) Samples() []bezier.SamplePoint {
	return collect(c.segs)
}

// ControlPolygons returns the control polygons of all segments with at
// least one control point.
func (c *Composite) ControlPolygons() polyclip.Polygon {
	var pg polyclip.Polygon
	for _, seg := range c.segs {
		if seg.N() > 0 {
			pg.Add(seg.ControlPolygon())
		}
	}
	return pg
}

// BoundingBox returns a box enclosing the whole curve. ok is false if no
// control point has been placed yet.
func (c *Composite) BoundingBox() (box polyclip.Rectangle, ok bool) {
	pg := c.ControlPolygons()
	if len(pg) == 0 {
		return box, false
	}
	return pg.BoundingBox(), true
}
