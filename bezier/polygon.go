package bezier

import (
	polyclip "github.com/akavel/polyclip-go"

	"github.com/npillmayer/bezlight"
)

// ControlPolygon returns the control points of seg as a polygon contour.
// By the convex hull property of Bezier curves, the curve lies within the
// convex hull of this contour.
func (seg *Segment) ControlPolygon() polyclip.Contour {
	c := make(polyclip.Contour, 0, seg.n)
	for i := 0; i < seg.n; i++ {
		c.Add(ClipPoint(seg.pts[i].Pos))
	}
	return c
}

// BoundingBox returns the bounding box of the control polygon of seg,
// which encloses the curve. ok is false for an empty segment.
func (seg *Segment) BoundingBox() (box polyclip.Rectangle, ok bool) {
	if seg.n == 0 {
		return box, false
	}
	return seg.ControlPolygon().BoundingBox(), true
}

// ClipPoint converts a pair to a polygon vertex.
func ClipPoint(p bezlight.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}
