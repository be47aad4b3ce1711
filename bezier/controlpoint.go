package bezier

import (
	"math"

	"github.com/npillmayer/bezlight"
)

// HitSize is the edge length of the square around a control point which
// is sensitive for hit testing.
const HitSize = 20.0

// DragDir tells if and how a control point follows a drag.
type DragDir int8

// A control point may be unselected, or follow a drag either in the
// direction of the pointer movement or in the inverse direction. Inverse
// dragging keeps mirrored tangent handles of composite curves in sync.
const (
	Unselected DragDir = 0
	Forward    DragDir = 1
	Inverse    DragDir = -1
)

func (d DragDir) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	}
	return "unselected"
}

// ControlPoint is a position plus drag state. The zero value is an
// unselected control point at the origin.
type ControlPoint struct {
	Pos  bezlight.Pair // position
	dir  DragDir       // drag direction
	grab bezlight.Pair // pointer position of the last select/drag
}

// NewControlPoint creates an unselected control point at p.
func NewControlPoint(p bezlight.Pair) ControlPoint {
	return ControlPoint{Pos: p}
}

// Overlaps is a predicate: is p within the hit square of cp?
func (cp ControlPoint) Overlaps(p bezlight.Pair) bool {
	const h = HitSize / 2
	return math.Abs(p.X()-cp.Pos.X()) <= h && math.Abs(p.Y()-cp.Pos.Y()) <= h
}

// Select grabs cp at pointer position at, for dragging in forward direction.
func (cp *ControlPoint) Select(at bezlight.Pair) {
	cp.grab = at
	cp.dir = Forward
}

// InverseSelect grabs cp at pointer position at, for dragging in
// inverse direction.
func (cp *ControlPoint) InverseSelect(at bezlight.Pair) {
	cp.grab = at
	cp.dir = Inverse
}

// Deselect releases cp.
func (cp *ControlPoint) Deselect() {
	cp.dir = Unselected
}

// IsSelected is a predicate: is cp grabbed for dragging?
func (cp ControlPoint) IsSelected() bool {
	return cp.dir != Unselected
}

// Direction returns the drag direction of cp.
func (cp ControlPoint) Direction() DragDir {
	return cp.dir
}

// Drag moves a selected control point by the pointer movement since the
// last select or drag, scaled by the drag direction. Unselected control
// points do not move.
func (cp *ControlPoint) Drag(to bezlight.Pair) {
	if !cp.IsSelected() {
		return
	}
	delta := (to - cp.grab).Scaled(float64(cp.dir))
	cp.Pos += delta
	cp.grab = to
}
