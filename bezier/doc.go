/*
Package bezier deals with single Bezier curve segments of degree 2 and 3.

A segment is built by adding control points one by one, in the order the
curve visits them: index 0 is the start point, the last index is the end
point. Quadratic segments take 3 control points, cubic segments take 4.
Further control points are silently ignored:

	seg := bezier.NewQuadratic()
	seg.AddControlPoint(bezlight.P(0, 0))
	seg.AddControlPoint(bezlight.P(50, 50))
	seg.AddControlPoint(bezlight.P(100, 0))
	samples := seg.Sample(20)

Incomplete segments never produce errors. They have no samples, no line
intersections, and evaluate to NaN pairs. Clients have to check IsFull
before relying on geometry queries.

Intersections with a straight line are calculated analytically: the
Bernstein form of the segment is substituted into the implicit line equation

	A·x + B·y + C = 0

and the resulting polynomial of degree 2 or 3 is solved by package polyn.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'bezlight.bezier'
func tracer() tracing.Trace {
	return tracing.Select("bezlight.bezier")
}
