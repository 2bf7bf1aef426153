package clothoid

import "math"

// Line represents a straight line segment from P0 to P1.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point

	visibility
}

// NewLine returns the visible line segment from p0 to p1.
func NewLine(p0, p1 Point) *Line {
	return &Line{P0: p0, P1: p1}
}

// Configure sets both end points at once.
func (l *Line) Configure(p0, p1 Point) {
	l.P0 = p0
	l.P1 = p1
}

func (l *Line) isCurve() {}

// Length returns the length of the line.
func (l *Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Tangent returns the unit direction from P0 to P1. It is the zero vector for
// a degenerate line.
func (l *Line) Tangent() Vec2 {
	d := l.P1.Sub(l.P0)
	if d.Hypot2() == 0 {
		return Vec2{}
	}
	return d.Normalize()
}

func (l *Line) Start() Point { return l.P0 }
func (l *Line) End() Point   { return l.P1 }

// Point returns the point at distance s from P0 in the direction of P1.
// A degenerate line always returns P0.
func (l *Line) Point(s float64) Point {
	return l.P0.Translate(l.Tangent().Mul(s))
}

// Eval returns the point at t ∈ [0, 1] by linear interpolation.
func (l *Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l *Line) Waypoints(n int) []Point {
	return l.AppendWaypoints(make([]Point, 0, n), n)
}

func (l *Line) AppendWaypoints(dst []Point, n int) []Point {
	return AppendMapInterval(dst, l.Eval, 0, 1, n)
}

func (l *Line) WaypointsSpaced(ds float64) []Point {
	return l.AppendWaypointsSpaced(make([]Point, 0, spacedCap(l.Length(), ds, 2)), ds)
}

// AppendWaypointsSpaced walks from P0 toward P1 in steps of ds. A degenerate
// line contributes only P0.
func (l *Line) AppendWaypointsSpaced(dst []Point, ds float64) []Point {
	length := l.Length()
	if length == 0 {
		return append(dst, l.P0)
	}
	dst = AppendMapIntervalSpaced(dst, l.Point, 0, length, ds)
	// Land on P1 exactly, not just within rounding error.
	dst[len(dst)-1] = l.P1
	return dst
}

func (l *Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Nearest returns the squared distance from pt to the closest point on the
// line, and the arc length of that point.
func (l *Line) Nearest(pt Point) (distSq, s float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.DistanceSquared(l.P0), 0
	} else if dotp >= dSquared {
		return pt.DistanceSquared(l.P1), math.Sqrt(dSquared)
	} else {
		t := dotp / dSquared
		dist := pt.DistanceSquared(l.Eval(t))
		return dist, t * math.Sqrt(dSquared)
	}
}
