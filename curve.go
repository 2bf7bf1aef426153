package clothoid

import (
	"slices"
)

// Curve is one of the primitive curves a smoothed path is built from: a
// [Line], an [Arc], or a [Clothoid].
//
// Curves are parametrized by arc length, measured from the curve's natural
// start. Point doesn't check that s lies on the curve; evaluating outside of
// [0, Length()] extrapolates the curve's defining formula.
type Curve interface {
	// Point returns the position at arc length s.
	Point(s float64) Point
	// Waypoints returns n samples evenly spaced across the whole curve.
	Waypoints(n int) []Point
	// AppendWaypoints appends the samples of Waypoints to dst.
	AppendWaypoints(dst []Point, n int) []Point
	// WaypointsSpaced returns samples spaced ds apart along the curve. The
	// last sample lies exactly on the curve's end.
	WaypointsSpaced(ds float64) []Point
	// AppendWaypointsSpaced appends the samples of WaypointsSpaced to dst.
	AppendWaypointsSpaced(dst []Point, ds float64) []Point
	// Length returns the arc length of the curve.
	Length() float64
	// BoundingBox returns an axis-aligned box enclosing the curve.
	BoundingBox() Rect
	// Visible reports whether the curve contributes waypoints when it is
	// part of a composite.
	Visible() bool
	SetVisible(visible bool)

	isCurve()
}

var (
	_ Curve = (*Line)(nil)
	_ Curve = (*Arc)(nil)
	_ Curve = (*Clothoid)(nil)
)

// visibility is embedded in all curves. The zero value is visible.
type visibility struct {
	hidden bool
}

func (v *visibility) Visible() bool           { return !v.hidden }
func (v *visibility) SetVisible(visible bool) { v.hidden = !visible }

// AppendCurves appends the spaced waypoints of all visible curves to dst, in
// order. Consecutive curves are expected to meet; the point they share is
// emitted once, as the end of the earlier curve.
func AppendCurves(dst []Point, ds float64, curves ...Curve) []Point {
	first := true
	for _, c := range curves {
		if !c.Visible() {
			continue
		}
		n := len(dst)
		dst = c.AppendWaypointsSpaced(dst, ds)
		if !first && len(dst) > n {
			dst = slices.Delete(dst, n, n+1)
		}
		first = false
	}
	return dst
}

// TotalLength returns the summed length of all visible curves.
func TotalLength(curves ...Curve) float64 {
	var l float64
	for _, c := range curves {
		if c.Visible() {
			l += c.Length()
		}
	}
	return l
}
