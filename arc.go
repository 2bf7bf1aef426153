package clothoid

import (
	"math"
)

// Arc is a circular arc around Center. The arc sweeps from StartAngle to
// EndAngle, both in radians; it runs anti-clockwise if EndAngle is larger
// than StartAngle and clockwise otherwise.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64

	visibility
}

// NewArc returns a visible arc.
func NewArc(center Point, radius, startAngle, endAngle float64) *Arc {
	return &Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}
}

// Configure sets all of the arc's parameters at once.
func (a *Arc) Configure(center Point, radius, startAngle, endAngle float64) {
	a.Center = center
	a.Radius = radius
	a.StartAngle = startAngle
	a.EndAngle = endAngle
}

func (a *Arc) isCurve() {}

// Sweep returns the signed angle swept by the arc.
func (a *Arc) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

// Curvature returns the signed curvature of the arc: positive when it turns
// anti-clockwise.
func (a *Arc) Curvature() float64 {
	if a.Sweep() < 0 {
		return -1 / a.Radius
	}
	return 1 / a.Radius
}

func (a *Arc) Length() float64 {
	return a.Radius * math.Abs(a.Sweep())
}

// angleAt returns the polar angle of the point at arc length s.
func (a *Arc) angleAt(s float64) float64 {
	if a.StartAngle <= a.EndAngle {
		return a.StartAngle + s/a.Radius
	}
	return a.StartAngle - s/a.Radius
}

// sample returns the point at polar angle th.
func (a *Arc) sample(th float64) Point {
	return a.Center.Translate(VecFromAngle(th).Mul(a.Radius))
}

func (a *Arc) Point(s float64) Point {
	return a.sample(a.angleAt(s))
}

func (a *Arc) Start() Point { return a.sample(a.StartAngle) }
func (a *Arc) End() Point   { return a.sample(a.EndAngle) }

// Tangent returns the unit direction of travel at arc length s.
func (a *Arc) Tangent(s float64) Vec2 {
	th := a.angleAt(s)
	if a.Sweep() < 0 {
		return VecFromAngle(th - math.Pi/2)
	}
	return VecFromAngle(th + math.Pi/2)
}

func (a *Arc) Waypoints(n int) []Point {
	return a.AppendWaypoints(make([]Point, 0, n), n)
}

func (a *Arc) AppendWaypoints(dst []Point, n int) []Point {
	return AppendMapInterval(dst, a.sample, a.StartAngle, a.EndAngle, n)
}

func (a *Arc) WaypointsSpaced(ds float64) []Point {
	return a.AppendWaypointsSpaced(make([]Point, 0, spacedCap(a.Length(), ds, 2)), ds)
}

// AppendWaypointsSpaced samples the arc every ds units of arc length, which
// is every ds/Radius radians.
func (a *Arc) AppendWaypointsSpaced(dst []Point, ds float64) []Point {
	if a.StartAngle == a.EndAngle {
		return append(dst, a.Start())
	}
	return AppendMapIntervalSpaced(dst, a.sample, a.StartAngle, a.EndAngle, ds/a.Radius)
}

// BoundingBox returns the exact bounding box of the arc, accounting for the
// axis extremes it passes through.
func (a *Arc) BoundingBox() Rect {
	r := NewRectFromPoints(a.Start(), a.End())
	lo := min(a.StartAngle, a.EndAngle)
	hi := max(a.StartAngle, a.EndAngle)
	const quarter = math.Pi / 2
	// Full turns visit every extreme; clamp so huge sweeps cost nothing.
	if hi-lo >= 2*math.Pi {
		hi = lo + 2*math.Pi
	}
	for k := math.Ceil(lo / quarter); k*quarter <= hi; k++ {
		r = r.UnionPoint(a.sample(k * quarter))
	}
	return r
}
