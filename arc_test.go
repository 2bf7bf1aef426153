package clothoid

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestArcPointsOnCircle(t *testing.T) {
	arcs := []*Arc{
		NewArc(Pt(1, 2), 3, 0, math.Pi/2),
		NewArc(Pt(-1, 0), 0.5, 1, -2.5),
		NewArc(Pt(0, 0), 2, -math.Pi, 3*math.Pi),
	}
	for _, a := range arcs {
		check := func(kind string, pts []Point) {
			t.Helper()
			if len(pts) < 2 {
				t.Fatalf("%s: got %d waypoints", kind, len(pts))
			}
			for i, pt := range pts {
				if d := math.Abs(pt.Distance(a.Center) - a.Radius); d > 1e-12 {
					t.Errorf("%s: waypoint %d of %+v is %g off the circle", kind, i, a, d)
				}
			}
			assertNear(t, pts[0], a.Start(), 1e-12)
			assertNear(t, pts[len(pts)-1], a.End(), 1e-12)
		}
		check("spaced", a.WaypointsSpaced(0.1))
		check("even", a.Waypoints(7))

		for _, s := range []float64{0, a.Length() / 3, a.Length()} {
			if d := math.Abs(a.Point(s).Distance(a.Center) - a.Radius); d > 1e-12 {
				t.Errorf("Point(%v) is %g off the circle", s, d)
			}
		}
		assertNear(t, a.Point(a.Length()), a.End(), 1e-9)
	}
}

func TestArcSpacing(t *testing.T) {
	a := NewArc(Pt(0, 0), 2, math.Pi/2, -math.Pi/2)
	if l := a.Length(); math.Abs(l-2*math.Pi) > 1e-12 {
		t.Fatalf("got length %v, want 2π", l)
	}
	const ds = 0.25
	pts := a.WaypointsSpaced(ds)
	// A chord of arc length ds on radius r has length 2r·sin(ds/2r).
	chord := 2 * a.Radius * math.Sin(ds/(2*a.Radius))
	for i := 1; i < len(pts)-1; i++ {
		if d := pts[i].Distance(pts[i-1]); math.Abs(d-chord) > 1e-12 {
			t.Errorf("chord %d has length %v, want %v", i, d, chord)
		}
	}
	// Clockwise from the top: x becomes positive immediately.
	if pts[1].X <= 0 {
		t.Errorf("expected clockwise sweep, second waypoint is %v", pts[1])
	}
}

func TestArcCurvatureAndTangent(t *testing.T) {
	ccw := NewArc(Pt(0, 0), 2, 0, 1)
	cw := NewArc(Pt(0, 0), 2, 1, 0)
	if k := ccw.Curvature(); k != 0.5 {
		t.Errorf("got curvature %v, want 0.5", k)
	}
	if k := cw.Curvature(); k != -0.5 {
		t.Errorf("got curvature %v, want -0.5", k)
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, Vec(0, 1), ccw.Tangent(0), approx)
	diff(t, Vec(0, -1), cw.Tangent(cw.Length()), approx)
}

func TestArcBoundingBox(t *testing.T) {
	// Upper half of the unit circle.
	a := NewArc(Pt(0, 0), 1, 0, math.Pi)
	diff(t, Rect{-1, 0, 1, 1}, a.BoundingBox(), cmpopts.EquateApprox(0, 1e-12))

	full := NewArc(Pt(1, 1), 1, 0.3, 0.3+4*math.Pi)
	diff(t, Rect{0, 0, 2, 2}, full.BoundingBox(), cmpopts.EquateApprox(0, 1e-12))
}

func TestArcZeroSweep(t *testing.T) {
	a := NewArc(Pt(0, 0), 1, 0.5, 0.5)
	pts := a.WaypointsSpaced(0.1)
	if len(pts) != 1 {
		t.Fatalf("got %d waypoints, want 1", len(pts))
	}
	assertNear(t, pts[0], a.Start(), 0)
}
