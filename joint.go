package clothoid

import (
	"fmt"
	"math"
)

// JointOpts configures a [Joint].
type JointOpts struct {
	// Sharpness is the rate of change of curvature along the transition
	// spirals, per unit of arc length. It must be positive.
	Sharpness float64
	// MaxCurvature is the largest curvature, in 1/length units, that the
	// transition may reach. It must be positive. Corners that would need
	// more curvature get a circular arc of radius 1/MaxCurvature in the
	// middle.
	MaxCurvature float64
	// Fresnel is the table used to solve the transition. If nil,
	// [DefaultFresnelTable] is used.
	Fresnel *FresnelTable
}

// Angular thresholds below which a corner is too flat, or too close to a
// complete reversal, to be blended.
const (
	straightEpsilon = 1e-9
	reversalEpsilon = 1e-9
)

// maxOffsetRatio bounds the offset of a blend relative to the longer leg.
// Corners whose blend would reach further are left unsmoothed.
const maxOffsetRatio = 100

// Joint smooths the corner of the polyline start → corner → end.
//
// The corner is replaced by a line, a clothoid, an optional circular arc, a
// second clothoid and another line, in that order. The transition is
// continuous in both tangent and curvature, and its curvature never exceeds
// MaxCurvature.
//
// A Joint observes the three points it was created with; it doesn't copy
// them. After moving any of them, call [Joint.Update] to recompute the
// transition. A Joint is not safe for concurrent use.
type Joint struct {
	start, corner, end *Point

	opts JointOpts

	line1     Line
	clothoid1 Clothoid
	arc       Arc
	clothoid2 Clothoid
	line2     Line

	turn   float64
	offset float64
}

// NewJoint returns a joint for the corner at corner, and solves it. It
// panics if any point is nil or if the options are out of range.
func NewJoint(start, corner, end *Point, opts JointOpts) *Joint {
	if start == nil || corner == nil || end == nil {
		panic("NewJoint called with nil point")
	}
	if !(opts.Sharpness > 0) || math.IsInf(opts.Sharpness, 0) {
		panic(fmt.Sprintf("joint sharpness must be positive and finite, got %v", opts.Sharpness))
	}
	if !(opts.MaxCurvature > 0) {
		panic(fmt.Sprintf("joint max curvature must be positive, got %v", opts.MaxCurvature))
	}
	tbl := orDefault(opts.Fresnel)
	opts.Fresnel = tbl
	j := &Joint{
		start:  start,
		corner: corner,
		end:    end,
		opts:   opts,
	}
	j.clothoid1.Fresnel = tbl
	j.clothoid2.Fresnel = tbl
	j.Update()
	return j
}

// Update recomputes all sub-curves from the current positions of the
// joint's three points. Calling it again without moving the points yields
// identical sub-curves.
func (j *Joint) Update() {
	start, corner, end := *j.start, *j.corner, *j.end
	leg1 := corner.Sub(start)
	leg2 := end.Sub(corner)

	if leg1.Hypot2() == 0 || leg2.Hypot2() == 0 {
		j.straighten(0)
		return
	}

	e1 := leg1.Normalize()
	e2 := leg2.Normalize()
	delta0 := e1.Angle()
	delta := e1.OrientedAngle(e2)
	deltaAbs := math.Abs(delta)
	if deltaAbs < straightEpsilon || deltaAbs > math.Pi-reversalEpsilon {
		j.straighten(delta)
		return
	}

	sigma := j.opts.Sharpness
	dir := math.Copysign(1, delta)
	tbl := j.opts.Fresnel

	var kappa, length, d float64
	if kappaMax := j.opts.MaxCurvature; kappaMax*kappaMax < deltaAbs*sigma {
		// The spirals reach maximum curvature before completing the turn;
		// an arc covers the rest.
		kappa = kappaMax
		deltaMin := kappa * kappa / sigma
		length = kappa / sigma
		f := tbl.Vec(kappa / math.Sqrt(sigma*math.Pi)).Mul(math.Sqrt(math.Pi / sigma))
		tau := kappa * kappa / (2 * sigma)
		r := 1 / kappa
		sin, cos := math.Sincos(tau)
		h := f.Y + cos*r
		d = f.X - sin*r
		center := Vec(d, dir*h).Rotate(delta0)
		d += h * math.Tan(deltaAbs/2)
		o := corner.Translate(e1.Mul(-d)).Translate(center)

		var startAngle, endAngle float64
		if delta > 0 {
			startAngle = delta0 + (deltaMin-math.Pi)/2
			endAngle = delta0 + deltaAbs - (deltaMin+math.Pi)/2
		} else {
			startAngle = delta0 - (deltaMin-math.Pi)/2
			endAngle = delta0 - deltaAbs + (deltaMin+math.Pi)/2
		}
		j.arc.Configure(o, r, startAngle, endAngle)
		j.arc.SetVisible(true)
	} else {
		// Two spirals meeting head to head complete the turn on their
		// own.
		kappa = math.Sqrt(deltaAbs * sigma)
		length = math.Sqrt(deltaAbs / sigma)
		f := tbl.Vec(math.Sqrt(deltaAbs / math.Pi)).Mul(math.Sqrt(math.Pi / sigma))
		d = f.X + f.Y*math.Tan(deltaAbs/2)
		j.arc.SetVisible(false)
	}

	// Near a reversal the offset grows like 1/(π-|δ|) without bound. A
	// blend that overshoots the legs this far is no longer a corner blend.
	if legs := max(leg1.Hypot(), leg2.Hypot()); !(d <= maxOffsetRatio*legs) {
		Logger().Debug("joint offset out of range", "corner", corner, "turn", delta, "offset", d)
		j.straighten(delta)
		return
	}

	p1 := corner.Translate(e1.Mul(-d))
	p2 := corner.Translate(e2.Mul(d))
	j.clothoid1.Configure(p1, delta0, length, dir*sigma, 0, false)
	j.clothoid2.Configure(p2, delta0+delta+math.Pi, length, -dir*sigma, 0, true)
	j.line1.Configure(start, p1)
	j.line2.Configure(p2, end)
	j.turn = delta
	j.offset = d

	Logger().Debug("solved joint",
		"corner", corner,
		"turn", delta,
		"curvature", kappa,
		"arc", j.arc.Visible(),
		"offset", d,
		"fits", j.Fits())
}

// straighten degenerates the joint to the plain polyline through the
// corner, with zero-length spirals and no arc.
func (j *Joint) straighten(delta float64) {
	start, corner, end := *j.start, *j.corner, *j.end
	heading := corner.Sub(start).Angle()
	j.clothoid1.Configure(corner, heading, 0, 0, 0, false)
	j.clothoid2.Configure(corner, heading+delta+math.Pi, 0, 0, 0, true)
	j.arc.SetVisible(false)
	j.line1.Configure(start, corner)
	j.line2.Configure(corner, end)
	j.turn = delta
	j.offset = 0

	Logger().Debug("joint left unsmoothed", "corner", corner, "turn", delta)
}

// Waypoints returns points spaced ds apart along the whole transition, from
// the joint's start point to its end point.
func (j *Joint) Waypoints(ds float64) []Point {
	return j.AppendWaypoints(make([]Point, 0, spacedCap(j.Length(), ds, 8)), ds)
}

// AppendWaypoints appends the points of [Joint.Waypoints] to dst.
func (j *Joint) AppendWaypoints(dst []Point, ds float64) []Point {
	return AppendCurves(dst, ds, j.curves()...)
}

func (j *Joint) curves() []Curve {
	return []Curve{&j.line1, &j.clothoid1, &j.arc, &j.clothoid2, &j.line2}
}

// Curves returns the joint's five sub-curves in order of travel. The arc is
// included even when it is hidden. The curves belong to the joint and are
// overwritten by the next call to Update.
func (j *Joint) Curves() [5]Curve {
	return [5]Curve{&j.line1, &j.clothoid1, &j.arc, &j.clothoid2, &j.line2}
}

func (j *Joint) Line1() *Line         { return &j.line1 }
func (j *Joint) Clothoid1() *Clothoid { return &j.clothoid1 }
func (j *Joint) Arc() *Arc            { return &j.arc }
func (j *Joint) Clothoid2() *Clothoid { return &j.clothoid2 }
func (j *Joint) Line2() *Line         { return &j.line2 }

// Opts returns the joint's options, with the Fresnel table resolved.
func (j *Joint) Opts() JointOpts { return j.opts }

// Turn returns the signed turning angle at the corner, in (-π, π].
func (j *Joint) Turn() float64 { return j.turn }

// HasArc reports whether the transition needed a circular arc.
func (j *Joint) HasArc() bool { return j.arc.Visible() }

// Offset returns the distance from the corner at which the transition
// leaves the incoming leg and joins the outgoing leg.
func (j *Joint) Offset() float64 { return j.offset }

// Fits reports whether the transition fits within both legs. If it doesn't,
// the straight sub-segments run backwards and the path doubles back on
// itself.
func (j *Joint) Fits() bool {
	return j.offset <= j.corner.Distance(*j.start) && j.offset <= j.corner.Distance(*j.end)
}

// Length returns the arc length of the whole transition.
func (j *Joint) Length() float64 {
	return TotalLength(j.curves()...)
}

// BoundingBox returns a box enclosing all visible sub-curves.
func (j *Joint) BoundingBox() Rect {
	r := j.line1.BoundingBox()
	for _, c := range j.curves()[1:] {
		if c.Visible() {
			r = r.Union(c.BoundingBox())
		}
	}
	return r
}
