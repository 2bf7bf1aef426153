package clothoid

import (
	"math"
	"slices"
)

// Clothoid is a segment of an Euler spiral: a curve whose curvature changes
// linearly with arc length. At arc length t,
//
//	curvature(t) = Sharpness·t + InitialCurvature
//	heading(t)   = InitialHeading + Sharpness·t²/2 + InitialCurvature·t
//
// A negative Sharpness spirals clockwise.
//
// If Reversed is set, waypoints are emitted from the end of the spiral
// toward InitialPosition. This is used when the spiral's natural
// parametrization runs against the direction of travel. Point and Length are
// unaffected by Reversed.
type Clothoid struct {
	InitialPosition  Point
	InitialHeading   float64
	ArcLength        float64
	Sharpness        float64
	InitialCurvature float64
	Reversed         bool

	// Fresnel is the table used for evaluating spirals that start out
	// straight. If nil, [DefaultFresnelTable] is used.
	Fresnel *FresnelTable

	visibility
}

// NewClothoid returns a visible, forward clothoid that starts with zero
// curvature.
func NewClothoid(p0 Point, heading, length, sharpness float64) *Clothoid {
	return &Clothoid{
		InitialPosition: p0,
		InitialHeading:  heading,
		ArcLength:       length,
		Sharpness:       sharpness,
	}
}

// Configure sets all geometric parameters at once. The Fresnel table and
// visibility are left as they are.
func (c *Clothoid) Configure(p0 Point, heading, length, sharpness, initialCurvature float64, reversed bool) {
	c.InitialPosition = p0
	c.InitialHeading = heading
	c.ArcLength = length
	c.Sharpness = sharpness
	c.InitialCurvature = initialCurvature
	c.Reversed = reversed
}

func (c *Clothoid) isCurve() {}

func (c *Clothoid) Length() float64 {
	return c.ArcLength
}

// Curvature returns the signed curvature at arc length t.
func (c *Clothoid) Curvature(t float64) float64 {
	return c.Sharpness*t + c.InitialCurvature
}

// Heading returns the tangent angle at arc length t.
func (c *Clothoid) Heading(t float64) float64 {
	return c.InitialHeading + c.Sharpness*t*t/2 + c.InitialCurvature*t
}

// tangent is the integrand of the clothoid's position.
func (c *Clothoid) tangent(t float64) Vec2 {
	return VecFromAngle(c.Heading(t))
}

// fresnelScale returns the factor that maps arc length to the argument of
// the normalized Fresnel integrals.
func (c *Clothoid) fresnelScale() float64 {
	return math.Sqrt(math.Abs(c.Sharpness) / math.Pi)
}

// Point returns the position at arc length t.
//
// Spirals that start out straight are evaluated from the Fresnel table for
// as long as the table covers t. Everything else is integrated numerically.
func (c *Clothoid) Point(t float64) Point {
	if c.InitialCurvature == 0 {
		if c.Sharpness == 0 {
			return c.InitialPosition.Translate(VecFromAngle(c.InitialHeading).Mul(t))
		}
		scale := c.fresnelScale()
		if u := t * scale; u >= 0 && u <= 1 {
			return Point(orDefault(c.Fresnel).Vec(u)).Transform(c.fresnelFrame(scale))
		}
	}
	steps := max(10, int(math.Abs(t)*10))
	return c.InitialPosition.Translate(Integral(c.tangent, 0, t, steps))
}

// fresnelFrame maps a point of the normalized Fresnel spiral to the
// clothoid's world coordinates.
func (c *Clothoid) fresnelFrame(scale float64) Affine {
	aff := Scale(1/scale, 1/scale)
	if c.Sharpness < 0 {
		aff = aff.Mul(FlipY)
	}
	return Frame(c.InitialPosition, c.InitialHeading).Mul(aff)
}

// Start returns the first waypoint, taking Reversed into account.
func (c *Clothoid) Start() Point {
	if c.Reversed {
		return c.Point(c.ArcLength)
	}
	return c.InitialPosition
}

// End returns the last waypoint, taking Reversed into account.
func (c *Clothoid) End() Point {
	if c.Reversed {
		return c.InitialPosition
	}
	return c.Point(c.ArcLength)
}

func (c *Clothoid) Waypoints(n int) []Point {
	return c.AppendWaypoints(make([]Point, 0, n), n)
}

// AppendWaypoints appends n samples evenly spaced in arc length. All samples
// come from a single running integral.
func (c *Clothoid) AppendWaypoints(dst []Point, n int) []Point {
	if n == 1 {
		return append(dst, c.Start())
	}
	start := len(dst)
	for v := range MovingIntegralSeq(c.tangent, 0, c.ArcLength, n-1, Vec2(c.InitialPosition)) {
		dst = append(dst, Point(v))
	}
	if c.Reversed {
		slices.Reverse(dst[start:])
	}
	return dst
}

func (c *Clothoid) WaypointsSpaced(ds float64) []Point {
	return c.AppendWaypointsSpaced(make([]Point, 0, spacedCap(c.ArcLength, ds, 2)), ds)
}

// AppendWaypointsSpaced appends samples spaced ds apart in arc length. A
// zero-length clothoid contributes only its initial position.
func (c *Clothoid) AppendWaypointsSpaced(dst []Point, ds float64) []Point {
	if c.ArcLength == 0 {
		return append(dst, c.InitialPosition)
	}
	start := len(dst)
	for v := range MovingIntegralSpacedSeq(c.tangent, 0, c.ArcLength, ds, Vec2(c.InitialPosition)) {
		dst = append(dst, Point(v))
	}
	if c.Reversed {
		slices.Reverse(dst[start:])
	}
	return dst
}

// BoundingBox returns a box enclosing a dense sampling of the clothoid. It
// may underestimate the true extents by a tiny fraction of the length.
func (c *Clothoid) BoundingBox() Rect {
	const samples = 65
	return BoundingBoxOf(c.Waypoints(samples))
}
