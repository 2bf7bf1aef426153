package clothoid

import (
	"fmt"
	"math"
)

// Point is a position in the plane. Differences of points are [Vec2]
// values.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Latex formats the point as a LaTeX tuple.
func (pt Point) Latex() string {
	return Vec2(pt).Latex()
}

// Translate returns pt moved by o.
func (pt Point) Translate(o Vec2) Point {
	return Point(Vec2(pt).Add(o))
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2(pt).Sub(Vec2(o))
}

func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Distance returns the Euclidean distance between pt and o.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

func (pt Point) DistanceSquared(o Point) float64 {
	return pt.Sub(o).Hypot2()
}

// IsInf reports whether either coordinate is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether either coordinate is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
