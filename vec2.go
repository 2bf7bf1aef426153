package clothoid

import (
	"fmt"
	"math"
)

// Vec2 is a displacement or direction in the plane.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Latex formats the vector as a LaTeX tuple, suitable for pasting into
// graphing calculators.
func (v Vec2) Latex() string {
	return fmt.Sprintf("\\left(%g,%g\\right)", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Angle returns the heading of the vector in radians, measured from ⟨1, 0⟩
// toward the positive y direction. This is atan2(y, x).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// OrientedAngle returns the signed angle that rotates v onto o, in the range
// (-π, π]. Positive values are anti-clockwise in a y-up system.
func (v Vec2) OrientedAngle(o Vec2) float64 {
	th := math.Atan2(v.Cross(o), v.Dot(o))
	if th == -math.Pi {
		return math.Pi
	}
	return th
}

// AngleBetween returns the unsigned angle between v and o, in [0, π].
func (v Vec2) AngleBetween(o Vec2) float64 {
	return math.Abs(v.OrientedAngle(o))
}

// VecFromAngle returns a unit vector of the given angle, which is expressed in radians.
// With θ = 0, the result is the positive x unit vector. At π/2, it is the positive y unit
// vector.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{
		X: x,
		Y: y,
	}
}

// Rotate rotates the vector anti-clockwise (in y-up space) by th radians.
func (v Vec2) Rotate(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same angle as o.
// This produces a NaN vector if the magnitude is 0.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1.0 / v.Hypot())
}

// Component returns the scalar projection of v onto dir.
func (v Vec2) Component(dir Vec2) float64 {
	return v.Dot(dir) / dir.Hypot()
}

// Project returns the vector projection of v onto dir.
func (v Vec2) Project(dir Vec2) Vec2 {
	return dir.Mul(v.Dot(dir) / dir.Hypot2())
}

// OrthogonalComponent returns the signed distance from the tip of v to the
// line through the origin along dir.
func (v Vec2) OrthogonalComponent(dir Vec2) float64 {
	return dir.Cross(v) / dir.Hypot()
}

// Reflect reflects v about the line whose unit normal is axis.
func (v Vec2) Reflect(axis Vec2) Vec2 {
	return v.Sub(axis.Mul(2 * v.Dot(axis)))
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2) Div(f float64) Vec2 {
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// MulVec multiplies v and o component-wise.
func (v Vec2) MulVec(o Vec2) Vec2 {
	return Vec2{
		X: v.X * o.X,
		Y: v.Y * o.Y,
	}
}

// DivVec divides v by o component-wise.
func (v Vec2) DivVec(o Vec2) Vec2 {
	return Vec2{
		X: v.X / o.X,
		Y: v.Y / o.Y,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}
