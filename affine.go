package clothoid

import (
	"math"
)

// Affine is a 2D affine transform. Its coefficients, in order, fill the
// columns of the augmented matrix
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	|  0  0  1 |
//
// Transforms compose right to left: p.Transform(a.Mul(b)) equals
// p.Transform(b).Transform(a).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// FlipY is a transform that is flipped on the y-axis. It mirrors a curve
// that turns left into one that turns right.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scale returns a transform that scales x and y independently.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Rotate creates an affine transform representing rotation.
//
// A positive angle rotates the positive X direction into positive Y, which
// is anti-clockwise in a y-up system.
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Frame returns the transform that maps local coordinates, with the x axis
// pointing along heading, into world coordinates anchored at origin.
func Frame(origin Point, heading float64) Affine {
	return Rotate(heading).ThenTranslate(Vec2(origin))
}

// Mul returns the transform that applies o, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenTranslate returns aff followed by a translation by v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}
