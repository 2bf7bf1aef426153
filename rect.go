package clothoid

import (
	"fmt"
)

// Rect is an axis-aligned bounding box spanning (X0, Y0) to (X1, Y1).
// Boxes built by this package always have X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRect returns the box with the given minimum and maximum corners. It
// panics if min exceeds max on either axis.
func NewRect(min, max Point) Rect {
	if min.X > max.X || min.Y > max.Y {
		panic(fmt.Sprintf("malformed bounding box: min %s exceeds max %s", min, max))
	}
	return Rect{min.X, min.Y, max.X, max.Y}
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// BoundingBoxOf returns the smallest box enclosing all points. It panics if
// pts is empty.
func BoundingBoxOf(pts []Point) Rect {
	if len(pts) == 0 {
		panic("called with no points")
	}
	r := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// Min returns the corner with the smallest coordinates.
func (r Rect) Min() Point { return Pt(r.X0, r.Y0) }

// Max returns the corner with the largest coordinates.
func (r Rect) Max() Point { return Pt(r.X1, r.Y1) }

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Center returns the center of the rectangle.
func (r Rect) Center() Point {
	return Pt(0.5*(r.X0+r.X1), 0.5*(r.Y0+r.Y1))
}

// Contains reports whether pt lies within r, boundary included.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Intersects reports whether r and o overlap. Boxes that only touch along an
// edge or at a corner count as overlapping.
func (r Rect) Intersects(o Rect) bool {
	return r.X0 <= o.X1 && r.X1 >= o.X0 &&
		r.Y0 <= o.Y1 && r.Y1 >= o.Y0
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands r by width on the left and right and by height on the
// top and bottom.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}
