package fxcurve

import (
	"golang.org/x/image/math/fixed"
)

type Rect[S Scale] struct {
	X0, Y0 Fixed[S]
	X1, Y1 Fixed[S]
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints[S Scale](p0, p1 Point[S]) Rect[S] {
	return Rect[S]{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

func (r Rect[S]) Width() Fixed[S] {
	return r.X1 - r.X0
}

func (r Rect[S]) Height() Fixed[S] {
	return r.Y1 - r.Y0
}

func (r Rect[S]) Center() Point[S] {
	return Point[S]{X: r.X0, Y: r.Y0}.Midpoint(Point[S]{X: r.X1, Y: r.Y1})
}

// Contains reports whether pt lies inside the rectangle, including its
// perimeter.
func (r Rect[S]) Contains(pt Point[S]) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect[S]) Union(o Rect[S]) Rect[S] {
	return Rect[S]{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points yields their
// enclosing rectangle.
func (r Rect[S]) UnionPoint(pt Point[S]) Rect[S] {
	return Rect[S]{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

func (r Rect[S]) Translate(v Vec2[S]) Rect[S] {
	return Rect[S]{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

// Fixed26_6 converts the rectangle to the 26.6 format used by
// golang.org/x/image.
func (r Rect[S]) Fixed26_6() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: Point[S]{X: r.X0, Y: r.Y0}.Fixed26_6(),
		Max: Point[S]{X: r.X1, Y: r.Y1}.Fixed26_6(),
	}
}
