package fxcurve

import (
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/image/math/fixed"
)

// Point is a 2D point in fixed-point coordinates.
//
// In cartesian mode X and Y are coordinates. Curves produced by
// [Curve.ToPolar] store the radius in X and the angle, in radians, in Y.
type Point[S Scale] struct {
	X Fixed[S]
	Y Fixed[S]
}

// Pt returns the point (x, y).
func Pt[S Scale](x, y Fixed[S]) Point[S] {
	return Point[S]{X: x, Y: y}
}

// PtInt returns the point (x, y) for integer coordinates.
func PtInt[S Scale](x, y int32) Point[S] {
	return Point[S]{X: Int[S](x), Y: Int[S](y)}
}

// PtFloat returns the point closest to (x, y).
func PtFloat[S Scale](x, y float64) Point[S] {
	return Point[S]{X: FromFloat64[S](x), Y: FromFloat64[S](y)}
}

func (pt Point[S]) Splat() (Fixed[S], Fixed[S]) {
	return pt.X, pt.Y
}

func (pt Point[S]) String() string {
	return fmt.Sprintf("(%v, %v)", pt.X, pt.Y)
}

func (pt Point[S]) Translate(o Vec2[S]) Point[S] {
	return Point[S]{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes p−o.
// To subtract a vector from p, use Translate and negate the vector.
func (pt Point[S]) Sub(o Point[S]) Vec2[S] {
	return Vec2[S]{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Midpoint returns the midpoint of two points, rounded towards negative
// infinity.
func (pt Point[S]) Midpoint(o Point[S]) Point[S] {
	return Point[S]{
		X: Fixed[S]((int64(pt.X) + int64(o.X)) >> 1),
		Y: Fixed[S]((int64(pt.Y) + int64(o.Y)) >> 1),
	}
}

// Distance returns the euclidean distance between two points, rounded down.
func (pt Point[S]) Distance(o Point[S]) Fixed[S] {
	return Fixed[S](sat32(int64(isqrt(pt.DistanceSquared(o)))))
}

// DistanceSquared returns the squared euclidean distance between two points.
// The result has twice as many fractional bits as S.
func (pt Point[S]) DistanceSquared(o Point[S]) uint64 {
	return hypot2(int64(pt.X)-int64(o.X), int64(pt.Y)-int64(o.Y))
}

// Fixed26_6 converts the point to the 26.6 format used by
// golang.org/x/image rasterizers.
func (pt Point[S]) Fixed26_6() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(sat32(rescale(int64(pt.X), fracBits[S](), 6))),
		Y: fixed.Int26_6(sat32(rescale(int64(pt.Y), fracBits[S](), 6))),
	}
}

// hypot2 returns x² + y², saturated to the uint64 range. Differences of
// int32 coordinates can reach 2³², whose square doesn't fit.
func hypot2(x, y int64) uint64 {
	ax, ay := abs64(x), abs64(y)
	hx, lx := bits.Mul64(ax, ax)
	hy, ly := bits.Mul64(ay, ay)
	sum, carry := bits.Add64(lx, ly, 0)
	if hx != 0 || hy != 0 || carry != 0 {
		return math.MaxUint64
	}
	return sum
}
