package fxcurve

import (
	"fmt"
)

type Vec2[S Scale] struct {
	X Fixed[S]
	Y Fixed[S]
}

// Vec returns the vector ⟨x, y⟩.
func Vec[S Scale](x, y Fixed[S]) Vec2[S] {
	return Vec2[S]{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2[S]) Splat() (Fixed[S], Fixed[S]) {
	return v.X, v.Y
}

func (v Vec2[S]) String() string {
	return fmt.Sprintf("⟨%v, %v⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o, with twice as many fractional bits
// as S.
func (v Vec2[S]) Dot(o Vec2[S]) int64 {
	return int64(v.X)*int64(o.X) + int64(v.Y)*int64(o.Y)
}

// Cross returns the cross product of v and o, with twice as many fractional
// bits as S.
func (v Vec2[S]) Cross(o Vec2[S]) int64 {
	return int64(v.X)*int64(o.Y) - int64(v.Y)*int64(o.X)
}

// Hypot returns the magnitude of the vector, rounded down.
func (v Vec2[S]) Hypot() Fixed[S] {
	return Fixed[S](sat32(int64(isqrt(v.Hypot2()))))
}

// Hypot2 returns the squared magnitude of the vector, with twice as many
// fractional bits as S.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2[S]) Hypot2() uint64 {
	return hypot2(int64(v.X), int64(v.Y))
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2[S]) Add(o Vec2[S]) Vec2[S] {
	return Vec2[S]{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2[S]) Sub(o Vec2[S]) Vec2[S] {
	return Vec2[S]{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

// Mul scales the vector by f.
func (v Vec2[S]) Mul(f Fixed[S]) Vec2[S] {
	return Vec2[S]{
		X: v.X.Mul(f),
		Y: v.Y.Mul(f),
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2[S]) Negate() Vec2[S] {
	return Vec2[S]{
		X: -v.X,
		Y: -v.Y,
	}
}

// Perp returns the vector rotated by 90° in the positive direction, ⟨−y, x⟩.
func (v Vec2[S]) Perp() Vec2[S] {
	return Vec2[S]{
		X: -v.Y,
		Y: v.X,
	}
}

// IsZero reports whether both components are zero.
func (v Vec2[S]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
