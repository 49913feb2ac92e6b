package fxcurve

import (
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, PtInt[E16](-10, 0), PtInt[E16](0, 0).Translate(Vec(Int[E16](-10), 0)))
	diff(t, Vec(Int[E16](3), Int[E16](-4)), PtInt[E16](5, 1).Sub(PtInt[E16](2, 5)))
	// Midpoints round towards negative infinity.
	diff(t, Point[E0]{X: -2, Y: 1}, Point[E0]{X: -3, Y: 1}.Midpoint(Point[E0]{X: 0, Y: 2}))
}

func TestPointDistance(t *testing.T) {
	p1 := PtInt[E16](0, 10)
	p2 := PtInt[E16](0, 5)
	if d := p1.Distance(p2); d != Int[E16](5) {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := PtInt[E16](-11, 1)
	p4 := PtInt[E16](-7, -2)
	if d := p3.Distance(p4); d != Int[E16](5) {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25<<32 {
		t.Errorf("got squared distance %d, want %d", d, uint64(25<<32))
	}

	// Distances beyond the scale's range saturate.
	far := Point[E16]{X: -1 << 30, Y: -1 << 30}
	near := Point[E16]{X: 1 << 30, Y: 1 << 30}
	if d := far.Distance(near); d != 1<<31-1 {
		t.Errorf("got distance %v, want saturation", d)
	}

	// Squared distances across the whole int32 range saturate instead of
	// wrapping around.
	far = Point[E16]{X: math.MinInt32, Y: math.MinInt32}
	near = Point[E16]{X: math.MaxInt32, Y: math.MaxInt32}
	if d := far.DistanceSquared(near); d != math.MaxUint64 {
		t.Errorf("got squared distance %d, want saturation", d)
	}
	if d := far.Distance(near); d != math.MaxInt32 {
		t.Errorf("got distance %v, want saturation", d)
	}
	edge := Point[E16]{X: math.MaxInt32}
	if d := far.DistanceSquared(edge); d != math.MaxUint64 {
		t.Errorf("got squared distance %d, want saturation", d)
	}
	if d := hypot2(1<<31, 1<<31); d != 1<<63 {
		t.Errorf("got hypot2 %d, want %d", d, uint64(1<<63))
	}
}

func TestVecProducts(t *testing.T) {
	a := Vec(Int[E8](3), Int[E8](4))
	b := Vec(Int[E8](-4), Int[E8](3))
	if got := a.Dot(b); got != 0 {
		t.Errorf("got dot product %d, want 0", got)
	}
	if got, want := a.Cross(b), int64(25<<16); got != want {
		t.Errorf("got cross product %d, want %d", got, want)
	}
	diff(t, b, a.Perp())
	if got := a.Hypot(); got != Int[E8](5) {
		t.Errorf("got length %v, want 5", got)
	}
	diff(t, Vec(Int[E8](6), Int[E8](8)), a.Mul(Int[E8](2)))
	if !a.Add(a.Negate()).IsZero() {
		t.Error("v + -v isn't zero")
	}
}

func TestRect(t *testing.T) {
	r := NewRectFromPoints(PtInt[E16](4, -1), PtInt[E16](-2, 3))
	diff(t, Rect[E16]{Int[E16](-2), Int[E16](-1), Int[E16](4), Int[E16](3)}, r)
	if r.Width() != Int[E16](6) || r.Height() != Int[E16](4) {
		t.Errorf("got size %v×%v, want 6×4", r.Width(), r.Height())
	}
	diff(t, PtInt[E16](1, 1), r.Center())
	if !r.Contains(PtInt[E16](4, 3)) {
		t.Error("rectangle doesn't contain its corner")
	}
	if r.Contains(PtInt[E16](5, 0)) {
		t.Error("rectangle contains an outside point")
	}
	u := r.UnionPoint(PtInt[E16](10, 0)).Union(r.Translate(Vec(Int[E16](0), Int[E16](-5))))
	diff(t, Rect[E16]{Int[E16](-2), Int[E16](-6), Int[E16](10), Int[E16](3)}, u)

	want := fixed.Rectangle26_6{Min: fixed.P(-2, -1), Max: fixed.P(4, 3)}
	if got := r.Fixed26_6(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
