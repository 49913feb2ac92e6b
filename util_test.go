package fxcurve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// assertNear checks that two points differ by at most tol raw units per
// coordinate.
func assertNear[S Scale](t *testing.T, p0, p1 Point[S], tol int64) {
	t.Helper()
	dx := abs64(int64(p0.X) - int64(p1.X))
	dy := abs64(int64(p0.Y) - int64(p1.Y))
	if dx > uint64(tol) || dy > uint64(tol) {
		t.Errorf("got %v, want %v (±%d)", p1, p0, tol)
	}
}

// newQuadCurve returns a quadratic curve with room for n points, holding
// the given points after start.
func newQuadCurve(t *testing.T, n int, start Point[E16], pts ...Point[E16]) *Curve[E16] {
	t.Helper()
	c := NewCurve(Quadratic, start, make([]Point[E16], n))
	for i := 0; i+1 < len(pts); i += 2 {
		if !c.AppendSegment(pts[i], pts[i+1]) {
			t.Fatalf("couldn't append segment %d", i/2)
		}
	}
	return c
}
