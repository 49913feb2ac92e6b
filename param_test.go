package fxcurve

import (
	"testing"
)

func TestSteps(t *testing.T) {
	tests := []struct {
		n    int
		want Param
	}{
		{1, ParamOne},
		{2, ParamOne / 2},
		{3, 357913942},
		{1 << 40, 1},
	}
	for _, tt := range tests {
		if got := Steps(tt.n); got != tt.want {
			t.Errorf("Steps(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
	defer func() {
		if recover() == nil {
			t.Error("Steps(0) didn't panic")
		}
	}()
	Steps(0)
}

func TestQuadIter(t *testing.T) {
	it := NewQuadIter(Steps(4))
	var ts, t2s []Param
	for it.Next() {
		ts = append(ts, it.T())
		t2s = append(t2s, it.T2())
	}
	diff(t, []Param{ParamOne / 4, ParamOne / 2, 3 * (ParamOne / 4), ParamOne}, ts)
	diff(t, []Param{ParamOne / 16, ParamOne / 4, 9 * (ParamOne / 16), ParamOne}, t2s)
	if got := it.T3(); got != ParamOne {
		t.Errorf("got t³ = %d at the end, want %d", got, ParamOne)
	}
	if it.Next() {
		t.Error("Next succeeded after reaching t = 1")
	}
	if it.T() != ParamOne {
		t.Errorf("failed Next changed t to %d", it.T())
	}
}

func TestCubicIterLandsOnOne(t *testing.T) {
	it := NewCubicIter(Steps(3))
	n := 0
	for it.Next() {
		n++
	}
	if n != 3 {
		t.Errorf("got %d steps, want 3", n)
	}
	if it.T() != ParamOne || it.T2() != ParamOne || it.T3() != ParamOne {
		t.Errorf("got powers %d, %d, %d at the end, want %d", it.T(), it.T2(), it.T3(), ParamOne)
	}

	zero := NewCubicIter(0)
	if zero.Next() {
		t.Error("Next succeeded with a zero step")
	}
}

func TestIncCubicIter(t *testing.T) {
	for _, n := range []int{1, 7, 1000, 100000} {
		inc := NewIncCubicIter(Steps(n))
		ref := NewCubicIter(Steps(n))
		steps := 0
		const tol = Param(ParamOne / 10000)
		for ref.Next() {
			if !inc.Next() {
				t.Fatalf("n=%d: incremental iterator stopped after %d steps", n, steps)
			}
			steps++
			if inc.T() != ref.T() {
				t.Fatalf("n=%d: got t = %d, want %d", n, inc.T(), ref.T())
			}
			if d := absDiff(inc.T2(), ref.T2()); d > 1 {
				t.Fatalf("n=%d step %d: got t² = %d, want %d", n, steps, inc.T2(), ref.T2())
			}
			if d := absDiff(inc.T3(), ref.T3()); d > tol {
				t.Fatalf("n=%d step %d: got t³ = %d, want %d", n, steps, inc.T3(), ref.T3())
			}
		}
		if inc.Next() {
			t.Errorf("n=%d: incremental iterator continued past t = 1", n)
		}
		if inc.T3() != ParamOne {
			t.Errorf("n=%d: got t³ = %d at the end, want %d", n, inc.T3(), ParamOne)
		}
	}
}

func absDiff(a, b Param) Param {
	if a > b {
		return a - b
	}
	return b - a
}
