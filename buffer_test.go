package fxcurve

import (
	"runtime"
	"slices"
	"sync"
	"testing"
)

func pts(xs ...int32) []Point[E0] {
	out := make([]Point[E0], len(xs))
	for i, x := range xs {
		out[i] = Point[E0]{X: Fixed[E0](x), Y: Fixed[E0](-x)}
	}
	return out
}

func readAll(t *testing.T, b *PointBuffer[E0]) []Point[E0] {
	t.Helper()
	var out []Point[E0]
	for b.CanRead() > 0 {
		pt, ok := b.Read()
		if !ok {
			t.Fatal("Read failed although CanRead > 0")
		}
		out = append(out, pt)
	}
	return out
}

func writeAll(t *testing.T, b *PointBuffer[E0], pts []Point[E0]) {
	t.Helper()
	for _, pt := range pts {
		if !b.Write(pt) {
			t.Fatalf("Write of %v failed", pt)
		}
	}
}

func TestPointBufferFragmentation(t *testing.T) {
	b := NewPointBuffer(make([]Point[E0], 8))
	writeAll(t, b, pts(1, 2, 3, 4, 5, 6, 7, 8))
	if b.Write(Point[E0]{}) {
		t.Error("Write succeeded on a full buffer")
	}
	if _, ok := b.Read(); !ok {
		t.Fatal("Read failed")
	}
	if got := b.CanWrite(); got != 1 {
		t.Errorf("got CanWrite() == %d, want 1", got)
	}
	if _, ok := b.WriteArrayBegin(8); ok {
		t.Error("bulk write of 8 succeeded with one free slot")
	}

	readAll(t, b)
	writeAll(t, b, pts(9))
	readAll(t, b)
	// The buffer is empty, but its cursors sit at index 1.
	if got := b.CanWrite(); got != 8 {
		t.Errorf("got CanWrite() == %d, want 8", got)
	}
	if got := b.CanWriteArray(); got != 7 {
		t.Errorf("got CanWriteArray() == %d, want 7", got)
	}
	if _, ok := b.WriteArrayBegin(8); ok {
		t.Error("bulk write of 8 succeeded across the end of the storage")
	}
	if got := b.Lost(); got != 0 {
		t.Errorf("refused bulk write lost %d slots", got)
	}
}

func TestPointBufferLostTail(t *testing.T) {
	b := NewPointBuffer(make([]Point[E0], 8))
	writeAll(t, b, pts(1, 2, 3, 4, 5))
	readAll(t, b)

	view, ok := b.WriteArrayBegin(4)
	if !ok {
		t.Fatal("bulk write of 4 failed")
	}
	if len(view) != 4 {
		t.Fatalf("got view of length %d, want 4", len(view))
	}
	copy(view, pts(10, 11, 12, 13))
	b.WriteArrayEnd(4)

	if got := b.Lost(); got != 3 {
		t.Errorf("got Lost() == %d, want 3", got)
	}
	if got := b.CanRead(); got != 4 {
		t.Errorf("got CanRead() == %d, want 4", got)
	}
	if got := b.CanWrite(); got != 1 {
		t.Errorf("got CanWrite() == %d, want 1", got)
	}
	if pt, _ := b.LookAhead(0); pt.X != 10 {
		t.Errorf("got LookAhead(0) == %v, want x = 10", pt)
	}
	if got := b.CanReadArray(); got != 4 {
		t.Errorf("got CanReadArray() == %d, want 4", got)
	}

	if pt, _ := b.Read(); pt.X != 10 {
		t.Errorf("got %v, want x = 10", pt)
	}
	// The reader has passed the lost tail and it is free again.
	if got := b.CanWrite(); got != 5 {
		t.Errorf("got CanWrite() == %d, want 5", got)
	}
	if got := b.Lost(); got != 3 {
		t.Errorf("cumulative loss decreased to %d", got)
	}
	diff(t, pts(11, 12, 13), readAll(t, b))

	b.Clear()
	if got := b.Lost(); got != 3 {
		t.Errorf("Clear reset the cumulative loss to %d", got)
	}
	if got := b.CanWrite(); got != 8 {
		t.Errorf("got CanWrite() == %d after Clear, want 8", got)
	}
}

func TestPointBufferInvariant(t *testing.T) {
	b := NewPointBuffer(make([]Point[E0], 7))
	var want []Point[E0]
	var got []Point[E0]
	next := int32(0)
	// Alternate bursts of writes and reads of varying lengths.
	for round := range 50 {
		for range round % 5 {
			if b.CanWrite() == 0 {
				break
			}
			pt := Point[E0]{X: Fixed[E0](next)}
			next++
			b.Write(pt)
			want = append(want, pt)
			if b.CanRead()+b.CanWrite() != b.Cap() {
				t.Fatalf("CanRead() + CanWrite() = %d, want %d", b.CanRead()+b.CanWrite(), b.Cap())
			}
		}
		for range round % 3 {
			if b.CanRead() == 0 {
				break
			}
			pt, _ := b.Read()
			got = append(got, pt)
			if b.CanRead()+b.CanWrite() != b.Cap() {
				t.Fatalf("CanRead() + CanWrite() = %d, want %d", b.CanRead()+b.CanWrite(), b.Cap())
			}
		}
	}
	got = append(got, readAll(t, b)...)
	diff(t, want, got)
	if b.Lost() != 0 {
		t.Errorf("single-point operations lost %d slots", b.Lost())
	}
}

func TestPointBufferLossBound(t *testing.T) {
	b := NewPointBuffer(make([]Point[E0], 16))
	calls := 0
	lost := 0
	for i := range 40 {
		n := 1 + i%6
		if view, ok := b.WriteArrayBegin(n); ok {
			calls++
			for j := range view {
				view[j] = Point[E0]{X: Fixed[E0](i)}
			}
			b.WriteArrayEnd(n)
		}
		if b.Lost() < lost {
			t.Fatalf("cumulative loss decreased from %d to %d", lost, b.Lost())
		}
		lost = b.Lost()
		if view := b.ReadArrayBegin(); len(view) > 0 {
			b.ReadArrayEnd(min(len(view), 1+i%4))
		}
	}
	// Every bulk write can waste at most the slots it doesn't fit into.
	if lost > calls*5 {
		t.Errorf("lost %d slots in %d bulk writes", lost, calls)
	}
}

func TestPointBufferLookAhead(t *testing.T) {
	b := NewPointBuffer(make([]Point[E0], 4))
	writeAll(t, b, pts(1, 2, 3))
	b.Read()
	writeAll(t, b, pts(4, 5))

	tests := []struct {
		n    int
		want int32
		ok   bool
	}{
		{0, 2, true},
		{3, 5, true},
		{4, 0, false},
		{-1, 5, true},
		{-4, 2, true},
		{-5, 0, false},
	}
	for _, tt := range tests {
		pt, ok := b.LookAhead(tt.n)
		if ok != tt.ok || (ok && pt.X != Fixed[E0](tt.want)) {
			t.Errorf("LookAhead(%d) = %v, %t, want x = %d, %t", tt.n, pt, ok, tt.want, tt.ok)
		}
	}
	if got := b.CanRead(); got != 4 {
		t.Errorf("LookAhead consumed points, CanRead() == %d", got)
	}
}

func TestPointBufferArrays(t *testing.T) {
	b := NewPointBuffer(make([]Point[E0], 6))
	view, ok := b.WriteArrayBegin(4)
	if !ok {
		t.Fatal("bulk write failed")
	}
	copy(view, pts(1, 2, 3, 4))
	// Commit fewer slots than requested.
	b.WriteArrayEnd(3)
	if got := b.CanRead(); got != 3 {
		t.Errorf("got CanRead() == %d, want 3", got)
	}

	rv := b.ReadArrayBegin()
	diff(t, pts(1, 2, 3), rv)
	b.ReadArrayEnd(2)
	writeAll(t, b, pts(5, 6, 7, 8))
	// The readable points wrap around the end of the storage, so the view
	// stops there.
	if got := b.CanReadArray(); got != 4 {
		t.Errorf("got CanReadArray() == %d, want 4", got)
	}
	diff(t, pts(3, 5, 6, 7), b.ReadArrayBegin())
	b.ReadArrayEnd(4)
	diff(t, pts(8), b.ReadArrayBegin())
	b.ReadArrayEnd(1)
	if b.ReadArrayBegin() != nil {
		t.Error("got a view of an empty buffer")
	}
}

func TestPointBufferRotateReverse(t *testing.T) {
	b := NewPointBuffer(make([]Point[E0], 6))
	// Move the cursors so the points wrap around the end of the storage.
	writeAll(t, b, pts(0, 0, 0, 0))
	readAll(t, b)
	writeAll(t, b, pts(1, 2, 3, 4, 5))

	b.Rotate(2)
	diff(t, pts(3, 4, 5, 1, 2), slices.Collect(b.All()))
	b.Rotate(-2)
	diff(t, pts(1, 2, 3, 4, 5), slices.Collect(b.All()))
	b.Rotate(7)
	diff(t, pts(3, 4, 5, 1, 2), slices.Collect(b.All()))
	b.Reverse()
	diff(t, pts(2, 1, 5, 4, 3), readAll(t, b))
}

func TestPointBufferRotateLostTail(t *testing.T) {
	b := NewPointBuffer(make([]Point[E0], 8))
	writeAll(t, b, pts(0, 0, 0, 0, 0, 1, 2))
	for range 5 {
		b.Read()
	}
	view, ok := b.WriteArrayBegin(3)
	if !ok {
		t.Fatal("bulk write failed")
	}
	copy(view, pts(3, 4, 5))
	b.WriteArrayEnd(3)
	if b.Lost() != 1 {
		t.Fatalf("got Lost() == %d, want 1", b.Lost())
	}

	diff(t, pts(1, 2, 3, 4, 5), slices.Collect(b.All()))
	b.Reverse()
	diff(t, pts(5, 4, 3, 2, 1), slices.Collect(b.All()))
	b.Rotate(1)
	diff(t, pts(4, 3, 2, 1, 5), readAll(t, b))
}

func TestPointBufferConcurrent(t *testing.T) {
	const n = 10000
	b := NewPointBuffer(make([]Point[E0], 16))
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := int32(0); i < n; {
			if b.CanWrite() > 0 && b.Write(Point[E0]{X: Fixed[E0](i)}) {
				i++
			} else {
				runtime.Gosched()
			}
		}
	}()
	for i := int32(0); i < n; {
		pt, ok := b.Read()
		if !ok {
			runtime.Gosched()
			continue
		}
		if pt.X != Fixed[E0](i) {
			t.Fatalf("read %v, want x = %d", pt, i)
		}
		i++
	}
	wg.Wait()
}

func TestPointBufferPanics(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s didn't panic", name)
			}
		}()
		fn()
	}
	mustPanic("NewPointBuffer", func() { NewPointBuffer[E0](nil) })
	b := NewPointBuffer(make([]Point[E0], 4))
	b.WriteArrayBegin(2)
	mustPanic("WriteArrayEnd", func() { b.WriteArrayEnd(3) })
	mustPanic("ReadArrayEnd", func() { b.ReadArrayEnd(1) })
}
