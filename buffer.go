package fxcurve

import (
	"iter"
	"sync/atomic"
)

// PointBuffer is a bounded ring buffer of points on caller-owned storage.
//
// Besides single-point Read and Write, the buffer offers bulk access through
// contiguous views of its storage (ReadArrayBegin, WriteArrayBegin). A view
// never crosses the end of the storage: when a bulk write doesn't fit before
// the end, the tail of the storage is skipped and counts as lost until the
// reader has passed it. This wastes a bounded amount of capacity instead of
// copying across the wrap point.
//
// Read, Write, CanRead, CanWrite and LookAhead may be used by one reader and
// one writer concurrently. All other methods touch both ends of the buffer
// and must not be called while the other side is active.
//
// The buffer never allocates after construction.
type PointBuffer[S Scale] struct {
	buf []Point[S]

	// rd is owned by the reader, wr and pending by the writer.
	rd      int
	wr      int
	pending int

	// lostTotal is the cumulative number of skipped slots.
	lostTotal int

	// count is the number of readable points. lost is the number of skipped
	// slots at the end of buf, starting at index lostAt. The writer stores
	// lostAt before lost, and lost before publishing points through count.
	count  atomic.Int32
	lost   atomic.Int32
	lostAt atomic.Int32
}

// NewPointBuffer returns a buffer using storage as its backing array. Its
// capacity is len(storage). The buffer owns storage until it is discarded.
func NewPointBuffer[S Scale](storage []Point[S]) *PointBuffer[S] {
	if len(storage) == 0 {
		panic("fxcurve: empty buffer storage")
	}
	return &PointBuffer[S]{buf: storage}
}

// Cap returns the buffer's capacity.
func (b *PointBuffer[S]) Cap() int { return len(b.buf) }

// Len returns the number of readable points. It is the same as CanRead.
func (b *PointBuffer[S]) Len() int { return int(b.count.Load()) }

// CanRead returns the number of points that can be read.
func (b *PointBuffer[S]) CanRead() int { return int(b.count.Load()) }

// CanWrite returns the number of points that can be written. While some of
// the storage is lost to a bulk write, the result is smaller than
// Cap()-CanRead().
func (b *PointBuffer[S]) CanWrite() int {
	// Both counters only shrink from the writer's point of view, so stale
	// loads understate.
	return len(b.buf) - int(b.count.Load()) - int(b.lost.Load())
}

// Lost returns the cumulative number of slots that bulk writes have skipped.
// It never decreases, not even on Clear.
func (b *PointBuffer[S]) Lost() int { return b.lostTotal }

func (b *PointBuffer[S]) next(i int) int {
	i++
	if i == len(b.buf) {
		return 0
	}
	return i
}

// Write appends pt. It returns false if the buffer is full.
func (b *PointBuffer[S]) Write(pt Point[S]) bool {
	if b.CanWrite() == 0 {
		return false
	}
	b.buf[b.wr] = pt
	b.wr = b.next(b.wr)
	b.count.Add(1)
	return true
}

// Read removes and returns the oldest point. It returns false if the buffer
// is empty.
func (b *PointBuffer[S]) Read() (Point[S], bool) {
	if b.count.Load() == 0 {
		return Point[S]{}, false
	}
	b.skipLost()
	pt := b.buf[b.rd]
	b.rd = b.next(b.rd)
	b.count.Add(-1)
	return pt, true
}

// skipLost moves the reader past the lost tail once it has reached it.
func (b *PointBuffer[S]) skipLost() {
	if n := b.lost.Load(); n > 0 && int32(b.rd) == b.lostAt.Load() {
		b.rd = 0
		b.lost.Add(-n)
	}
}

// index maps the i'th readable point to its slot.
func (b *PointBuffer[S]) index(i int) int {
	j := b.rd + i
	if n := int(b.lost.Load()); n > 0 && j >= int(b.lostAt.Load()) {
		// The reader is never past the lost tail while it exists.
		j += n
	}
	if j >= len(b.buf) {
		j -= len(b.buf)
	}
	return j
}

// LookAhead returns the n'th readable point without consuming it. Negative
// values of n index from the end, with -1 being the most recently written
// point.
func (b *PointBuffer[S]) LookAhead(n int) (Point[S], bool) {
	count := int(b.count.Load())
	if n < 0 {
		n += count
	}
	if n < 0 || n >= count {
		return Point[S]{}, false
	}
	return b.buf[b.index(n)], true
}

func (b *PointBuffer[S]) at(i int) *Point[S] {
	return &b.buf[b.index(i)]
}

// CanReadArray returns the length of the view ReadArrayBegin would return.
func (b *PointBuffer[S]) CanReadArray() int {
	count := int(b.count.Load())
	if count == 0 {
		return 0
	}
	rd := b.rd
	if n := b.lost.Load(); n > 0 {
		if at := int(b.lostAt.Load()); rd != at {
			return min(count, at-rd)
		}
		rd = 0
	}
	return min(count, len(b.buf)-rd)
}

// ReadArrayBegin returns the longest contiguous view of readable points,
// starting with the oldest. The view is empty if nothing can be read.
// Consume points from the view with ReadArrayEnd.
func (b *PointBuffer[S]) ReadArrayBegin() []Point[S] {
	n := b.CanReadArray()
	if n == 0 {
		return nil
	}
	b.skipLost()
	return b.buf[b.rd : b.rd+n]
}

// ReadArrayEnd consumes the first n points of the view returned by
// ReadArrayBegin.
func (b *PointBuffer[S]) ReadArrayEnd(n int) {
	if n < 0 || n > b.CanReadArray() {
		panic("fxcurve: ReadArrayEnd beyond view")
	}
	if n == 0 {
		return
	}
	b.rd += n
	if b.rd == len(b.buf) {
		b.rd = 0
	}
	b.count.Add(int32(-n))
}

// CanWriteArray returns the largest n for which WriteArrayBegin succeeds.
func (b *PointBuffer[S]) CanWriteArray() int {
	count, lost := int(b.count.Load()), int(b.lost.Load())
	free := len(b.buf) - count - lost
	if free == 0 {
		return 0
	}
	if lost > 0 || b.rd > b.wr {
		return free
	}
	return max(len(b.buf)-b.wr, b.rd)
}

// WriteArrayBegin returns a contiguous view of n writable slots, or false if
// there is no such view. If the n slots don't fit before the end of the
// storage, the remaining tail is skipped and lost until the reader passes
// it. Commit written slots with WriteArrayEnd.
//
// A request can fail even when CanWrite reports n or more free slots.
func (b *PointBuffer[S]) WriteArrayBegin(n int) ([]Point[S], bool) {
	count, lost := int(b.count.Load()), int(b.lost.Load())
	if n <= 0 || n > len(b.buf)-count-lost {
		return nil, false
	}
	if lost > 0 || b.rd > b.wr {
		// The free slots are [wr, rd).
		b.pending = n
		return b.buf[b.wr : b.wr+n], true
	}
	// The free slots are [wr, len) and [0, rd).
	if n <= len(b.buf)-b.wr {
		b.pending = n
		return b.buf[b.wr : b.wr+n], true
	}
	if n > b.rd {
		return nil, false
	}
	tail := len(b.buf) - b.wr
	b.lostAt.Store(int32(b.wr))
	b.lost.Store(int32(tail))
	b.lostTotal += tail
	b.wr = 0
	b.pending = n
	Logger().Debug("point buffer skipped tail", "lost", tail, "request", n)
	return b.buf[:n], true
}

// WriteArrayEnd commits the first n slots of the view returned by the last
// WriteArrayBegin.
func (b *PointBuffer[S]) WriteArrayEnd(n int) {
	if n < 0 || n > b.pending {
		panic("fxcurve: WriteArrayEnd beyond view")
	}
	b.pending = 0
	if n == 0 {
		return
	}
	b.wr += n
	if b.wr == len(b.buf) {
		b.wr = 0
	}
	b.count.Add(int32(n))
}

// Clear discards all points and any lost slots.
func (b *PointBuffer[S]) Clear() {
	b.rd, b.wr, b.pending = 0, 0, 0
	b.count.Store(0)
	b.lost.Store(0)
	b.lostAt.Store(0)
}

// Rotate shifts the readable points cyclically so that the n'th point
// becomes the first. Negative n rotates in the other direction.
func (b *PointBuffer[S]) Rotate(n int) {
	count := b.Len()
	if count == 0 {
		return
	}
	n %= count
	if n < 0 {
		n += count
	}
	if n == 0 {
		return
	}
	b.reverse(0, n)
	b.reverse(n, count)
	b.reverse(0, count)
}

// Reverse reverses the order of the readable points.
func (b *PointBuffer[S]) Reverse() {
	b.reverse(0, b.Len())
}

func (b *PointBuffer[S]) reverse(i, j int) {
	for j--; i < j; i, j = i+1, j-1 {
		pi, pj := b.at(i), b.at(j)
		*pi, *pj = *pj, *pi
	}
}

// All returns an iterator over the readable points, oldest first, without
// consuming them.
func (b *PointBuffer[S]) All() iter.Seq[Point[S]] {
	return func(yield func(Point[S]) bool) {
		n := b.Len()
		for i := range n {
			if !yield(*b.at(i)) {
				return
			}
		}
	}
}
