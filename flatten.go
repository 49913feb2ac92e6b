package fxcurve

import (
	"fmt"
)

// Metric selects how Flatten measures a segment.
type Metric int

const (
	// Unflatness is the distance between the segment's midpoint and the
	// middle of its control polygon. It shrinks to roughly a quarter with
	// every subdivision.
	Unflatness Metric = iota
	// ChordLength is the distance between the segment's endpoints. It halves
	// with every subdivision.
	ChordLength
)

func (m Metric) String() string {
	switch m {
	case Unflatness:
		return "unflatness"
	case ChordLength:
		return "chord"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// measure returns the squared metric of seg, with twice as many fractional
// bits as S.
func measure[S Scale](m Metric, seg *Segment[S]) uint64 {
	switch m {
	case Unflatness:
		return unflatness(seg)
	case ChordLength:
		return seg.P[0].DistanceSquared(seg.P[seg.Degree])
	default:
		panic(fmt.Sprintf("fxcurve: unknown metric %d", int(m)))
	}
}

// unflatness returns the squared distance between the curve's point at
// t = 0.5 and the middle of the control polygon: the middle control point
// for even degrees, the midpoint of the middle edge for odd ones.
func unflatness[S Scale](seg *Segment[S]) uint64 {
	d := int(seg.Degree)
	var tmp [MaxDegree + 1]Point[S]
	copy(tmp[:], seg.P[:d+1])
	for n := d; n > 0; n-- {
		for j := range n {
			tmp[j] = tmp[j].Midpoint(tmp[j+1])
		}
	}
	mid := tmp[0]

	var poly Point[S]
	if d%2 == 0 {
		poly = seg.P[d/2]
	} else {
		poly = seg.P[d/2].Midpoint(seg.P[d/2+1])
	}
	return mid.DistanceSquared(poly)
}

// Flatten runs one flattening pass: every segment whose metric exceeds
// threshold is replaced by its two halves, the others are kept. It returns
// the largest metric among the resulting segments, rounded up, so callers
// can repeat the pass until it is at most threshold.
//
// Flatten returns false if a segment that needed splitting didn't fit in
// the buffer. That segment and all segments after it are kept unsplit, in
// order, and the reported metric includes them.
func (c *Curve[S]) Flatten(metric Metric, threshold Fixed[S]) (worst Fixed[S], ok bool) {
	n := c.NumSegments()
	k := int(c.Degree)
	thr := max(int64(threshold), 0)
	thr2 := uint64(thr * thr)
	var worst2 uint64
	ok = true
	prev := c.Start
	for range n {
		seg, _ := c.readSegment(prev)
		prev = seg.End()
		m := measure(metric, &seg)
		if m <= thr2 {
			worst2 = max(worst2, m)
			c.writeSegment(&seg)
			continue
		}
		if ok && c.buf.CanWrite() >= 2*k {
			l, r := seg.Subdivide()
			worst2 = max(worst2, measure(metric, &l), measure(metric, &r))
			c.writeSegment(&l)
			c.writeSegment(&r)
			continue
		}
		if ok {
			Logger().Debug("flatten out of room", "metric", metric, "segments", n, "cap", c.buf.Cap())
			ok = false
		}
		worst2 = max(worst2, m)
		c.writeSegment(&seg)
	}
	return Fixed[S](sat32(int64(isqrtCeil(worst2)))), ok
}

// FlattenTo runs flattening passes until no segment's metric exceeds
// threshold, for at most maxPasses passes. It returns the number of passes
// run, and false if the curve isn't flat enough after maxPasses or ran out
// of room.
func (c *Curve[S]) FlattenTo(metric Metric, threshold Fixed[S], maxPasses int) (int, bool) {
	for pass := 1; pass <= maxPasses; pass++ {
		worst, ok := c.Flatten(metric, threshold)
		if !ok {
			return pass, false
		}
		if worst <= threshold {
			return pass, true
		}
	}
	return maxPasses, false
}
