// Package fxcurve provides fixed-point 2D Bézier curves for motion control:
// evaluation, adaptive flattening, conversion to polar coordinates, and tool
// radius compensation. It was designed to plan trajectories for stepper
// motors and similar hardware, where floating point is slow or unavailable
// and memory is allocated once, up front.
//
// # Fixed point
//
// All coordinates are [Fixed] values, 32-bit integers with a number of
// fractional bits that is part of their type. Fixed[E16] has 16 fractional
// bits and represents 1.0 as 65536. Values of different scales are
// different types, and [Rescale] converts between them. Products and
// squares use 64-bit intermediates, and a few computations use 128 bits.
// No operation of this package relies on floating point; [FromFloat64] and
// [Fixed.Float64] exist for input, output, and tests.
//
// Curve parameters are [Param] values in [0, 1] with 30 fractional bits.
//
// # Curves and buffers
//
// A [Curve] is a start point followed by Bézier segments of one [Degree],
// from linear to quartic. Its points live in a [PointBuffer], a ring buffer
// on storage provided by the caller. The buffer never grows, so every
// operation that adds points can run out of room. Such operations report
// failure with a boolean result instead of allocating.
//
// Curve operations work in place. They read segments from the front of the
// buffer and append their results to the back, so a buffer only needs room
// for the extra points an operation produces, not for a second copy of the
// curve. When an operation runs out of room, it keeps the remaining
// segments unchanged and in order, and reports how far it got. The work
// done up to that point is not undone.
//
// # Operations
//
//   - [Curve.Subdivide] splits every segment in half, with de Casteljau's
//     algorithm.
//   - [Curve.Flatten] splits the segments that exceed a flatness or chord
//     length threshold. Repeated passes converge on a curve whose segments
//     all satisfy it.
//   - [Curve.ToPolar] converts a quadratic curve to polar coordinates about a
//     center, accumulating angles across revolutions.
//   - [Curve.Offset] and [Curve.OffsetOptimistic] displace a quadratic curve
//     by a tool radius, joining segments with miters or bridging segments.
//
// Individual segments can be converted to polynomials in t with
// [QuadBez.Coeffs] and [CubicBez.Coeffs] and evaluated step by step with the
// iterators [QuadIter], [CubicIter], and [IncCubicIter].
//
// # Angles
//
// Angles and unit vectors are computed with a table of 32 rotations by
// halving angles, from π/2 down to π/2³², in the manner of [CORDIC]. There
// are no trigonometric functions. See [Vec2.Polar] and [FromPolar].
//
// # Concurrency
//
// Curves are not safe for concurrent use. A [PointBuffer] supports one
// reader and one writer running concurrently, as long as they only use
// Read, Write, CanRead, CanWrite, and LookAhead.
//
// # Logging
//
// The package logs to a [log/slog.Logger] set with [SetLogger], at debug
// level, when an operation runs out of room or falls back to an
// approximation. It logs nothing by default.
//
// [CORDIC]: https://en.wikipedia.org/wiki/CORDIC
package fxcurve
