// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/math32"
)

const (
	// DendriteSamples is the fixed polyline sample count for dendrite
	// curves.
	DendriteSamples = 30

	// PathSamples is the fixed polyline sample count for axon and
	// synapse curves.
	PathSamples = 40
)

// Curve is a quadratic Bezier through three control points, used for
// every dendrite, axon, and synapse path. The middle control point is
// a perpendicular perturbation of the segment midpoint, giving each
// process a gentle organic bend.
type Curve struct {
	Start   math32.Vector3
	Control math32.Vector3
	End     math32.Vector3
}

// NewCurve returns a curve from start to end whose middle control
// point is offset perpendicular to the segment by a random fraction of
// wobble times the segment length. When bounds is non-nil the control
// point is clamped inside the bounding volume, so by convexity every
// sampled point stays inside it.
func NewCurve(rnd randx.Rand, start, end math32.Vector3, wobble float32, b *Bounds) Curve {
	seg := end.Sub(start)
	length := seg.Length()
	mid := start.Add(end).MulScalar(0.5)
	if length > 0 {
		perp := perpendicular(rnd, seg.Normal())
		mid = mid.Add(perp.MulScalar(rnd.Float32() * wobble * length))
	}
	if b != nil {
		mid = b.Box.ClampPoint(mid)
	}
	return Curve{Start: start, Control: mid, End: end}
}

// Point returns the curve position at t in [0,1].
func (cv Curve) Point(t float32) math32.Vector3 {
	u := 1 - t
	p := cv.Start.MulScalar(u * u)
	p = p.Add(cv.Control.MulScalar(2 * u * t))
	return p.Add(cv.End.MulScalar(t * t))
}

// Length returns the straight-line length between the curve endpoints.
func (cv Curve) Length() float32 {
	return cv.End.Sub(cv.Start).Length()
}

// Sample returns n points along the curve, including both endpoints.
func (cv Curve) Sample(n int) []math32.Vector3 {
	if n < 2 {
		n = 2
	}
	pts := make([]math32.Vector3, n)
	for i := range pts {
		pts[i] = cv.Point(float32(i) / float32(n-1))
	}
	return pts
}
