// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package neuro generates the biologically-inspired neuron network
// overlaid on an anatomical model, and animates signal propagation
// through it. Generation is fully deterministic for a given
// [randx.Rand] source.
package neuro

import (
	"cogentcore.org/core/math32"

	"github.com/neurovis/neurovis/scene"
)

const (
	// MarginFactor is the fraction of the smallest bounding dimension
	// inset from every face to form the safe volume.
	MarginFactor = 0.28

	// VerticalBias is the fraction of the vertical size that the safe
	// volume is shifted upward, biasing generated structures toward
	// the upper part of the model.
	VerticalBias = 0.10
)

// Bounds holds the bounding volume of the target model and the inset
// safe volume that generated structures must stay within.
type Bounds struct {

	// Box is the full bounding volume of the target model.
	Box math32.Box3

	// Safe is Box inset by Margin on all axes, then shifted upward by
	// the vertical bias. Neuron somas are placed inside it.
	Safe math32.Box3

	// Center of the bounding volume.
	Center math32.Vector3

	// Size of the bounding volume.
	Size math32.Vector3

	// Margin is the inset distance from each face of Box.
	Margin float32
}

// NewBounds derives a [Bounds] from the given bounding volume.
func NewBounds(box math32.Box3) *Bounds {
	b := &Bounds{Box: box}
	b.Center = box.Center()
	b.Size = box.Size()
	b.Margin = MarginFactor * math32.Min(b.Size.X, math32.Min(b.Size.Y, b.Size.Z))
	b.Safe = box
	b.Safe.ExpandByScalar(-b.Margin)
	bias := VerticalBias * b.Size.Y
	b.Safe.Min.Y += bias
	b.Safe.Max.Y += bias
	return b
}

// BoundsOf computes [Bounds] from the bounding box of the given model.
func BoundsOf(model scene.Node) *Bounds {
	return NewBounds(scene.BBox(model))
}

// Contains reports whether p is inside the full bounding volume.
func (b *Bounds) Contains(p math32.Vector3) bool {
	return b.Box.ContainsPoint(p)
}

// SafeContains reports whether p is inside the safe volume.
func (b *Bounds) SafeContains(p math32.Vector3) bool {
	return b.Safe.ContainsPoint(p)
}

// marginTol absorbs rounding when checking margin distances.
const marginTol = 1.0e-4

// WithinMargin reports whether p keeps at least the safety margin from
// every face of the bounding volume, within tolerance. Dendrite and
// axon endpoints must satisfy this.
func (b *Bounds) WithinMargin(p math32.Vector3) bool {
	m := b.Margin - marginTol
	return p.X >= b.Box.Min.X+m && p.X <= b.Box.Max.X-m &&
		p.Y >= b.Box.Min.Y+m && p.Y <= b.Box.Max.Y-m &&
		p.Z >= b.Box.Min.Z+m && p.Z <= b.Box.Max.Z-m
}

// ExitDistance returns the distance from origin along the unit
// direction dir to the margin-inset boundary: the slab exit distance,
// taking the per-axis exit with the correct sign for each direction
// component and the minimum over axes. Returns 0 when origin is
// already outside the inset region along dir.
func (b *Bounds) ExitDistance(origin, dir math32.Vector3) float32 {
	const eps = 1.0e-6
	lo := b.Box.Min.AddScalar(b.Margin)
	hi := b.Box.Max.SubScalar(b.Margin)
	dist := math32.Infinity
	axis := func(o, d, lo, hi float32) {
		var t float32
		switch {
		case d > eps:
			t = (hi - o) / d
		case d < -eps:
			t = (lo - o) / d
		default:
			return
		}
		if t < dist {
			dist = t
		}
	}
	axis(origin.X, dir.X, lo.X, hi.X)
	axis(origin.Y, dir.Y, lo.Y, hi.Y)
	axis(origin.Z, dir.Z, lo.Z, hi.Z)
	if math32.IsInf(dist, 1) || dist < 0 {
		return 0
	}
	return dist
}
