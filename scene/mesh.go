// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/core/math32"

// Mesh is the shape geometry of a [Solid]. Meshes hold only the data
// the hosting engine needs to build its own vertex buffers.
type Mesh interface {

	// MeshBBox returns the local bounding box of the mesh geometry.
	MeshBBox() math32.Box3

	// Release frees the mesh geometry data.
	Release()
}

// Sphere is a sphere mesh, used for neuron somas and signal pulses.
type Sphere struct {

	// Radius of the sphere.
	Radius float32
}

func (sp *Sphere) MeshBBox() math32.Box3 {
	r := sp.Radius
	return math32.B3(-r, -r, -r, r, r, r)
}

func (sp *Sphere) Release() {}

// Box is an axis-aligned box mesh centered on the origin.
type Box struct {

	// Size is the full extent along each dimension.
	Size math32.Vector3
}

func (bx *Box) MeshBBox() math32.Box3 {
	h := bx.Size.MulScalar(0.5)
	return math32.Box3{Min: h.Negate(), Max: h}
}

func (bx *Box) Release() {}

// Polyline is an open line strip through the given points, used for
// dendrite, axon, and synapse curves.
type Polyline struct {

	// Points are the world-space points of the line strip.
	Points []math32.Vector3

	// Width is the rendered line width hint.
	Width float32
}

func (pl *Polyline) MeshBBox() math32.Box3 {
	bb := math32.B3Empty()
	bb.ExpandByPoints(pl.Points)
	return bb
}

func (pl *Polyline) Release() {
	pl.Points = nil
}
