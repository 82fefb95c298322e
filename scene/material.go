// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// Plane is a half-space clipping plane in Hessian normal form
// (normal · p + constant = 0), as stored on clipped materials.
type Plane struct {

	// Normal is the unit plane normal.
	Normal math32.Vector3

	// Constant is the signed plane offset.
	Constant float32
}

// Material describes the surface properties of a solid: standard phong
// lighting parameters plus the clip-plane and display-mode state that
// the cross-section and toggle subsystems mutate.
type Material struct {

	// Color is the main surface color, used for both ambient and
	// diffuse in the standard phong model.
	Color color.RGBA

	// Emissive is the color the surface emits independent of lighting.
	Emissive color.RGBA

	// EmissiveIntensity scales the emissive contribution.
	EmissiveIntensity float32

	// Shiny is the specular shininess exponent.
	Shiny float32

	// Reflective is the specular reflectiveness factor.
	Reflective float32

	// Bright is an overall multiplier on the final computed color.
	Bright float32

	// Opacity is the surface opacity in [0,1]; 1 is fully opaque.
	Opacity float32

	// Wireframe renders edges only, with no lighting response.
	Wireframe bool

	// DepthWrite is whether rendering writes the depth buffer.
	// Transparency display turns it off so occluded geometry remains
	// visible through the surface.
	DepthWrite bool

	// CullBack culls back-facing surfaces.
	CullBack bool

	// ClipPlanes is the active clipping-plane list. At most one
	// section plane is active system-wide per model.
	ClipPlanes []Plane

	// ClipShadows is whether shadows respect the clip planes.
	ClipShadows bool

	// Dirty is set by [Material.MarkDirty] when the hosting engine
	// must re-upload this material; the engine clears it.
	Dirty bool
}

// Defaults sets default surface parameters.
func (mt *Material) Defaults() {
	mt.Color = colors.FromRGB(128, 128, 128)
	mt.Emissive = color.RGBA{}
	mt.EmissiveIntensity = 1
	mt.Shiny = 30
	mt.Reflective = 1
	mt.Bright = 1
	mt.Opacity = 1
	mt.DepthWrite = true
	mt.CullBack = true
}

// MarkDirty flags the material for re-upload by the hosting engine.
func (mt *Material) MarkDirty() {
	mt.Dirty = true
}

// IsTransparent returns true if the material requires transparent
// rendering.
func (mt *Material) IsTransparent() bool {
	return mt.Opacity < 1 || mt.Color.A < 255
}
