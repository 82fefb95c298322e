// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package section computes anatomical cross-section clip planes and
// applies them to a model's materials, consistently across one or more
// synchronized views. At most one plane is active per model; the plane
// is recomputed from the live position on every change, never
// persisted.
package section

import (
	"log/slog"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/neurovis/neurovis/scene"
)

// Section identifies one of the three canonical mutually perpendicular
// section orientations.
type Section int32

const (
	// Coronal is the frontal section, normal along Y. It is the
	// default orientation, used as the fallback for unknown inputs.
	Coronal Section = iota

	// Sagittal is the lateral section, normal along X.
	Sagittal

	// Axial is the horizontal section, normal along Z.
	Axial
)

var sectionNames = [...]string{"coronal", "sagittal", "axial"}

func (se Section) String() string {
	if se < 0 || int(se) >= len(sectionNames) {
		return "Section(?)"
	}
	return sectionNames[se]
}

// SectionFromString parses a section type name. Unknown names fall
// back to [Coronal] with a diagnostic.
func SectionFromString(s string) Section {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coronal":
		return Coronal
	case "sagittal":
		return Sagittal
	case "axial":
		return Axial
	}
	slog.Warn("section: unknown section type; using coronal", "type", s)
	return Coronal
}

// Normal returns the unit axis normal for this section orientation.
func (se Section) Normal() math32.Vector3 {
	switch se {
	case Sagittal:
		return math32.Vec3(1, 0, 0)
	case Axial:
		return math32.Vec3(0, 0, 1)
	}
	return math32.Vec3(0, 1, 0)
}

// ClipPlane ties a half-space plane to the section type that
// produced it.
type ClipPlane struct {
	scene.Plane

	// Section is the orientation this plane was computed for.
	Section Section
}

// ComputePlane returns the clip plane for the given section type at
// position in [0,1]. The plane constant is the affine map
// (position - 0.5) * 2: position 0 -> -1, 0.5 -> 0, 1 -> 1.
func ComputePlane(se Section, position float32) ClipPlane {
	return ClipPlane{
		Plane:   scene.Plane{Normal: se.Normal(), Constant: (position - 0.5) * 2},
		Section: se,
	}
}

// Apply sets the plane as the single active clip plane on every
// material under model, enabling shadow clipping and marking each
// material dirty. It replaces any previously active plane and is safe
// to invoke redundantly. A nil model is a no-op.
func Apply(model scene.Node, cp ClipPlane) {
	if model == nil {
		slog.Warn("section: no model to clip")
		return
	}
	scene.WalkSolids(model, func(sld *scene.Solid) {
		mt := &sld.Material
		mt.ClipPlanes = []scene.Plane{cp.Plane}
		mt.ClipShadows = true
		mt.MarkDirty()
	})
}

// Remove clears the clipping-plane list on all materials under model.
func Remove(model scene.Node) {
	if model == nil {
		return
	}
	scene.WalkSolids(model, func(sld *scene.Solid) {
		mt := &sld.Material
		mt.ClipPlanes = nil
		mt.ClipShadows = false
		mt.MarkDirty()
	})
}

// View is one synchronized view of the model, with its own fixed
// section orientation.
type View struct {

	// Name identifies the view for diagnostics.
	Name string

	// Section is this view's fixed orientation.
	Section Section

	// Model is this view's model root.
	Model scene.Node
}

// SyncViews applies each view's own clip plane at the shared position,
// keeping all views synchronized to one scalar parameter.
func SyncViews(position float32, views ...*View) {
	for _, vw := range views {
		if vw == nil {
			continue
		}
		Apply(vw.Model, ComputePlane(vw.Section, position))
	}
}
