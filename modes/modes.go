// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package modes implements the reversible material display modes:
// wireframe and transparency. Enabling a mode snapshots the material
// attributes it overrides; disabling restores every snapshot and
// evicts it. A snapshot exists for a material exactly while that
// material is in the overridden mode.
package modes

import (
	"image/color"
	"log/slog"

	"cogentcore.org/core/colors"

	"github.com/neurovis/neurovis/scene"
)

// Snapshot holds the material attributes a display mode overrides.
type Snapshot struct {
	Color             color.RGBA
	Emissive          color.RGBA
	EmissiveIntensity float32
	Shiny             float32
	Reflective        float32
	Bright            float32
	Opacity           float32
	Wireframe         bool
	DepthWrite        bool
}

func snapshotOf(mt *scene.Material) Snapshot {
	return Snapshot{
		Color:             mt.Color,
		Emissive:          mt.Emissive,
		EmissiveIntensity: mt.EmissiveIntensity,
		Shiny:             mt.Shiny,
		Reflective:        mt.Reflective,
		Bright:            mt.Bright,
		Opacity:           mt.Opacity,
		Wireframe:         mt.Wireframe,
		DepthWrite:        mt.DepthWrite,
	}
}

func (sn Snapshot) restore(mt *scene.Material) {
	mt.Color = sn.Color
	mt.Emissive = sn.Emissive
	mt.EmissiveIntensity = sn.EmissiveIntensity
	mt.Shiny = sn.Shiny
	mt.Reflective = sn.Reflective
	mt.Bright = sn.Bright
	mt.Opacity = sn.Opacity
	mt.Wireframe = sn.Wireframe
	mt.DepthWrite = sn.DepthWrite
	mt.MarkDirty()
}

// Toggles tracks the per-material snapshots for each display mode.
// Materials are keyed by pointer identity, which is stable for the
// lifetime of the scene; entries are evicted exactly on disable.
type Toggles struct {
	wireframe   map[*scene.Material]Snapshot
	transparent map[*scene.Material]Snapshot
}

// NewToggles returns an empty toggle table.
func NewToggles() *Toggles {
	return &Toggles{
		wireframe:   make(map[*scene.Material]Snapshot),
		transparent: make(map[*scene.Material]Snapshot),
	}
}

var wireColor = colors.FromRGB(70, 130, 180)

// SetWireframe enables or disables wireframe display for every
// material under model. Enabling is idempotent: a second enable never
// overwrites the first snapshot. Disabling restores all snapshotted
// materials, including any no longer reachable under model.
func (tg *Toggles) SetWireframe(model scene.Node, on bool) {
	if !on {
		for mt, sn := range tg.wireframe {
			sn.restore(mt)
			delete(tg.wireframe, mt)
		}
		return
	}
	if model == nil {
		slog.Warn("modes: no model to toggle wireframe on")
		return
	}
	scene.WalkSolids(model, func(sld *scene.Solid) {
		mt := &sld.Material
		if _, has := tg.wireframe[mt]; has {
			return
		}
		tg.wireframe[mt] = snapshotOf(mt)
		mt.Wireframe = true
		mt.Color = wireColor
		// flat shading: no specular response
		mt.Shiny = 0
		mt.Reflective = 0
		mt.Bright = 1
		mt.MarkDirty()
	})
}

// SetTransparent enables or disables transparency display for every
// material under model, at the given opacity in (0,1]. Enabling is
// idempotent; disabling restores and evicts all snapshots.
func (tg *Toggles) SetTransparent(model scene.Node, on bool, opacity float32) {
	if !on {
		for mt, sn := range tg.transparent {
			sn.restore(mt)
			delete(tg.transparent, mt)
		}
		return
	}
	if model == nil {
		slog.Warn("modes: no model to toggle transparency on")
		return
	}
	if opacity <= 0 || opacity > 1 {
		opacity = 0.4
	}
	scene.WalkSolids(model, func(sld *scene.Solid) {
		mt := &sld.Material
		if _, has := tg.transparent[mt]; has {
			return
		}
		tg.transparent[mt] = snapshotOf(mt)
		mt.Opacity = opacity
		mt.DepthWrite = false
		mt.MarkDirty()
	})
}

// WireframeCount returns the number of materials currently overridden
// by wireframe display.
func (tg *Toggles) WireframeCount() int {
	return len(tg.wireframe)
}

// TransparentCount returns the number of materials currently
// overridden by transparency display.
func (tg *Toggles) TransparentCount() int {
	return len(tg.transparent)
}
