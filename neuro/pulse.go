// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"

	"github.com/neurovis/neurovis/scene"
)

// Pulse is the transient glowing point that travels along a synapse
// curve during the transit stage. It is owned by the render root and
// releases its resources when removed.
type Pulse struct {

	// Solid is the render node; nil after Release.
	Solid *scene.Solid

	// Curve the pulse travels along.
	Curve Curve
}

// NewPulse creates a pulse solid under the given root. A nil root is a
// no-op returning nil, so pulse creation degrades silently when the
// render graph is missing.
func NewPulse(root *scene.Group, cv Curve, radius float32, clr color.RGBA) *Pulse {
	if root == nil {
		return nil
	}
	sld := tree.New[scene.Solid](root)
	sld.AsTree().SetName("signal-pulse")
	sld.Mesh = &scene.Sphere{Radius: radius}
	sld.Material.Color = clr
	sld.Material.Emissive = clr
	sld.Material.EmissiveIntensity = 2
	p := &Pulse{Solid: sld, Curve: cv}
	p.SetProgress(0)
	return p
}

// SetProgress positions the pulse at normalized progress t along its
// curve; scale and opacity both follow 0.8 + 0.2*sin(t*pi).
func (p *Pulse) SetProgress(t float32) {
	if p == nil || p.Solid == nil {
		return
	}
	p.Solid.Pose.Pos = p.Curve.Point(t)
	s := 0.8 + 0.2*math32.Sin(t*math32.Pi)
	p.Solid.Pose.Scale.SetScalar(s)
	p.Solid.Material.Opacity = s
	p.Solid.Material.MarkDirty()
}

// Release removes the pulse from the scene and frees its geometry.
func (p *Pulse) Release() {
	if p == nil || p.Solid == nil {
		return
	}
	scene.ReleaseTree(p.Solid)
	p.Solid = nil
}
