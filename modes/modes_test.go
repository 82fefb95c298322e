// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neurovis/neurovis/scene"
)

func modelSolid(t *testing.T) (*scene.Group, *scene.Solid) {
	t.Helper()
	model := scene.NewPlaceholder(nil)
	var sld *scene.Solid
	scene.WalkSolids(model, func(s *scene.Solid) { sld = s })
	assert.NotNil(t, sld)
	return model, sld
}

func TestWireframe(t *testing.T) {
	model, sld := modelSolid(t)
	orig := sld.Material.Color
	tg := NewToggles()

	tg.SetWireframe(model, true)
	assert.Equal(t, 1, tg.WireframeCount())
	assert.True(t, sld.Material.Wireframe)
	assert.Equal(t, wireColor, sld.Material.Color)
	assert.Equal(t, float32(0), sld.Material.Shiny)
	assert.True(t, sld.Material.Dirty)

	// second enable keeps the original snapshot
	tg.SetWireframe(model, true)
	assert.Equal(t, 1, tg.WireframeCount())

	tg.SetWireframe(model, false)
	assert.Equal(t, 0, tg.WireframeCount())
	assert.False(t, sld.Material.Wireframe)
	assert.Equal(t, orig, sld.Material.Color)
	assert.Equal(t, float32(30), sld.Material.Shiny)
}

func TestTransparent(t *testing.T) {
	model, sld := modelSolid(t)
	tg := NewToggles()

	tg.SetTransparent(model, true, 0.5)
	assert.Equal(t, 1, tg.TransparentCount())
	assert.Equal(t, float32(0.5), sld.Material.Opacity)
	assert.False(t, sld.Material.DepthWrite)
	assert.True(t, sld.Material.IsTransparent())

	tg.SetTransparent(model, false, 0)
	assert.Equal(t, 0, tg.TransparentCount())
	assert.Equal(t, float32(1), sld.Material.Opacity)
	assert.True(t, sld.Material.DepthWrite)
}

func TestTransparentInvalidOpacity(t *testing.T) {
	model, sld := modelSolid(t)
	tg := NewToggles()
	tg.SetTransparent(model, true, 1.5)
	assert.Equal(t, float32(0.4), sld.Material.Opacity)
}

func TestModesStack(t *testing.T) {
	model, sld := modelSolid(t)
	orig := sld.Material.Color
	tg := NewToggles()

	// enable both, disable in reverse order: original state survives
	tg.SetWireframe(model, true)
	tg.SetTransparent(model, true, 0.3)
	assert.True(t, sld.Material.Wireframe)
	assert.Equal(t, float32(0.3), sld.Material.Opacity)

	tg.SetTransparent(model, false, 0)
	assert.True(t, sld.Material.Wireframe)
	assert.Equal(t, float32(1), sld.Material.Opacity)

	tg.SetWireframe(model, false)
	assert.False(t, sld.Material.Wireframe)
	assert.Equal(t, orig, sld.Material.Color)
}

func TestDisableAfterNodeRemoval(t *testing.T) {
	model, sld := modelSolid(t)
	orig := sld.Material.Color
	tg := NewToggles()
	tg.SetWireframe(model, true)

	// the solid leaves the tree while the mode is on; disable still
	// restores its snapshot from the toggle table
	sld.AsTree().Delete()
	tg.SetWireframe(model, false)
	assert.Equal(t, 0, tg.WireframeCount())
	assert.Equal(t, orig, sld.Material.Color)
	assert.False(t, sld.Material.Wireframe)
}

func TestNilModel(t *testing.T) {
	tg := NewToggles()
	tg.SetWireframe(nil, true) // warns, no-op
	assert.Equal(t, 0, tg.WireframeCount())
	tg.SetTransparent(nil, true, 0.5)
	assert.Equal(t, 0, tg.TransparentCount())
	tg.SetWireframe(nil, false) // disable with nothing tracked
}
