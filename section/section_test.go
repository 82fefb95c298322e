// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"testing"
	"time"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"

	"github.com/neurovis/neurovis/scene"
)

func TestSectionFromString(t *testing.T) {
	assert.Equal(t, Sagittal, SectionFromString("sagittal"))
	assert.Equal(t, Axial, SectionFromString(" AXIAL "))
	assert.Equal(t, Coronal, SectionFromString("coronal"))
	assert.Equal(t, Coronal, SectionFromString("oblique")) // unknown falls back
	assert.Equal(t, "sagittal", Sagittal.String())
}

func TestSectionNormal(t *testing.T) {
	assert.Equal(t, math32.Vec3(1, 0, 0), Sagittal.Normal())
	assert.Equal(t, math32.Vec3(0, 1, 0), Coronal.Normal())
	assert.Equal(t, math32.Vec3(0, 0, 1), Axial.Normal())
}

func TestComputePlane(t *testing.T) {
	cp := ComputePlane(Axial, 0.75)
	assert.Equal(t, math32.Vec3(0, 0, 1), cp.Normal)
	tolassert.EqualTol(t, 0.5, cp.Constant, 1.0e-6)
	assert.Equal(t, Axial, cp.Section)

	tolassert.EqualTol(t, -1, ComputePlane(Coronal, 0).Constant, 1.0e-6)
	tolassert.EqualTol(t, 0, ComputePlane(Coronal, 0.5).Constant, 1.0e-6)
	tolassert.EqualTol(t, 1, ComputePlane(Coronal, 1).Constant, 1.0e-6)

	// constant is monotonic in position
	prev := float32(-2)
	for pos := float32(0); pos <= 1; pos += 0.1 {
		c := ComputePlane(Sagittal, pos).Constant
		assert.Greater(t, c, prev)
		prev = c
	}
}

func TestApplyRemove(t *testing.T) {
	model := scene.NewPlaceholder(nil)
	Apply(model, ComputePlane(Axial, 0.25))
	scene.WalkSolids(model, func(sld *scene.Solid) {
		assert.Len(t, sld.Material.ClipPlanes, 1)
		assert.Equal(t, math32.Vec3(0, 0, 1), sld.Material.ClipPlanes[0].Normal)
		assert.True(t, sld.Material.ClipShadows)
		assert.True(t, sld.Material.Dirty)
	})

	// reapplying replaces rather than accumulates
	Apply(model, ComputePlane(Coronal, 0.5))
	scene.WalkSolids(model, func(sld *scene.Solid) {
		assert.Len(t, sld.Material.ClipPlanes, 1)
		assert.Equal(t, math32.Vec3(0, 1, 0), sld.Material.ClipPlanes[0].Normal)
	})

	Remove(model)
	scene.WalkSolids(model, func(sld *scene.Solid) {
		assert.Empty(t, sld.Material.ClipPlanes)
		assert.False(t, sld.Material.ClipShadows)
	})

	Apply(nil, ComputePlane(Coronal, 0.5)) // nil model: no-op
	Remove(nil)
}

func TestSyncViews(t *testing.T) {
	va := &View{Name: "a", Section: Sagittal, Model: scene.NewPlaceholder(nil)}
	vb := &View{Name: "b", Section: Axial, Model: scene.NewPlaceholder(nil)}
	SyncViews(0.75, va, nil, vb)

	scene.WalkSolids(va.Model, func(sld *scene.Solid) {
		assert.Equal(t, math32.Vec3(1, 0, 0), sld.Material.ClipPlanes[0].Normal)
		tolassert.EqualTol(t, 0.5, sld.Material.ClipPlanes[0].Constant, 1.0e-6)
	})
	scene.WalkSolids(vb.Model, func(sld *scene.Solid) {
		assert.Equal(t, math32.Vec3(0, 0, 1), sld.Material.ClipPlanes[0].Normal)
	})
}

func TestScan(t *testing.T) {
	var got []float32
	sc := NewScan(0.5, func(pos float32) { got = append(got, pos) })

	t0 := time.Now()
	assert.False(t, sc.Advance(t0))
	tolassert.EqualTol(t, 0.5, got[len(got)-1], 1.0e-6)

	assert.False(t, sc.Advance(t0.Add(ScanTime/2)))
	tolassert.EqualTol(t, 0.75, got[len(got)-1], 1.0e-6)

	// pause at full depth, then reset to zero and complete
	assert.False(t, sc.Advance(t0.Add(ScanTime)))
	tolassert.EqualTol(t, 1, got[len(got)-1], 1.0e-6)
	assert.True(t, sc.Advance(t0.Add(ScanTime+ScanPause)))
	tolassert.EqualTol(t, 0, got[len(got)-1], 1.0e-6)
}

func TestScanStop(t *testing.T) {
	n := 0
	sc := NewScan(0, func(pos float32) { n++ })
	t0 := time.Now()
	sc.Advance(t0)
	sc.Stop()
	assert.True(t, sc.Advance(t0.Add(time.Second)))
	assert.Equal(t, 1, n) // no position delivered after Stop
}

func TestScanClamp(t *testing.T) {
	sc := NewScan(1.5, func(pos float32) {})
	assert.Equal(t, float32(1), sc.From)
	sc = NewScan(-0.5, func(pos float32) {})
	assert.Equal(t, float32(0), sc.From)
}
