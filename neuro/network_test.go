// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"testing"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"github.com/stretchr/testify/assert"

	"github.com/neurovis/neurovis/scene"
)

func testNetwork(t *testing.T, seed int64, count int, baseProb float32) (*Network, *scene.Group) {
	t.Helper()
	model := scene.NewPlaceholder(nil)
	nw := Generate(randx.NewSysRand(seed), model, count, baseProb)
	assert.NotNil(t, nw)
	return nw, model
}

func TestGenerate(t *testing.T) {
	nw, model := testNetwork(t, 42, 40, 1)
	assert.NotEmpty(t, nw.Neurons)
	assert.LessOrEqual(t, len(nw.Neurons), 40)
	tolassert.EqualTol(t, 0.4, nw.MaxDistance, 1.0e-6)

	b := nw.Bounds
	for _, nr := range nw.Neurons {
		assert.True(t, b.SafeContains(nr.Pos))
		assert.True(t, b.WithinMargin(nr.Axon.Terminal))
		assert.Positive(t, nr.SomaRadius)
		assert.NotNil(t, nr.Soma)
		assert.NotNil(t, nr.Group)
	}
	assert.Equal(t, nw.Root, nw.Neurons[0].Group.AsTree().Parent)
	assert.Equal(t, model, nw.Root.AsTree().Parent)
}

func TestGenerateSynapses(t *testing.T) {
	nw, _ := testNetwork(t, 42, 40, 1)
	assert.NotEmpty(t, nw.Synapses)
	for _, sy := range nw.Synapses {
		assert.NotSame(t, sy.Source, sy.Target)
		assert.Equal(t, sy.Source.Axon.Terminal, sy.From)
		assert.Less(t, sy.From.DistanceTo(sy.Target.Pos), nw.MaxDistance)

		// contact point retracts 0.05-0.10 back from the target soma
		retract := sy.To.DistanceTo(sy.Target.Pos)
		assert.GreaterOrEqual(t, retract, float32(0.05)-1.0e-5)
		assert.LessOrEqual(t, retract, float32(0.10)+1.0e-5)

		assert.Contains(t, sy.Source.Out, sy)
		assert.Contains(t, sy.Target.In, sy)
		assert.NotNil(t, sy.Solid)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, _ := testNetwork(t, 7, 30, 0.5)
	b, _ := testNetwork(t, 7, 30, 0.5)
	assert.Equal(t, len(a.Neurons), len(b.Neurons))
	assert.Equal(t, len(a.Synapses), len(b.Synapses))
	for i := range a.Neurons {
		assert.Equal(t, a.Neurons[i].Pos, b.Neurons[i].Pos)
	}
}

func TestGenerateNoModel(t *testing.T) {
	assert.Nil(t, Generate(randx.NewSysRand(1), nil, 10, 0.5))
	empty := tree.New[scene.Group]()
	assert.Nil(t, Generate(randx.NewSysRand(1), empty, 10, 0.5))
}

func TestGenerateZeroProbability(t *testing.T) {
	nw, _ := testNetwork(t, 3, 20, 0)
	assert.Empty(t, nw.Synapses)
}

func TestConnectionProbability(t *testing.T) {
	tolassert.EqualTol(t, 1.5, ConnectionProbability(1, 0, 1), 1.0e-6)

	// non-increasing in distance across the boost and damp boundaries
	prev := math32.Infinity
	for d := float32(0); d <= 1; d += 0.01 {
		p := ConnectionProbability(0.5, d, 1)
		assert.LessOrEqual(t, p, prev)
		prev = p
	}
}

func TestDispose(t *testing.T) {
	nw, model := testNetwork(t, 42, 20, 1)
	solids := 0
	scene.WalkSolids(model, func(sld *scene.Solid) { solids++ })
	assert.Greater(t, solids, 1)

	nw.Dispose()
	assert.Nil(t, nw.Root)
	assert.Empty(t, nw.Neurons)
	assert.Empty(t, nw.Synapses)

	solids = 0
	scene.WalkSolids(model, func(sld *scene.Solid) { solids++ })
	assert.Equal(t, 1, solids) // only the placeholder box remains

	nw.Dispose() // second dispose is a no-op
}

func TestStats(t *testing.T) {
	nw, _ := testNetwork(t, 42, 40, 1)
	st := nw.Stats()
	assert.Equal(t, len(nw.Neurons), st.Neurons)
	assert.Equal(t, len(nw.Synapses), st.Synapses)
	assert.Positive(t, st.MeanDegree)
	assert.Positive(t, st.MaxSynapseLength)
	assert.LessOrEqual(t, st.MeanSynapseLength, st.MaxSynapseLength)

	total := 0
	for _, n := range st.DegreeHist {
		total += n
	}
	assert.Equal(t, st.Neurons, total)
}
