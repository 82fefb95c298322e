// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/math32"

	"github.com/neurovis/neurovis/scene"
)

// Options are the tunable parameters for generating one neuron.
type Options struct {

	// DendriteLength is the base dendrite length before the random
	// variation factor.
	DendriteLength float32 `default:"0.35"`

	// AxonLength is the base axon length; axons run longer than
	// dendrites.
	AxonLength float32 `default:"0.9"`

	// DendriteBranchProb is the probability that a dendrite grows one
	// branch.
	DendriteBranchProb float32 `default:"0.3"`

	// AxonBranchProb is the probability that the axon grows branches
	// near its terminal.
	AxonBranchProb float32 `default:"0.3"`
}

// Defaults fills any zero option with its default value.
func (op *Options) Defaults() {
	if op.DendriteLength == 0 {
		op.DendriteLength = 0.35
	}
	if op.AxonLength == 0 {
		op.AxonLength = 0.9
	}
	if op.DendriteBranchProb == 0 {
		op.DendriteBranchProb = 0.3
	}
	if op.AxonBranchProb == 0 {
		op.AxonBranchProb = 0.3
	}
}

const (
	// dendrite count range per neuron
	dendriteCountMin = 3
	dendriteCountMax = 7

	// boundaryUse is the usable fraction of the slab exit distance
	// when clipping a process against the boundary.
	boundaryUse = 0.8

	dendriteWobble = 0.1
	pathWobble     = 0.2

	// dendrite branches start at 60% of the parent, at 40% of its length
	branchStart   = 0.6
	branchLenFrac = 0.4

	// axon branches start at 70% of the axon, at 30% of its length
	axonBranchStart   = 0.7
	axonBranchLenFrac = 0.3

	// when the axon endpoint cannot be placed safely, it is shortened
	// to this fraction of the exit distance, with an absolute floor
	axonFallback  = 0.7
	axonMinLength = 0.05
)

// Dendrite is one input process: a curve growing outward from the
// soma, optionally with a single branch.
type Dendrite struct {
	Curve  Curve
	End    math32.Vector3
	Branch *Curve
}

// Axon is the single output process. Its terminal point is where
// outgoing synapses originate. Up to two branches can split off near
// the terminal.
type Axon struct {
	Curve    Curve
	Terminal math32.Vector3
	Branches []Curve
}

// Neuron is one generated neuron: a soma position with dendrites, an
// axon, and its synapse connections within a [Network].
type Neuron struct {

	// ID is the index of this neuron within its network.
	ID int

	// Pos is the soma position.
	Pos math32.Vector3

	// SomaRadius is the soma sphere radius.
	SomaRadius float32

	Dendrites []Dendrite
	Axon      Axon

	// Out and In are the synapses leaving and entering this neuron.
	Out []*Synapse
	In  []*Synapse

	// Animating is set while a signal animation holds this neuron as
	// its source; the random trigger driver skips such neurons.
	Animating bool

	// Group and Soma are the render nodes for this neuron, set when
	// the network is attached to a model.
	Group *scene.Group
	Soma  *scene.Solid
}

// NewNeuron generates one neuron at the given position. When bounds is
// non-nil, every process is clipped against it: lengths are limited to
// 80% of the slab exit distance and a dendrite is kept only if its
// endpoint stays within the safety margin. The axon is never omitted;
// if it cannot be placed safely it is shortened instead.
func NewNeuron(rnd randx.Rand, id int, pos math32.Vector3, somaRadius float32, opts *Options, b *Bounds) *Neuron {
	nr := &Neuron{ID: id, Pos: pos, SomaRadius: somaRadius}
	nd := dendriteCountMin + rnd.Intn(dendriteCountMax-dendriteCountMin+1)
	for range nd {
		dir := SphereDirection(rnd)
		length := opts.DendriteLength * lengthVar(rnd)
		if b != nil {
			length = math32.Min(length, boundaryUse*b.ExitDistance(pos, dir))
		}
		end := pos.Add(dir.MulScalar(length))
		if b != nil && !b.WithinMargin(end) {
			continue
		}
		dnd := Dendrite{Curve: NewCurve(rnd, pos, end, dendriteWobble, b), End: end}
		if rnd.Float32() < opts.DendriteBranchProb {
			if cv, ok := newBranch(rnd, pos, dir, length, branchStart, branchLenFrac, dendriteWobble, b); ok {
				dnd.Branch = &cv
			}
		}
		nr.Dendrites = append(nr.Dendrites, dnd)
	}
	nr.Axon = newAxon(rnd, pos, opts, b)
	return nr
}

// newBranch grows a branch from the point at the given fraction along
// a parent process, in an independent random direction, at the given
// fraction of the parent length. It reports false when the branch
// endpoint would violate the safety margin.
func newBranch(rnd randx.Rand, pos, dir math32.Vector3, length, at, lenFrac, wobble float32, b *Bounds) (Curve, bool) {
	start := pos.Add(dir.MulScalar(at * length))
	bdir := SphereDirection(rnd)
	blen := lenFrac * length
	if b != nil {
		blen = math32.Min(blen, boundaryUse*b.ExitDistance(start, bdir))
	}
	end := start.Add(bdir.MulScalar(blen))
	if b != nil && !b.WithinMargin(end) {
		return Curve{}, false
	}
	return NewCurve(rnd, start, end, wobble, b), true
}

func newAxon(rnd randx.Rand, pos math32.Vector3, opts *Options, b *Bounds) Axon {
	dir := SphereDirection(rnd)
	length := opts.AxonLength * lengthVar(rnd)
	if b != nil {
		safe := b.ExitDistance(pos, dir)
		length = math32.Min(length, boundaryUse*safe)
		if !b.WithinMargin(pos.Add(dir.MulScalar(length))) {
			// shorten rather than omit
			length = math32.Max(axonFallback*safe, axonMinLength)
		}
	}
	term := pos.Add(dir.MulScalar(length))
	ax := Axon{Curve: NewCurve(rnd, pos, term, pathWobble, b), Terminal: term}
	if rnd.Float32() < opts.AxonBranchProb {
		nbr := 1 + rnd.Intn(2)
		for range nbr {
			if cv, ok := newBranch(rnd, pos, dir, length, axonBranchStart, axonBranchLenFrac, pathWobble, b); ok {
				ax.Branches = append(ax.Branches, cv)
			}
		}
	}
	return ax
}

// Degree returns the number of outgoing synapses.
func (nr *Neuron) Degree() int {
	return len(nr.Out)
}
