// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"github.com/google/uuid"

	"github.com/neurovis/neurovis/scene"
)

const (
	// MaxDistanceFactor scales the smallest bounding dimension into
	// the maximum synapse distance.
	MaxDistanceFactor = 0.4

	// cluster placement parameters
	clusterMemberMin  = 5
	clusterMemberMax  = 12
	clusterCenterSpan = 0.35
	clusterSpread     = 0.06
	fillSpan          = 0.8

	// attemptFactor caps total placement attempts at this multiple of
	// the requested count, guaranteeing termination.
	attemptFactor = 10

	// connection model parameters
	connectionDecay = 0.3
	localRadius     = 0.2
	localBoost      = 1.5
	dampRadius      = 0.5
	globalDamp      = 0.3

	// synapse contact points retract this far back from the target
	// soma along the approach direction
	contactRetractMin = 0.05
	contactRetractMax = 0.10
)

// Synapse is a rendered connection from a source neuron's axon
// terminal to a contact point near a target neuron.
type Synapse struct {

	// Source and Target are the connected neurons; both are live
	// members of the same network.
	Source *Neuron
	Target *Neuron

	// From is the source axon terminal; To is the contact point,
	// retracted from the target soma along the approach direction.
	From math32.Vector3
	To   math32.Vector3

	// Curve is the rendered connection path.
	Curve Curve

	// Active is set while a signal pulse is traversing this synapse.
	Active bool

	// Solid is the render node for this synapse.
	Solid *scene.Solid
}

// Network is a generated neuron graph together with its render nodes.
type Network struct {

	// ID identifies this network for signaling handles and disposal.
	ID uuid.UUID

	Neurons  []*Neuron
	Synapses []*Synapse

	// Bounds the network was generated within.
	Bounds *Bounds

	// MaxDistance is the synapse distance cutoff.
	MaxDistance float32

	// Root is the render group holding all generated geometry,
	// parented under the target model.
	Root *scene.Group
}

// Generate builds a neuron network inside the bounding volume of the
// given model and attaches its render nodes under it. Placement uses a
// clustered spatial process with a uniform fill phase; attempts are
// capped at 10x the requested count, and delivering fewer neurons than
// requested is accepted degradation, reported with a warning. A nil
// model yields nil.
func Generate(rnd randx.Rand, model scene.Node, count int, baseProb float32) *Network {
	if model == nil {
		slog.Warn("neuro: no model to generate a network on")
		return nil
	}
	b := BoundsOf(model)
	if b.Box.IsEmpty() {
		slog.Warn("neuro: model has no geometry; nothing generated")
		return nil
	}
	minDim := math32.Min(b.Size.X, math32.Min(b.Size.Y, b.Size.Z))
	nw := &Network{
		ID:          uuid.New(),
		Bounds:      b,
		MaxDistance: MaxDistanceFactor * minDim,
	}
	opts := &Options{
		DendriteLength: 0.12 * minDim,
		AxonLength:     0.30 * minDim,
	}
	opts.Defaults()

	safeSpan := b.Safe.Size()
	minSafe := math32.Min(safeSpan.X, math32.Min(safeSpan.Y, safeSpan.Z))
	attempts := 0
	maxAttempts := attemptFactor * count

	// clustered placement: ~10 neurons per cluster
	for len(nw.Neurons) < count && attempts < maxAttempts {
		center, ok := nw.clusterCenter(rnd, &attempts, maxAttempts)
		if !ok {
			break
		}
		members := clusterMemberMin + rnd.Intn(clusterMemberMax-clusterMemberMin+1)
		for i := 0; i < members && len(nw.Neurons) < count && attempts < maxAttempts; i++ {
			attempts++
			off := math32.Vec3(irwinHall(rnd), irwinHall(rnd), irwinHall(rnd)).MulScalar(clusterSpread * minSafe)
			nw.tryPlace(rnd, center.Add(off), minDim, opts)
		}
	}

	// uniform fill for any shortfall
	for len(nw.Neurons) < count && attempts < maxAttempts {
		attempts++
		pos := b.Safe.Center().Add(math32.Vec3(
			(rnd.Float32()-0.5)*fillSpan*safeSpan.X,
			(rnd.Float32()-0.5)*fillSpan*safeSpan.Y,
			(rnd.Float32()-0.5)*fillSpan*safeSpan.Z))
		nw.tryPlace(rnd, pos, minDim, opts)
	}

	if len(nw.Neurons) < count {
		slog.Warn("neuro: placement attempts exhausted",
			"requested", count, "delivered", len(nw.Neurons), "attempts", attempts)
	}
	nw.connect(rnd, baseProb)
	nw.build(model)
	return nw
}

// clusterCenter picks a cluster center uniformly within 35% of the
// safe volume's span around its center, rejecting centers that fall
// outside the safe volume.
func (nw *Network) clusterCenter(rnd randx.Rand, attempts *int, maxAttempts int) (math32.Vector3, bool) {
	b := nw.Bounds
	span := b.Safe.Size()
	for *attempts < maxAttempts {
		*attempts++
		c := b.Safe.Center().Add(math32.Vec3(
			(rnd.Float32()-0.5)*clusterCenterSpan*span.X,
			(rnd.Float32()-0.5)*clusterCenterSpan*span.Y,
			(rnd.Float32()-0.5)*clusterCenterSpan*span.Z))
		if b.SafeContains(c) {
			return c, true
		}
	}
	return math32.Vector3{}, false
}

// tryPlace generates a neuron at pos if the position and the resulting
// axon terminal satisfy the containment rules.
func (nw *Network) tryPlace(rnd randx.Rand, pos math32.Vector3, minDim float32, opts *Options) bool {
	b := nw.Bounds
	if !b.SafeContains(pos) || !b.Contains(pos) {
		return false
	}
	soma := 0.02 * minDim * (0.8 + 0.4*rnd.Float32())
	nr := NewNeuron(rnd, len(nw.Neurons), pos, soma, opts, b)
	// the axon may have been shortened; its terminal must still honor
	// the margin or the neuron does not enter the graph
	if !b.WithinMargin(nr.Axon.Terminal) {
		return false
	}
	nw.Neurons = append(nw.Neurons, nr)
	return true
}

// ConnectionProbability is the distance-decay connection model:
// base * exp(-d/(0.3*maxDist)), boosted 1.5x inside the local radius
// (0.2*maxDist) and damped to 0.3x beyond half of maxDist.
func ConnectionProbability(base, d, maxDist float32) float32 {
	p := base * math32.Exp(-d/(connectionDecay*maxDist))
	switch {
	case d < localRadius*maxDist:
		p *= localBoost
	case d > dampRadius*maxDist:
		p *= globalDamp
	}
	return p
}

// connect wires synapses for every ordered neuron pair within the
// distance cutoff, drawing against the distance-decay probability.
func (nw *Network) connect(rnd randx.Rand, baseProb float32) {
	for _, src := range nw.Neurons {
		for _, tgt := range nw.Neurons {
			if src == tgt {
				continue
			}
			d := src.Axon.Terminal.DistanceTo(tgt.Pos)
			if d >= nw.MaxDistance {
				continue
			}
			if rnd.Float32() >= ConnectionProbability(baseProb, d, nw.MaxDistance) {
				continue
			}
			dir := tgt.Pos.Sub(src.Axon.Terminal).Normal()
			retract := contactRetractMin + rnd.Float32()*(contactRetractMax-contactRetractMin)
			sy := &Synapse{
				Source: src,
				Target: tgt,
				From:   src.Axon.Terminal,
				To:     tgt.Pos.Sub(dir.MulScalar(retract)),
			}
			sy.Curve = NewCurve(rnd, sy.From, sy.To, pathWobble, nw.Bounds)
			src.Out = append(src.Out, sy)
			tgt.In = append(tgt.In, sy)
			nw.Synapses = append(nw.Synapses, sy)
		}
	}
}

var (
	somaColor     = colors.FromRGB(110, 170, 255)
	dendriteColor = colors.FromRGB(90, 130, 210)
	axonColor     = colors.FromRGB(255, 160, 80)
	synapseColor  = colors.FromRGB(200, 120, 255)
)

// build creates the render nodes for the network under the model.
func (nw *Network) build(model scene.Node) {
	grp := tree.New[scene.Group](model)
	grp.AsTree().SetName("neuron-network")
	nw.Root = grp
	for _, nr := range nw.Neurons {
		nr.attach(grp)
	}
	for _, sy := range nw.Synapses {
		sld := tree.New[scene.Solid](grp)
		sld.AsTree().SetName(fmt.Sprintf("synapse-%d-%d", sy.Source.ID, sy.Target.ID))
		sld.Mesh = &scene.Polyline{Points: sy.Curve.Sample(PathSamples)}
		sld.Material.Color = synapseColor
		sld.Material.Opacity = 0.7
		sy.Solid = sld
	}
}

// attach creates the render nodes for one neuron under the network
// root: a soma sphere plus polylines for every process.
func (nr *Neuron) attach(parent *scene.Group) {
	grp := tree.New[scene.Group](parent)
	grp.AsTree().SetName(fmt.Sprintf("neuron-%d", nr.ID))
	nr.Group = grp

	soma := tree.New[scene.Solid](grp)
	soma.AsTree().SetName("soma")
	soma.Pose.Pos = nr.Pos
	soma.Mesh = &scene.Sphere{Radius: nr.SomaRadius}
	soma.Material.Color = somaColor
	nr.Soma = soma

	addLine := func(name string, cv Curve, samples int, clr color.RGBA) {
		sld := tree.New[scene.Solid](grp)
		sld.AsTree().SetName(name)
		sld.Mesh = &scene.Polyline{Points: cv.Sample(samples)}
		sld.Material.Color = clr
	}
	for i, dnd := range nr.Dendrites {
		addLine(fmt.Sprintf("dendrite-%d", i), dnd.Curve, DendriteSamples, dendriteColor)
		if dnd.Branch != nil {
			addLine(fmt.Sprintf("dendrite-%d-branch", i), *dnd.Branch, DendriteSamples, dendriteColor)
		}
	}
	addLine("axon", nr.Axon.Curve, PathSamples, axonColor)
	for i, br := range nr.Axon.Branches {
		addLine(fmt.Sprintf("axon-branch-%d", i), br, PathSamples, axonColor)
	}
}

// Dispose releases the network's render resources and clears the
// graph. Any signalers driving this network must be stopped first;
// the context enforces that ordering.
func (nw *Network) Dispose() {
	if nw == nil {
		return
	}
	if nw.Root != nil {
		scene.ReleaseTree(nw.Root)
		nw.Root = nil
	}
	for _, nr := range nw.Neurons {
		nr.Out, nr.In = nil, nil
		nr.Group, nr.Soma = nil, nil
	}
	for _, sy := range nw.Synapses {
		sy.Solid = nil
	}
	nw.Neurons, nw.Synapses = nil, nil
}
