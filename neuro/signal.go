// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"image/color"
	"time"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/google/uuid"

	"github.com/neurovis/neurovis/scene"
)

// Stage is the step a signal animation is in. Each triggered
// (source, synapse, target) triple advances Idle -> SourceFlash ->
// SynapseTransit -> TargetFlash -> Complete on monotonic elapsed time.
// A triple with no synapse completes after SourceFlash.
type Stage int32

const (
	StageIdle Stage = iota
	StageSourceFlash
	StageSynapseTransit
	StageTargetFlash
	StageComplete
)

var stageNames = [...]string{"Idle", "SourceFlash", "SynapseTransit", "TargetFlash", "Complete"}

func (st Stage) String() string {
	if st < 0 || int(st) >= len(stageNames) {
		return "Stage(?)"
	}
	return stageNames[st]
}

const (
	// SourceFlashTime is the duration of the source soma flash.
	SourceFlashTime = 75 * time.Millisecond

	// TransitTime is the duration of the pulse traversal along the
	// synapse curve.
	TransitTime = 300 * time.Millisecond

	// TargetFlashTime is the duration of the target soma flash.
	TargetFlashTime = 100 * time.Millisecond

	// DefaultInterval is the default random trigger period.
	DefaultInterval = 2 * time.Second

	// flashes peak at this emissive intensity
	flashPeak = 2
)

var (
	sourceFlashColor = colors.FromRGB(255, 220, 120)
	// reception gets a distinct color from emission
	targetFlashColor = colors.FromRGB(120, 255, 180)
	pulseColor       = colors.FromRGB(255, 240, 160)
)

// flashState is the pre-flash emissive state of a soma, restored when
// its flash stage ends or is cancelled.
type flashState struct {
	emissive  color.RGBA
	intensity float32
}

func saveFlash(sld *scene.Solid) flashState {
	if sld == nil {
		return flashState{}
	}
	return flashState{emissive: sld.Material.Emissive, intensity: sld.Material.EmissiveIntensity}
}

func (fs flashState) restore(sld *scene.Solid) {
	if sld == nil {
		return
	}
	sld.Material.Emissive = fs.emissive
	sld.Material.EmissiveIntensity = fs.intensity
	sld.Material.MarkDirty()
}

// flashSoma drives a soma's emissive through a sine envelope at
// normalized stage progress t.
func flashSoma(sld *scene.Solid, clr color.RGBA, t float32) {
	if sld == nil {
		return
	}
	sld.Material.Emissive = clr
	sld.Material.EmissiveIntensity = flashPeak * math32.Sin(t*math32.Pi)
	sld.Material.MarkDirty()
}

// signalAnim animates one triggered triple through its stages.
type signalAnim struct {
	source *Neuron
	syn    *Synapse
	target *Neuron
	root   *scene.Group

	stage Stage
	start time.Time
	pulse *Pulse
	saved flashState
}

func newSignalAnim(src *Neuron, syn *Synapse, root *scene.Group, now time.Time) *signalAnim {
	sa := &signalAnim{source: src, syn: syn, root: root, stage: StageSourceFlash, start: now}
	if syn != nil {
		sa.target = syn.Target
	}
	src.Animating = true
	sa.saved = saveFlash(src.Soma)
	return sa
}

// progress returns elapsed/duration clamped to [0,1].
func progress(now, start time.Time, dur time.Duration) float32 {
	if dur <= 0 {
		return 1
	}
	t := float32(now.Sub(start)) / float32(dur)
	return math32.Clamp(t, 0, 1)
}

// Advance steps the stage machine; it reports true when the triple's
// animation is complete.
func (sa *signalAnim) Advance(now time.Time) bool {
	switch sa.stage {
	case StageSourceFlash:
		t := progress(now, sa.start, SourceFlashTime)
		flashSoma(sa.source.Soma, sourceFlashColor, t)
		if t < 1 {
			return false
		}
		sa.saved.restore(sa.source.Soma)
		if sa.syn == nil || sa.target == nil {
			// nothing to propagate into
			sa.finish()
			return true
		}
		sa.stage = StageSynapseTransit
		sa.start = now
		sa.syn.Active = true
		sa.pulse = NewPulse(sa.root, sa.syn.Curve, 0.6*sa.source.SomaRadius, pulseColor)
		return false

	case StageSynapseTransit:
		t := progress(now, sa.start, TransitTime)
		sa.pulse.SetProgress(t)
		if t < 1 {
			return false
		}
		sa.pulse.Release()
		sa.pulse = nil
		sa.syn.Active = false
		sa.stage = StageTargetFlash
		sa.start = now
		sa.saved = saveFlash(sa.target.Soma)
		return false

	case StageTargetFlash:
		t := progress(now, sa.start, TargetFlashTime)
		flashSoma(sa.target.Soma, targetFlashColor, t)
		if t < 1 {
			return false
		}
		sa.saved.restore(sa.target.Soma)
		sa.finish()
		return true
	}
	return true
}

func (sa *signalAnim) finish() {
	sa.stage = StageComplete
	sa.source.Animating = false
}

// cancel synchronously unwinds whatever stage is in flight: restores
// flashed emissives, removes the pulse, and releases the source.
func (sa *signalAnim) cancel() {
	switch sa.stage {
	case StageSourceFlash:
		sa.saved.restore(sa.source.Soma)
	case StageSynapseTransit:
		sa.pulse.Release()
		sa.pulse = nil
		sa.syn.Active = false
	case StageTargetFlash:
		sa.saved.restore(sa.target.Soma)
	}
	sa.finish()
}

// Signaler is the random trigger driver: it periodically selects 1-3
// random synapses from a network and runs their signal animations.
// It implements [anim.Anim] and is stepped by the shared scheduler;
// Stop cancels every in-flight stage animation synchronously.
type Signaler struct {

	// ID is the handle identity for this signaler.
	ID uuid.UUID

	// Network being driven.
	Network *Network

	// Interval is the trigger period. The first trigger fires
	// immediately on the first Advance.
	Interval time.Duration

	rnd      randx.Rand
	active   []*signalAnim
	cooldown map[*Neuron]time.Time
	next     time.Time
	stopped  bool
}

// NewSignaler returns a signaler for the given network. A non-positive
// interval uses [DefaultInterval].
func NewSignaler(rnd randx.Rand, nw *Network, interval time.Duration) *Signaler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Signaler{
		ID:       uuid.New(),
		Network:  nw,
		Interval: interval,
		rnd:      rnd,
		cooldown: make(map[*Neuron]time.Time),
	}
}

// Advance fires due triggers and steps all in-flight animations.
func (sg *Signaler) Advance(now time.Time) bool {
	if sg.stopped {
		return true
	}
	if sg.next.IsZero() || !now.Before(sg.next) {
		sg.trigger(now)
		sg.next = now.Add(sg.Interval)
	}
	kept := sg.active[:0]
	for _, sa := range sg.active {
		if !sa.Advance(now) {
			kept = append(kept, sa)
		}
	}
	sg.active = kept
	return false
}

// trigger selects 1-3 random synapses and starts their animations,
// skipping sources that are mid-animation or cooling down. An empty
// connection list is a no-op.
func (sg *Signaler) trigger(now time.Time) {
	syns := sg.Network.Synapses
	if len(syns) == 0 {
		return
	}
	n := 1 + sg.rnd.Intn(3)
	for range n {
		sy := syns[sg.rnd.Intn(len(syns))]
		src := sy.Source
		if src.Animating {
			continue
		}
		if until, ok := sg.cooldown[src]; ok && now.Before(until) {
			continue
		}
		sg.cooldown[src] = now.Add(sg.Interval / 2)
		sg.active = append(sg.active, newSignalAnim(src, sy, sg.Network.Root, now))
	}
}

// Trigger starts a signal animation directly on the given source
// through syn, which may be nil: the machine then completes after the
// source flash alone.
func (sg *Signaler) Trigger(src *Neuron, syn *Synapse, now time.Time) {
	if src == nil || sg.stopped {
		return
	}
	sg.active = append(sg.active, newSignalAnim(src, syn, sg.Network.Root, now))
}

// ActiveCount returns the number of in-flight signal animations.
func (sg *Signaler) ActiveCount() int {
	return len(sg.active)
}

// Stop cancels all in-flight animations synchronously and marks the
// signaler complete; the scheduler drops it on its next tick. It must
// be called before the driven network is disposed.
func (sg *Signaler) Stop() {
	if sg.stopped {
		return
	}
	sg.stopped = true
	for _, sa := range sg.active {
		sa.cancel()
	}
	sg.active = nil
}
