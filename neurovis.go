// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package neurovis computes the interactive-anatomy overlays for a
// hosting 3D engine: procedural neuron networks with staged
// signal-propagation animation, cross-section clip planes synchronized
// across views, and reversible material display modes. All shared
// state lives in an explicit [Context]; nothing is ambient.
package neurovis

import (
	"log/slog"
	"time"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/math32"
	"github.com/google/uuid"

	"github.com/neurovis/neurovis/anim"
	"github.com/neurovis/neurovis/modes"
	"github.com/neurovis/neurovis/neuro"
	"github.com/neurovis/neurovis/scene"
	"github.com/neurovis/neurovis/section"
)

// Config holds the recognized in-memory options. Zero values are
// replaced by defaults.
type Config struct {

	// Count is the requested neuron quantity.
	Count int `default:"50"`

	// BaseProbability is the base synapse connection rate before
	// distance decay.
	BaseProbability float32 `default:"0.35"`

	// Interval is the mean period between random signal triggers.
	Interval time.Duration `default:"2s"`

	// Section is the active cross-section orientation.
	Section section.Section

	// Position is the section position in [0,1].
	Position float32 `default:"0.5"`

	// Opacity is the transparency display-mode opacity in (0,1].
	Opacity float32 `default:"0.4"`

	// Seed seeds the random source; 0 seeds from the current time.
	Seed int64
}

// Defaults fills any zero option with its default value.
func (cf *Config) Defaults() {
	if cf.Count == 0 {
		cf.Count = 50
	}
	if cf.BaseProbability == 0 {
		cf.BaseProbability = 0.35
	}
	if cf.Interval == 0 {
		cf.Interval = 2 * time.Second
	}
	if cf.Position == 0 {
		cf.Position = 0.5
	}
	if cf.Opacity == 0 {
		cf.Opacity = 0.4
	}
}

// Context carries the shared model and scene state explicitly: it is
// constructed once and passed to every subsystem call, replacing any
// ambient globals. It is single-threaded; the host's render clock
// drives it through [Context.Advance].
type Context struct {

	// Model is the target model root. When nil, every model-touching
	// operation is a warning no-op; use [scene.NewPlaceholder] to
	// substitute a primitive when the primary model fails to load.
	Model scene.Node

	// Config is the active configuration.
	Config Config

	// Rand is the seedable random source threaded through all
	// generation, making graphs reproducible.
	Rand randx.Rand

	// Sched steps all animation from the host's render clock.
	Sched *anim.Scheduler

	// Toggles tracks the material display-mode snapshots.
	Toggles *modes.Toggles

	networks  map[uuid.UUID]*neuro.Network
	signalers map[uuid.UUID]*neuro.Signaler
	scan      *section.Scan
}

// NewContext returns a context for the given model root. A nil config
// uses all defaults.
func NewContext(model scene.Node, cfg *Config) *Context {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.Defaults()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Context{
		Model:     model,
		Config:    *cfg,
		Rand:      randx.NewSysRand(seed),
		Sched:     &anim.Scheduler{},
		Toggles:   modes.NewToggles(),
		networks:  make(map[uuid.UUID]*neuro.Network),
		signalers: make(map[uuid.UUID]*neuro.Signaler),
	}
}

// Advance drives all scheduled animation; the host calls it once per
// render tick with the current time.
func (ct *Context) Advance(now time.Time) {
	ct.Sched.Advance(now)
}

// GenerateNetwork builds a neuron network on the model. Non-positive
// count or probability fall back to the configured values. Returns nil
// (with a warning) when no model is available.
func (ct *Context) GenerateNetwork(count int, baseProb float32) *neuro.Network {
	if ct.Model == nil {
		slog.Warn("neurovis: GenerateNetwork without a model; ignored")
		return nil
	}
	if count <= 0 {
		count = ct.Config.Count
	}
	if baseProb <= 0 {
		baseProb = ct.Config.BaseProbability
	}
	nw := neuro.Generate(ct.Rand, ct.Model, count, baseProb)
	if nw != nil {
		ct.networks[nw.ID] = nw
	}
	return nw
}

// DisposeNetwork stops any signaling driving the network, releases its
// rendering resources, and drops it, in that order, so no pending
// animation can touch disposed resources.
func (ct *Context) DisposeNetwork(nw *neuro.Network) {
	if nw == nil {
		return
	}
	for id, sg := range ct.signalers {
		if sg.Network == nw {
			sg.Stop()
			ct.Sched.Remove(sg)
			delete(ct.signalers, id)
		}
	}
	nw.Dispose()
	delete(ct.networks, nw.ID)
}

// StartSignaling starts the random trigger driver on the network and
// returns its handle. A non-positive interval uses the configured one.
func (ct *Context) StartSignaling(nw *neuro.Network, interval time.Duration) *neuro.Signaler {
	if nw == nil {
		return nil
	}
	if interval <= 0 {
		interval = ct.Config.Interval
	}
	sg := neuro.NewSignaler(ct.Rand, nw, interval)
	ct.signalers[sg.ID] = sg
	ct.Sched.Add(sg)
	return sg
}

// StopSignaling stops the driver synchronously and unregisters it.
func (ct *Context) StopSignaling(sg *neuro.Signaler) {
	if sg == nil {
		return
	}
	sg.Stop()
	ct.Sched.Remove(sg)
	delete(ct.signalers, sg.ID)
}

// SetSection switches the cross-section orientation and reapplies the
// clip plane at the current position.
func (ct *Context) SetSection(se section.Section) {
	ct.Config.Section = se
	ct.applySection()
}

// SetSectionPosition moves the section position (clamped to [0,1]) and
// reapplies the clip plane.
func (ct *Context) SetSectionPosition(pos float32) {
	ct.Config.Position = math32.Clamp(pos, 0, 1)
	ct.applySection()
}

// ApplyClip sets the section orientation and position together and
// applies the resulting clip plane once.
func (ct *Context) ApplyClip(se section.Section, pos float32) {
	ct.Config.Section = se
	ct.Config.Position = math32.Clamp(pos, 0, 1)
	ct.applySection()
}

func (ct *Context) applySection() {
	if ct.Model == nil {
		slog.Warn("neurovis: section change without a model; ignored")
		return
	}
	section.Apply(ct.Model, section.ComputePlane(ct.Config.Section, ct.Config.Position))
}

// RemoveClip clears all clip planes from the model's materials.
func (ct *Context) RemoveClip() {
	section.Remove(ct.Model)
}

// StartScan starts the sweeping scan animation from the current
// position, replacing any scan already running.
func (ct *Context) StartScan() *section.Scan {
	if ct.Model == nil {
		slog.Warn("neurovis: scan without a model; ignored")
		return nil
	}
	ct.StopScan()
	sc := section.NewScan(ct.Config.Position, func(pos float32) {
		ct.Config.Position = pos
		ct.applySection()
	})
	ct.scan = sc
	ct.Sched.Add(sc)
	return sc
}

// StopScan cancels any running scan; the plane recomputes naturally
// from the live position afterward.
func (ct *Context) StopScan() {
	if ct.scan == nil {
		return
	}
	ct.scan.Stop()
	ct.Sched.Remove(ct.scan)
	ct.scan = nil
}

// SetWireframe toggles wireframe display on the model's materials.
func (ct *Context) SetWireframe(on bool) {
	if on && ct.Model == nil {
		slog.Warn("neurovis: wireframe toggle without a model; ignored")
		return
	}
	ct.Toggles.SetWireframe(ct.Model, on)
}

// SetTransparent toggles transparency display on the model's
// materials. A non-positive opacity uses the configured one.
func (ct *Context) SetTransparent(on bool, opacity float32) {
	if on && ct.Model == nil {
		slog.Warn("neurovis: transparency toggle without a model; ignored")
		return
	}
	if opacity <= 0 {
		opacity = ct.Config.Opacity
	}
	ct.Toggles.SetTransparent(ct.Model, on, opacity)
}
