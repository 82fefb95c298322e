// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides the single-threaded cooperative animation
// scheduler. The host's render clock calls [Scheduler.Advance] once
// per frame; every active animation steps on the monotonic time it is
// given. There are no timers, no goroutines, and no recursive
// rescheduling, so stopping an animation is always synchronous.
package anim

import "time"

// Anim is a single animation driven by the scheduler.
type Anim interface {

	// Advance steps the animation to the given time and reports
	// whether it has completed. A completed animation is dropped by
	// the scheduler and never advanced again.
	Advance(now time.Time) bool
}

// Scheduler steps a set of animations from one tick source.
// It is not safe for concurrent use; all mutation happens on the
// render thread. Animations must not add to or remove from their own
// scheduler from within Advance.
type Scheduler struct {
	anims []Anim
}

// Add registers an animation; nil is ignored.
func (sc *Scheduler) Add(a Anim) {
	if a == nil {
		return
	}
	sc.anims = append(sc.anims, a)
}

// Remove unregisters an animation without advancing it further.
func (sc *Scheduler) Remove(a Anim) {
	for i, cur := range sc.anims {
		if cur == a {
			sc.anims = append(sc.anims[:i], sc.anims[i+1:]...)
			return
		}
	}
}

// Clear drops all animations.
func (sc *Scheduler) Clear() {
	sc.anims = nil
}

// Len returns the number of active animations.
func (sc *Scheduler) Len() int {
	return len(sc.anims)
}

// Advance steps every active animation to the given time, dropping
// those that report completion.
func (sc *Scheduler) Advance(now time.Time) {
	kept := make([]Anim, 0, len(sc.anims))
	for _, a := range sc.anims {
		if !a.Advance(now) {
			kept = append(kept, a)
		}
	}
	sc.anims = kept
}
