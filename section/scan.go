// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"time"

	"cogentcore.org/core/math32"
)

const (
	// ScanTime is the duration of the sweep from the starting
	// position to 1.
	ScanTime = 1500 * time.Millisecond

	// ScanPause is how long the scan rests at 1 before resetting.
	ScanPause = 300 * time.Millisecond
)

// Scan sweeps the section position linearly from its starting value to
// 1, pauses, then resets to 0 and completes. Position changes are
// delivered through the set callback, which recomputes and applies the
// plane from the live position; stopping mid-scan therefore needs no
// state restoration.
type Scan struct {

	// From is the position the sweep starts at.
	From float32

	// Set receives every position update.
	Set func(position float32)

	start   time.Time
	stopped bool
}

// NewScan returns a scan starting from the given position, clamped to
// [0,1].
func NewScan(from float32, set func(position float32)) *Scan {
	return &Scan{From: math32.Clamp(from, 0, 1), Set: set}
}

// Advance implements [anim.Anim]. The sweep timer starts on the first
// call, so scheduling delay does not shorten the sweep.
func (sc *Scan) Advance(now time.Time) bool {
	if sc.stopped {
		return true
	}
	if sc.start.IsZero() {
		sc.start = now
	}
	el := now.Sub(sc.start)
	switch {
	case el < ScanTime:
		t := float32(el) / float32(ScanTime)
		sc.Set(sc.From + (1-sc.From)*t)
		return false
	case el < ScanTime+ScanPause:
		sc.Set(1)
		return false
	}
	sc.Set(0)
	return true
}

// Stop cancels the scan at its current position.
func (sc *Scan) Stop() {
	sc.stopped = true
}
