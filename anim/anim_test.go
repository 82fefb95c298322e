// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// stepAnim completes after a fixed number of advances.
type stepAnim struct {
	steps int
	seen  []time.Time
}

func (sa *stepAnim) Advance(now time.Time) bool {
	sa.seen = append(sa.seen, now)
	sa.steps--
	return sa.steps <= 0
}

func TestScheduler(t *testing.T) {
	sc := &Scheduler{}
	a := &stepAnim{steps: 2}
	b := &stepAnim{steps: 1}
	sc.Add(a)
	sc.Add(b)
	sc.Add(nil)
	assert.Equal(t, 2, sc.Len())

	t0 := time.Now()
	sc.Advance(t0)
	assert.Equal(t, 1, sc.Len()) // b done
	sc.Advance(t0.Add(time.Millisecond))
	assert.Equal(t, 0, sc.Len())

	assert.Len(t, a.seen, 2)
	assert.Len(t, b.seen, 1)
	assert.Equal(t, t0, a.seen[0])
}

func TestSchedulerRemove(t *testing.T) {
	sc := &Scheduler{}
	a := &stepAnim{steps: 10}
	b := &stepAnim{steps: 10}
	sc.Add(a)
	sc.Add(b)
	sc.Remove(a)
	assert.Equal(t, 1, sc.Len())

	sc.Advance(time.Now())
	assert.Empty(t, a.seen)
	assert.Len(t, b.seen, 1)

	sc.Remove(a) // not present; no-op
	sc.Clear()
	assert.Equal(t, 0, sc.Len())
}
