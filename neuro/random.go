// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/math32"
)

// SphereDirection returns a direction uniformly distributed on the
// unit sphere: azimuth uniform in [0,2pi), polar angle from an
// inverse-cosine of a uniform sample in [-1,1] so directions do not
// cluster at the poles.
func SphereDirection(rnd randx.Rand) math32.Vector3 {
	theta := 2 * math32.Pi * rnd.Float32()
	cosPhi := 2*rnd.Float32() - 1
	sinPhi := math32.Sqrt(1 - cosPhi*cosPhi)
	return math32.Vec3(sinPhi*math32.Cos(theta), cosPhi, sinPhi*math32.Sin(theta))
}

// perpendicular returns a unit vector perpendicular to the unit
// direction dir, at a uniformly random rotation around it.
func perpendicular(rnd randx.Rand, dir math32.Vector3) math32.Vector3 {
	ref := math32.Vec3(0, 1, 0)
	if math32.Abs(dir.Dot(ref)) > 0.9 {
		ref = math32.Vec3(1, 0, 0)
	}
	u := dir.Cross(ref).Normal()
	v := dir.Cross(u)
	ang := 2 * math32.Pi * rnd.Float32()
	return u.MulScalar(math32.Cos(ang)).Add(v.MulScalar(math32.Sin(ang)))
}

// lengthVar returns the uniform length variation factor in [0.7, 1.3]
// applied to dendrite and axon base lengths.
func lengthVar(rnd randx.Rand) float32 {
	return 0.7 + 0.6*rnd.Float32()
}

// irwinHall returns an approximately Gaussian sample in [-2,2] as the
// centered sum of four uniform samples (Irwin-Hall), used for cluster
// member placement.
func irwinHall(rnd randx.Rand) float32 {
	return rnd.Float32() + rnd.Float32() + rnd.Float32() + rnd.Float32() - 2
}
