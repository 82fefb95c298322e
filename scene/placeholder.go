// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// NewPlaceholder returns a stand-in model: a unit box solid under a
// group. It substitutes for the primary model when asset loading
// fails, so the network, clipping, and toggle subsystems still have a
// valid target. A nil parent makes the placeholder a root node.
func NewPlaceholder(parent tree.Node) *Group {
	var grp *Group
	if parent == nil {
		grp = tree.New[Group]()
	} else {
		grp = tree.New[Group](parent)
	}
	grp.AsTree().SetName("placeholder")
	sld := tree.New[Solid](grp)
	sld.AsTree().SetName("placeholder-box")
	sld.Mesh = &Box{Size: math32.Vec3(1, 1, 1)}
	sld.Material.Color = colors.FromRGB(180, 180, 190)
	return grp
}
