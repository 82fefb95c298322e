// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the engine-facing scene model that the neuron
// overlay, cross-section, and display-mode subsystems compute against:
// a tree of groups and solids with phong-style materials, bounding
// boxes, and clip-plane state. The hosting engine mirrors this state
// into its own renderer; nothing here touches a GPU.
package scene

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// Node is the interface for all scene nodes.
type Node interface {
	tree.Node

	// AsSceneNode returns the [NodeBase] for this node.
	AsSceneNode() *NodeBase

	// LocalBBox returns the bounding box of this node's own geometry,
	// in local coordinates. Nodes without geometry return an empty box.
	LocalBBox() math32.Box3
}

// Pose holds the spatial placement of a node relative to its parent.
type Pose struct {

	// Pos is the translation relative to the parent node.
	Pos math32.Vector3

	// Scale is the scaling factor applied to this node's geometry.
	Scale math32.Vector3
}

// Defaults sets default pose values if not yet initialized.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.SetScalar(1)
	}
}

// NodeBase provides the core scene node implementation, which all
// higher-level scene node types embed.
type NodeBase struct {
	tree.NodeBase

	// Pose is the spatial placement of this node relative to its parent.
	Pose Pose
}

func (nb *NodeBase) Init() {
	nb.Pose.Defaults()
}

func (nb *NodeBase) AsSceneNode() *NodeBase {
	return nb
}

func (nb *NodeBase) LocalBBox() math32.Box3 {
	return math32.B3Empty()
}

// Group is a container node that only establishes a coordinate frame
// for its children.
type Group struct {
	NodeBase
}

// Solid is an individual renderable element with its own material
// properties, pointing to a mesh defining its shape.
type Solid struct {
	NodeBase

	// Material contains the surface properties (color, shininess,
	// clip planes, display-mode state).
	Material Material

	// Mesh is the shape geometry for this solid.
	Mesh Mesh
}

func (sld *Solid) Init() {
	sld.NodeBase.Init()
	sld.Material.Defaults()
}

func (sld *Solid) LocalBBox() math32.Box3 {
	if sld.Mesh == nil {
		return math32.B3Empty()
	}
	bb := sld.Mesh.MeshBBox()
	if bb.IsEmpty() {
		return bb
	}
	bb.Min = bb.Min.Mul(sld.Pose.Scale)
	bb.Max = bb.Max.Mul(sld.Pose.Scale)
	return bb
}

// WorldPos returns the world position of the given node, accumulating
// the translations of all parents. Scene nodes only translate; any
// rotation lives in the hosting engine.
func WorldPos(n Node) math32.Vector3 {
	pos := n.AsSceneNode().Pose.Pos
	for p := n.AsTree().Parent; p != nil; p = p.AsTree().Parent {
		if pn, ok := p.(Node); ok {
			pos = pos.Add(pn.AsSceneNode().Pose.Pos)
		}
	}
	return pos
}

// BBox computes the axis-aligned bounding box of all geometry at or
// below the given node, in world coordinates. This is the bounding-box
// primitive consumed by the spatial bounds service.
func BBox(n Node) math32.Box3 {
	bb := math32.B3Empty()
	if n == nil {
		return bb
	}
	n.AsTree().WalkDown(func(k tree.Node) bool {
		sn, ok := k.(Node)
		if !ok {
			return tree.Continue
		}
		lb := sn.LocalBBox()
		if !lb.IsEmpty() {
			bb.ExpandByBox(lb.Translate(WorldPos(sn)))
		}
		return tree.Continue
	})
	return bb
}

// WalkSolids calls the given function for every [Solid] at or below
// the given node. A nil node is a no-op.
func WalkSolids(n Node, fun func(sld *Solid)) {
	if n == nil {
		return
	}
	n.AsTree().WalkDown(func(k tree.Node) bool {
		if sld, ok := k.(*Solid); ok {
			fun(sld)
		}
		return tree.Continue
	})
}

// ReleaseTree releases the mesh geometry of every solid at or below
// the given node and then deletes the node from its parent, destroying
// the subtree.
func ReleaseTree(n Node) {
	if n == nil {
		return
	}
	WalkSolids(n, func(sld *Solid) {
		if sld.Mesh != nil {
			sld.Mesh.Release()
			sld.Mesh = nil
		}
	})
	n.AsTree().Delete()
}
