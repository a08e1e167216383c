// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// WorldNode is the root of a scene tree. Its children are layers;
// every world starts out with a default layer.
type WorldNode struct {
	NodeBase

	defaultLayer *LayerNode
}

// NewWorldNode returns a new world with its default layer in place.
func NewWorldNode() *WorldNode {
	n := &WorldNode{}
	initNode(n)
	n.defaultLayer = NewLayerNode("Default Layer")
	n.AddChild(n.defaultLayer)
	return n
}

// Name returns the display name of the world.
func (n *WorldNode) Name() string {
	return "world"
}

// DefaultLayer returns the default layer of this world.
func (n *WorldNode) DefaultLayer() *LayerNode {
	return n.defaultLayer
}

// LayerNode groups top level content of a map under the world.
// Unlike groups, layers carry no transformation.
type LayerNode struct {
	NodeBase

	name string
}

// NewLayerNode returns a new layer with the given name.
func NewLayerNode(name string) *LayerNode {
	n := &LayerNode{name: name}
	initNode(n)
	return n
}

// Name returns the name of this layer.
func (n *LayerNode) Name() string {
	return n.name
}

// SetName sets the name of this layer.
func (n *LayerNode) SetName(name string) {
	n.name = name
}
