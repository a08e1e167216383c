// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "fmt"

// NodeContents is the transformable payload of a node, decoupled from
// its position in the tree: exactly one of [Group], [Entity], [Brush] or
// [Patch]. It is the unit of parallel transformation: payloads are
// transformed concurrently and only reattached to a tree afterwards.
type NodeContents struct {
	value any
}

// ContentsFor returns a [NodeContents] holding the given payload, which
// must be a [Group], [Entity], [Brush] or [Patch].
func ContentsFor(value any) NodeContents {
	switch value.(type) {
	case Group, Entity, Brush, Patch:
		return NodeContents{value: value}
	default:
		panic(fmt.Sprintf("model: invalid node contents type %T", value))
	}
}

// Value returns the payload held by this contents value.
func (c NodeContents) Value() any {
	return c.value
}

// NewNode returns a new detached node of the variant matching the
// payload held by this contents value.
func (c NodeContents) NewNode() Node {
	switch value := c.value.(type) {
	case Group:
		return NewGroupNode(value)
	case Entity:
		return NewEntityNode(value)
	case Brush:
		return NewBrushNode(value)
	case Patch:
		return NewPatchNode(value)
	default:
		panic(fmt.Sprintf("model: invalid node contents type %T", value))
	}
}
