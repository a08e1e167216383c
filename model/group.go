// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"slices"

	"github.com/mapforge/mapforge/math32"
)

// Group is the payload of a [GroupNode]: the name of the group, the
// accumulated affine transformation of the group, and the optional ID of
// the link set the group belongs to. All group nodes sharing a non-empty
// LinkedGroupID form one link set and are kept structurally synchronized.
type Group struct {

	// Name is the display name of the group. Names are editor-local
	// annotations; they are not synchronized across a link set.
	Name string

	// Transformation is the accumulated affine transformation that has
	// been applied to the group and its contents.
	Transformation math32.Matrix4

	// LinkedGroupID identifies the link set this group belongs to,
	// or is empty if the group is not linked.
	LinkedGroupID string
}

// NewGroup returns a new group payload with the given name and an
// identity transformation.
func NewGroup(name string) Group {
	return Group{Name: name, Transformation: math32.Identity4()}
}

// Transform composes the given transformation onto this group's
// accumulated transformation.
func (g *Group) Transform(m math32.Matrix4) {
	g.Transformation = m.Mul(g.Transformation)
}

// EditState describes whether a group is currently open for editing.
type EditState int32

const (
	// EditStateClosed is the normal state: the group acts as one object.
	EditStateClosed EditState = iota

	// EditStateOpen means the group's contents are directly editable.
	EditStateOpen

	// EditStateDescendantOpen means a group nested inside this one is open.
	EditStateDescendantOpen
)

// GroupNode is a scene node that groups other nodes into one editable
// object, optionally linked to other groups in a link set.
type GroupNode struct {
	NodeBase

	group     Group
	editState EditState
}

// NewGroupNode returns a new group node with the given payload.
func NewGroupNode(group Group) *GroupNode {
	n := &GroupNode{group: group}
	initNode(n)
	return n
}

// Name returns the name of the group.
func (n *GroupNode) Name() string {
	return n.group.Name
}

// Group returns the payload of this group node.
func (n *GroupNode) Group() Group {
	return n.group
}

// SetGroup replaces the payload of this group node and returns the
// previous payload.
func (n *GroupNode) SetGroup(group Group) Group {
	old := n.group
	n.group = group
	return old
}

// Opened returns whether this group is open for editing.
func (n *GroupNode) Opened() bool {
	return n.editState == EditStateOpen
}

// Closed returns whether this group is closed.
func (n *GroupNode) Closed() bool {
	return n.editState == EditStateClosed
}

// HasOpenedDescendant returns whether a group nested inside this one is open.
func (n *GroupNode) HasOpenedDescendant() bool {
	return n.editState == EditStateDescendantOpen
}

// Open marks this group as open for editing and its ancestor groups as
// having an open descendant. The group must be closed.
func (n *GroupNode) Open() {
	if n.editState != EditStateClosed {
		panic("model: opening a group that is not closed")
	}
	n.editState = EditStateOpen
	n.setAncestorEditState(EditStateDescendantOpen)
}

// Close marks this group as closed again. The group must be open.
func (n *GroupNode) Close() {
	if n.editState != EditStateOpen {
		panic("model: closing a group that is not open")
	}
	n.editState = EditStateClosed
	n.setAncestorEditState(EditStateClosed)
}

func (n *GroupNode) setAncestorEditState(editState EditState) {
	for cur := n.Parent(); cur != nil; cur = cur.AsNode().Parent() {
		if groupNode, ok := cur.(*GroupNode); ok {
			groupNode.editState = editState
		}
	}
}

// checkRecursiveLinkedGroups returns whether the given parent node or any
// of its ancestors and the given group node or any of its descendants
// share a linked group ID. Adding such a group would make a link set
// contain itself.
func checkRecursiveLinkedGroups(parentNode Node, groupNodeToAdd *GroupNode) bool {
	var ancestorLinkedGroupIDs []string
	for cur := parentNode; cur != nil; cur = cur.AsNode().Parent() {
		if groupNode, ok := cur.(*GroupNode); ok {
			if id := groupNode.group.LinkedGroupID; id != "" {
				ancestorLinkedGroupIDs = append(ancestorLinkedGroupIDs, id)
			}
		}
	}

	result := false
	groupNodeToAdd.WalkDown(func(cur Node) bool {
		if groupNode, ok := cur.(*GroupNode); ok {
			if id := groupNode.group.LinkedGroupID; id != "" {
				if slices.Contains(ancestorLinkedGroupIDs, id) {
					result = true
					return Break
				}
			}
		}
		return Continue
	})
	return result
}

// FindContainingGroup returns the closest ancestor group of the given
// node, or nil if there is none.
func FindContainingGroup(n Node) *GroupNode {
	for cur := n.AsNode().Parent(); cur != nil; cur = cur.AsNode().Parent() {
		if groupNode, ok := cur.(*GroupNode); ok {
			return groupNode
		}
	}
	return nil
}

// FindContainingLayer returns the layer that contains the given node,
// or nil if the node is not in a layer.
func FindContainingLayer(n Node) *LayerNode {
	for cur := n.AsNode().Parent(); cur != nil; cur = cur.AsNode().Parent() {
		if layerNode, ok := cur.(*LayerNode); ok {
			return layerNode
		}
	}
	return nil
}

// FindLinkedGroups returns all group nodes under the given roots that
// belong to the link set with the given ID, in traversal order.
func FindLinkedGroups(roots []Node, linkedGroupID string) []*GroupNode {
	var result []*GroupNode
	for _, root := range roots {
		root.AsNode().WalkDown(func(cur Node) bool {
			if groupNode, ok := cur.(*GroupNode); ok {
				if groupNode.group.LinkedGroupID == linkedGroupID {
					result = append(result, groupNode)
				}
			}
			return Continue
		})
	}
	return result
}

// SetLinkedGroupID sets the linked group ID of the given group node,
// making it a member of the link set with that ID.
func SetLinkedGroupID(groupNode *GroupNode, linkedGroupID string) {
	group := groupNode.Group()
	group.LinkedGroupID = linkedGroupID
	groupNode.SetGroup(group)
}
