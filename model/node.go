// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model implements the scene model of a map document: a tree of
// nodes (world, layers, groups, entities, brushes and patches) together
// with the linked group synchronization engine that keeps all members of
// a link set structurally and semantically consistent.
package model

import (
	"slices"

	"github.com/mapforge/mapforge/math32"
)

// Node is the interface satisfied by all scene nodes. The variant set is
// closed: [WorldNode], [LayerNode], [GroupNode], [EntityNode], [BrushNode]
// and [PatchNode]. Code dispatches on the concrete type; there are no
// other implementations. The core tree functionality is defined on
// [NodeBase], which all variants embed.
type Node interface {

	// AsNode returns the [NodeBase] of this node, which provides
	// the core tree functionality.
	AsNode() *NodeBase

	// Name returns a display name for this node.
	Name() string
}

const (
	// Continue = true can be returned from tree walking functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree walking functions to stop processing
	// this branch of the tree.
	Break = false
)

// NodeBase provides the core tree functionality for all scene nodes:
// the parent back-reference, the owned list of children, and cached
// bounding boxes with invalidation. Child order is significant and is
// preserved by all operations.
type NodeBase struct {
	this     Node
	parent   Node
	children []Node

	boundsValid    bool
	logicalBounds  math32.Box3
	physicalBounds math32.Box3
}

// initNode records the concrete variant on the embedded base so that
// methods defined on NodeBase can dispatch on it.
func initNode(n Node) {
	n.AsNode().this = n
}

// AsNode returns the [NodeBase] for this node.
func (n *NodeBase) AsNode() *NodeBase {
	return n
}

// This returns this node as its concrete variant.
func (n *NodeBase) This() Node {
	return n.this
}

// Parent returns the parent of this node, or nil for a root node.
// The parent reference is non-owning; ownership always runs from
// parent to child.
func (n *NodeBase) Parent() Node {
	return n.parent
}

// Children returns the list of children of this node, in order.
// The returned slice is owned by the node and must not be modified.
func (n *NodeBase) Children() []Node {
	return n.children
}

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.children) || i < 0 {
		return nil
	}
	return n.children[i]
}

// CanAddChild reports whether the given node may become a child of this
// node under the containment rules of the variant: the world contains
// layers; layers and groups contain groups, entities, brushes and
// patches; entities contain brushes and patches. Adding a group whose
// subtree would create a recursive link set is rejected.
func (n *NodeBase) CanAddChild(child Node) bool {
	switch n.this.(type) {
	case *WorldNode:
		_, ok := child.(*LayerNode)
		return ok
	case *LayerNode, *GroupNode:
		switch childGroupNode := child.(type) {
		case *WorldNode, *LayerNode:
			return false
		case *GroupNode:
			return !checkRecursiveLinkedGroups(n.this, childGroupNode)
		default:
			return true
		}
	case *EntityNode:
		switch child.(type) {
		case *BrushNode, *PatchNode:
			return true
		default:
			return false
		}
	default:
		return false
	}
}

// AddChild adds the given child at the end of the children list and sets
// its parent. The child is assumed to be detached. Callers must validate
// with [NodeBase.CanAddChild] first; adding an impossible child is a
// structural invariant violation and panics.
func (n *NodeBase) AddChild(child Node) {
	if !n.CanAddChild(child) {
		panic("model: node cannot accept this child")
	}
	n.children = append(n.children, child)
	child.AsNode().parent = n.this
	n.InvalidateBounds()
}

// AddChildren adds all of the given children in order.
func (n *NodeBase) AddChildren(children ...Node) {
	for _, child := range children {
		n.AddChild(child)
	}
}

// RemoveChild removes the given child from the children list without
// destroying it, returning false if it is not a child of this node.
// The removed child is detached and keeps its own subtree.
func (n *NodeBase) RemoveChild(child Node) bool {
	idx := slices.Index(n.children, child)
	if idx < 0 {
		return false
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	child.AsNode().parent = nil
	n.InvalidateBounds()
	return true
}

// ReplaceChildren atomically replaces the entire children list with the
// given new children and returns the previous children, detached but
// intact. This is the primitive used to swap in the result of a linked
// group update and to swap it back out for undo.
func (n *NodeBase) ReplaceChildren(newChildren []Node) []Node {
	oldChildren := n.children
	for _, child := range oldChildren {
		child.AsNode().parent = nil
	}
	n.children = make([]Node, 0, len(newChildren))
	for _, child := range newChildren {
		n.children = append(n.children, child)
		child.AsNode().parent = n.this
	}
	n.InvalidateBounds()
	return oldChildren
}

// IsAncestorOf returns whether this node is an ancestor of the given node.
func (n *NodeBase) IsAncestorOf(other Node) bool {
	if other == nil {
		return false
	}
	for cur := other.AsNode().parent; cur != nil; cur = cur.AsNode().parent {
		if cur == n.this {
			return true
		}
	}
	return false
}

// WalkDown calls the given function on this node and all of its
// descendants in a depth-first manner, children in list order. It stops
// walking the current branch if the function returns [Break] and keeps
// walking if it returns [Continue].
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	walkDown(n.this, fun)
}

func walkDown(n Node, fun func(n Node) bool) {
	if !fun(n) {
		return
	}
	for _, child := range n.AsNode().children {
		walkDown(child, fun)
	}
}

// WalkUp calls the given function on this node and all of its parents,
// stopping if the function returns [Break]. It returns whether walking
// was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	for cur := n.this; cur != nil; cur = cur.AsNode().parent {
		if !fun(cur) {
			return false
		}
	}
	return true
}

// Bounds:

// LogicalBounds returns the bounding box of the node used for all editing
// logic, e.g., containment in the world bounds.
func (n *NodeBase) LogicalBounds() math32.Box3 {
	if !n.boundsValid {
		n.validateBounds()
	}
	return n.logicalBounds
}

// PhysicalBounds returns the bounding box of everything the node renders,
// which can exceed the logical bounds for nodes with display-only
// geometry attached.
func (n *NodeBase) PhysicalBounds() math32.Box3 {
	if !n.boundsValid {
		n.validateBounds()
	}
	return n.physicalBounds
}

// InvalidateBounds marks the cached bounds of this node and all of its
// ancestors as stale; they are recomputed on the next query.
func (n *NodeBase) InvalidateBounds() {
	for cur := n.this; cur != nil; cur = cur.AsNode().parent {
		cur.AsNode().boundsValid = false
	}
}

func (n *NodeBase) validateBounds() {
	switch t := n.this.(type) {
	case *EntityNode:
		if n.HasChildren() {
			n.logicalBounds = ComputeLogicalBounds(n.children, math32.Box3{})
			n.physicalBounds = ComputePhysicalBounds(n.children, math32.Box3{})
		} else {
			n.logicalBounds = t.entity.DefaultBounds()
			n.physicalBounds = n.logicalBounds
		}
	case *BrushNode:
		n.logicalBounds = t.brush.Bounds()
		n.physicalBounds = n.logicalBounds
	case *PatchNode:
		n.logicalBounds = t.patch.Bounds()
		n.physicalBounds = n.logicalBounds
	default:
		n.logicalBounds = ComputeLogicalBounds(n.children, math32.Box3{})
		n.physicalBounds = ComputePhysicalBounds(n.children, math32.Box3{})
	}
	n.boundsValid = true
}

// ComputeLogicalBounds returns the union of the logical bounds of the
// given nodes, or the given default if the list is empty.
func ComputeLogicalBounds(nodes []Node, def math32.Box3) math32.Box3 {
	if len(nodes) == 0 {
		return def
	}
	bounds := math32.B3Empty()
	for _, node := range nodes {
		bounds.ExpandByBox(node.AsNode().LogicalBounds())
	}
	return bounds
}

// ComputePhysicalBounds returns the union of the physical bounds of the
// given nodes, or the given default if the list is empty.
func ComputePhysicalBounds(nodes []Node, def math32.Box3) math32.Box3 {
	if len(nodes) == 0 {
		return def
	}
	bounds := math32.B3Empty()
	for _, node := range nodes {
		bounds.ExpandByBox(node.AsNode().PhysicalBounds())
	}
	return bounds
}

// FindNodesContaining returns all nodes in the subtree rooted at the
// given node whose logical bounds contain the given point.
func FindNodesContaining(n Node, point math32.Vector3) []Node {
	var result []Node
	n.AsNode().WalkDown(func(cur Node) bool {
		if cur.AsNode().LogicalBounds().ContainsPoint(point) {
			result = append(result, cur)
		}
		return Continue
	})
	return result
}
