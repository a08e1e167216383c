// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mapforge/mapforge/math32"
)

// collectNodesToCloneAndTransform recursively collects the nodes to
// clone and transform, starting with the children of the given node
// (the node itself is skipped), in depth-first pre-order.
func collectNodesToCloneAndTransform(node Node) []Node {
	var result []Node
	for _, child := range node.AsNode().Children() {
		child.AsNode().WalkDown(func(n Node) bool {
			result = append(result, n)
			return Continue
		})
	}
	return result
}

// transformNodeContents extracts the payload of the given node and
// applies the given transformation to a copy of it. Only group, entity,
// brush and patch nodes can appear in a linked group subtree; a world or
// layer node here is a broken structural invariant.
func transformNodeContents(node Node, worldBounds math32.Box3, m *math32.Matrix4) (NodeContents, error) {
	switch node := node.(type) {
	case *GroupNode:
		group := node.Group()
		group.Transform(*m)
		return ContentsFor(group), nil
	case *EntityNode:
		entity := node.Entity().Clone()
		entity.Transform(node.PropertyConfig(), m)
		return ContentsFor(entity), nil
	case *BrushNode:
		brush := node.Brush().Clone()
		if err := brush.Transform(worldBounds, m); err != nil {
			return NodeContents{}, err
		}
		return ContentsFor(brush), nil
	case *PatchNode:
		patch := node.Patch().Clone()
		patch.Transform(m)
		return ContentsFor(patch), nil
	default:
		panic("model: world and layer nodes cannot be part of a group")
	}
}

// cloneAndTransformRecursive builds the clone of one source node, moving
// in the transformed contents prepared for it, then recurses over the
// source node's children to build a matching tree structure. Every clone
// must fit into the world bounds.
func cloneAndTransformRecursive(nodeToClone Node, transformedContents map[Node]NodeContents, worldBounds math32.Box3) (Node, error) {
	clone := transformedContents[nodeToClone].NewNode()

	if !worldBounds.ContainsBox(clone.AsNode().LogicalBounds()) {
		return nil, ErrExceedsWorldBounds
	}

	for _, childNode := range nodeToClone.AsNode().Children() {
		childClone, err := cloneAndTransformRecursive(childNode, transformedContents, worldBounds)
		if err != nil {
			return nil, err
		}
		clone.AsNode().AddChild(childClone)
	}
	return clone, nil
}

// cloneAndTransformChildren clones the children of the given node
// recursively and applies the given transformation, returning the cloned
// direct children of the node as new detached subtrees.
//
// The per-node content transformation has no cross-node dependencies, so
// it runs concurrently over all collected nodes, each task reading one
// source node and writing one result slot. The tree is then reassembled
// sequentially in source order from the completed results, so the output
// is deterministic regardless of scheduling.
func cloneAndTransformChildren(node Node, worldBounds math32.Box3, m math32.Matrix4) ([]Node, error) {
	nodesToClone := collectNodesToCloneAndTransform(node)

	results := make([]NodeContents, len(nodesToClone))
	group := new(errgroup.Group)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, nodeToTransform := range nodesToClone {
		group.Go(func() error {
			contents, err := transformNodeContents(nodeToTransform, worldBounds, &m)
			if err != nil {
				return err
			}
			results[i] = contents
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransformFailed, err)
	}

	transformedContents := make(map[Node]NodeContents, len(nodesToClone))
	for i, nodeToTransform := range nodesToClone {
		transformedContents[nodeToTransform] = results[i]
	}

	children := node.AsNode().Children()
	clones := make([]Node, 0, len(children))
	for _, childNode := range children {
		clone, err := cloneAndTransformRecursive(childNode, transformedContents, worldBounds)
		if err != nil {
			return nil, err
		}
		clones = append(clones, clone)
	}
	return clones, nil
}
