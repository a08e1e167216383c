// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"slices"

	"github.com/mapforge/mapforge/math32"
)

// NodeUpdate pairs a node with the children it should receive when an
// update is applied. Applying a batch of updates and applying the batch
// of previous children returned by that application are inverse
// operations.
type NodeUpdate struct {
	Node     Node
	Children []Node
}

// UpdateLinkedGroups propagates the current content of the given source
// group node to the given target group nodes, which are expected to be
// the other members of the source's link set. It returns one update per
// target holding freshly cloned children, transformed from the source's
// coordinate space into the target's. The trees are not modified.
//
// Group names, entity property values under protected keys, and
// protection flags of the targets are preserved in the clones on a
// best-effort basis: where the existing target children no longer
// correspond to the cloned children, preservation is skipped silently.
//
// Fails if the source transformation is not invertible, if a transformed
// clone does not fit into the given world bounds, or if transforming a
// node's content fails.
func UpdateLinkedGroups(sourceGroupNode *GroupNode, targetGroupNodes []*GroupNode, worldBounds math32.Box3) ([]NodeUpdate, error) {
	sourceGroup := sourceGroupNode.Group()
	invertedSourceTransformation, err := sourceGroup.Transformation.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotInvertible, err)
	}

	updates := make([]NodeUpdate, 0, len(targetGroupNodes))
	for _, targetGroupNode := range targetGroupNodes {
		if targetGroupNode == sourceGroupNode {
			continue
		}

		targetGroup := targetGroupNode.Group()
		targetTransformation := targetGroup.Transformation.Mul(invertedSourceTransformation)

		newChildren, err := cloneAndTransformChildren(sourceGroupNode, worldBounds, targetTransformation)
		if err != nil {
			return nil, err
		}

		oldChildren := targetGroupNode.Children()
		preserveGroupNames(newChildren, oldChildren)
		preserveEntityProperties(newChildren, oldChildren)

		updates = append(updates, NodeUpdate{Node: targetGroupNode, Children: newChildren})
	}
	return updates, nil
}

// preserveGroupNames copies the group names of the corresponding nodes
// onto the cloned nodes, pairing them up by position. Nodes without a
// counterpart and pairs of differing variants are skipped.
func preserveGroupNames(clonedNodes, correspondingNodes []Node) {
	for i, clonedNode := range clonedNodes {
		if i >= len(correspondingNodes) {
			return
		}
		clonedGroupNode, ok := clonedNode.(*GroupNode)
		if !ok {
			continue
		}
		correspondingGroupNode, ok := correspondingNodes[i].(*GroupNode)
		if !ok {
			continue
		}

		group := clonedGroupNode.Group()
		group.Name = correspondingGroupNode.Group().Name
		clonedGroupNode.SetGroup(group)

		preserveGroupNames(clonedGroupNode.Children(), correspondingGroupNode.Children())
	}
}

// preserveEntityProperties restores the protected property values of the
// corresponding entities on the cloned entities, pairing up nodes by
// position and descending into matching container nodes. For every key
// protected on either side, the cloned entity keeps the corresponding
// entity's value (or absence) instead of the propagated one, and the
// cloned entity adopts the corresponding entity's protection flags.
func preserveEntityProperties(clonedNodes, correspondingNodes []Node) {
	for i, clonedNode := range clonedNodes {
		if i >= len(correspondingNodes) {
			return
		}
		correspondingNode := correspondingNodes[i]

		switch clonedNode := clonedNode.(type) {
		case *EntityNode:
			correspondingEntityNode, ok := correspondingNode.(*EntityNode)
			if !ok {
				continue
			}
			preserveProtectedProperties(clonedNode, correspondingEntityNode)
			preserveEntityProperties(clonedNode.Children(), correspondingEntityNode.Children())
		case *GroupNode:
			if correspondingGroupNode, ok := correspondingNode.(*GroupNode); ok {
				preserveEntityProperties(clonedNode.Children(), correspondingGroupNode.Children())
			}
		}
	}
}

// preserveProtectedProperties makes the cloned entity keep the
// corresponding entity's state for every key that is protected on either
// entity, and copies the corresponding entity's protection flags.
func preserveProtectedProperties(clonedEntityNode, correspondingEntityNode *EntityNode) {
	correspondingEntity := correspondingEntityNode.Entity()
	if len(clonedEntityNode.Entity().ProtectedProperties) == 0 &&
		len(correspondingEntity.ProtectedProperties) == 0 {
		return
	}

	allProtectedProperties := slices.Concat(
		clonedEntityNode.Entity().ProtectedProperties,
		correspondingEntity.ProtectedProperties)
	slices.Sort(allProtectedProperties)
	allProtectedProperties = slices.Compact(allProtectedProperties)

	clonedEntity := clonedEntityNode.Entity().Clone()
	clonedEntity.ProtectedProperties = slices.Clone(correspondingEntity.ProtectedProperties)

	for _, key := range allProtectedProperties {
		clonedEntity.RemoveProperty(key)
		if value, ok := correspondingEntity.Property(key); ok {
			clonedEntity.SetProperty(key, value)
		}
	}

	clonedEntityNode.SetEntity(clonedEntity)
}
