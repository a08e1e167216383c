// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"github.com/google/uuid"
)

// SetLinkIDs assigns consistent entity link IDs across the members of a
// link set. The entities under the first group receive fresh IDs, which
// are then copied to the entities at the same structural positions in
// all other groups. Nested groups that belong to a different link set
// keep their own IDs.
//
// Fails with [ErrLinkSetTooSmall] if fewer than two groups are given and
// with [ErrInconsistentStructure] if the groups' subtrees do not
// correspond. On failure, all link IDs in all given groups are cleared
// so that no group is left with a partially assigned ID set.
func SetLinkIDs(groupNodes []*GroupNode) error {
	if len(groupNodes) < 2 {
		return ErrLinkSetTooSmall
	}

	sourceGroupNode := groupNodes[0]
	assignFreshLinkIDs(sourceGroupNode)

	for _, targetGroupNode := range groupNodes[1:] {
		if err := CopyLinkIDs(sourceGroupNode, targetGroupNode); err != nil {
			ResetLinkIDs(groupNodes)
			return err
		}
	}
	return nil
}

// assignFreshLinkIDs gives every entity under the given group node a new
// unique link ID, skipping the subtrees of nested groups that belong to
// a different link set.
func assignFreshLinkIDs(groupNode *GroupNode) {
	ownID := groupNode.Group().LinkedGroupID
	groupNode.WalkDown(func(n Node) bool {
		switch n := n.(type) {
		case *GroupNode:
			if id := n.Group().LinkedGroupID; id != "" && id != ownID {
				return Break
			}
		case *EntityNode:
			entity := n.Entity().Clone()
			entity.LinkID = uuid.NewString()
			n.SetEntity(entity)
		}
		return Continue
	})
}

// CopyLinkIDs copies the entity link IDs from the source group node to
// the entities at the same structural positions under the target group
// node. The source entities must already carry link IDs. Fails with
// [ErrInconsistentStructure] if the two subtrees do not correspond.
func CopyLinkIDs(sourceGroupNode, targetGroupNode *GroupNode) error {
	ownID := sourceGroupNode.Group().LinkedGroupID
	return visitPairsPerPosition(sourceGroupNode, targetGroupNode, func(sourceNode, targetNode Node) (bool, error) {
		switch sourceNode := sourceNode.(type) {
		case *GroupNode:
			targetGroup, ok := targetNode.(*GroupNode)
			if !ok {
				return false, ErrInconsistentStructure
			}
			if id := sourceNode.Group().LinkedGroupID; id != "" && id != ownID {
				if targetGroup.Group().LinkedGroupID != id {
					return false, ErrInconsistentStructure
				}
				return false, nil
			}
			return true, nil
		case *EntityNode:
			targetEntityNode, ok := targetNode.(*EntityNode)
			if !ok {
				return false, ErrInconsistentStructure
			}
			linkID := sourceNode.Entity().LinkID
			if linkID == "" {
				panic("model: source entity has no link ID")
			}
			entity := targetEntityNode.Entity().Clone()
			entity.LinkID = linkID
			targetEntityNode.SetEntity(entity)
			return true, nil
		case *BrushNode:
			if _, ok := targetNode.(*BrushNode); !ok {
				return false, ErrInconsistentStructure
			}
			return false, nil
		case *PatchNode:
			if _, ok := targetNode.(*PatchNode); !ok {
				return false, ErrInconsistentStructure
			}
			return false, nil
		default:
			return false, ErrInconsistentStructure
		}
	})
}

// ResetLinkIDs clears the link ID of every entity under the given
// groups, including the entities of nested groups.
func ResetLinkIDs(groupNodes []*GroupNode) {
	for _, groupNode := range groupNodes {
		groupNode.WalkDown(func(n Node) bool {
			if entityNode, ok := n.(*EntityNode); ok {
				if entityNode.Entity().LinkID != "" {
					entity := entityNode.Entity().Clone()
					entity.LinkID = ""
					entityNode.SetEntity(entity)
				}
			}
			return Continue
		})
	}
}

// HasAnyEntityLinkIDs returns whether any entity under the given node
// carries a link ID.
func HasAnyEntityLinkIDs(node Node) bool {
	found := false
	node.AsNode().WalkDown(func(n Node) bool {
		if entityNode, ok := n.(*EntityNode); ok {
			if entityNode.Entity().LinkID != "" {
				found = true
				return Break
			}
		}
		return Continue
	})
	return found
}
