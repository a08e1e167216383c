// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/mapforge/mapforge/model"
)

// CheckLinkedGroupsToUpdate returns whether the given groups can be
// updated in one batch: no two of them may belong to the same link set,
// since the propagation source of a link set must be unambiguous.
func CheckLinkedGroupsToUpdate(changedLinkedGroups []*model.GroupNode) bool {
	seen := make(map[string]bool, len(changedLinkedGroups))
	for _, groupNode := range changedLinkedGroups {
		id := groupNode.Group().LinkedGroupID
		if id == "" {
			continue
		}
		if seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

// GenerateEntityLinkIDs walks the given link set members in lock-step
// and returns one fresh link ID per entity position, mapped from every
// entity node at that position. Returns nil if the members are not
// structurally isomorphic or if an entity position is occupied by a
// different variant in some member. The given groups must number at
// least two and belong to the same link set.
func GenerateEntityLinkIDs(groupNodes []*model.GroupNode) map[*model.EntityNode]string {
	if len(groupNodes) < 2 {
		panic("document: link set must contain at least two groups")
	}
	linkedGroupID := groupNodes[0].Group().LinkedGroupID
	for _, groupNode := range groupNodes[1:] {
		if groupNode.Group().LinkedGroupID != linkedGroupID {
			panic("document: all groups must belong to the same link set")
		}
	}

	roots := make([]model.Node, 0, len(groupNodes))
	for _, groupNode := range groupNodes {
		roots = append(roots, groupNode)
	}

	result := map[*model.EntityNode]string{}
	ok := model.VisitNodesPerPosition(roots, func(nodes []model.Node) bool {
		if _, isEntity := nodes[0].(*model.EntityNode); !isEntity {
			return model.Continue
		}
		linkID := uuid.NewString()
		for _, node := range nodes {
			entityNode, isEntity := node.(*model.EntityNode)
			if !isEntity {
				return model.Break
			}
			result[entityNode] = linkID
		}
		return model.Continue
	})
	if !ok {
		return nil
	}
	return result
}

// UpdateLinkedGroupsHelper computes and carries the updates that
// propagate changes made to a set of linked groups to the other members
// of their link sets. It alternates between holding the new children (to
// apply) and the replaced children (to undo), so applying twice in a row
// without an undo in between is invalid.
type UpdateLinkedGroupsHelper struct {
	changedLinkedGroups []*model.GroupNode
	updates             []model.NodeUpdate
	computed            bool
}

// NewUpdateLinkedGroupsHelper returns a helper that will propagate the
// changes of the given groups. The groups are processed inner before
// outer, so that when nested linked groups change together, the
// propagated content of an outer group already contains the propagated
// content of the groups nested inside it.
func NewUpdateLinkedGroupsHelper(changedLinkedGroups []*model.GroupNode) *UpdateLinkedGroupsHelper {
	sorted := slices.Clone(changedLinkedGroups)
	slices.SortStableFunc(sorted, func(a, b *model.GroupNode) int {
		switch {
		case b.IsAncestorOf(a):
			return -1
		case a.IsAncestorOf(b):
			return 1
		default:
			return 0
		}
	})
	return &UpdateLinkedGroupsHelper{changedLinkedGroups: sorted}
}

// Apply computes the propagated children for every other member of the
// changed groups' link sets, then swaps them into the document. After
// Apply returns, the helper holds the replaced children for [Undo]. The
// computation happens only on the first call; a later call after an undo
// swaps the same children back in.
func (h *UpdateLinkedGroupsHelper) Apply(doc Facade) error {
	if err := h.computeUpdates(doc); err != nil {
		return err
	}
	h.updates = doc.PerformReplaceChildren(h.updates)
	return nil
}

// Undo swaps the children replaced by the previous [Apply] back into the
// document. After Undo returns, the helper holds the propagated children
// again and a later Apply reuses them.
func (h *UpdateLinkedGroupsHelper) Undo(doc Facade) {
	h.updates = doc.PerformReplaceChildren(h.updates)
}

// CollateWith merges the undo state of the given later helper into this
// one so that undoing this helper undoes both updates at once. Both
// helpers must be in the applied state. For a node updated by both, the
// children held by this helper are kept, since they are the earlier
// state. The other helper is drained and must not be used afterwards.
func (h *UpdateLinkedGroupsHelper) CollateWith(other *UpdateLinkedGroupsHelper) {
	for _, update := range other.updates {
		alreadyHeld := slices.ContainsFunc(h.updates, func(u model.NodeUpdate) bool {
			return u.Node == update.Node
		})
		if !alreadyHeld {
			h.updates = append(h.updates, update)
		}
	}
	other.updates = nil
}

func (h *UpdateLinkedGroupsHelper) computeUpdates(doc Facade) error {
	if h.computed {
		return nil
	}

	if !CheckLinkedGroupsToUpdate(h.changedLinkedGroups) {
		return model.ErrSameLinkSetMultipleMembers
	}

	var allUpdates []model.NodeUpdate
	for _, groupNode := range h.changedLinkedGroups {
		linkedGroupID := groupNode.Group().LinkedGroupID
		if linkedGroupID == "" {
			continue
		}

		members := model.FindLinkedGroups([]model.Node{doc.World()}, linkedGroupID)
		targets := make([]*model.GroupNode, 0, len(members))
		for _, member := range members {
			if member != groupNode {
				targets = append(targets, member)
			}
		}

		updates, err := model.UpdateLinkedGroups(groupNode, targets, doc.WorldBounds())
		if err != nil {
			return fmt.Errorf("update linked group %q: %w", groupNode.Name(), err)
		}
		allUpdates = append(allUpdates, updates...)
	}

	h.updates = allUpdates
	h.computed = true
	return nil
}
