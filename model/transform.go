// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"github.com/mapforge/mapforge/math32"
)

// TransformNode applies the given affine transformation to the given
// node and its subtree in place. Transforming a group composes the
// transformation onto the group's accumulated transformation and
// recurses; entities, brushes and patches transform their payloads.
// Fails if a brush does not survive the transformation; the subtree may
// then be partially transformed.
func TransformNode(node Node, m math32.Matrix4, worldBounds math32.Box3) error {
	switch node := node.(type) {
	case *GroupNode:
		group := node.Group()
		group.Transform(m)
		node.SetGroup(group)
	case *EntityNode:
		entity := node.Entity().Clone()
		entity.Transform(node.PropertyConfig(), &m)
		node.SetEntity(entity)
	case *BrushNode:
		brush := node.Brush().Clone()
		if err := brush.Transform(worldBounds, &m); err != nil {
			return err
		}
		node.SetBrush(brush)
		return nil
	case *PatchNode:
		patch := node.Patch().Clone()
		patch.Transform(&m)
		node.SetPatch(patch)
		return nil
	}

	for _, child := range node.AsNode().Children() {
		if err := TransformNode(child, m, worldBounds); err != nil {
			return err
		}
	}
	node.AsNode().InvalidateBounds()
	return nil
}
