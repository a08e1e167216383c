// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mapforge/mapforge/math32"
)

func newTestTree() *GroupNode {
	group := NewGroupNode(NewGroup("group"))
	entity := NewEntityNode(NewEntity())
	entity.AddChild(NewBrushNode(NewCuboidBrush(math32.B3Scalar(16))))
	group.AddChildren(entity, NewEntityNode(NewEntity()))
	return group
}

func TestWalkDown(t *testing.T) {
	group := newTestTree()

	var names []string
	group.WalkDown(func(n Node) bool {
		names = append(names, n.Name())
		return Continue
	})
	assert.Equal(t, []string{"group", "entity", "brush", "entity"}, names)
}

func TestWalkDownBreakPrunesBranch(t *testing.T) {
	group := newTestTree()

	var names []string
	group.WalkDown(func(n Node) bool {
		names = append(names, n.Name())
		if _, ok := n.(*EntityNode); ok {
			return Break
		}
		return Continue
	})
	// the brush under the first entity is skipped, the second entity is not
	assert.Equal(t, []string{"group", "entity", "entity"}, names)
}

func TestVisitNodesPerPosition(t *testing.T) {
	first := newTestTree()
	second := newTestTree()
	third := newTestTree()

	var visited int
	ok := VisitNodesPerPosition([]Node{first, second, third}, func(nodes []Node) bool {
		assert.Len(t, nodes, 3)
		visited++
		return Continue
	})
	assert.True(t, ok)
	assert.Equal(t, 4, visited)
}

func TestVisitNodesPerPositionMismatch(t *testing.T) {
	first := newTestTree()
	second := newTestTree()
	second.AddChild(NewEntityNode(NewEntity()))

	ok := VisitNodesPerPosition([]Node{first, second}, func(nodes []Node) bool {
		return Continue
	})
	assert.False(t, ok)
}

func TestVisitNodesPerPositionBreak(t *testing.T) {
	first := newTestTree()
	second := newTestTree()

	var visited int
	ok := VisitNodesPerPosition([]Node{first, second}, func(nodes []Node) bool {
		visited++
		return Break
	})
	assert.False(t, ok)
	assert.Equal(t, 1, visited)
}
