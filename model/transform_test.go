// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapforge/mapforge/math32"
)

func TestTransformNode(t *testing.T) {
	group := NewGroupNode(NewGroup("group"))
	entityNode := newLightEntityNode("1 0 0")
	brushNode := NewBrushNode(NewCuboidBrush(math32.B3Scalar(16)))
	group.AddChildren(entityNode, brushNode)

	m := math32.Translation4(math32.Vec3(0, 0, 32))
	require.NoError(t, TransformNode(group, m, testWorldBounds))

	groupTransformation := group.Group().Transformation
	assert.Equal(t, math32.Vec3(0, 0, 32), groupTransformation.Translation())
	assert.Equal(t, "1 0 32", originOf(entityNode))
	assert.Equal(t, math32.B3Scalar(16).Translate(math32.Vec3(0, 0, 32)), brushNode.Brush().Bounds())
}

func TestTransformNodeBrushFailure(t *testing.T) {
	group := NewGroupNode(NewGroup("group"))
	group.AddChild(NewBrushNode(NewCuboidBrush(math32.B3Scalar(16))))

	collapse := math32.Scale4(math32.Vec3(1, 1, 0))
	assert.Error(t, TransformNode(group, collapse, testWorldBounds))
}
