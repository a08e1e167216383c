// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapforge/mapforge/math32"
	"github.com/mapforge/mapforge/model"
)

func newLinkedGroupNode(name, linkedGroupID string, transformation math32.Matrix4) *model.GroupNode {
	return model.NewGroupNode(model.Group{
		Name:           name,
		Transformation: transformation,
		LinkedGroupID:  linkedGroupID,
	})
}

func newLightEntityNode(origin string) *model.EntityNode {
	entity := model.NewEntity()
	entity.SetProperty("classname", "light")
	entity.SetProperty(model.PropertyOrigin, origin)
	return model.NewEntityNode(entity)
}

func originOf(n model.Node) string {
	v, _ := n.(*model.EntityNode).Entity().Property(model.PropertyOrigin)
	return v
}

// newLinkedPairDocument returns a document whose default layer holds two
// members of the link set "lg", the second translated by (64, 0, 0).
func newLinkedPairDocument(t *testing.T) (*Document, *model.GroupNode, *model.GroupNode) {
	t.Helper()
	doc := NewDocument(DefaultWorldBounds)
	source := newLinkedGroupNode("source", "lg", math32.Identity4())
	target := newLinkedGroupNode("target", "lg", math32.Translation4(math32.Vec3(64, 0, 0)))
	doc.World().DefaultLayer().AddChildren(source, target)
	return doc, source, target
}

func TestCheckLinkedGroupsToUpdate(t *testing.T) {
	a := newLinkedGroupNode("a", "lg1", math32.Identity4())
	b := newLinkedGroupNode("b", "lg2", math32.Identity4())
	c := newLinkedGroupNode("c", "lg1", math32.Identity4())
	unlinked1 := newLinkedGroupNode("u1", "", math32.Identity4())
	unlinked2 := newLinkedGroupNode("u2", "", math32.Identity4())

	assert.True(t, CheckLinkedGroupsToUpdate(nil))
	assert.True(t, CheckLinkedGroupsToUpdate([]*model.GroupNode{a, b}))
	assert.False(t, CheckLinkedGroupsToUpdate([]*model.GroupNode{a, c}))
	assert.True(t, CheckLinkedGroupsToUpdate([]*model.GroupNode{unlinked1, unlinked2}))
}

func TestGenerateEntityLinkIDs(t *testing.T) {
	first := newLinkedGroupNode("first", "lg", math32.Identity4())
	first.AddChildren(newLightEntityNode("0 0 0"), newLightEntityNode("16 0 0"))

	second := newLinkedGroupNode("second", "lg", math32.Identity4())
	second.AddChildren(newLightEntityNode("64 0 0"), newLightEntityNode("80 0 0"))

	ids := GenerateEntityLinkIDs([]*model.GroupNode{first, second})
	require.NotNil(t, ids)
	assert.Len(t, ids, 4)

	firstEntity := first.Child(0).(*model.EntityNode)
	secondEntity := second.Child(0).(*model.EntityNode)
	assert.NotEmpty(t, ids[firstEntity])
	assert.Equal(t, ids[firstEntity], ids[secondEntity])

	otherEntity := first.Child(1).(*model.EntityNode)
	assert.NotEqual(t, ids[firstEntity], ids[otherEntity])
}

func TestGenerateEntityLinkIDsMismatch(t *testing.T) {
	first := newLinkedGroupNode("first", "lg", math32.Identity4())
	first.AddChild(newLightEntityNode("0 0 0"))

	second := newLinkedGroupNode("second", "lg", math32.Identity4())

	assert.Nil(t, GenerateEntityLinkIDs([]*model.GroupNode{first, second}))
}

func TestGenerateEntityLinkIDsPreconditions(t *testing.T) {
	first := newLinkedGroupNode("first", "lg", math32.Identity4())
	assert.Panics(t, func() {
		GenerateEntityLinkIDs([]*model.GroupNode{first})
	})

	other := newLinkedGroupNode("other", "different", math32.Identity4())
	assert.Panics(t, func() {
		GenerateEntityLinkIDs([]*model.GroupNode{first, other})
	})
}

func TestUpdateLinkedGroupsHelperApply(t *testing.T) {
	doc, source, target := newLinkedPairDocument(t)
	source.AddChild(newLightEntityNode("1 2 3"))

	helper := NewUpdateLinkedGroupsHelper([]*model.GroupNode{source})
	require.NoError(t, helper.Apply(doc))

	require.Equal(t, 1, target.NumChildren())
	assert.Equal(t, "65 2 3", originOf(target.Child(0)))
}

func TestUpdateLinkedGroupsHelperUndoRedo(t *testing.T) {
	doc, source, target := newLinkedPairDocument(t)
	original := newLightEntityNode("100 0 0")
	target.AddChild(original)
	source.AddChild(newLightEntityNode("1 2 3"))

	helper := NewUpdateLinkedGroupsHelper([]*model.GroupNode{source})
	require.NoError(t, helper.Apply(doc))

	require.Equal(t, 1, target.NumChildren())
	propagated := target.Child(0)
	assert.Equal(t, "65 2 3", originOf(propagated))

	helper.Undo(doc)
	require.Equal(t, 1, target.NumChildren())
	assert.Same(t, original, target.Child(0))

	// applying again swaps the same children back in without recomputing
	require.NoError(t, helper.Apply(doc))
	assert.Same(t, propagated, target.Child(0))
}

func TestUpdateLinkedGroupsHelperSameLinkSet(t *testing.T) {
	doc, source, target := newLinkedPairDocument(t)

	helper := NewUpdateLinkedGroupsHelper([]*model.GroupNode{source, target})
	err := helper.Apply(doc)
	assert.ErrorIs(t, err, model.ErrSameLinkSetMultipleMembers)
}

func TestUpdateLinkedGroupsHelperDescendantsFirst(t *testing.T) {
	doc := NewDocument(DefaultWorldBounds)
	outer := newLinkedGroupNode("outer", "outer", math32.Identity4())
	inner := newLinkedGroupNode("inner", "inner", math32.Identity4())
	outer.AddChild(inner)
	doc.World().DefaultLayer().AddChild(outer)

	helper := NewUpdateLinkedGroupsHelper([]*model.GroupNode{outer, inner})
	assert.Equal(t, []*model.GroupNode{inner, outer}, helper.changedLinkedGroups)
}

func TestUpdateLinkedGroupsHelperNestedLinkSetsIndependent(t *testing.T) {
	doc := NewDocument(DefaultWorldBounds)
	layer := doc.World().DefaultLayer()

	outer := newLinkedGroupNode("outer", "outer", math32.Translation4(math32.Vec3(0, 0, 128)))
	nestedMember := newLinkedGroupNode("nested", "inner", math32.Translation4(math32.Vec3(0, 0, 128)))
	outer.AddChild(nestedMember)

	freeMember := newLinkedGroupNode("free", "inner", math32.Identity4())
	freeMember.AddChild(newLightEntityNode("1 2 3"))
	layer.AddChildren(outer, freeMember)

	helper := NewUpdateLinkedGroupsHelper([]*model.GroupNode{freeMember})
	require.NoError(t, helper.Apply(doc))

	// the inner member nested inside the outer group received the update
	require.Equal(t, 1, nestedMember.NumChildren())
	assert.Equal(t, "1 2 131", originOf(nestedMember.Child(0)))

	// the containing group itself is untouched
	outerTransformation := outer.Group().Transformation
	nestedTransformation := nestedMember.Group().Transformation
	assert.Equal(t, math32.Vec3(0, 0, 128), outerTransformation.Translation())
	assert.Equal(t, math32.Vec3(0, 0, 128), nestedTransformation.Translation())
}

func TestUpdateLinkedGroupsHelperCollateWith(t *testing.T) {
	doc, source, target := newLinkedPairDocument(t)
	original := newLightEntityNode("100 0 0")
	target.AddChild(original)

	source.AddChild(newLightEntityNode("1 0 0"))
	first := NewUpdateLinkedGroupsHelper([]*model.GroupNode{source})
	require.NoError(t, first.Apply(doc))

	source.AddChild(newLightEntityNode("2 0 0"))
	second := NewUpdateLinkedGroupsHelper([]*model.GroupNode{source})
	require.NoError(t, second.Apply(doc))
	require.Equal(t, 2, target.NumChildren())

	// undoing the collated helper undoes both updates at once
	first.CollateWith(second)
	first.Undo(doc)
	require.Equal(t, 1, target.NumChildren())
	assert.Same(t, original, target.Child(0))
}

func TestPerformReplaceChildrenRoundTrip(t *testing.T) {
	doc := NewDocument(DefaultWorldBounds)
	layer := doc.World().DefaultLayer()
	original := newLightEntityNode("0 0 0")
	layer.AddChild(original)

	replacement := newLightEntityNode("16 0 0")
	inverse := doc.PerformReplaceChildren([]model.NodeUpdate{
		{Node: layer, Children: []model.Node{replacement}},
	})
	assert.Same(t, replacement, layer.Child(0))

	doc.PerformReplaceChildren(inverse)
	assert.Same(t, original, layer.Child(0))
}

func TestDocumentWorldBounds(t *testing.T) {
	doc := NewDocument(math32.B3Scalar(1024))
	assert.Equal(t, math32.B3Scalar(1024), doc.WorldBounds())
	assert.NotNil(t, doc.World().DefaultLayer())
}
