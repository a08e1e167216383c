// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mapforge/mapforge/math32"
)

func TestEntityProperties(t *testing.T) {
	entity := NewEntity()
	entity.SetProperty("classname", "light")
	entity.SetProperty("light", "300")

	v, ok := entity.Property("classname")
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	_, ok = entity.Property("missing")
	assert.False(t, ok)

	assert.True(t, entity.RemoveProperty("light"))
	assert.False(t, entity.RemoveProperty("light"))
}

func TestEntityOrigin(t *testing.T) {
	entity := NewEntity()
	assert.Equal(t, math32.Vector3{}, entity.Origin())

	entity.SetProperty(PropertyOrigin, "1 2 3")
	assert.Equal(t, math32.Vec3(1, 2, 3), entity.Origin())

	entity.SetProperty(PropertyOrigin, "not a vector")
	assert.Equal(t, math32.Vector3{}, entity.Origin())

	entity.SetOrigin(DefaultPropertyConfig, math32.Vec3(-16, 0, 24.5))
	v, _ := entity.Property(PropertyOrigin)
	assert.Equal(t, "-16 0 24.5", v)
}

func TestEntityTransform(t *testing.T) {
	entity := NewEntity()
	entity.SetProperty(PropertyOrigin, "1 2 3")

	m := math32.Translation4(math32.Vec3(10, 20, 30))
	entity.Transform(DefaultPropertyConfig, &m)

	v, _ := entity.Property(PropertyOrigin)
	assert.Equal(t, "11 22 33", v)
}

func TestEntityClone(t *testing.T) {
	entity := NewEntity()
	entity.SetProperty("classname", "light")
	entity.ProtectedProperties = []string{"light"}
	entity.LinkID = "some-id"

	clone := entity.Clone()
	assert.True(t, entity.Equal(&clone))

	// the clone is independent of the original
	clone.SetProperty("classname", "lamp")
	clone.ProtectedProperties[0] = "other"
	v, _ := entity.Property("classname")
	assert.Equal(t, "light", v)
	assert.Equal(t, []string{"light"}, entity.ProtectedProperties)
}

func TestPropertyConfigFormatFloat(t *testing.T) {
	assert.Equal(t, "1.5", DefaultPropertyConfig.FormatFloat(1.5))
	assert.Equal(t, "-8", DefaultPropertyConfig.FormatFloat(-8))

	fixed := PropertyConfig{Precision: 2}
	assert.Equal(t, "1.33", fixed.FormatFloat(1.3333))
	assert.Equal(t, "2", fixed.FormatFloat(2))
}

func TestBrushTransform(t *testing.T) {
	brush := NewCuboidBrush(math32.B3Scalar(16))

	m := math32.Translation4(math32.Vec3(32, 0, 0))
	assert.NoError(t, brush.Transform(math32.B3Scalar(8192), &m))
	assert.Equal(t, math32.B3Scalar(16).Translate(math32.Vec3(32, 0, 0)), brush.Bounds())

	// a collapsing transformation leaves the brush unchanged
	collapse := math32.Scale4(math32.Vec3(1, 1, 0))
	before := brush.Bounds()
	assert.Error(t, brush.Transform(math32.B3Scalar(8192), &collapse))
	assert.Equal(t, before, brush.Bounds())
}

func TestPatchTransform(t *testing.T) {
	patch := NewPatch(3, 3, []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(2, 0, 0),
		math32.Vec3(0, 1, 0), math32.Vec3(1, 1, 1), math32.Vec3(2, 1, 0),
		math32.Vec3(0, 2, 0), math32.Vec3(1, 2, 0), math32.Vec3(2, 2, 0),
	})

	m := math32.Translation4(math32.Vec3(0, 0, 10))
	patch.Transform(&m)
	assert.Equal(t, math32.Vec3(1, 1, 11), patch.ControlPoint(1, 1))
	assert.Equal(t, math32.B3(0, 0, 10, 2, 2, 11), patch.Bounds())
}
