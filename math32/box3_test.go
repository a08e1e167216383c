// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox3ExpandByPoint(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())

	b.ExpandByPoint(Vec3(1, 2, 3))
	b.ExpandByPoint(Vec3(-1, 0, 5))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Vec3(-1, 0, 3), b.Min)
	assert.Equal(t, Vec3(1, 2, 5), b.Max)
}

func TestBox3ContainsBox(t *testing.T) {
	outer := B3Scalar(10)
	assert.True(t, outer.ContainsBox(B3Scalar(10)))
	assert.True(t, outer.ContainsBox(B3(-5, -5, -5, 5, 5, 5)))
	assert.False(t, outer.ContainsBox(B3(-5, -5, -5, 5, 5, 15)))
	assert.False(t, outer.ContainsBox(B3Scalar(11)))
}

func TestBox3ContainsPoint(t *testing.T) {
	b := B3Scalar(8)
	assert.True(t, b.ContainsPoint(Vec3(0, 0, 0)))
	assert.True(t, b.ContainsPoint(Vec3(8, -8, 8)))
	assert.False(t, b.ContainsPoint(Vec3(8.5, 0, 0)))
}

func TestBox3Translate(t *testing.T) {
	b := B3Scalar(1).Translate(Vec3(4, 5, 6))
	assert.Equal(t, Vec3(3, 4, 5), b.Min)
	assert.Equal(t, Vec3(5, 6, 7), b.Max)
}

func TestBox3MulMatrix4(t *testing.T) {
	m := Translation4(Vec3(10, 0, 0))
	b := B3Scalar(2).MulMatrix4(&m)
	assert.Equal(t, Vec3(8, -2, -2), b.Min)
	assert.Equal(t, Vec3(12, 2, 2), b.Max)
}
