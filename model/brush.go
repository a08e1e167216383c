// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"log/slog"

	"github.com/jinzhu/copier"

	"github.com/mapforge/mapforge/math32"
)

// BrushFace is one face of a brush: at least three coplanar points in
// counter-clockwise winding, seen from outside the brush.
type BrushFace struct {
	Points []math32.Vector3
}

// Normal returns the unit normal of this face, or the zero vector if the
// face is degenerate.
func (f *BrushFace) Normal() math32.Vector3 {
	if len(f.Points) < 3 {
		return math32.Vector3{}
	}
	e1 := f.Points[1].Sub(f.Points[0])
	e2 := f.Points[2].Sub(f.Points[0])
	return e1.Cross(e2).Normal()
}

// validate returns an error if this face has fewer than three points,
// has collapsed to zero area, or is no longer planar.
func (f *BrushFace) validate() error {
	if len(f.Points) < 3 {
		return fmt.Errorf("face has %d points, need at least 3", len(f.Points))
	}
	e1 := f.Points[1].Sub(f.Points[0])
	e2 := f.Points[2].Sub(f.Points[0])
	normal := e1.Cross(e2)
	if normal.LengthSquared() <= math32.StandardEpsilon*math32.StandardEpsilon {
		return fmt.Errorf("face has degenerate geometry")
	}
	unit := normal.Normal()
	for _, pt := range f.Points[3:] {
		if math32.Abs(unit.Dot(pt.Sub(f.Points[0]))) > math32.StandardEpsilon {
			return fmt.Errorf("face is not planar")
		}
	}
	return nil
}

// Brush is the payload of a [BrushNode]: a convex volume described by
// its faces.
type Brush struct {
	Faces []BrushFace
}

// NewCuboidBrush returns a brush spanning the given bounds, with one
// face per side.
func NewCuboidBrush(bounds math32.Box3) Brush {
	min, max := bounds.Min, bounds.Max
	v := func(x, y, z float32) math32.Vector3 { return math32.Vec3(x, y, z) }
	return Brush{Faces: []BrushFace{
		{Points: []math32.Vector3{v(min.X, min.Y, min.Z), v(min.X, min.Y, max.Z), v(min.X, max.Y, max.Z), v(min.X, max.Y, min.Z)}}, // left
		{Points: []math32.Vector3{v(max.X, min.Y, min.Z), v(max.X, max.Y, min.Z), v(max.X, max.Y, max.Z), v(max.X, min.Y, max.Z)}}, // right
		{Points: []math32.Vector3{v(min.X, min.Y, min.Z), v(max.X, min.Y, min.Z), v(max.X, min.Y, max.Z), v(min.X, min.Y, max.Z)}}, // front
		{Points: []math32.Vector3{v(min.X, max.Y, min.Z), v(min.X, max.Y, max.Z), v(max.X, max.Y, max.Z), v(max.X, max.Y, min.Z)}}, // back
		{Points: []math32.Vector3{v(min.X, min.Y, min.Z), v(min.X, max.Y, min.Z), v(max.X, max.Y, min.Z), v(max.X, min.Y, min.Z)}}, // bottom
		{Points: []math32.Vector3{v(min.X, min.Y, max.Z), v(max.X, min.Y, max.Z), v(max.X, max.Y, max.Z), v(min.X, max.Y, max.Z)}}, // top
	}}
}

// Clone returns a deep copy of this brush.
func (b Brush) Clone() Brush {
	clone := Brush{}
	err := copier.CopyWithOption(&clone, &b, copier.Option{DeepCopy: true})
	if err != nil {
		slog.Error("model.Brush.Clone", "err", err)
	}
	return clone
}

// Bounds returns the bounding box spanning all face points.
func (b Brush) Bounds() math32.Box3 {
	bounds := math32.B3Empty()
	for _, face := range b.Faces {
		bounds.ExpandByPoints(face.Points)
	}
	return bounds
}

// Transform applies the given affine transformation to every face point.
// It fails if the transformed brush has invalid geometry, e.g., if the
// transformation collapses a face; the brush is unchanged in that case.
func (b *Brush) Transform(worldBounds math32.Box3, m *math32.Matrix4) error {
	transformed := make([]BrushFace, len(b.Faces))
	for i, face := range b.Faces {
		points := make([]math32.Vector3, len(face.Points))
		for j, pt := range face.Points {
			points[j] = pt.MulMatrix4(m)
		}
		transformed[i] = BrushFace{Points: points}
		if err := transformed[i].validate(); err != nil {
			return fmt.Errorf("transforming brush: %w", err)
		}
	}
	b.Faces = transformed
	return nil
}

// BrushNode is a scene node holding a brush.
type BrushNode struct {
	NodeBase

	brush Brush
}

// NewBrushNode returns a new brush node with the given payload.
func NewBrushNode(brush Brush) *BrushNode {
	n := &BrushNode{brush: brush}
	initNode(n)
	return n
}

// Name returns the display name of the brush.
func (n *BrushNode) Name() string {
	return "brush"
}

// Brush returns the payload of this brush node.
func (n *BrushNode) Brush() *Brush {
	return &n.brush
}

// SetBrush replaces the payload of this brush node and returns the
// previous payload.
func (n *BrushNode) SetBrush(brush Brush) Brush {
	old := n.brush
	n.brush = brush
	n.InvalidateBounds()
	return old
}
