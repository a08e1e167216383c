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

// Patch is the payload of a [PatchNode]: a bezier surface described by a
// grid of control points with the given number of rows and columns.
type Patch struct {
	RowCount    int
	ColumnCount int

	// ControlPoints holds RowCount x ColumnCount points in row major order.
	ControlPoints []math32.Vector3
}

// NewPatch returns a new patch with the given grid of control points.
// The number of points must match the grid size.
func NewPatch(rowCount, columnCount int, controlPoints []math32.Vector3) Patch {
	if len(controlPoints) != rowCount*columnCount {
		panic(fmt.Sprintf("model: patch needs %d control points, got %d", rowCount*columnCount, len(controlPoints)))
	}
	return Patch{RowCount: rowCount, ColumnCount: columnCount, ControlPoints: controlPoints}
}

// ControlPoint returns the control point at the given row and column.
func (p *Patch) ControlPoint(row, column int) math32.Vector3 {
	return p.ControlPoints[row*p.ColumnCount+column]
}

// Clone returns a deep copy of this patch.
func (p Patch) Clone() Patch {
	clone := Patch{}
	err := copier.CopyWithOption(&clone, &p, copier.Option{DeepCopy: true})
	if err != nil {
		slog.Error("model.Patch.Clone", "err", err)
	}
	return clone
}

// Bounds returns the bounding box spanning all control points.
func (p Patch) Bounds() math32.Box3 {
	bounds := math32.B3Empty()
	bounds.ExpandByPoints(p.ControlPoints)
	return bounds
}

// Transform applies the given affine transformation to every control point.
func (p *Patch) Transform(m *math32.Matrix4) {
	for i, pt := range p.ControlPoints {
		p.ControlPoints[i] = pt.MulMatrix4(m)
	}
}

// PatchNode is a scene node holding a bezier patch.
type PatchNode struct {
	NodeBase

	patch Patch
}

// NewPatchNode returns a new patch node with the given payload.
func NewPatchNode(patch Patch) *PatchNode {
	n := &PatchNode{patch: patch}
	initNode(n)
	return n
}

// Name returns the display name of the patch.
func (n *PatchNode) Name() string {
	return "patch"
}

// Patch returns the payload of this patch node.
func (n *PatchNode) Patch() *Patch {
	return &n.patch
}

// SetPatch replaces the payload of this patch node and returns the
// previous payload.
func (n *PatchNode) SetPatch(patch Patch) Patch {
	old := n.patch
	n.patch = patch
	n.InvalidateBounds()
	return old
}
