// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import (
	"log/slog"

	"github.com/mapforge/mapforge/math32"
	"github.com/mapforge/mapforge/model"
)

// DefaultWorldBounds is the world bounds used when a document is created
// without explicit bounds.
var DefaultWorldBounds = math32.B3Scalar(8192)

// Document is a map document: it owns the scene tree rooted at a world
// node and confines all nodes to its world bounds.
type Document struct {
	world       *model.WorldNode
	worldBounds math32.Box3
}

// NewDocument returns a new document with an empty world and the given
// world bounds.
func NewDocument(worldBounds math32.Box3) *Document {
	return &Document{
		world:       model.NewWorldNode(),
		worldBounds: worldBounds,
	}
}

// World returns the root of the document's scene tree.
func (d *Document) World() *model.WorldNode {
	return d.world
}

// WorldBounds returns the bounds that all nodes must fit into.
func (d *Document) WorldBounds() math32.Box3 {
	return d.worldBounds
}

// PerformReplaceChildren swaps in the children carried by the given
// updates, one atomic replacement per node, and returns the inverse
// updates holding each node's previous children.
func (d *Document) PerformReplaceChildren(updates []model.NodeUpdate) []model.NodeUpdate {
	inverse := make([]model.NodeUpdate, 0, len(updates))
	for _, update := range updates {
		oldChildren := update.Node.AsNode().ReplaceChildren(update.Children)
		inverse = append(inverse, model.NodeUpdate{Node: update.Node, Children: oldChildren})
		slog.Debug("document.PerformReplaceChildren",
			"node", update.Node.Name(), "children", len(update.Children))
	}
	return inverse
}
