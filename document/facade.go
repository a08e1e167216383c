// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package document implements the map document: ownership of the scene
// tree and the orchestration of linked group updates, including their
// undo and collation behavior.
package document

import (
	"github.com/mapforge/mapforge/math32"
	"github.com/mapforge/mapforge/model"
)

// Facade is the surface of a map document that the linked group update
// machinery operates against.
type Facade interface {

	// World returns the root of the document's scene tree.
	World() *model.WorldNode

	// WorldBounds returns the bounds that all nodes must fit into.
	WorldBounds() math32.Box3

	// PerformReplaceChildren replaces the children of every node named in
	// the given updates with the children the update carries, atomically
	// per node, and returns the updates that restore the previous state.
	PerformReplaceChildren(updates []model.NodeUpdate) []model.NodeUpdate
}
