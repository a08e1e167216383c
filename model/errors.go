// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "errors"

// The data-dependent failures of the linked group engine. These are
// recoverable: they propagate up through the call chain without partial
// mutation of the document and are presented as an operation-level
// failure. Structural invariant violations (a world or layer node inside
// a group subtree, adding an impossible child) are programmer errors and
// panic instead.
var (
	// ErrNotInvertible is returned when a source group's transformation
	// cannot be inverted to compute the target transformation.
	ErrNotInvertible = errors.New("group transformation is not invertible")

	// ErrExceedsWorldBounds is returned when a transformed clone would
	// not fit into the configured world bounds.
	ErrExceedsWorldBounds = errors.New("updating a linked node would exceed world bounds")

	// ErrTransformFailed is returned when applying the transformation to
	// a node's content fails, e.g., because a brush face collapses.
	ErrTransformFailed = errors.New("failed to transform a linked node")

	// ErrInconsistentStructure is returned when the members of a link
	// set do not have structurally isomorphic subtrees.
	ErrInconsistentStructure = errors.New("inconsistent linked group structure")

	// ErrLinkSetTooSmall is returned when an operation requires a link
	// set of at least two groups.
	ErrLinkSetTooSmall = errors.New("link set must contain at least two groups")

	// ErrSameLinkSetMultipleMembers is returned when one update batch
	// names two members of the same link set as sources, which would
	// make the propagation ambiguous.
	ErrSameLinkSetMultipleMembers = errors.New("cannot update multiple members of the same link set")
)
