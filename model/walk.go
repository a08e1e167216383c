// Copyright (c) 2026, Mapforge Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// VisitNodesPerPosition walks an arbitrary number of trees in lock-step,
// depth-first with children in list order, calling the given function at
// every corresponding position with the tuple of nodes at that position.
// The function returning [Break] aborts the whole walk. Before recursing,
// the child counts of all nodes at a position must match exactly;
// otherwise the walk fails. Returns whether the walk completed.
func VisitNodesPerPosition(nodes []Node, f func(nodes []Node) bool) bool {
	if len(nodes) == 0 {
		return true
	}

	if !f(nodes) {
		return false
	}

	childCount := nodes[0].AsNode().NumChildren()
	for _, node := range nodes {
		if node.AsNode().NumChildren() != childCount {
			return false
		}
	}

	for i := 0; i < childCount; i++ {
		toVisit := make([]Node, 0, len(nodes))
		for _, node := range nodes {
			toVisit = append(toVisit, node.AsNode().Child(i))
		}
		if !VisitNodesPerPosition(toVisit, f) {
			return false
		}
	}

	return true
}

// pairVisitor is called for every corresponding pair of nodes during
// [visitPairsPerPosition]; it returns whether to recurse into the
// children of the pair.
type pairVisitor func(sourceNode, targetNode Node) (recurse bool, err error)

// visitPairsPerPosition walks two trees assumed to occupy corresponding
// positions in lock-step, invoking the visitor at every pair. If the
// visitor asks to recurse and the child counts differ, the walk fails
// with [ErrInconsistentStructure].
func visitPairsPerPosition(sourceNode, targetNode Node, f pairVisitor) error {
	recurse, err := f(sourceNode, targetNode)
	if err != nil {
		return err
	}
	if !recurse {
		return nil
	}

	sourceBase := sourceNode.AsNode()
	targetBase := targetNode.AsNode()
	if sourceBase.NumChildren() != targetBase.NumChildren() {
		return ErrInconsistentStructure
	}

	for i, sourceChild := range sourceBase.Children() {
		if err := visitPairsPerPosition(sourceChild, targetBase.Child(i), f); err != nil {
			return err
		}
	}
	return nil
}
