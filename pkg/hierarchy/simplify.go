package hierarchy

import (
	"github.com/hiergraph/hiergraph/pkg/errors"
	"github.com/hiergraph/hiergraph/pkg/tree"
)

// Simplify removes the nodes marked true in deleted from t and returns the
// contracted tree together with a node map giving, for each new node id,
// the id of the original node it came from.
//
// A deleted internal node is elided: its surviving children reattach to its
// nearest surviving ancestor. A deleted leaf is dropped, and dropping
// leaves cascades: an internal node with two or more children that is left
// with a single surviving child is elided as well, so every surviving
// internal node keeps at least two children unless it had a single child to
// begin with. Deleting the root keeps the tree rooted: with two or more
// surviving subtrees the root survives its own deletion, with exactly one
// the surviving subtree's top node becomes the new root.
//
// New ids keep the canonical ordering: surviving leaves first in their
// original order, then surviving internal nodes in ascending original
// order, root last.
//
// If t carries altitudes (AttrAltitudes) they are remapped onto the new
// ids and attached to the result, as is AttrLeafGraph when every leaf
// survives. The result always carries AttrNodeMap.
//
// Returns a SIZE_MISMATCH error if the mask length differs from the node
// count and an EMPTY_RESULT error if no leaf survives.
func Simplify(t *tree.Tree, deleted []bool) (*tree.Tree, []int, error) {
	numNodes := t.NumNodes()
	numLeaves := t.NumLeaves()
	root := t.Root()

	if err := errors.ValidateLength("deletion mask", len(deleted), numNodes); err != nil {
		return nil, nil, err
	}

	// Bottom-up pass. attach[i] counts the surviving subtrees that would
	// hang off node i: a live child counts once, a dead child forwards its
	// own count. surv[i] is meaningful when attach[i] == 1 and names the
	// live node carrying that single subtree.
	alive := make([]bool, numNodes)
	attach := make([]int, numNodes)
	surv := make([]int, numNodes)

	for i := 0; i < numNodes; i++ {
		if t.IsLeaf(i) {
			alive[i] = !deleted[i]
			surv[i] = i
			continue
		}
		lone := -1
		for _, c := range t.Children(i) {
			contrib := attach[c]
			if alive[c] {
				contrib = 1
			}
			if contrib > 0 && attach[i] == 0 {
				lone = c
			}
			attach[i] += contrib
		}
		elided := attach[i] == 1 && t.NumChildren(i) >= 2
		alive[i] = !deleted[i] && attach[i] > 0 && !elided
		switch {
		case alive[i]:
			surv[i] = i
		case attach[i] == 1:
			surv[i] = surv[lone]
		default:
			surv[i] = -1
		}
	}

	aliveLeaves := 0
	for i := 0; i < numLeaves; i++ {
		if alive[i] {
			aliveLeaves++
		}
	}
	if aliveLeaves == 0 {
		return nil, nil, errors.New(errors.ErrCodeEmptyResult,
			"simplification deleted all %d leaves", numLeaves)
	}

	// The tree must stay rooted: a deleted or elided root survives when two
	// or more subtrees still need a common parent; with exactly one, that
	// subtree's top node takes over as root.
	newRoot := root
	if !alive[root] {
		if attach[root] >= 2 {
			alive[root] = true
		} else {
			newRoot = surv[root]
		}
	}

	// Nearest surviving ancestor, resolved top-down.
	naa := make([]int, numNodes)
	naa[root] = root
	for i := numNodes - 2; i >= 0; i-- {
		p, _ := t.Parent(i)
		if alive[p] {
			naa[i] = p
		} else {
			naa[i] = naa[p]
		}
	}

	// Stable relabeling: leaves first, then internal nodes, both in
	// ascending original order.
	newID := make([]int, numNodes)
	nodeMap := make([]int, 0, numNodes)
	for i := 0; i < numLeaves; i++ {
		if alive[i] {
			newID[i] = len(nodeMap)
			nodeMap = append(nodeMap, i)
		}
	}
	newLeaves := len(nodeMap)
	for i := numLeaves; i < numNodes; i++ {
		if alive[i] {
			newID[i] = len(nodeMap)
			nodeMap = append(nodeMap, i)
		}
	}

	newParents := make([]int, len(nodeMap))
	for j, orig := range nodeMap {
		if orig == newRoot {
			newParents[j] = j
		} else {
			newParents[j] = newID[naa[orig]]
		}
	}

	simplified, err := tree.New(newParents, newLeaves)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "simplification produced an inconsistent tree")
	}

	simplified.Meta().Set(AttrNodeMap, nodeMap)
	if alts, ok := Altitudes(t); ok && len(alts) == numNodes {
		remapped := make([]float64, len(nodeMap))
		for j, orig := range nodeMap {
			remapped[j] = alts[orig]
		}
		simplified.Meta().Set(AttrAltitudes, remapped)
	}
	if g, ok := LeafGraph(t); ok && newLeaves == numLeaves {
		simplified.Meta().Set(AttrLeafGraph, g)
	}
	return simplified, nodeMap, nil
}
