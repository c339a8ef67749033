package tree

import (
	"slices"

	"github.com/hiergraph/hiergraph/pkg/errors"
	"github.com/hiergraph/hiergraph/pkg/graph"
)

// Tree is a rooted hierarchy stored as a parent-pointer array.
//
// Node ids follow the canonical layout: leaves occupy 0..NumLeaves()-1,
// internal nodes occupy NumLeaves()..NumNodes()-1, and node ids strictly
// increase from leaves to root along every root path. The root is always
// the last node and is its own parent. This ordering is what allows
// bottom-up and top-down sweeps to be plain index loops.
//
// A Tree's topology is immutable after New; only its Metadata map is
// mutable (used to attach altitudes, node maps and graph references).
// Tree is not safe for concurrent metadata mutation.
type Tree struct {
	parents   []int
	children  [][]int
	numLeaves int
	meta      graph.Metadata
}

// New creates a tree from a parent-pointer array and a leaf count.
// The parents slice is copied.
//
// The array must satisfy the canonical invariants:
//   - the root is the last node and is its own parent,
//   - every other node's parent has a strictly larger id,
//   - parents are internal nodes (id >= numLeaves),
//   - every non-root internal node has at least one child.
//
// A single-node tree (parents = [0], numLeaves = 1) is valid: its only
// node is both leaf and root.
//
// Returns an INVALID_TREE error naming the first offending node otherwise.
func New(parents []int, numLeaves int) (*Tree, error) {
	numNodes := len(parents)
	if numNodes == 0 {
		return nil, errors.New(errors.ErrCodeInvalidTree, "tree has no nodes")
	}
	if numLeaves < 1 || numLeaves > numNodes {
		return nil, errors.New(errors.ErrCodeInvalidTree,
			"leaf count %d outside [1, %d]", numLeaves, numNodes)
	}

	root := numNodes - 1
	if parents[root] != root {
		return nil, errors.New(errors.ErrCodeInvalidTree,
			"node %d must be the root (its own parent), got parent %d", root, parents[root])
	}
	for i := 0; i < root; i++ {
		p := parents[i]
		if p <= i || p > root {
			return nil, errors.New(errors.ErrCodeInvalidTree,
				"node %d has parent %d, want a strictly larger node id", i, p)
		}
		if p < numLeaves {
			return nil, errors.New(errors.ErrCodeInvalidTree,
				"node %d has leaf %d as parent", i, p)
		}
	}

	t := &Tree{
		parents:   slices.Clone(parents),
		children:  make([][]int, numNodes),
		numLeaves: numLeaves,
		meta:      graph.Metadata{},
	}
	for i := 0; i < root; i++ {
		p := parents[i]
		t.children[p] = append(t.children[p], i)
	}
	for i := numLeaves; i < root; i++ {
		if len(t.children[i]) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidTree,
				"internal node %d has no children", i)
		}
	}
	return t, nil
}

// NumNodes returns the total number of nodes.
func (t *Tree) NumNodes() int { return len(t.parents) }

// NumLeaves returns the number of leaves.
func (t *Tree) NumLeaves() int { return t.numLeaves }

// Root returns the root node id (always the last node).
func (t *Tree) Root() int { return len(t.parents) - 1 }

// Parent returns the parent of node i and true, or 0 and false if i is out
// of range. The root is its own parent.
func (t *Tree) Parent(i int) (int, bool) {
	if i < 0 || i >= len(t.parents) {
		return 0, false
	}
	return t.parents[i], true
}

// Parents returns a copy of the parent-pointer array.
func (t *Tree) Parents() []int { return slices.Clone(t.parents) }

// IsLeaf reports whether node i is a leaf.
func (t *Tree) IsLeaf(i int) bool { return i >= 0 && i < t.numLeaves }

// IsRoot reports whether node i is the root.
func (t *Tree) IsRoot(i int) bool { return i == len(t.parents)-1 }

// Children returns the child ids of node i in ascending order.
// The returned slice is a read-only view; callers must not modify it.
// Leaves and out-of-range ids yield nil.
func (t *Tree) Children(i int) []int {
	if i < 0 || i >= len(t.children) {
		return nil
	}
	return t.children[i]
}

// NumChildren returns the number of children of node i.
func (t *Tree) NumChildren(i int) int { return len(t.Children(i)) }

// Meta returns the tree's metadata map.
// The returned map is never nil and can be safely modified.
func (t *Tree) Meta() graph.Metadata { return t.meta }
