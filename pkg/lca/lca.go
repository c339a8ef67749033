// Package lca provides constant-time lowest-common-ancestor queries over a
// tree after linear-log preprocessing.
//
// # Overview
//
// The [Index] is built once from a tree ([New]) and then answers any number
// of LCA queries in O(1) each. It uses the classic Euler-tour reduction:
// the LCA of u and v is the shallowest node between their first occurrences
// on an Euler tour of the tree, found with a sparse-table range-minimum
// structure over the tour depths.
//
// Preprocessing is O(n log n) time and space for a tree with n nodes;
// queries allocate nothing.
//
// # Use with saliency
//
// Saliency computation needs, for every edge {x, y} of a graph, the tree
// node where the leaves x and y first merge. [Index.QueryEdges] computes
// that per-edge LCA map in one pass, ready to feed into the hierarchy
// package's saliency lookup.
//
// An Index is immutable after New and safe for concurrent queries.
package lca

import (
	"math/bits"

	"github.com/hiergraph/hiergraph/pkg/errors"
	"github.com/hiergraph/hiergraph/pkg/graph"
	"github.com/hiergraph/hiergraph/pkg/tree"
)

// Index answers lowest-common-ancestor queries for a fixed tree.
type Index struct {
	numNodes  int
	numLeaves int
	tour      []int   // node id at each Euler-tour position
	depth     []int   // node depth at each tour position
	first     []int   // first tour position of each node
	table     [][]int // table[k][i]: tour position of min depth in [i, i+2^k)
}

// New builds an LCA index for t.
func New(t *tree.Tree) *Index {
	numNodes := t.NumNodes()
	tourLen := 2*numNodes - 1

	idx := &Index{
		numNodes:  numNodes,
		numLeaves: t.NumLeaves(),
		tour:      make([]int, 0, tourLen),
		depth:     make([]int, 0, tourLen),
		first:     make([]int, numNodes),
	}
	for i := range idx.first {
		idx.first[i] = -1
	}

	idx.eulerTour(t)
	idx.buildTable()
	return idx
}

// eulerTour walks t depth-first from the root, emitting a node every time
// the walk enters or returns to it.
type frame struct {
	node  int
	child int
}

func (idx *Index) eulerTour(t *tree.Tree) {
	stack := []frame{{node: t.Root()}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.child == 0 {
			idx.emit(f.node, len(stack)-1)
		}
		children := t.Children(f.node)
		if f.child < len(children) {
			c := children[f.child]
			f.child++
			stack = append(stack, frame{node: c})
			continue
		}
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := &stack[len(stack)-1]
			idx.emit(parent.node, len(stack)-1)
		}
	}
}

func (idx *Index) emit(node, depth int) {
	if idx.first[node] == -1 {
		idx.first[node] = len(idx.tour)
	}
	idx.tour = append(idx.tour, node)
	idx.depth = append(idx.depth, depth)
}

// buildTable fills the sparse range-minimum table over tour depths.
func (idx *Index) buildTable() {
	n := len(idx.tour)
	levels := bits.Len(uint(n))
	idx.table = make([][]int, levels)

	idx.table[0] = make([]int, n)
	for i := range idx.table[0] {
		idx.table[0][i] = i
	}
	for k := 1; k < levels; k++ {
		width := 1 << k
		if n-width+1 <= 0 {
			idx.table = idx.table[:k]
			break
		}
		idx.table[k] = make([]int, n-width+1)
		for i := range idx.table[k] {
			left := idx.table[k-1][i]
			right := idx.table[k-1][i+width/2]
			idx.table[k][i] = idx.shallower(left, right)
		}
	}
}

func (idx *Index) shallower(a, b int) int {
	if idx.depth[b] < idx.depth[a] {
		return b
	}
	return a
}

// NumNodes returns the node count of the indexed tree.
func (idx *Index) NumNodes() int { return idx.numNodes }

// Query returns the lowest common ancestor of nodes u and v.
// Returns an INDEX_OUT_OF_RANGE error if either id is outside the indexed
// tree's node-id space.
func (idx *Index) Query(u, v int) (int, error) {
	if err := errors.ValidateNodeIndex(u, idx.numNodes); err != nil {
		return 0, err
	}
	if err := errors.ValidateNodeIndex(v, idx.numNodes); err != nil {
		return 0, err
	}

	l, r := idx.first[u], idx.first[v]
	if l > r {
		l, r = r, l
	}
	k := bits.Len(uint(r-l+1)) - 1
	pos := idx.shallower(idx.table[k][l], idx.table[k][r-(1<<k)+1])
	return idx.tour[pos], nil
}

// QueryEdges returns, for every edge {x, y} of g, the lowest common
// ancestor of the leaves x and y. The graph's vertices must be the leaves
// of the indexed tree; a SIZE_MISMATCH error is returned otherwise.
func (idx *Index) QueryEdges(g *graph.Graph) ([]int, error) {
	if err := errors.ValidateLength("graph vertices", g.NumVertices(), idx.numLeaves); err != nil {
		return nil, err
	}

	lcas := make([]int, g.NumEdges())
	for i, e := range g.Edges() {
		node, err := idx.Query(e.Source, e.Target)
		if err != nil {
			return nil, err
		}
		lcas[i] = node
	}
	return lcas, nil
}
