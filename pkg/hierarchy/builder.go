package hierarchy

import (
	"math"
	"sort"

	"github.com/hiergraph/hiergraph/pkg/errors"
	"github.com/hiergraph/hiergraph/pkg/graph"
	"github.com/hiergraph/hiergraph/pkg/tree"
	"github.com/hiergraph/hiergraph/pkg/unionfind"
)

// Result bundles the outputs of BuildCanonical. The same objects are also
// reachable through the tree's metadata (AttrAltitudes, AttrMST), so callers
// that pass only the tree around lose nothing.
type Result struct {
	// Tree is the canonical binary partition tree: one leaf per graph
	// vertex, one internal node per minimum-spanning-tree edge, nodes
	// numbered in merge order with the root last.
	Tree *tree.Tree

	// Altitudes holds one altitude per tree node. Leaves sit at altitude 0;
	// each internal node sits at the weight of the edge that created it.
	Altitudes []float64

	// MST is the minimum spanning tree (or forest, with WithSuperRoot) of
	// the input, as a graph over the same vertices.
	MST *graph.Graph

	// MSTEdgeMap gives, for each MST edge, its index in the input graph's
	// edge list. MST edges appear in merge order, so the slice is sorted by
	// weight.
	MSTEdgeMap []int
}

type buildConfig struct {
	superRoot bool
}

// BuildOption adjusts how BuildCanonical handles its input.
type BuildOption func(*buildConfig)

// WithSuperRoot makes BuildCanonical accept disconnected graphs: the
// partition trees of the connected components are joined under a single
// extra root at altitude +Inf. Without this option a disconnected graph is
// a DISCONNECTED_GRAPH error.
func WithSuperRoot() BuildOption {
	return func(c *buildConfig) { c.superRoot = true }
}

// SortEdges returns a permutation of g's edge indices ordered by
// non-decreasing weight. The sort is stable: equal-weight edges keep their
// relative order from the edge list, which in turn makes every hierarchy
// built from g deterministic.
func SortEdges(g *graph.Graph) []int {
	return sortEdgeIndices(g.Edges())
}

func sortEdgeIndices(edges []graph.Edge) []int {
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return edges[order[a]].Weight < edges[order[b]].Weight
	})
	return order
}

// BuildCanonical computes the canonical binary partition tree of g by
// altitude ordering, along with the node altitudes and the minimum spanning
// tree that induced it.
//
// Edges are swept by non-decreasing weight; each edge joining two distinct
// regions creates one internal node whose children are the two region
// roots. Leaves are the vertices 0..n-1, internal nodes are numbered
// n..2n-2 in creation order, and the root is the last node. Self-loops and
// cycle-closing edges are skipped.
//
// The returned tree carries AttrLeafGraph, AttrAltitudes and AttrMST; the
// MST carries AttrOriginalGraph and AttrMSTEdgeMap. Both graph references
// resolve through Origin, so a chain of derived objects keeps pointing at
// the one primary input.
//
// Returns an INVALID_GRAPH error for a graph with no vertices and a
// DISCONNECTED_GRAPH error when g has more than one connected component,
// unless WithSuperRoot is given.
func BuildCanonical(g *graph.Graph, opts ...BuildOption) (*Result, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.NumVertices()
	if n == 0 {
		return nil, errors.New(errors.ErrCodeInvalidGraph,
			"cannot build a hierarchy on a graph with no vertices")
	}

	edges := g.Edges()
	order := sortEdgeIndices(edges)

	maxNodes := 2*n - 1
	parents := make([]int, maxNodes)
	for i := range parents {
		parents[i] = -1
	}
	altitudes := make([]float64, maxNodes)

	uf := unionfind.New(n)
	// roots maps a union-find representative to the tree node currently
	// standing for its region.
	roots := make([]int, n)
	for i := range roots {
		roots[i] = i
	}

	mstEdges := make([]graph.Edge, 0, n-1)
	mstEdgeMap := make([]int, 0, n-1)

	next := n
	for _, ei := range order {
		e := edges[ei]
		if e.Source == e.Target {
			continue
		}
		rx := uf.Find(e.Source)
		ry := uf.Find(e.Target)
		if rx == ry {
			continue
		}
		merged, err := uf.Union(rx, ry)
		if err != nil {
			return nil, err
		}
		parents[roots[rx]] = next
		parents[roots[ry]] = next
		altitudes[next] = e.Weight
		roots[merged] = next
		mstEdges = append(mstEdges, e)
		mstEdgeMap = append(mstEdgeMap, ei)
		next++
	}

	switch {
	case next == maxNodes:
		parents[maxNodes-1] = maxNodes - 1
	case cfg.superRoot:
		super := next
		for i := 0; i < super; i++ {
			if parents[i] == -1 {
				parents[i] = super
			}
		}
		parents[super] = super
		altitudes[super] = math.Inf(1)
		next++
	default:
		return nil, errors.New(errors.ErrCodeDisconnectedGraph,
			"graph has %d connected components; connect it or build with WithSuperRoot", 2*n-next)
	}
	parents = parents[:next]
	altitudes = altitudes[:next]

	t, err := tree.New(parents, n)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hierarchy construction produced an inconsistent tree")
	}

	mst, err := graph.New(n, mstEdges)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hierarchy construction produced an inconsistent spanning tree")
	}
	mst.Meta().Set(AttrOriginalGraph, Origin(g))
	mst.Meta().Set(AttrMSTEdgeMap, mstEdgeMap)

	t.Meta().Set(AttrLeafGraph, Origin(g))
	t.Meta().Set(AttrAltitudes, altitudes)
	t.Meta().Set(AttrMST, mst)

	return &Result{
		Tree:       t,
		Altitudes:  altitudes,
		MST:        mst,
		MSTEdgeMap: mstEdgeMap,
	}, nil
}
