package hierarchy

import (
	"container/heap"
	"math"
	"sort"

	"github.com/hiergraph/hiergraph/pkg/errors"
	"github.com/hiergraph/hiergraph/pkg/graph"
	"github.com/hiergraph/hiergraph/pkg/tree"
)

// Linkage defines how the weight between a freshly merged cluster and a
// common neighbor is derived from the weights the two merged clusters had
// to that neighbor. When only one of the two clusters had an edge to the
// neighbor, that weight carries over unchanged.
type Linkage struct {
	name    string
	combine func(a, b float64) float64
}

// Name returns the linkage's identifier ("min", "max").
func (l Linkage) Name() string { return l.name }

// MinLinkage merges at the cheapest connection between clusters
// (single linkage). On a connected graph the merge weights are exactly the
// MST edge weights, so the altitudes agree with BuildCanonical.
func MinLinkage() Linkage {
	return Linkage{name: "min", combine: math.Min}
}

// MaxLinkage merges at the most expensive connection between clusters
// (complete linkage).
func MaxLinkage() Linkage {
	return Linkage{name: "max", combine: math.Max}
}

// linkEdge is a heap entry between two active cluster nodes. seq breaks
// weight ties by insertion order so runs are reproducible.
type linkEdge struct {
	weight float64
	a, b   int
	seq    int
}

type linkHeap []linkEdge

func (h linkHeap) Len() int { return len(h) }
func (h linkHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}
func (h linkHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *linkHeap) Push(x any) { *h = append(*h, x.(linkEdge)) }
func (h *linkHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// BuildLinkage computes a binary partition tree of g by agglomerative
// clustering: starting from one cluster per vertex, the two clusters joined
// by the globally cheapest edge merge into a new internal node, and the new
// cluster's edges to each surviving neighbor are re-weighted through the
// linkage. Leaves are the vertices 0..n-1, internal nodes are numbered in
// merge order, the root last; every internal node sits at the weight of the
// merge that created it.
//
// Parallel edges (including parallel input edges) are combined through the
// linkage as well; self-loops are ignored. Equal-weight merges resolve by
// edge creation order, so the construction is deterministic. With
// MinLinkage the merge weights equal the MST edge weights, matching
// BuildCanonical's altitudes.
//
// The returned tree carries AttrLeafGraph (origin-resolved) and
// AttrAltitudes. Disconnected graphs are a DISCONNECTED_GRAPH error unless
// WithSuperRoot is given, which joins the cluster forest under a root at
// altitude +Inf.
func BuildLinkage(g *graph.Graph, l Linkage, opts ...BuildOption) (*tree.Tree, []float64, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if l.combine == nil {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput,
			"linkage is not one of the provided constructors")
	}

	n := g.NumVertices()
	if n == 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidGraph,
			"cannot build a hierarchy on a graph with no vertices")
	}

	maxNodes := 2*n - 1
	parents := make([]int, maxNodes)
	for i := range parents {
		parents[i] = -1
	}
	altitudes := make([]float64, maxNodes)
	active := make([]bool, maxNodes)
	adj := make([]map[int]float64, maxNodes)
	for i := 0; i < n; i++ {
		active[i] = true
		adj[i] = map[int]float64{}
	}

	for _, e := range g.Edges() {
		if e.Source == e.Target {
			continue
		}
		if w, ok := adj[e.Source][e.Target]; ok {
			e.Weight = l.combine(w, e.Weight)
		}
		adj[e.Source][e.Target] = e.Weight
		adj[e.Target][e.Source] = e.Weight
	}

	h := &linkHeap{}
	seq := 0
	for u := 0; u < n; u++ {
		for _, v := range sortedNeighbors(adj[u]) {
			if v > u {
				heap.Push(h, linkEdge{weight: adj[u][v], a: u, b: v, seq: seq})
				seq++
			}
		}
	}

	next := n
	for next < maxNodes && h.Len() > 0 {
		e := heap.Pop(h).(linkEdge)
		if !active[e.a] || !active[e.b] {
			continue
		}

		parents[e.a] = next
		parents[e.b] = next
		altitudes[next] = e.weight
		active[e.a] = false
		active[e.b] = false
		active[next] = true

		// Re-weight the merged cluster's edges to every surviving
		// neighbor of either child.
		merged := map[int]float64{}
		for _, x := range sortedNeighbors(adj[e.a]) {
			if x == e.b {
				continue
			}
			merged[x] = adj[e.a][x]
		}
		for _, x := range sortedNeighbors(adj[e.b]) {
			if x == e.a {
				continue
			}
			if w, ok := merged[x]; ok {
				merged[x] = l.combine(w, adj[e.b][x])
			} else {
				merged[x] = adj[e.b][x]
			}
		}
		adj[next] = merged
		for _, x := range sortedNeighbors(merged) {
			delete(adj[x], e.a)
			delete(adj[x], e.b)
			adj[x][next] = merged[x]
			heap.Push(h, linkEdge{weight: merged[x], a: next, b: x, seq: seq})
			seq++
		}
		adj[e.a] = nil
		adj[e.b] = nil

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
		return nil, nil, errors.New(errors.ErrCodeDisconnectedGraph,
			"graph has %d connected components; connect it or build with WithSuperRoot", 2*n-next)
	}
	parents = parents[:next]
	altitudes = altitudes[:next]

	t, err := tree.New(parents, n)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "linkage clustering produced an inconsistent tree")
	}
	t.Meta().Set(AttrLeafGraph, Origin(g))
	t.Meta().Set(AttrAltitudes, altitudes)
	return t, altitudes, nil
}

// sortedNeighbors returns the keys of a cluster adjacency in ascending
// order; map iteration order must not leak into merge order.
func sortedNeighbors(m map[int]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
