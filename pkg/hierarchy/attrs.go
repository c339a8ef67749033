package hierarchy

import (
	"github.com/hiergraph/hiergraph/pkg/graph"
	"github.com/hiergraph/hiergraph/pkg/tree"
)

// Well-known metadata attribute names. Trees and graphs produced by this
// package carry these attributes so that downstream operations can recover
// the objects they were derived from without extra plumbing.
const (
	// AttrLeafGraph links a tree to the graph whose vertices are its leaves.
	AttrLeafGraph = "leaf_graph"

	// AttrAltitudes stores the per-node altitude slice ([]float64) of a tree.
	AttrAltitudes = "altitudes"

	// AttrMST links a partition tree to its minimum spanning tree
	// (a *graph.Graph over the same vertices).
	AttrMST = "mst"

	// AttrMSTEdgeMap stores, on an MST graph, the index of each MST edge in
	// the original graph's edge list ([]int).
	AttrMSTEdgeMap = "mst_edge_map"

	// AttrNodeMap stores, on a simplified tree, the original node id of each
	// surviving node ([]int).
	AttrNodeMap = "node_map"

	// AttrOriginalGraph links a derived graph (such as an MST) back to the
	// graph it was computed from.
	AttrOriginalGraph = "original_graph"
)

// Origin returns the graph that g was ultimately derived from: the graph
// stored under AttrOriginalGraph if present, otherwise g itself. Derived
// graphs therefore always point at the primary input, never at an
// intermediate.
func Origin(g *graph.Graph) *graph.Graph {
	if v, ok := g.Meta().Lookup(AttrOriginalGraph); ok {
		if og, ok := v.(*graph.Graph); ok {
			return og
		}
	}
	return g
}

// LeafGraph returns the graph attached to t under AttrLeafGraph, or false
// if the tree does not carry one.
func LeafGraph(t *tree.Tree) (*graph.Graph, bool) {
	v, ok := t.Meta().Lookup(AttrLeafGraph)
	if !ok {
		return nil, false
	}
	g, ok := v.(*graph.Graph)
	return g, ok
}

// Altitudes returns the altitude slice attached to t under AttrAltitudes,
// or false if the tree does not carry one.
func Altitudes(t *tree.Tree) ([]float64, bool) {
	v, ok := t.Meta().Lookup(AttrAltitudes)
	if !ok {
		return nil, false
	}
	a, ok := v.([]float64)
	return a, ok
}

// NodeMap returns the node map attached to t under AttrNodeMap, or false if
// the tree does not carry one.
func NodeMap(t *tree.Tree) ([]int, bool) {
	v, ok := t.Meta().Lookup(AttrNodeMap)
	if !ok {
		return nil, false
	}
	m, ok := v.([]int)
	return m, ok
}
