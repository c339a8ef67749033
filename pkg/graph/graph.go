package graph

import (
	"slices"

	"github.com/hiergraph/hiergraph/pkg/errors"
)

// Metadata stores arbitrary key-value pairs attached to a graph or tree.
// It is used to link derived structures back to the objects they were
// computed from (see the attribute conventions in the hierarchy package).
// Setting a name that already exists overwrites the previous value; values
// are never merged.
type Metadata map[string]any

// Set stores value under name, overwriting any previous value.
func (m Metadata) Set(name string, value any) { m[name] = value }

// Lookup returns the value stored under name and whether it is present.
func (m Metadata) Lookup(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// Has reports whether a value is stored under name.
func (m Metadata) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Edge is an undirected weighted edge between two vertices, identified by
// their integer ids in [0, NumVertices).
type Edge struct {
	Source int     // One endpoint vertex id
	Target int     // The other endpoint vertex id
	Weight float64 // Edge weight (dissimilarity between the endpoints)
}

// Graph is a minimal immutable edge-weighted undirected graph: a vertex
// count and an edge list. Vertices are the integers 0..NumVertices()-1 and
// carry no payload of their own.
//
// Self-loops and parallel edges are permitted; hierarchy construction skips
// self-loops and treats later duplicates as cycle-closing no-ops.
//
// The structure is immutable after New except for its Metadata map, which
// only annotates the graph and never changes its topology. Graph is not
// safe for concurrent metadata mutation without external synchronization;
// concurrent reads of the topology are always safe.
type Graph struct {
	numVertices int
	edges       []Edge
	meta        Metadata
}

// New creates a graph with numVertices vertices and the given edge list.
// The edge slice is copied; callers keep ownership of their slice.
//
// Returns an INVALID_GRAPH error if numVertices is negative or if any edge
// endpoint falls outside [0, numVertices). The message names the offending
// edge index.
func New(numVertices int, edges []Edge) (*Graph, error) {
	if numVertices < 0 {
		return nil, errors.New(errors.ErrCodeInvalidGraph,
			"vertex count %d is negative", numVertices)
	}
	for i, e := range edges {
		if err := errors.ValidateVertex(e.Source, numVertices, i); err != nil {
			return nil, err
		}
		if err := errors.ValidateVertex(e.Target, numVertices, i); err != nil {
			return nil, err
		}
	}
	return &Graph{
		numVertices: numVertices,
		edges:       slices.Clone(edges),
		meta:        Metadata{},
	}, nil
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int { return g.numVertices }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Edge returns the edge with the given index and true, or a zero Edge and
// false if the index is out of range.
func (g *Graph) Edge(i int) (Edge, bool) {
	if i < 0 || i >= len(g.edges) {
		return Edge{}, false
	}
	return g.edges[i], true
}

// Edges returns a copy of the edge list in insertion order. Modifications
// to the returned slice do not affect the graph.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Meta returns the graph's metadata map.
// The returned map is never nil and can be safely modified.
func (g *Graph) Meta() Metadata { return g.meta }
