// Package graph provides the minimal edge-weighted undirected graph that
// the hierarchy construction pipeline consumes and produces.
//
// # Overview
//
// Hierarchical graph analysis only needs two things from its input: a
// vertex count and a weighted edge list. This package provides exactly
// that - an immutable [Graph] whose vertices are the integers
// 0..NumVertices()-1 and whose edges carry a float64 weight. Adjacency
// indexing, traversal and richer vertex payloads are deliberately out of
// scope; callers with richer graph types flatten them into an edge list
// before building a hierarchy.
//
// # Metadata
//
// Graphs carry a [Metadata] map used by the hierarchy package to link
// derived objects back to their origins (for example a minimum spanning
// tree to the graph it spans). Each name holds at most one value and is
// overwritten, never merged. See the attribute-name constants in the
// hierarchy package for the conventions.
//
// # Immutability
//
// A Graph's topology never changes after [New]; only its metadata map is
// mutable. This makes it safe to share one graph across concurrent
// hierarchy constructions as long as metadata writes are synchronized.
package graph
