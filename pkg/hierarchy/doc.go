// Package hierarchy builds and transforms hierarchies of partitions over
// edge-weighted graphs.
//
// # Overview
//
// The central construction is [BuildCanonical]: a Kruskal-style sweep over
// the edges of a graph in non-decreasing weight order that produces the
// canonical binary partition tree, its per-node altitudes, and the minimum
// spanning tree that induced it. Leaves of the tree are the graph vertices;
// every internal node records the merge of two regions at the altitude of
// the edge that joined them, and node ids grow with altitude along every
// leaf-to-root path.
//
// On top of the canonical tree the package provides:
//
//   - [Simplify]: contract a tree by a per-node deletion mask, with
//     cascading elision of internal nodes left with a single child, and a
//     node map back to the original ids.
//   - [QuasiFlatZones]: the hierarchy of maximal zones connected by edges
//     of bounded weight, obtained by contracting same-altitude parent/child
//     pairs of the canonical tree.
//   - [Saliency] and [SaliencyMap]: per-edge contour strength, the altitude
//     of the lowest common ancestor of an edge's endpoints.
//
// # Attribute conventions
//
// Results are annotated through graph metadata under the Attr* names
// declared in this package: a tree links to its leaf graph, altitudes and
// MST; an MST links back to the graph it spans; a simplified tree carries
// the node map. [Origin] resolves chains of derived graphs back to the
// primary input. Downstream code relies on these exact names.
//
// # Determinism
//
// Edge sorting is stable ([SortEdges]), region merging is sequential, and
// union-find tie-breaking is fixed, so two runs on the same input produce
// bit-identical trees and altitudes.
//
// All operations are pure with respect to their inputs: they return new
// structures and never mutate the graphs or trees they are given, except
// for annotating newly created objects.
package hierarchy
