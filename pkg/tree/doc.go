// Package tree provides the rooted hierarchy representation shared by all
// hierarchical graph analysis operations.
//
// # Overview
//
// A [Tree] stores a hierarchy as a parent-pointer array in the canonical
// leaves-first layout: for a hierarchy over n graph vertices, leaves are
// nodes 0..n-1 (identical to the vertex ids of the graph the hierarchy was
// built from), and internal nodes follow in creation order with the root
// last. Node ids strictly increase from leaves to root along every root
// path.
//
// This layout is the load-bearing invariant of the whole package family:
// bottom-up ("leaves to root") and top-down ("root to leaves") traversals
// are plain ascending and descending index loops, per-node arrays such as
// altitudes attach by index, and the monotone ordering lets consumers
// reason about ancestry with integer comparisons.
//
// # Shape
//
// For a binary partition tree over n leaves the node count is exactly
// 2n-1, every internal node has two children, and the root is node 2n-2.
// The type itself is more general - simplified trees may have internal
// nodes with three or more children - but the ordering invariants always
// hold and are enforced by [New].
//
// # Metadata
//
// Like graphs, trees carry a metadata map ([Tree.Meta]) used to attach the
// arrays and references produced alongside them: altitudes, the minimum
// spanning tree, the leaf graph, and node maps from simplification. The
// hierarchy package defines the attribute-name conventions.
package tree
