// Package pkg provides the core libraries for hiergraph hierarchical graph
// analysis.
//
// # Overview
//
// hiergraph turns edge-weighted undirected graphs into hierarchies of
// partitions: trees whose leaves are the graph's vertices and whose
// internal nodes record, bottom-up, the order in which regions of the graph
// merge as an edge-weight threshold grows. The pkg directory is organized
// into three main areas:
//
//  1. Data model - [graph], [tree], [unionfind]
//  2. Algorithms - [hierarchy], [lca]
//  3. Orchestration - [pipeline], [observability], [errors]
//
// # Architecture
//
// The typical data flow through hiergraph:
//
//	Edge-weighted graph
//	         ↓
//	    [hierarchy] BuildCanonical (stable edge sort + union-find sweep)
//	         ↓
//	    canonical partition tree + altitudes + MST
//	         ↓
//	    [hierarchy] Simplify / QuasiFlatZones (optional contraction)
//	         ↓
//	    [hierarchy] SaliencyMap via [lca] (optional per-edge output)
//
// # Quick Start
//
// Build a hierarchy and query it:
//
//	import (
//	    "github.com/hiergraph/hiergraph/pkg/graph"
//	    "github.com/hiergraph/hiergraph/pkg/hierarchy"
//	)
//
//	// 1. Describe the graph
//	g, _ := graph.New(3, []graph.Edge{
//	    {Source: 0, Target: 1, Weight: 1},
//	    {Source: 1, Target: 2, Weight: 2},
//	})
//
//	// 2. Build the canonical partition tree
//	res, _ := hierarchy.BuildCanonical(g)
//
//	// 3. Compute per-edge saliency
//	saliency, _ := hierarchy.SaliencyMap(g, res.Tree, res.Altitudes)
//
// # Main Packages
//
// ## Data Model
//
// [graph] - Minimal immutable edge-weighted undirected graph plus the
// metadata map used for attribute propagation between derived objects.
//
// [tree] - Parent-array hierarchy with leaves-first node numbering,
// structural validation, and a children index.
//
// [unionfind] - Disjoint sets with union by rank and path compression;
// deterministic representatives make hierarchy construction reproducible.
//
// ## Algorithms
//
// [hierarchy] - Canonical binary partition tree construction, tree
// simplification with cascading elision, quasi-flat-zone hierarchies, and
// saliency computation. Attribute conventions (leaf_graph, altitudes, mst,
// node_map, original_graph) live here.
//
// [lca] - Euler-tour + sparse-table lowest-common-ancestor index with O(1)
// queries, the supplier of the per-edge LCA maps saliency consumes.
//
// ## Orchestration
//
// [pipeline] - Complete build → collapse → saliency pipeline with
// structured logging, run IDs, per-stage timing, and TOML-loadable options.
// Ensures consistent behavior across all entry points.
//
// [observability] - Hook interfaces with no-op defaults for instrumenting
// pipeline runs without coupling the library to a metrics backend.
//
// [errors] - Structured errors with stable machine-readable codes
// (SIZE_MISMATCH, DISCONNECTED_GRAPH, ...) shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/hierarchy/...   # Specific package
//	go test -run Example          # Examples only
//
// [graph]: https://pkg.go.dev/github.com/hiergraph/hiergraph/pkg/graph
// [tree]: https://pkg.go.dev/github.com/hiergraph/hiergraph/pkg/tree
// [unionfind]: https://pkg.go.dev/github.com/hiergraph/hiergraph/pkg/unionfind
// [hierarchy]: https://pkg.go.dev/github.com/hiergraph/hiergraph/pkg/hierarchy
// [lca]: https://pkg.go.dev/github.com/hiergraph/hiergraph/pkg/lca
// [pipeline]: https://pkg.go.dev/github.com/hiergraph/hiergraph/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/hiergraph/hiergraph/pkg/observability
// [errors]: https://pkg.go.dev/github.com/hiergraph/hiergraph/pkg/errors
package pkg
