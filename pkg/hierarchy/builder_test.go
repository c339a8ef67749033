package hierarchy

import (
	"math"
	"reflect"
	"testing"

	"github.com/hiergraph/hiergraph/pkg/errors"
	"github.com/hiergraph/hiergraph/pkg/graph"
)

func mustGraph(t *testing.T, numVertices int, edges []graph.Edge) *graph.Graph {
	t.Helper()
	g, err := graph.New(numVertices, edges)
	if err != nil {
		t.Fatalf("graph.New() error = %v", err)
	}
	return g
}

// gridGraph2x3 is a 4-adjacency 2x3 grid with vertices
//
//	0 1 2
//	3 4 5
//
// and edge weights chosen so the hierarchy has three altitude levels.
func gridGraph2x3(t *testing.T) *graph.Graph {
	t.Helper()
	return mustGraph(t, 6, []graph.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 0, Target: 3, Weight: 0},
		{Source: 1, Target: 2, Weight: 2},
		{Source: 1, Target: 4, Weight: 1},
		{Source: 2, Target: 5, Weight: 1},
		{Source: 3, Target: 4, Weight: 1},
		{Source: 4, Target: 5, Weight: 2},
	})
}

func TestSortEdges(t *testing.T) {
	g := gridGraph2x3(t)
	got := SortEdges(g)
	// Ties broken by original index keeps the order reproducible.
	want := []int{1, 0, 3, 4, 5, 2, 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortEdges() = %v, want %v", got, want)
	}
}

func TestBuildCanonicalGrid(t *testing.T) {
	g := gridGraph2x3(t)
	res, err := BuildCanonical(g)
	if err != nil {
		t.Fatalf("BuildCanonical() error = %v", err)
	}

	wantParents := []int{6, 7, 9, 6, 8, 9, 7, 8, 10, 10, 10}
	if got := res.Tree.Parents(); !reflect.DeepEqual(got, wantParents) {
		t.Errorf("parents = %v, want %v", got, wantParents)
	}
	wantAltitudes := []float64{0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 2}
	if !reflect.DeepEqual(res.Altitudes, wantAltitudes) {
		t.Errorf("altitudes = %v, want %v", res.Altitudes, wantAltitudes)
	}
	if res.Tree.NumLeaves() != 6 || res.Tree.NumNodes() != 11 {
		t.Errorf("tree has %d leaves, %d nodes, want 6, 11", res.Tree.NumLeaves(), res.Tree.NumNodes())
	}

	// The MST edges come out in merge order, lowest weight first.
	wantEdgeMap := []int{1, 0, 3, 4, 2}
	if !reflect.DeepEqual(res.MSTEdgeMap, wantEdgeMap) {
		t.Errorf("MSTEdgeMap = %v, want %v", res.MSTEdgeMap, wantEdgeMap)
	}
	if res.MST.NumVertices() != 6 || res.MST.NumEdges() != 5 {
		t.Errorf("MST has %d vertices, %d edges, want 6, 5", res.MST.NumVertices(), res.MST.NumEdges())
	}
	for i, ei := range res.MSTEdgeMap {
		wantEdge, _ := g.Edge(ei)
		gotEdge, _ := res.MST.Edge(i)
		if gotEdge != wantEdge {
			t.Errorf("MST edge %d = %+v, want %+v", i, gotEdge, wantEdge)
		}
	}
}

func TestBuildCanonicalChainScenario(t *testing.T) {
	// Three vertices in a chain: node 3 merges {0,1} at altitude 1, the
	// root merges in vertex 2 at altitude 2.
	g := mustGraph(t, 3, []graph.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 2},
	})
	res, err := BuildCanonical(g)
	if err != nil {
		t.Fatalf("BuildCanonical() error = %v", err)
	}
	if got, want := res.Tree.Parents(), []int{3, 3, 4, 4, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("parents = %v, want %v", got, want)
	}
	if got, want := res.Altitudes, []float64{0, 0, 0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("altitudes = %v, want %v", got, want)
	}
	if got := res.Tree.Root(); got != 4 {
		t.Errorf("root = %d, want 4", got)
	}
}

func TestBuildCanonicalAttributes(t *testing.T) {
	g := gridGraph2x3(t)
	res, err := BuildCanonical(g)
	if err != nil {
		t.Fatalf("BuildCanonical() error = %v", err)
	}

	// The input carries no original_graph, so it is its own origin.
	if lg, ok := LeafGraph(res.Tree); !ok || lg != g {
		t.Errorf("tree leaf graph = %v, want the input graph", lg)
	}
	if alts, ok := Altitudes(res.Tree); !ok || !reflect.DeepEqual(alts, res.Altitudes) {
		t.Errorf("tree altitudes attribute = %v, want %v", alts, res.Altitudes)
	}
	if v, ok := res.Tree.Meta().Lookup(AttrMST); !ok || v != any(res.MST) {
		t.Errorf("tree mst attribute = %v, want the result MST", v)
	}
	if got := Origin(res.MST); got != g {
		t.Errorf("Origin(MST) = %v, want the input graph", got)
	}
	if v, ok := res.MST.Meta().Lookup(AttrMSTEdgeMap); !ok || !reflect.DeepEqual(v, res.MSTEdgeMap) {
		t.Errorf("mst edge map attribute = %v, want %v", v, res.MSTEdgeMap)
	}
}

func TestBuildCanonicalOriginPropagation(t *testing.T) {
	origin := mustGraph(t, 3, nil)
	g := mustGraph(t, 3, []graph.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 2},
	})
	g.Meta().Set(AttrOriginalGraph, origin)

	res, err := BuildCanonical(g)
	if err != nil {
		t.Fatalf("BuildCanonical() error = %v", err)
	}
	if got := Origin(res.MST); got != origin {
		t.Errorf("Origin(MST) = %v, want the origin graph, not the immediate input", got)
	}
	if lg, ok := LeafGraph(res.Tree); !ok || lg != origin {
		t.Errorf("tree leaf graph = %v, want the origin graph, not the immediate input", lg)
	}
}

func TestBuildCanonicalDeterminism(t *testing.T) {
	g := gridGraph2x3(t)
	first, err := BuildCanonical(g)
	if err != nil {
		t.Fatalf("BuildCanonical() error = %v", err)
	}
	second, err := BuildCanonical(g)
	if err != nil {
		t.Fatalf("BuildCanonical() error = %v", err)
	}
	if !reflect.DeepEqual(first.Tree.Parents(), second.Tree.Parents()) {
		t.Errorf("parents differ across runs: %v vs %v", first.Tree.Parents(), second.Tree.Parents())
	}
	if !reflect.DeepEqual(first.Altitudes, second.Altitudes) {
		t.Errorf("altitudes differ across runs: %v vs %v", first.Altitudes, second.Altitudes)
	}
	if !reflect.DeepEqual(first.MSTEdgeMap, second.MSTEdgeMap) {
		t.Errorf("MST edge maps differ across runs: %v vs %v", first.MSTEdgeMap, second.MSTEdgeMap)
	}
}

func TestBuildCanonicalMonotoneAltitudes(t *testing.T) {
	g := gridGraph2x3(t)
	res, err := BuildCanonical(g)
	if err != nil {
		t.Fatalf("BuildCanonical() error = %v", err)
	}
	for i := 0; i < res.Tree.NumNodes(); i++ {
		p, _ := res.Tree.Parent(i)
		if res.Altitudes[i] > res.Altitudes[p] {
			t.Errorf("altitude decreases from node %d (%v) to parent %d (%v)",
				i, res.Altitudes[i], p, res.Altitudes[p])
		}
	}
}

func TestBuildCanonicalSelfLoops(t *testing.T) {
	g := mustGraph(t, 2, []graph.Edge{
		{Source: 0, Target: 0, Weight: 0},
		{Source: 0, Target: 1, Weight: 5},
		{Source: 1, Target: 1, Weight: 1},
	})
	res, err := BuildCanonical(g)
	if err != nil {
		t.Fatalf("BuildCanonical() error = %v", err)
	}
	if got, want := res.Tree.Parents(), []int{2, 2, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("parents = %v, want %v", got, want)
	}
	if got, want := res.MSTEdgeMap, []int{1}; !reflect.DeepEqual(got, want) {
		t.Errorf("MSTEdgeMap = %v, want %v", got, want)
	}
}

func TestBuildCanonicalParallelEdges(t *testing.T) {
	g := mustGraph(t, 2, []graph.Edge{
		{Source: 0, Target: 1, Weight: 3},
		{Source: 1, Target: 0, Weight: 1},
	})
	res, err := BuildCanonical(g)
	if err != nil {
		t.Fatalf("BuildCanonical() error = %v", err)
	}
	// The lighter duplicate wins; the heavier one closes a cycle.
	if got, want := res.MSTEdgeMap, []int{1}; !reflect.DeepEqual(got, want) {
		t.Errorf("MSTEdgeMap = %v, want %v", got, want)
	}
	if res.Altitudes[2] != 1 {
		t.Errorf("root altitude = %v, want 1", res.Altitudes[2])
	}
}

func TestBuildCanonicalSingleVertex(t *testing.T) {
	g := mustGraph(t, 1, nil)
	res, err := BuildCanonical(g)
	if err != nil {
		t.Fatalf("BuildCanonical() error = %v", err)
	}
	if got, want := res.Tree.Parents(), []int{0}; !reflect.DeepEqual(got, want) {
		t.Errorf("parents = %v, want %v", got, want)
	}
	if res.MST.NumEdges() != 0 {
		t.Errorf("MST has %d edges, want 0", res.MST.NumEdges())
	}
}

func TestBuildCanonicalEmptyGraph(t *testing.T) {
	g := mustGraph(t, 0, nil)
	if _, err := BuildCanonical(g); !errors.Is(err, errors.ErrCodeInvalidGraph) {
		t.Errorf("BuildCanonical() error = %v, want code %s", err, errors.ErrCodeInvalidGraph)
	}
}

func TestBuildCanonicalDisconnected(t *testing.T) {
	g := mustGraph(t, 4, []graph.Edge{{Source: 0, Target: 1, Weight: 1}})

	_, err := BuildCanonical(g)
	if !errors.Is(err, errors.ErrCodeDisconnectedGraph) {
		t.Fatalf("BuildCanonical() error = %v, want code %s", err, errors.ErrCodeDisconnectedGraph)
	}
}

func TestBuildCanonicalSuperRoot(t *testing.T) {
	g := mustGraph(t, 4, []graph.Edge{{Source: 0, Target: 1, Weight: 1}})

	res, err := BuildCanonical(g, WithSuperRoot())
	if err != nil {
		t.Fatalf("BuildCanonical(WithSuperRoot) error = %v", err)
	}
	// One merge node for {0,1}, then a super-root adopting it and the two
	// isolated vertices.
	if got, want := res.Tree.Parents(), []int{4, 4, 5, 5, 5, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("parents = %v, want %v", got, want)
	}
	root := res.Tree.Root()
	if !math.IsInf(res.Altitudes[root], 1) {
		t.Errorf("super-root altitude = %v, want +Inf", res.Altitudes[root])
	}
	if got := res.Tree.NumChildren(root); got != 3 {
		t.Errorf("super-root has %d children, want 3", got)
	}
	if res.MST.NumEdges() != 1 {
		t.Errorf("spanning forest has %d edges, want 1", res.MST.NumEdges())
	}
}
