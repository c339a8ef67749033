package hierarchy_test

import (
	"fmt"

	"github.com/hiergraph/hiergraph/pkg/graph"
	"github.com/hiergraph/hiergraph/pkg/hierarchy"
)

func ExampleBuildCanonical() {
	g, _ := graph.New(3, []graph.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 2},
	})

	res, _ := hierarchy.BuildCanonical(g)
	fmt.Println("parents:", res.Tree.Parents())
	fmt.Println("altitudes:", res.Altitudes)
	fmt.Println("mst edges:", res.MST.NumEdges())
	// Output:
	// parents: [3 3 4 4 4]
	// altitudes: [0 0 0 1 2]
	// mst edges: 2
}

func ExampleSimplify() {
	g, _ := graph.New(3, []graph.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 2},
	})
	res, _ := hierarchy.BuildCanonical(g)

	// Contract the first merge node; its leaves reattach to the root.
	deleted := make([]bool, res.Tree.NumNodes())
	deleted[3] = true
	simplified, nodeMap, _ := hierarchy.Simplify(res.Tree, deleted)

	fmt.Println("parents:", simplified.Parents())
	fmt.Println("node map:", nodeMap)
	// Output:
	// parents: [3 3 3 3]
	// node map: [0 1 2 4]
}

func ExampleSaliencyMap() {
	g, _ := graph.New(3, []graph.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 2},
	})
	res, _ := hierarchy.BuildCanonical(g)

	saliency, _ := hierarchy.SaliencyMap(g, res.Tree, res.Altitudes)
	fmt.Println(saliency)
	// Output:
	// [1 2]
}
