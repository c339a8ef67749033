package pipeline_test

import (
	"context"
	"fmt"

	"github.com/hiergraph/hiergraph/pkg/graph"
	"github.com/hiergraph/hiergraph/pkg/pipeline"
)

func ExampleRunner_Execute() {
	g, _ := graph.New(3, []graph.Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 2},
	})

	runner := pipeline.NewRunner(nil)
	result, _ := runner.Execute(context.Background(), g, pipeline.Options{
		ComputeSaliency: true,
	})

	fmt.Println("parents:", result.Tree.Parents())
	fmt.Println("saliency:", result.Saliency)
	// Output:
	// parents: [3 3 4 4 4]
	// saliency: [1 2]
}
