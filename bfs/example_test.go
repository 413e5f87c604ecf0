package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/builder"
)

// ExampleShortestPath finds the fewest-edge route on the demo graph.
// A and C are not adjacent, but A-B and B-C are.
func ExampleShortestPath() {
	g, _ := builder.NewDemoGraph()

	res, err := bfs.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Len())
	// Output:
	// [A B C] 2
}

// ExampleShortestPath_noPath shows the explicit no-path outcome for an isolated node.
func ExampleShortestPath_noPath() {
	g, _ := builder.NewDemoGraph()

	res, _ := bfs.ShortestPath(g, "A", "K")
	fmt.Println(res.Found, res.Path == nil)
	// Output:
	// false true
}

// ExampleWithOnDequeue narrates the order in which the frontier is expanded.
func ExampleWithOnDequeue() {
	g, _ := builder.NewDemoGraph()

	_, _ = bfs.ShortestPath(g, "F", "M",
		bfs.WithOnDequeue(func(id string, depth int) {
			fmt.Printf("visit %s (depth %d)\n", id, depth)
		}),
	)
	// Output:
	// visit F (depth 0)
	// visit B (depth 1)
	// visit G (depth 1)
	// visit A (depth 2)
	// visit C (depth 2)
	// visit E (depth 2)
	// visit D (depth 2)
	// visit H (depth 2)
	// visit M (depth 2)
}
