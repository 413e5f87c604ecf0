package core_test

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/core"
)

// ExampleGraph demonstrates construction, adjacency queries and hit-testing.
func ExampleGraph() {
	g := core.NewGraph()

	// 1) Register nodes with positions (default hit radius 25).
	_ = g.AddNode("A", core.Point{X: 0, Y: 0})
	_ = g.AddNode("B", core.Point{X: 100, Y: 0})
	_ = g.AddNode("C", core.Point{X: 200, Y: 0})

	// 2) Connect them; both directions are recorded at once.
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("C", "B")

	nbs, _ := g.NeighborsOf("B")
	fmt.Println("neighbors of B:", nbs)

	// 3) Resolve clicks.
	id, ok := g.NodeAt(core.Point{X: 190, Y: 10})
	fmt.Println("click (190,10):", id, ok)
	_, ok = g.NodeAt(core.Point{X: 50, Y: 50})
	fmt.Println("click (50,50) hit:", ok)

	// Output:
	// neighbors of B: [A C]
	// click (190,10): C true
	// click (50,50) hit: false
}
