package selection_test

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/selection"
)

// ExampleMachine walks through the three-click cycle on the demo graph.
func ExampleMachine() {
	g, _ := builder.NewDemoGraph()
	m := selection.New(g)

	fmt.Println(m.Instruction())
	_ = m.Select("A")
	fmt.Println(m.Instruction())
	_ = m.Select("C")
	fmt.Println(m.Instruction(), m.Path())
	_ = m.Select("G")
	start, _ := m.Start()
	fmt.Println(m.State(), start)

	// Output:
	// Click start node
	// Click end node
	// Click any node to reset [A B C]
	// StartChosen G
}
