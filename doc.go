// Package bfsviz is a small, thread-safe toolkit for picking shortest paths
// on a positioned graph: click a start node, click an end node, and the
// fewest-edge route between them lights up.
//
// 🚀 What is inside?
//
//	• Graph model: labeled nodes on a 2-D canvas, undirected edges in
//	  insertion order, per-node hit regions and visual-state annotations
//	• Breadth-first shortest path with enqueue/dequeue narration hooks
//	• A three-state click machine (pick start → pick end → reset)
//	• Deterministic fixtures, including the 13-node teaching graph A..M
//	• YAML graph files and a terminal front end
//
// Under the hood, everything is organized in subpackages:
//
//	core/       - Graph, Node, Edge, annotations, hit-testing, snapshots
//	bfs/        - ShortestPath, Result, traversal hooks
//	selection/  - click-driven state machine and instruction lines
//	builder/    - constructors: Demo, Ring, Cycle, Place, Connect
//	config/     - YAML graph definitions (load, validate, build)
//	cmd/bfsviz  - CLI replaying clicks and selections, text or JSON frames
//
// Quick start:
//
//	g, _ := builder.NewDemoGraph()
//	m := selection.New(g)
//	_ = m.Select("A")
//	_ = m.Select("C")
//	fmt.Println(m.Path()) // [A B C]
//
// Rendering is left to the caller: selection.Machine.Frame returns every
// node and edge with an abstract tag (default, start, path) plus the line of
// instructions to show, and internal/frameview shows one way to draw it.
package bfsviz
