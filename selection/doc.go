// Package selection implements the click-driven state machine of the BFS
// path picker.
//
// The first click on a node chooses the start, the second click on a
// different node chooses the end and triggers bfs.ShortestPath, and any
// further click starts over with the clicked node as the new start. Results
// are written to the core.Graph as annotations; Frame hands a renderer the
// graph snapshot together with the instruction for the current state.
//
// Unreachable ends are a normal outcome: the machine still moves to
// PathShown, leaves only the start highlighted and reports an empty Path.
package selection
