// Package bfs provides breadth-first shortest-path search over a core.Graph.
//
// What
//
//   - ShortestPath(g, start, end) explores nodes in non-decreasing distance
//     (edge count) from start and returns a Result containing:
//   - Path:  start→end node sequence with the fewest edges
//   - Found: false when end is unreachable (Path is then nil)
//   - Order: dequeue sequence, ending at end when found
//   - Depth: discovery depth of every node put on the frontier
//   - Hooks for teaching: OnEnqueue (node discovered), OnDequeue (node expanded).
//
// Termination
//
//	The search stops the moment end is DEQUEUED, not when it is first
//	enqueued. Because all edges have unit cost, the predecessor recorded at
//	discovery already lies on a shortest path, so the reported length equals
//	the true BFS distance.
//
// Predecessors
//
//	Predecessors are kept in a dense table indexed by node handle, with the
//	sentinel noPredecessor for the root and undiscovered nodes. Reconstruction
//	is bounded and total: it either reaches start or reports "no path".
//
// Determinism
//
//	Neighbors are expanded in core adjacency order (edge insertion order), so
//	ties between equally short paths are always broken the same way.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//	ErrGraphNil, ErrStartNotFound, ErrEndNotFound (the latter two also match
//	core.ErrNodeNotFound via errors.Is). "No path" is not an error.
package bfs
