// SPDX-License-Identifier: MIT
// File: methods_annotate.go
// Role: Visual-state tags on nodes and edges. The only mutations allowed after
// construction; structure (nodes, edges, adjacency) is never touched here.

package core

import "fmt"

// ResetAnnotations sets every node to NodeDefault and every edge to EdgeDefault.
// Idempotent. Complexity: O(V + E).
func (g *Graph) ResetAnnotations() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, n := range g.nodes {
		n.Annotation = NodeDefault
	}
	for i := range g.edges {
		g.edges[i].annotation = EdgeDefault
	}
}

// AnnotateNode sets the tag of a single node.
func (g *Graph) AnnotateNode(id string, a NodeAnnotation) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.index[id]
	if !ok {
		return fmt.Errorf("AnnotateNode(%s): %w", id, ErrNodeNotFound)
	}
	g.nodes[i].Annotation = a

	return nil
}

// AnnotatePath marks every node of path as NodeOnPath and, for each pair of
// consecutive nodes, the first edge (in insertion order) joining them in either
// orientation as EdgeOnPath.
//
// All IDs are validated before anything is tagged, so an error leaves the
// annotations untouched. An empty path is a no-op.
//
// Complexity: O(len(path) · E) in the worst case; graphs here are tiny.
func (g *Graph) AnnotatePath(path []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	handles := make([]int, len(path))
	for k, id := range path {
		i, ok := g.index[id]
		if !ok {
			return fmt.Errorf("AnnotatePath: %q: %w", id, ErrNodeNotFound)
		}
		handles[k] = i
	}

	for _, i := range handles {
		g.nodes[i].Annotation = NodeOnPath
	}
	for k := 0; k+1 < len(handles); k++ {
		if e := g.findEdge(handles[k], handles[k+1]); e >= 0 {
			g.edges[e].annotation = EdgeOnPath
		}
	}

	return nil
}

// findEdge returns the position of the first edge joining u and v in either
// orientation, or -1. Caller must hold mu.
func (g *Graph) findEdge(u, v int) int {
	for k, e := range g.edges {
		if (e.from == u && e.to == v) || (e.from == v && e.to == u) {
			return k
		}
	}

	return -1
}
