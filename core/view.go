// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating renderer-facing views of the graph.
// Concurrency:
//   - One read lock covers the whole snapshot, so nodes and edges are mutually consistent.

package core

// Frame is everything a renderer needs to draw one picture: ordered nodes and
// edges with their tags, plus an instruction line for the user.
type Frame struct {
	Nodes       []Node `json:"nodes"`
	Edges       []Edge `json:"edges"`
	Instruction string `json:"instruction,omitempty"`
}

// Snapshot returns a Frame of the current graph state with an empty instruction.
// The result shares no memory with the graph.
//
// Complexity: O(V + E).
func (g *Graph) Snapshot() Frame {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Frame{
		Nodes: g.copyNodes(),
		Edges: g.copyEdges(),
	}
}

// PathEdges returns the IDs of the edges currently tagged EdgeOnPath, in insertion order.
func (f Frame) PathEdges() []string {
	var out []string
	for _, e := range f.Edges {
		if e.Annotation == EdgeOnPath {
			out = append(out, e.ID)
		}
	}

	return out
}

// NodesTagged returns the IDs of nodes carrying annotation a, in insertion order.
func (f Frame) NodesTagged(a NodeAnnotation) []string {
	var out []string
	for _, n := range f.Nodes {
		if n.Annotation == a {
			out = append(out, n.ID)
		}
	}

	return out
}
