// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge registration & adjacency queries: AddEdge/Edges/EdgeCount/NeighborsOf/Adjacency.
//
// Determinism:
//   - Edges() returns edges in insertion order.
//   - NeighborsOf() returns neighbors in the order their edges were added.
//   - Edge IDs are monotonic ("e" + decimal).
//
// Concurrency:
//   - AddEdge updates the edge list and BOTH adjacency buckets under one write lock,
//     so readers never observe a half-mirrored edge.

package core

import (
	"fmt"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = "e"

// AddEdge connects a and b with a new undirected edge and returns its ID.
//
// Steps:
//  1. Under the write lock, resolve both endpoints (ErrNodeNotFound otherwise).
//  2. Append the edge record.
//  3. Append b to a's adjacency and a to b's adjacency.
//
// Parallel edges are NOT deduplicated: a second AddEdge(a, b) adds a second
// edge and a second entry in each adjacency list. A self-loop adds the node to
// its own adjacency twice, once per direction.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ai, ok := g.index[a]
	if !ok {
		return "", fmt.Errorf("AddEdge(%s, %s): endpoint %q: %w", a, b, a, ErrNodeNotFound)
	}
	bi, ok := g.index[b]
	if !ok {
		return "", fmt.Errorf("AddEdge(%s, %s): endpoint %q: %w", a, b, b, ErrNodeNotFound)
	}

	eid := edgeIDPrefix + strconv.Itoa(len(g.edges)+1)
	g.edges = append(g.edges, edgeRecord{id: eid, from: ai, to: bi})
	g.adjacency[ai] = append(g.adjacency[ai], bi)
	g.adjacency[bi] = append(g.adjacency[bi], ai)

	return eid, nil
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.copyEdges()
}

// EdgeCount returns the number of edges, counting parallel edges separately.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// NeighborsOf returns the adjacency list of id in insertion order.
// The returned slice is a copy; it has no side effects on the graph.
func (g *Graph) NeighborsOf(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("NeighborsOf(%s): %w", id, ErrNodeNotFound)
	}
	out := make([]string, len(g.adjacency[i]))
	for k, j := range g.adjacency[i] {
		out[k] = g.nodes[j].ID
	}

	return out, nil
}

// Adjacency is an index-based snapshot of a graph's structure, taken under a
// single read lock. Algorithms use it to work with dense integer node handles
// instead of string lookups.
type Adjacency struct {
	// IDs lists node IDs in insertion order; a node's handle is its position here.
	IDs []string

	// Index maps a node ID back to its handle.
	Index map[string]int

	// Neighbors[i] lists the handles adjacent to IDs[i] in edge insertion order.
	Neighbors [][]int
}

// Adjacency returns a consistent index-based copy of the graph's adjacency.
// Complexity: O(V + E).
func (g *Graph) Adjacency() Adjacency {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := Adjacency{
		IDs:       make([]string, len(g.nodes)),
		Index:     make(map[string]int, len(g.nodes)),
		Neighbors: make([][]int, len(g.nodes)),
	}
	for i, n := range g.nodes {
		adj.IDs[i] = n.ID
		adj.Index[n.ID] = i
		adj.Neighbors[i] = append([]int(nil), g.adjacency[i]...)
	}

	return adj
}

// copyEdges materializes edge records as Edge values. Caller must hold mu.
func (g *Graph) copyEdges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = Edge{
			ID:         e.id,
			From:       g.nodes[e.from].ID,
			To:         g.nodes[e.to].ID,
			Annotation: e.annotation,
		}
	}

	return out
}
