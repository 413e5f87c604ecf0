// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node registration & queries.
//
// Determinism:
//   - Nodes() and NodeIDs() return nodes in insertion order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddNode registers a node at pos with an empty adjacency list.
//
// Implementation:
//   - Stage 1: Validate non-empty ID, finite position and hit radius.
//   - Stage 2: Under the write lock, reject a duplicate ID (ErrDuplicateNode).
//   - Stage 3: Append the node, its empty adjacency bucket, and its hit box.
//
// Re-adding an existing ID is an error, never a no-op.
//
// Complexity: O(log V) amortized (R-tree insert).
func (g *Graph) AddNode(id string, pos Point, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if !finite(pos.X) || !finite(pos.Y) {
		return fmt.Errorf("AddNode(%s): position (%v,%v): %w", id, pos.X, pos.Y, ErrBadPosition)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n := &Node{ID: id, Pos: pos, HitRadius: g.hitRadius}
	for _, opt := range opts {
		opt(n)
	}
	if !validRadius(n.HitRadius) {
		return fmt.Errorf("AddNode(%s): radius %v: %w", id, n.HitRadius, ErrBadHitRadius)
	}
	if _, exists := g.index[id]; exists {
		return fmt.Errorf("AddNode(%s): %w", id, ErrDuplicateNode)
	}

	i := len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.index[id] = i
	g.adjacency = append(g.adjacency, nil)
	g.indexHitBox(i)

	return nil
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Node returns a copy of the node with the given ID.
func (g *Graph) Node(id string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return Node{}, fmt.Errorf("Node(%s): %w", id, ErrNodeNotFound)
	}

	return *g.nodes[i], nil
}

// Nodes returns copies of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.copyNodes()
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}

	return ids
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// copyNodes clones the node slice. Caller must hold mu.
func (g *Graph) copyNodes() []Node {
	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = *n
	}

	return out
}

// validRadius reports whether r is usable as a hit radius.
func validRadius(r float64) bool {
	return r > 0 && finite(r)
}

func finite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
