// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// impl_complete.go - Complete(n): the ring layout with every pair connected.
//
// Edge order is lexicographic over index pairs (i<j): 0–1, 0–2, …, 1–2, …
// Complexity: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/core"
)

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinRingNodes, ErrTooFewVertices)
		}
		if err := Ring(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodComplete, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				if _, err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w: %w", MethodComplete, u, v, ErrConstructFailed, err)
				}
			}
		}

		return nil
	}
}
