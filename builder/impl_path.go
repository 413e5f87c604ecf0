// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// impl_path.go - Path(n): a straight chain of n nodes.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Nodes sit on a horizontal line through cfg.center, cfg.spacing apart,
//     centred on cfg.center.X.
//   - Edges in stable order i–(i+1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/core"
)

// Path returns a Constructor for the path graph P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		x0 := cfg.center.X - cfg.spacing*float64(n-1)/2
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			pos := core.Point{X: x0 + cfg.spacing*float64(i), Y: cfg.center.Y}
			if err := g.AddNode(id, pos); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w: %w", MethodPath, id, ErrConstructFailed, err)
			}
		}

		return chain(g, cfg, MethodPath, 0, n, false)
	}
}

// chain links nodes lo..hi-1 in index order; closed adds the edge hi-1 → lo.
func chain(g *core.Graph, cfg builderConfig, method string, lo, hi int, closed bool) error {
	link := func(i, j int) error {
		u, v := cfg.idFn(i), cfg.idFn(j)
		if _, err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("%s: AddEdge(%s-%s): %w: %w", method, u, v, ErrConstructFailed, err)
		}
		return nil
	}
	for i := lo; i+1 < hi; i++ {
		if err := link(i, i+1); err != nil {
			return err
		}
	}
	if closed {
		return link(hi-1, lo)
	}

	return nil
}
