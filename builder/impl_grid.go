// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// impl_grid.go - Grid(rows, cols): an orthogonal lattice with 4-neighborhood.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Node IDs are "r,c" in row-major order; the grid ignores cfg.idFn so that
//     coordinates stay readable.
//   - Cell (r,c) sits at cfg.center + ((c-(cols-1)/2)·s, (r-(rows-1)/2)·s)
//     with s = cfg.spacing, so the lattice is centred on cfg.center.
//   - For each cell, the Right edge is emitted before the Bottom edge.
//
// The hop distance between (r1,c1) and (r2,c2) is |r1-r2| + |c1-c2|.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/core"
)

// GridID returns the node ID of cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }

// Grid returns a Constructor for a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		x0 := cfg.center.X - cfg.spacing*float64(cols-1)/2
		y0 := cfg.center.Y - cfg.spacing*float64(rows-1)/2
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				pos := core.Point{X: x0 + cfg.spacing*float64(c), Y: y0 + cfg.spacing*float64(r)}
				if err := g.AddNode(id, pos); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w: %w", MethodGrid, id, ErrConstructFailed, err)
				}
			}
		}

		link := func(u, v string) error {
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w: %w", MethodGrid, u, v, ErrConstructFailed, err)
			}
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
