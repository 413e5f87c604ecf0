// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// impl_ring.go - Ring(n) and Cycle(n) constructors.
//
// Contract:
//   • Ring: n ≥ 1 (else ErrTooFewVertices); Cycle: n ≥ 3.
//   • Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   • Node i sits at angle 2πi/n on the cfg circle; the offsets from the
//     center are truncated toward zero, so coordinates are whole numbers
//     whenever the center is.
//   • Cycle emits edges in stable order i -> (i+1)%n.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bfsviz/core"
)

// RingPosition returns the position of node i of n on the circle (center, radius).
func RingPosition(i, n int, center core.Point, radius float64) core.Point {
	angle := 2 * math.Pi * float64(i) / float64(n)

	return core.Point{
		X: center.X + math.Trunc(radius*math.Cos(angle)),
		Y: center.Y + math.Trunc(radius*math.Sin(angle)),
	}
}

// Ring returns a Constructor that places n unconnected nodes evenly on a circle.
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRing, n, MinRingNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddNode(id, RingPosition(i, n, cfg.center, cfg.radius)); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w: %w", MethodRing, id, ErrConstructFailed, err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the ring layout plus the n-cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := Ring(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodCycle, err)
		}
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w: %w", MethodCycle, u, v, ErrConstructFailed, err)
			}
		}

		return nil
	}
}
