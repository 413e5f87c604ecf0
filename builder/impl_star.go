// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// impl_star.go - Star(n) and Wheel(n): a hub with spokes, optionally a rim.
//
// Contract:
//   - Star: n ≥ 2, Wheel: n ≥ 4 (else ErrTooFewVertices).
//   - Node 0 is the hub at cfg.center; nodes 1..n-1 are evenly spaced on the
//     cfg circle, starting at angle 0.
//   - Spokes first (hub–leaf in leaf order), then for Wheel the rim cycle
//     1–2, …, (n-1)–1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/core"
)

// Star returns a Constructor for the star graph with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		return hubAndSpokes(g, cfg, MethodStar, n)
	}
}

// Wheel returns a Constructor for the wheel graph W_n: a star whose leaves
// also form a cycle.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		if err := hubAndSpokes(g, cfg, MethodWheel, n); err != nil {
			return err
		}

		return chain(g, cfg, MethodWheel, 1, n, true)
	}
}

func hubAndSpokes(g *core.Graph, cfg builderConfig, method string, n int) error {
	hub := cfg.idFn(0)
	if err := g.AddNode(hub, cfg.center); err != nil {
		return fmt.Errorf("%s: AddNode(%s): %w: %w", method, hub, ErrConstructFailed, err)
	}
	for i := 1; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddNode(id, RingPosition(i-1, n-1, cfg.center, cfg.radius)); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w: %w", method, id, ErrConstructFailed, err)
		}
	}
	for i := 1; i < n; i++ {
		leaf := cfg.idFn(i)
		if _, err := g.AddEdge(hub, leaf); err != nil {
			return fmt.Errorf("%s: AddEdge(%s-%s): %w: %w", method, hub, leaf, ErrConstructFailed, err)
		}
	}

	return nil
}
