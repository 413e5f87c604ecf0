// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs and coordinates.
//   - Safety: constructors never panic; they return sentinel errors wrapped with method context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add nodes before the edges that reference them.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// NewDemoGraph builds the 13-node demonstration graph (see Demo).
func NewDemoGraph(gopts ...core.GraphOption) (*core.Graph, error) {
	return BuildGraph(gopts, nil, Demo())
}

// =============================================================================
// Factories - implemented in impl_*.go
// =============================================================================
//
// Ring(n)            n nodes named by cfg.idFn, evenly spaced on cfg's circle, no edges.
// Cycle(n)           Ring(n) plus edges i → (i+1)%n.
// Place(id, pos)     one node at an explicit position.
// Connect(pairs...)  edges between existing nodes, in the given order.
// Demo()             the fixed 13-node teaching graph A..M.
