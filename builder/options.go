// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.

package builder

import (
	"math"

	"github.com/katalvlaran/bfsviz/core"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic node ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithCenter sets the center of the ring layout.
// Panics on non-finite coordinates.
func WithCenter(p core.Point) BuilderOption {
	if !finite(p.X) || !finite(p.Y) {
		panic("builder: WithCenter requires finite coordinates")
	}
	return func(c *builderConfig) { c.center = p }
}

// WithRadius sets the radius of the ring layout.
// Panics unless r is positive and finite.
func WithRadius(r float64) BuilderOption {
	if !(r > 0) || !finite(r) {
		panic("builder: WithRadius requires a positive finite radius")
	}
	return func(c *builderConfig) { c.radius = r }
}

// WithSpacing sets the distance between neighbours in Path and Grid layouts.
// Panics unless s is positive and finite.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || !finite(s) {
		panic("builder: WithSpacing requires a positive finite spacing")
	}
	return func(c *builderConfig) { c.spacing = s }
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
