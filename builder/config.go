// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn   = ExcelColumnIDFn ("A","B",...,"Z","AA",...)
//   • center = (DefaultCenterX, DefaultCenterY)
//   • radius = DefaultRadius
//   • spacing = DefaultSpacing

package builder

import "github.com/katalvlaran/bfsviz/core"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn IDFn
	// Center of the ring layout.
	center core.Point
	// Radius of the ring layout.
	radius float64
	// Distance between neighbours in line and lattice layouts.
	spacing float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    ExcelColumnIDFn,
		center:  core.Point{X: DefaultCenterX, Y: DefaultCenterY},
		radius:  DefaultRadius,
		spacing: DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
