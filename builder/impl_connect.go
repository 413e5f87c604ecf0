// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// impl_connect.go - Place(id, pos) and Connect(pairs...) constructors, the
// building blocks for hand-specified graphs (Demo, YAML graph files).

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/core"
)

// Place returns a Constructor that adds a single node at an explicit position.
func Place(id string, pos core.Point, opts ...core.NodeOption) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := g.AddNode(id, pos, opts...); err != nil {
			return fmt.Errorf("%s(%s): %w: %w", MethodPlace, id, ErrConstructFailed, err)
		}

		return nil
	}
}

// Connect returns a Constructor that adds one undirected edge per pair, in order.
// Both endpoints must already exist; duplicates are added as parallel edges.
func Connect(pairs ...[2]string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i, p := range pairs {
			if p[0] == "" || p[1] == "" {
				return fmt.Errorf("%s: pair %d %v: %w", MethodConnect, i, p, ErrBadPair)
			}
			if _, err := g.AddEdge(p[0], p[1]); err != nil {
				return fmt.Errorf("%s: pair %d %s-%s: %w: %w", MethodConnect, i, p[0], p[1], ErrConstructFailed, err)
			}
		}

		return nil
	}
}
