// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// impl_demo.go - the fixed 13-node teaching graph.
//
//	Nodes A..M on a ring centred (500,400), radius 250, angle 2πi/13.
//	Nodes I, J, K, L have no edges, so queries to them report "no path".

package builder

import "github.com/katalvlaran/bfsviz/core"

// DemoNodeCount is the number of nodes in the demo graph.
const DemoNodeCount = 13

// DemoEdges lists the demo graph's connections in insertion order.
var DemoEdges = [][2]string{
	{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"},
	{"E", "A"}, {"E", "B"}, {"B", "D"}, {"B", "F"},
	{"F", "G"}, {"G", "A"}, {"G", "H"}, {"H", "D"},
	{"H", "B"}, {"M", "A"}, {"M", "B"}, {"M", "C"},
}

// Demo returns a Constructor for the demo graph. It ignores the configured ID
// scheme and layout so the graph is always the same.
func Demo() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		fixed := builderConfig{
			idFn:    SymbolIDFn,
			center:  core.Point{X: DefaultCenterX, Y: DefaultCenterY},
			radius:  DefaultRadius,
			spacing: DefaultSpacing,
		}
		if err := Ring(DemoNodeCount)(g, fixed); err != nil {
			return err
		}

		return Connect(DemoEdges...)(g, fixed)
	}
}
