// SPDX-License-Identifier: MIT
// File: config.go
// Role: YAML graph definition files: decoding, validation, graph construction.

package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/core"
)

// ErrInvalidGraphFile wraps every decoding and validation failure.
var ErrInvalidGraphFile = errors.New("config: invalid graph file")

// GraphFile is the on-disk description of a graph.
//
// Nodes without coordinates are placed on the ring described by Layout, at the
// slot matching their position in Nodes. Without a Layout every node needs x and y.
type GraphFile struct {
	HitRadius float64    `yaml:"hit_radius,omitempty" validate:"omitempty,finite,gt=0"`
	Layout    *Layout    `yaml:"layout,omitempty"`
	Nodes     []NodeSpec `yaml:"nodes" validate:"required,min=1,unique=ID,dive"`
	Edges     [][]string `yaml:"edges,omitempty" validate:"dive,len=2,dive,required"`
}

// Layout is a ring layout for nodes that carry no explicit position.
type Layout struct {
	Center PointSpec `yaml:"center"`
	Radius float64   `yaml:"radius" validate:"finite,gt=0"`
}

// PointSpec is a position in canvas coordinates.
type PointSpec struct {
	X float64 `yaml:"x" validate:"finite"`
	Y float64 `yaml:"y" validate:"finite"`
}

// NodeSpec describes one node. X and Y must be given together.
type NodeSpec struct {
	ID        string   `yaml:"id" validate:"required"`
	X         *float64 `yaml:"x,omitempty" validate:"required_with=Y"`
	Y         *float64 `yaml:"y,omitempty" validate:"required_with=X"`
	HitRadius float64  `yaml:"hit_radius,omitempty" validate:"omitempty,finite,gt=0"`
}

// positioned reports whether the node carries explicit coordinates.
func (n NodeSpec) positioned() bool { return n.X != nil && n.Y != nil }

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("finite", validateFinite)
	validate.RegisterStructValidation(graphFileLevel, GraphFile{})
}

// validateFinite rejects NaN and ±Inf, which YAML spells .nan and .inf.
func validateFinite(fl validator.FieldLevel) bool {
	return finite(fl.Field().Float())
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// graphFileLevel checks rules spanning several fields: every node needs a
// finite position unless a layout is set, and edges may only name declared nodes.
// Optional coordinates are checked here because a tag on a nil pointer would fail.
func graphFileLevel(sl validator.StructLevel) {
	f, ok := sl.Current().Interface().(GraphFile)
	if !ok {
		return
	}

	known := make(map[string]struct{}, len(f.Nodes))
	for i, n := range f.Nodes {
		known[n.ID] = struct{}{}
		if f.Layout == nil && !n.positioned() {
			sl.ReportError(f.Nodes[i].X, fmt.Sprintf("Nodes[%d].X", i), "X", "position_or_layout", n.ID)
		}
		if n.X != nil && !finite(*n.X) {
			sl.ReportError(*n.X, fmt.Sprintf("Nodes[%d].X", i), "X", "finite", n.ID)
		}
		if n.Y != nil && !finite(*n.Y) {
			sl.ReportError(*n.Y, fmt.Sprintf("Nodes[%d].Y", i), "Y", "finite", n.ID)
		}
	}
	for i, e := range f.Edges {
		for _, id := range e {
			if _, ok := known[id]; !ok && id != "" {
				sl.ReportError(f.Edges[i], fmt.Sprintf("Edges[%d]", i), "Edges", "known_node", id)
			}
		}
	}
}

// Parse decodes and validates a graph file held in memory.
func Parse(data []byte) (*GraphFile, error) {
	var f GraphFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidGraphFile, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Load reads and parses the graph file at path.
func Load(path string) (*GraphFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Validate checks the structural rules of f.
func (f *GraphFile) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGraphFile, err)
	}

	return nil
}

// Build turns f into a graph: nodes in file order, then edges in file order.
func (f *GraphFile) Build() (*core.Graph, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var gopts []core.GraphOption
	if f.HitRadius > 0 {
		gopts = append(gopts, core.WithHitRadius(f.HitRadius))
	}

	cons := make([]builder.Constructor, 0, len(f.Nodes)+1)
	for i, n := range f.Nodes {
		var nopts []core.NodeOption
		if n.HitRadius > 0 {
			nopts = append(nopts, core.WithNodeHitRadius(n.HitRadius))
		}
		cons = append(cons, builder.Place(n.ID, f.position(i), nopts...))
	}

	pairs := make([][2]string, len(f.Edges))
	for i, e := range f.Edges {
		pairs[i] = [2]string{e[0], e[1]}
	}
	cons = append(cons, builder.Connect(pairs...))

	g, err := builder.BuildGraph(gopts, nil, cons...)
	if err != nil {
		return nil, fmt.Errorf("config: build: %w", err)
	}

	return g, nil
}

// position resolves node i's coordinates, falling back to its ring slot.
func (f *GraphFile) position(i int) core.Point {
	n := f.Nodes[i]
	if n.positioned() {
		return core.Point{X: *n.X, Y: *n.Y}
	}
	c := core.Point{X: f.Layout.Center.X, Y: f.Layout.Center.Y}

	return builder.RingPosition(i, len(f.Nodes), c, f.Layout.Radius)
}
