// SPDX-License-Identifier: MIT
// File: types.go
// Role: Central Graph, Node and Edge types of the path-picking model.
//
// This file declares Point, NodeAnnotation, EdgeAnnotation, Node, Edge, Graph,
// GraphOption, NodeOption, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrDuplicateNode  - a node with the same ID is already registered.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrBadHitRadius   - a node hit radius is not a positive finite number.
//	ErrBadPosition    - a node coordinate is NaN or infinite.

package core

import (
	"errors"
	"sync"

	"github.com/tidwall/rtree"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that AddNode was called with an ID already present.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadHitRadius indicates a non-positive or non-finite hit radius.
	ErrBadHitRadius = errors.New("core: hit radius must be positive")

	// ErrBadPosition indicates a node coordinate that is NaN or infinite.
	ErrBadPosition = errors.New("core: node position must be finite")
)

// DefaultHitRadius is the radius of the circular hit region of a node when
// neither WithHitRadius nor WithNodeHitRadius is given.
const DefaultHitRadius = 25.0

// Point is a position on the drawing plane, or the location of a pointer click.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeAnnotation is the abstract visual state of a node.
// Only a renderer maps it to an actual color or style.
type NodeAnnotation uint8

const (
	// NodeDefault is the resting state of every node.
	NodeDefault NodeAnnotation = iota
	// NodeSelectedStart marks the node chosen as the start of a query.
	NodeSelectedStart
	// NodeOnPath marks a node lying on the most recently computed path.
	NodeOnPath
)

// String returns a short lowercase name for the annotation.
func (a NodeAnnotation) String() string {
	switch a {
	case NodeSelectedStart:
		return "start"
	case NodeOnPath:
		return "path"
	default:
		return "default"
	}
}

// MarshalText implements encoding.TextMarshaler so frames encode tags by name.
func (a NodeAnnotation) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// EdgeAnnotation is the abstract visual state of an edge.
type EdgeAnnotation uint8

const (
	// EdgeDefault is the resting state of every edge.
	EdgeDefault EdgeAnnotation = iota
	// EdgeOnPath marks an edge joining two consecutive nodes of the current path.
	EdgeOnPath
)

// String returns a short lowercase name for the annotation.
func (a EdgeAnnotation) String() string {
	if a == EdgeOnPath {
		return "path"
	}
	return "default"
}

// MarshalText implements encoding.TextMarshaler.
func (a EdgeAnnotation) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Node is a labeled, positioned vertex with a circular hit region.
//
// ID uniquely identifies the node within its Graph and never changes.
// Values returned by Graph accessors are copies; mutate through Graph methods.
type Node struct {
	// ID is the unique label of this node ("A", "B", ...).
	ID string `json:"id"`

	// Pos is the center of the node on the drawing plane.
	Pos Point `json:"pos"`

	// HitRadius is the radius of the circle used by Contains.
	HitRadius float64 `json:"hit_radius"`

	// Annotation is the current visual-state tag.
	Annotation NodeAnnotation `json:"annotation"`
}

// Contains reports whether p lies inside the node's hit circle (boundary included).
func (n Node) Contains(p Point) bool {
	dx, dy := p.X-n.Pos.X, p.Y-n.Pos.Y

	return dx*dx+dy*dy <= n.HitRadius*n.HitRadius
}

// Edge is an undirected connection between two nodes.
//
// It is stored once as the ordered pair From→To; traversal treats it as
// undirected because AddEdge mirrors it in both adjacency lists.
type Edge struct {
	// ID uniquely identifies this edge ("e1", "e2", ...), so parallel edges stay distinct.
	ID string `json:"id"`

	// From is the first endpoint passed to AddEdge.
	From string `json:"from"`

	// To is the second endpoint passed to AddEdge.
	To string `json:"to"`

	// Annotation is the current visual-state tag.
	Annotation EdgeAnnotation `json:"annotation"`
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithHitRadius sets the default hit radius for nodes added without WithNodeHitRadius.
// Panics on a non-positive or non-finite radius.
func WithHitRadius(r float64) GraphOption {
	if !validRadius(r) {
		panic("core: WithHitRadius requires a positive finite radius")
	}
	return func(g *Graph) { g.hitRadius = r }
}

// NodeOption configures properties of an individual node when added.
type NodeOption func(n *Node)

// WithNodeHitRadius overrides the graph default hit radius for one node.
// Invalid values are reported by AddNode as ErrBadHitRadius.
func WithNodeHitRadius(r float64) NodeOption {
	return func(n *Node) { n.HitRadius = r }
}

// edgeRecord is the stored form of an Edge: endpoints as node indices.
type edgeRecord struct {
	id         string
	from, to   int
	annotation EdgeAnnotation
}

// Graph is the in-memory undirected multigraph behind the visualizer.
//
// Nodes and edges keep insertion order; adjacency[i] lists the neighbor indices
// of nodes[i] in the order the edges were added. mu guards every field, so a
// renderer goroutine may take snapshots while clicks mutate annotations.
type Graph struct {
	mu sync.RWMutex

	hitRadius float64 // default hit radius for new nodes

	// Storage
	nodes     []*Node
	index     map[string]int // node ID → position in nodes
	edges     []edgeRecord
	adjacency [][]int // adjacency[i] = neighbor indices of nodes[i]

	// hits indexes node bounding boxes for NodeAt; value is the node index.
	hits rtree.RTreeG[int]
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		hitRadius: DefaultHitRadius,
		index:     make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// HitRadius returns the default hit radius used for new nodes.
func (g *Graph) HitRadius() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hitRadius
}
