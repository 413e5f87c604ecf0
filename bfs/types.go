// SPDX-License-Identifier: MIT

// Package bfs provides tunable options, results and error definitions
// for shortest-path breadth-first search over a core.Graph.
package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start ID is absent from the graph.
	// It is always joined with core.ErrNodeNotFound.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrEndNotFound is returned when the end ID is absent from the graph.
	// It is always joined with core.ErrNodeNotFound.
	ErrEndNotFound = errors.New("bfs: end node not found")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks that let a caller narrate the traversal step by step.
// Hooks observe; they cannot change the search.
type Options struct {
	// OnEnqueue is called when a node is discovered and pushed onto the frontier.
	// Receives node ID and its depth from the start.
	OnEnqueue func(id string, depth int)

	// OnDequeue is called when a node leaves the frontier to be expanded.
	OnDequeue func(id string, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a shortest-path query:
//   - Path: nodes from Start to End inclusive; nil when Found is false.
//   - Found: false means End is unreachable from Start (a normal outcome, not an error).
//   - Order: nodes in dequeue order, ending with End when Found.
//   - Depth: discovery depth of every node put on the frontier.
type Result struct {
	Start string         `json:"start"`
	End   string         `json:"end"`
	Path  []string       `json:"path"`
	Found bool           `json:"found"`
	Order []string       `json:"order"`
	Depth map[string]int `json:"depth"`
}

// Len returns the number of edges on Path, or -1 when no path was found.
func (r *Result) Len() int {
	if r == nil || !r.Found {
		return -1
	}

	return len(r.Path) - 1
}
