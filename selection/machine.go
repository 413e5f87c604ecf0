// SPDX-License-Identifier: MIT
// File: machine.go
// Role: Click-driven selection of a start and an end node; runs BFS when the
// pair is complete and writes the result back as graph annotations.
//
// Transitions on a resolved node n:
//
//	Empty                  → start = n                          → StartChosen
//	StartChosen, n ≠ start → end = n, BFS, annotate             → PathShown
//	StartChosen, n = start → reset, start = n                   → StartChosen
//	PathShown              → reset, start = n                   → StartChosen
//
// A click that resolves to no node changes nothing.
//
// Concurrency:
//   - mu serializes every transition and every Frame, so each click (hit
//     resolution included) is handled to completion and a renderer never
//     observes a half-applied transition.

package selection

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/core"
)

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger for transition and query events.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// WithSearchOptions passes options (typically narration hooks) to every BFS run.
func WithSearchOptions(opts ...bfs.Option) Option {
	return func(m *Machine) { m.search = append(m.search, opts...) }
}

// Machine is the selection state machine. It holds node IDs only; the graph
// owns the nodes.
type Machine struct {
	mu     sync.Mutex
	g      *core.Graph
	log    *slog.Logger
	search []bfs.Option

	state State
	start string
	end   string
	path  []string
}

// New returns a Machine in state Empty driving g.
// Panics on a nil graph.
func New(g *core.Graph, opts ...Option) *Machine {
	if g == nil {
		panic("selection: New(nil graph)")
	}
	m := &Machine{g: g, log: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Click resolves p against the graph's hit regions and, on a hit, applies the
// transition for that node. It reports whether a node was hit; a miss is a
// strict no-op. Resolution and transition happen under one lock.
func (m *Machine) Click(p core.Point) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.g.NodeAt(p)
	if !ok {
		m.log.Debug("click missed", "x", p.X, "y", p.Y)
		return false, nil
	}

	return true, m.selectLocked(id)
}

// Select applies the transition for node id as if it had been clicked.
// An unknown id returns core.ErrNodeNotFound and leaves the state unchanged.
func (m *Machine) Select(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.selectLocked(id)
}

// selectLocked applies the transition for id. Caller must hold mu.
func (m *Machine) selectLocked(id string) error {
	if !m.g.HasNode(id) {
		return fmt.Errorf("Select(%s): %w", id, core.ErrNodeNotFound)
	}

	from := m.state
	var err error
	switch {
	case m.state == Empty:
		err = m.choose(id)
	case m.state == StartChosen && id != m.start:
		err = m.complete(id)
	default:
		// Re-clicking the start, or any click once a path is shown.
		m.clear()
		err = m.choose(id)
	}
	if err != nil {
		return err
	}
	m.log.Debug("selection transition", "node", id, "from", from, "to", m.state)

	return nil
}

// Reset returns to state Empty and clears every annotation.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clear()
	m.log.Debug("selection reset")
}

// choose makes id the start node. Caller must hold mu.
func (m *Machine) choose(id string) error {
	if err := m.g.AnnotateNode(id, core.NodeSelectedStart); err != nil {
		return err
	}
	m.start = id
	m.state = StartChosen

	return nil
}

// complete sets the end node, runs the query and annotates its result.
// Stale annotations are cleared before the start is re-highlighted, so two
// queries never leave overlapping highlights. Caller must hold mu.
func (m *Machine) complete(id string) error {
	res, err := bfs.ShortestPath(m.g, m.start, id, m.search...)
	if err != nil {
		return fmt.Errorf("Select(%s): %w", id, err)
	}

	m.g.ResetAnnotations()
	if err := m.g.AnnotateNode(m.start, core.NodeSelectedStart); err != nil {
		return err
	}
	m.end = id
	m.state = PathShown
	m.path = nil
	if !res.Found {
		m.log.Info("no path", "start", m.start, "end", id, "explored", len(res.Order))
		return nil
	}
	m.path = res.Path

	m.log.Info("path found", "start", m.start, "end", id, "length", res.Len(), "path", res.Path)

	return m.g.AnnotatePath(res.Path)
}

// clear drops the selection and all annotations. Caller must hold mu.
func (m *Machine) clear() {
	m.g.ResetAnnotations()
	m.state = Empty
	m.start, m.end = "", ""
	m.path = nil
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Start returns the start node, if one is selected.
func (m *Machine) Start() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.start, m.state != Empty
}

// End returns the end node, if one is selected.
func (m *Machine) End() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.end, m.state == PathShown
}

// Path returns a copy of the current path; empty unless a path is shown.
func (m *Machine) Path() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.path...)
}

// Instruction returns the line to display for the current state.
func (m *Machine) Instruction() string {
	return m.State().Instruction()
}

// Frame returns a consistent snapshot of the graph plus the instruction line.
func (m *Machine) Frame() core.Frame {
	m.mu.Lock()
	defer m.mu.Unlock()

	f := m.g.Snapshot()
	f.Instruction = m.state.Instruction()

	return f
}
