// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/core"
)

// noPredecessor marks the root and every node not yet discovered.
const noPredecessor = -1

// queueItem pairs a node handle with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state. Node handles index into adj.IDs.
type walker struct {
	adj   core.Adjacency
	opts  Options
	queue []queueItem
	pred  []int // pred[v] = handle that discovered v, or noPredecessor
	seen  []bool
	res   *Result
}

// ShortestPath returns the fewest-edge path from start to end in g.
//
// The search expands neighbors in adjacency order, records each node's
// discovering predecessor, and stops as soon as end is DEQUEUED. Reconstruction
// then walks predecessors from end back to start.
//
// Outcomes:
//   - start == end: Path is [start], no expansion is done.
//   - end unreachable: Found is false and Path is nil; err is nil.
//   - start or end unknown: ErrStartNotFound / ErrEndNotFound, both also
//     matching core.ErrNodeNotFound.
//
// The graph is read through a single Adjacency snapshot and never mutated.
// Complexity: O(V + E) time, O(V) memory.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	adj := g.Adjacency()
	s, ok := adj.Index[start]
	if !ok {
		return nil, fmt.Errorf("%w: %q: %w", ErrStartNotFound, start, core.ErrNodeNotFound)
	}
	e, ok := adj.Index[end]
	if !ok {
		return nil, fmt.Errorf("%w: %q: %w", ErrEndNotFound, end, core.ErrNodeNotFound)
	}

	res := &Result{Start: start, End: end, Depth: map[string]int{start: 0}}
	if s == e {
		res.Path = []string{start}
		res.Order = []string{start}
		res.Found = true

		return res, nil
	}

	n := len(adj.IDs)
	w := &walker{
		adj:   adj,
		opts:  o,
		queue: make([]queueItem, 0, n),
		pred:  make([]int, n),
		seen:  make([]bool, n),
		res:   res,
	}
	for i := range w.pred {
		w.pred[i] = noPredecessor
	}
	res.Order = make([]string, 0, n)

	w.enqueue(s, 0, noPredecessor)
	w.loop(e)
	res.Path, res.Found = w.reconstruct(s, e)

	return res, nil
}

// enqueue marks v discovered at depth d by parent and pushes it on the frontier.
func (w *walker) enqueue(v, d, parent int) {
	w.seen[v] = true
	w.pred[v] = parent
	id := w.adj.IDs[v]
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{node: v, depth: d})
}

// loop drains the frontier until it is empty or target has been dequeued.
func (w *walker) loop(target int) {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if item.node == target {
			return
		}
		for _, nbr := range w.adj.Neighbors[item.node] {
			if !w.seen[nbr] {
				w.enqueue(nbr, item.depth+1, item.node)
			}
		}
	}
}

// dequeue pops the first item, records it in Order and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	id := w.adj.IDs[item.node]
	w.res.Order = append(w.res.Order, id)
	w.opts.OnDequeue(id, item.depth)

	return item
}

// reconstruct walks predecessor links from e back to s and returns the path in
// s→e order. It reports false, with a nil path, when e was never discovered or
// the chain does not lead back to s. The walk is bounded by the node count, so
// it terminates even on a corrupted predecessor table.
func (w *walker) reconstruct(s, e int) ([]string, bool) {
	if !w.seen[e] {
		return nil, false
	}

	rev := make([]int, 0, w.res.Depth[w.adj.IDs[e]]+1)
	for cur, steps := e, 0; cur != noPredecessor && steps <= len(w.pred); cur, steps = w.pred[cur], steps+1 {
		rev = append(rev, cur)
	}
	if rev[len(rev)-1] != s {
		return nil, false
	}

	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = w.adj.IDs[v]
	}

	return path, true
}
