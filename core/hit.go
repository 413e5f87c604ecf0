// SPDX-License-Identifier: MIT
// File: hit.go
// Role: Pointer hit-testing. Resolves a click location to zero-or-one node.
//
// Determinism:
//   - Hit regions may overlap. Among all nodes whose circle contains the point,
//     the one registered first (lowest insertion index) wins, regardless of the
//     order in which the R-tree reports candidates.

package core

// indexHitBox inserts the bounding box of nodes[i] into the hit index.
// Caller must hold mu for writing.
func (g *Graph) indexHitBox(i int) {
	n := g.nodes[i]
	g.hits.Insert(
		[2]float64{n.Pos.X - n.HitRadius, n.Pos.Y - n.HitRadius},
		[2]float64{n.Pos.X + n.HitRadius, n.Pos.Y + n.HitRadius},
		i,
	)
}

// NodeAt returns the ID of the node whose hit region contains p.
// The boolean is false when p hits no node.
//
// The R-tree narrows the search to nodes whose bounding box covers p; the exact
// circular test then filters those candidates.
//
// Complexity: O(log V + k) for k candidate boxes.
func (g *Graph) NodeAt(p Point) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	best := -1
	pt := [2]float64{p.X, p.Y}
	g.hits.Search(pt, pt, func(_, _ [2]float64, i int) bool {
		if (best < 0 || i < best) && g.nodes[i].Contains(p) {
			best = i
		}
		return true
	})
	if best < 0 {
		return "", false
	}

	return g.nodes[best].ID, true
}
