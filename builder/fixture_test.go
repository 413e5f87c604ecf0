package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/core"
)

func build(t *testing.T, cons builder.Constructor, bopts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons)
	require.NoError(t, err)

	return g
}

func pos(t *testing.T, g *core.Graph, id string) core.Point {
	t.Helper()
	n, err := g.Node(id)
	require.NoError(t, err)

	return n.Pos
}

func TestPath(t *testing.T) {
	g := build(t, builder.Path(3))
	assert.Equal(t, []string{"A", "B", "C"}, g.NodeIDs())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, core.Point{X: 420, Y: 400}, pos(t, g, "A"))
	assert.Equal(t, core.Point{X: 580, Y: 400}, pos(t, g, "C"))

	g = build(t, builder.Path(2), builder.WithSpacing(10), builder.WithCenter(core.Point{}))
	assert.Equal(t, core.Point{X: -5, Y: 0}, pos(t, g, "A"))
}

func TestStarAndWheel(t *testing.T) {
	g := build(t, builder.Star(5))
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, core.Point{X: 500, Y: 400}, pos(t, g, "A"))
	assert.Equal(t, core.Point{X: 750, Y: 400}, pos(t, g, "B"))
	assert.Equal(t, core.Point{X: 500, Y: 650}, pos(t, g, "C"))
	assert.Equal(t, core.Point{X: 250, Y: 400}, pos(t, g, "D"))
	assert.Equal(t, core.Point{X: 500, Y: 150}, pos(t, g, "E"))
	hub, err := g.NeighborsOf("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D", "E"}, hub)

	g = build(t, builder.Wheel(5))
	assert.Equal(t, 8, g.EdgeCount())
	nbs, err := g.NeighborsOf("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "E"}, nbs)
}

func TestComplete(t *testing.T) {
	g := build(t, builder.Complete(5))
	assert.Equal(t, 10, g.EdgeCount())
	for _, id := range g.NodeIDs() {
		nbs, err := g.NeighborsOf(id)
		require.NoError(t, err)
		assert.Len(t, nbs, 4)
	}
	assert.Equal(t, 0, build(t, builder.Complete(1)).EdgeCount())
}

func TestGridDistancesAreManhattan(t *testing.T) {
	const rows, cols = 4, 5
	g := build(t, builder.Grid(rows, cols))
	assert.Equal(t, rows*cols, g.NodeCount())
	assert.Equal(t, rows*(cols-1)+(rows-1)*cols, g.EdgeCount())
	assert.Equal(t, core.Point{X: 340, Y: 280}, pos(t, g, builder.GridID(0, 0)))

	abs := func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			res, err := bfs.ShortestPath(g, builder.GridID(0, 0), builder.GridID(r, c))
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, abs(r)+abs(c), res.Len(), "cell %d,%d", r, c)
		}
	}
}

func TestFixture(t *testing.T) {
	cases := []struct {
		name  string
		nodes int
		edges int
	}{
		{"demo", builder.DemoNodeCount, len(builder.DemoEdges)},
		{"ring:4", 4, 0},
		{"cycle:6", 6, 6},
		{"path:5", 5, 4},
		{"star:4", 4, 3},
		{"wheel:6", 6, 10},
		{"complete:4", 4, 6},
		{"grid:2x3", 6, 7},
		{" cycle:3 ", 3, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cons, err := builder.Fixture(tc.name)
			require.NoError(t, err)
			g := build(t, cons)
			assert.Equal(t, tc.nodes, g.NodeCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestFixtureErrors(t *testing.T) {
	for _, name := range []string{"", "demo:1", "ring", "torus:3", "cycle:x", "grid:3", "grid:ax2", "grid:2x"} {
		_, err := builder.Fixture(name)
		assert.ErrorIs(t, err, builder.ErrUnknownFixture, name)
	}

	for _, name := range []string{"complete:100000", "cycle:1001", "grid:100000x100000", "grid:40x40", "grid:1x1001"} {
		_, err := builder.Fixture(name)
		assert.ErrorIs(t, err, builder.ErrFixtureTooLarge, name)
	}
	_, err := builder.Fixture("complete:1000")
	assert.NoError(t, err, "the cap itself is allowed")
	_, err = builder.Fixture("grid:25x40")
	assert.NoError(t, err)

	cons, err := builder.Fixture("cycle:2")
	require.NoError(t, err)
	_, err = builder.BuildGraph(nil, nil, cons)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestFixtureSizeErrors(t *testing.T) {
	for _, cons := range []builder.Constructor{
		builder.Path(0), builder.Star(1), builder.Wheel(3), builder.Complete(0), builder.Grid(0, 3),
	} {
		_, err := builder.BuildGraph(nil, nil, cons)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	}
	assert.Panics(t, func() { builder.WithSpacing(0) })
}
