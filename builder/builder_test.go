// Package builder_test contains functional tests for the builder constructors,
// verifying topology, coordinates, ordering and error wrapping.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/core"
)

func TestDemoGraph(t *testing.T) {
	g, err := builder.NewDemoGraph()
	require.NoError(t, err)

	require.Equal(t, builder.DemoNodeCount, g.NodeCount())
	require.Equal(t, len(builder.DemoEdges), g.EdgeCount())
	assert.Equal(t,
		[]string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M"},
		g.NodeIDs())

	a, err := g.Node("A")
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 750, Y: 400}, a.Pos)
	assert.Equal(t, core.DefaultHitRadius, a.HitRadius)

	b, err := g.Node("B")
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 721, Y: 516}, b.Pos)

	nbs, err := g.NeighborsOf("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "E", "G", "M"}, nbs)

	nbs, err = g.NeighborsOf("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "E", "D", "F", "H", "M"}, nbs)

	for _, id := range []string{"I", "J", "K", "L"} {
		nbs, err := g.NeighborsOf(id)
		require.NoError(t, err)
		assert.Empty(t, nbs, "%s is isolated", id)
	}
}

func TestDemoIgnoresLayoutOptions(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithRadius(10), builder.WithDefaultIDs()},
		builder.Demo())
	require.NoError(t, err)
	a, err := g.Node("A")
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 750, Y: 400}, a.Pos)
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithCenter(core.Point{X: 0, Y: 0}),
			builder.WithRadius(100),
			builder.WithSymbNumb("v"),
		},
		builder.Cycle(4))
	require.NoError(t, err)

	assert.Equal(t, []string{"v0", "v1", "v2", "v3"}, g.NodeIDs())
	edges := g.Edges()
	require.Len(t, edges, 4)
	for i, e := range edges {
		assert.Equal(t, builder.SymbolNumberIDFn("v")(i), e.From)
		assert.Equal(t, builder.SymbolNumberIDFn("v")((i+1)%4), e.To)
	}

	v1, _ := g.Node("v1")
	assert.Equal(t, core.Point{X: 0, Y: 100}, v1.Pos)
	v2, _ := g.Node("v2")
	assert.Equal(t, core.Point{X: -100, Y: 0}, v2.Pos)
}

func TestConstructorErrors(t *testing.T) {
	cases := []struct {
		name string
		cons []builder.Constructor
		want error
	}{
		{"ring too small", []builder.Constructor{builder.Ring(0)}, builder.ErrTooFewVertices},
		{"cycle too small", []builder.Constructor{builder.Cycle(2)}, builder.ErrTooFewVertices},
		{"nil constructor", []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"empty pair", []builder.Constructor{builder.Ring(2), builder.Connect([2]string{"A", ""})}, builder.ErrBadPair},
		{"unknown endpoint", []builder.Constructor{builder.Ring(2), builder.Connect([2]string{"A", "Z"})}, core.ErrNodeNotFound},
		{"duplicate node", []builder.Constructor{builder.Ring(2), builder.Place("A", core.Point{})}, core.ErrDuplicateNode},
		{"duplicate via ring", []builder.Constructor{builder.Demo(), builder.Ring(1)}, core.ErrDuplicateNode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.cons...)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestConnectKeepsParallelEdges(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil,
		builder.Place("A", core.Point{}),
		builder.Place("B", core.Point{X: 100}, core.WithNodeHitRadius(5)),
		builder.Connect([2]string{"A", "B"}, [2]string{"B", "A"}),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	nbs, _ := g.NeighborsOf("A")
	assert.Equal(t, []string{"B", "B"}, nbs)

	b, _ := g.Node("B")
	assert.Equal(t, 5.0, b.HitRadius)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRadius(0) })
	assert.Panics(t, func() { builder.WithRadius(-1) })
}
