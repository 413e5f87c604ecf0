package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsviz/core"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestPathCommand(t *testing.T) {
	out, _, err := run(t, "path", "A", "C")
	require.NoError(t, err)
	assert.Equal(t, "A -> B -> C (2 edges)\n", out)

	out, _, err = run(t, "path", "A", "I")
	require.NoError(t, err)
	assert.Equal(t, "no path from A to I\n", out)

	_, stderr, err := run(t, "path", "A", "Z")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Contains(t, stderr, "end node not found")
}

func TestPathTrace(t *testing.T) {
	out, _, err := run(t, "path", "--trace", "A", "B")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"enqueue A depth=0",
		"dequeue A depth=0",
		"enqueue B depth=1",
		"enqueue E depth=1",
		"enqueue G depth=1",
		"enqueue M depth=1",
		"dequeue B depth=1",
		"A -> B (1 edge)",
		"",
	}, "\n"), out)
}

func TestPathJSON(t *testing.T) {
	out, _, err := run(t, "--json", "path", "C", "G")
	require.NoError(t, err)

	var res struct {
		Path  []string `json:"path"`
		Found bool     `json:"found"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Found)
	assert.Equal(t, []string{"C", "B", "A", "G"}, res.Path)
}

func TestSelectCommand(t *testing.T) {
	out, _, err := run(t, "select", "A", "C", "G")
	require.NoError(t, err)

	assert.Contains(t, out, "#1 select A\nClick end node\n")
	assert.Contains(t, out, "#2 select C\nClick any node to reset\n")
	assert.Contains(t, out, "[A] [B] [C]")
	assert.Contains(t, out, "e1 A-B, e2 B-C")
	assert.Contains(t, out, "#3 select G\nClick end node\n")
	assert.Contains(t, out, "(G)")
}

func TestSelectUnknownNode(t *testing.T) {
	_, _, err := run(t, "select", "A", "nope")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestClickCommandJSON(t *testing.T) {
	out, _, err := run(t, "--json", "click", "750,400", "500,400", "642,605")
	require.NoError(t, err)

	var steps []struct {
		Node  string     `json:"node"`
		State string     `json:"state"`
		Path  []string   `json:"path"`
		Frame core.Frame `json:"-"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &steps))
	require.Len(t, steps, 3)

	assert.Equal(t, "A", steps[0].Node)
	assert.Equal(t, "StartChosen", steps[0].State)
	assert.Equal(t, "", steps[1].Node, "ring center hits nothing")
	assert.Equal(t, "StartChosen", steps[1].State)
	assert.Equal(t, "C", steps[2].Node)
	assert.Equal(t, "PathShown", steps[2].State)
	assert.Equal(t, []string{"A", "B", "C"}, steps[2].Path)
}

func TestClickCommandText(t *testing.T) {
	out, _, err := run(t, "click", "10,10")
	require.NoError(t, err)
	assert.Contains(t, out, "#1 click (10,10): no node\nClick start node\n")
}

func TestClickBadPoint(t *testing.T) {
	for _, arg := range []string{"750", "x,1", "1,y"} {
		_, _, err := run(t, "click", arg)
		assert.Error(t, err, arg)
	}
}

func TestShowWithGraphFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
nodes:
  - {id: P, x: 0, y: 0}
  - {id: Q, x: 60, y: 0}
edges:
  - [P, Q]
`), 0o644))

	out, _, err := run(t, "--graph", path, "show")
	require.NoError(t, err)
	assert.Equal(t, "P (0,0) r=25 -> Q\nQ (60,0) r=25 -> P\n2 nodes, 1 edge\n", out)

	out, _, err = run(t, "--graph", path, "path", "Q", "P")
	require.NoError(t, err)
	assert.Equal(t, "Q -> P (1 edge)\n", out)
}

func TestBadGraphFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodes: [{id: A}]"), 0o644))

	_, _, err := run(t, "--graph", path, "show")
	assert.Error(t, err)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "select", "A", "I")
	require.NoError(t, err)
	assert.Contains(t, stderr, "using demo graph")
	assert.Contains(t, stderr, "no path")
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 1.5 , -2 ")
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 1.5, Y: -2}, p)
}

func TestFixtureFlag(t *testing.T) {
	out, _, err := run(t, "--fixture", "grid:3x3", "path", "0,0", "2,2")
	require.NoError(t, err)
	assert.Equal(t, "0,0 -> 0,1 -> 0,2 -> 1,2 -> 2,2 (4 edges)\n", out)

	_, _, err = run(t, "--fixture", "torus:3", "show")
	assert.Error(t, err)

	_, _, err = run(t, "--fixture", "demo", "--graph", "x.yaml", "show")
	assert.Error(t, err, "flags are mutually exclusive")
}
