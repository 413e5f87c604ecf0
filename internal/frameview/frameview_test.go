package frameview_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/internal/frameview"
	"github.com/katalvlaran/bfsviz/selection"
)

func demoMachine(t *testing.T) *selection.Machine {
	t.Helper()
	g, err := builder.NewDemoGraph()
	require.NoError(t, err)

	return selection.New(g)
}

func TestFramePlainText(t *testing.T) {
	m := demoMachine(t)
	var buf bytes.Buffer
	r := frameview.New(&buf)

	require.NoError(t, r.Frame(m.Frame()))
	out := buf.String()
	assert.Contains(t, out, "Click start node")
	assert.Contains(t, out, "A B C D E F G H I J K L M")
	assert.Contains(t, out, "none")

	buf.Reset()
	require.NoError(t, m.Select("A"))
	require.NoError(t, r.Frame(m.Frame()))
	assert.Contains(t, buf.String(), "(A) B C")

	buf.Reset()
	require.NoError(t, m.Select("C"))
	require.NoError(t, r.Frame(m.Frame()))
	out = buf.String()
	assert.Contains(t, out, "Click any node to reset")
	assert.Contains(t, out, "[A] [B] [C] D")
	assert.Contains(t, out, "e1 A-B, e2 B-C")
	assert.NotContains(t, out, "\x1b[", "a buffer gets no ANSI escapes")
}

func TestGraphListing(t *testing.T) {
	g, err := builder.NewDemoGraph()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, frameview.New(&buf).Graph(g))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, builder.DemoNodeCount+1)
	assert.Equal(t, "A (750,400) r=25 -> B E G M", lines[0])
	assert.Equal(t, "I (313,235) r=25 -> ", lines[8])
	assert.Equal(t, "13 nodes, 16 edges", lines[13])
}

func TestCount(t *testing.T) {
	assert.Equal(t, "0 edges", frameview.Count(0, "edge"))
	assert.Equal(t, "1 edge", frameview.Count(1, "edge"))
	assert.Equal(t, "2 nodes", frameview.Count(2, "node"))
}

func TestGraphListingSingular(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("P", core.Point{}))
	var buf bytes.Buffer
	require.NoError(t, frameview.New(&buf).Graph(g))
	assert.Equal(t, "P (0,0) r=25 -> \n1 node, 0 edges\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	m := demoMachine(t)
	require.NoError(t, m.Select("F"))
	require.NoError(t, m.Select("M"))

	var buf bytes.Buffer
	require.NoError(t, frameview.WriteJSON(&buf, m.Frame()))

	var got struct {
		Nodes []struct {
			ID         string `json:"id"`
			Annotation string `json:"annotation"`
		} `json:"nodes"`
		Edges []struct {
			ID         string `json:"id"`
			Annotation string `json:"annotation"`
		} `json:"edges"`
		Instruction string `json:"instruction"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Click any node to reset", got.Instruction)
	require.Len(t, got.Nodes, builder.DemoNodeCount)
	assert.Equal(t, core.NodeOnPath.String(), got.Nodes[1].Annotation) // B
	assert.Equal(t, "default", got.Nodes[0].Annotation)                // A
	assert.Equal(t, "path", got.Edges[7].Annotation)                   // e8 B-F
}
