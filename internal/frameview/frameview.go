// SPDX-License-Identifier: MIT

// Package frameview prints core.Frame values for a terminal or as JSON.
//
// It is the only place where annotation tags turn into visual styles; the
// graph and the selection machine deal in tags alone. Text output stays
// readable without color: the start node is wrapped in parentheses and path
// nodes in brackets.
package frameview

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/bfsviz/core"
)

// Palette of the picker.
var (
	ColorDefault = lipgloss.Color("#1F6FEB") // blue, untouched nodes
	ColorStart   = lipgloss.Color("#F4D03F") // yellow, chosen start
	ColorPath    = lipgloss.Color("#2ECC71") // green, path nodes and edges
	ColorMuted   = lipgloss.Color("#6E7781")
)

// Styles holds one style per tag plus the chrome around a frame.
type Styles struct {
	Instruction lipgloss.Style
	Label       lipgloss.Style
	Node        map[core.NodeAnnotation]lipgloss.Style
	Edge        map[core.EdgeAnnotation]lipgloss.Style
}

// DefaultStyles builds the picker styles on renderer r.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Instruction: r.NewStyle().Bold(true),
		Label:       r.NewStyle().Foreground(ColorMuted).Width(7),
		Node: map[core.NodeAnnotation]lipgloss.Style{
			core.NodeDefault:       r.NewStyle().Foreground(ColorDefault),
			core.NodeSelectedStart: r.NewStyle().Foreground(ColorStart).Bold(true),
			core.NodeOnPath:        r.NewStyle().Foreground(ColorPath).Bold(true),
		},
		Edge: map[core.EdgeAnnotation]lipgloss.Style{
			core.EdgeDefault: r.NewStyle().Foreground(ColorMuted),
			core.EdgeOnPath:  r.NewStyle().Foreground(ColorPath).Bold(true),
		},
	}
}

// Renderer writes frames to w.
type Renderer struct {
	w      io.Writer
	styles Styles
}

// New returns a Renderer whose color profile is detected from w; plain
// buffers and pipes get uncolored text.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w, styles: DefaultStyles(lipgloss.NewRenderer(w))}
}

// Frame prints the instruction, every node with its tag and the edges on the path.
func (r *Renderer) Frame(f core.Frame) error {
	var b strings.Builder

	if f.Instruction != "" {
		b.WriteString(r.styles.Instruction.Render(f.Instruction))
		b.WriteByte('\n')
	}

	names := make([]string, len(f.Nodes))
	for i, n := range f.Nodes {
		names[i] = r.styles.Node[n.Annotation].Render(marker(n))
	}
	b.WriteString(r.styles.Label.Render("nodes"))
	b.WriteString(strings.Join(names, " "))
	b.WriteByte('\n')

	var onPath []string
	for _, e := range f.Edges {
		if e.Annotation == core.EdgeOnPath {
			onPath = append(onPath, r.styles.Edge[e.Annotation].Render(fmt.Sprintf("%s %s-%s", e.ID, e.From, e.To)))
		}
	}
	b.WriteString(r.styles.Label.Render("path"))
	if len(onPath) == 0 {
		b.WriteString(r.styles.Edge[core.EdgeDefault].Render("none"))
	} else {
		b.WriteString(strings.Join(onPath, ", "))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(r.w, b.String())

	return err
}

// Graph prints every node with its position and neighbors, one per line.
func (r *Renderer) Graph(g *core.Graph) error {
	var b strings.Builder
	for _, n := range g.Nodes() {
		nbs, err := g.NeighborsOf(n.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "%s (%g,%g) r=%g -> %s\n",
			r.styles.Node[core.NodeDefault].Render(n.ID), n.Pos.X, n.Pos.Y, n.HitRadius, strings.Join(nbs, " "))
	}
	fmt.Fprintf(&b, "%s\n", r.styles.Edge[core.EdgeDefault].Render(
		Count(g.NodeCount(), "node")+", "+Count(g.EdgeCount(), "edge")))

	_, err := io.WriteString(r.w, b.String())

	return err
}

// marker decorates a node ID so its tag survives without color.
func marker(n core.Node) string {
	switch n.Annotation {
	case core.NodeSelectedStart:
		return "(" + n.ID + ")"
	case core.NodeOnPath:
		return "[" + n.ID + "]"
	default:
		return n.ID
	}
}

// Count formats n with noun, adding a plural "s" unless n is 1.
func Count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return fmt.Sprintf("%d %ss", n, noun)
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
