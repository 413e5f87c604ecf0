// SPDX-License-Identifier: MIT
// File: commands.go
// Role: path, click, select and show subcommands.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/internal/frameview"
	"github.com/katalvlaran/bfsviz/selection"
)

func newPathCmd(a *app) *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "path <start> <end>",
		Short: "Print the fewest-edge path between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			var opts []bfs.Option
			if trace && !a.jsonOut {
				opts = append(opts,
					bfs.WithOnEnqueue(func(id string, d int) { fmt.Fprintf(w, "enqueue %s depth=%d\n", id, d) }),
					bfs.WithOnDequeue(func(id string, d int) { fmt.Fprintf(w, "dequeue %s depth=%d\n", id, d) }),
				)
			}
			res, err := bfs.ShortestPath(g, args[0], args[1], opts...)
			if err != nil {
				return err
			}

			return a.emit(w, res, func(*frameview.Renderer) error {
				if !res.Found {
					_, err := fmt.Fprintf(w, "no path from %s to %s\n", res.Start, res.End)
					return err
				}
				_, err := fmt.Fprintf(w, "%s (%s)\n", strings.Join(res.Path, " -> "), frameview.Count(res.Len(), "edge"))
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "narrate every enqueue and dequeue")

	return cmd
}

// step is one replayed input and the frame it produced.
type step struct {
	Click *core.Point `json:"click,omitempty"`
	Node  string      `json:"node,omitempty"`
	State string      `json:"state"`
	Path  []string    `json:"path,omitempty"`
	Frame core.Frame  `json:"frame"`
}

func newClickCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "click <x,y> [<x,y>...]",
		Short: "Replay clicks at canvas coordinates and print a frame after each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points := make([]core.Point, len(args))
			for i, arg := range args {
				p, err := parsePoint(arg)
				if err != nil {
					return err
				}
				points[i] = p
			}

			return a.replay(cmd, len(points), func(m *selection.Machine, i int) (step, error) {
				p := points[i]
				st := step{Click: &p}
				hit, err := m.Click(p)
				if err != nil {
					return st, err
				}
				if hit {
					st.Node, _ = m.Start()
					if end, ok := m.End(); ok {
						st.Node = end
					}
				}

				return st, nil
			})
		},
	}
}

func newSelectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select <id> [<id>...]",
		Short: "Replay node selections by ID and print a frame after each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.replay(cmd, len(args), func(m *selection.Machine, i int) (step, error) {
				return step{Node: args[i]}, m.Select(args[i])
			})
		},
	}
}

// replay feeds n inputs to a fresh machine and prints one frame per input.
func (a *app) replay(cmd *cobra.Command, n int, apply func(m *selection.Machine, i int) (step, error)) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	m := selection.New(g, selection.WithLogger(a.log))
	w := cmd.OutOrStdout()

	steps := make([]step, 0, n)
	for i := 0; i < n; i++ {
		st, err := apply(m, i)
		if err != nil {
			return err
		}
		st.State = m.State().String()
		st.Path = m.Path()
		st.Frame = m.Frame()
		steps = append(steps, st)
	}

	return a.emit(w, steps, func(r *frameview.Renderer) error {
		for i, st := range steps {
			header := fmt.Sprintf("#%d", i+1)
			switch {
			case st.Click != nil && st.Node == "":
				header += fmt.Sprintf(" click (%g,%g): no node", st.Click.X, st.Click.Y)
			case st.Click != nil:
				header += fmt.Sprintf(" click (%g,%g): %s", st.Click.X, st.Click.Y, st.Node)
			default:
				header += " select " + st.Node
			}
			if _, err := fmt.Fprintln(w, header); err != nil {
				return err
			}
			if err := r.Frame(st.Frame); err != nil {
				return err
			}
		}

		return nil
	})
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print nodes, positions and adjacency of the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			return a.emit(w, g.Snapshot(), func(r *frameview.Renderer) error {
				return r.Graph(g)
			})
		},
	}
}

// parsePoint reads "x,y".
func parsePoint(s string) (core.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return core.Point{}, fmt.Errorf("point %q: x: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return core.Point{}, fmt.Errorf("point %q: y: %w", s, err)
	}

	return core.Point{X: x, Y: y}, nil
}
