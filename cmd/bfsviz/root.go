// SPDX-License-Identifier: MIT
// File: root.go
// Role: Root command, persistent flags and the state shared by subcommands.

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bfsviz/builder"
	"github.com/katalvlaran/bfsviz/config"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/katalvlaran/bfsviz/internal/frameview"
)

// app holds flag values and the resources built from them.
type app struct {
	graphPath string
	fixture   string
	logLevel  string
	logFormat string
	jsonOut   bool

	log *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "bfsviz",
		Short:        "Pick start and end nodes and show the BFS shortest path",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = newLogger(a.logLevel, a.logFormat, cmd.ErrOrStderr())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.graphPath, "graph", "g", "", "YAML graph file (default: built-in 13-node demo graph)")
	pf.StringVarP(&a.fixture, "fixture", "f", "", "built-in fixture: demo, ring:N, cycle:N, path:N, star:N, wheel:N, complete:N, grid:RxC")
	root.MarkFlagsMutuallyExclusive("graph", "fixture")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	pf.BoolVar(&a.jsonOut, "json", false, "print results as JSON")

	root.AddCommand(
		newPathCmd(a),
		newClickCmd(a),
		newSelectCmd(a),
		newShowCmd(a),
	)

	return root
}

// loadGraph returns the graph named by --graph or --fixture, or the demo graph.
func (a *app) loadGraph() (*core.Graph, error) {
	if a.fixture != "" {
		cons, err := builder.Fixture(a.fixture)
		if err != nil {
			return nil, err
		}
		a.log.Debug("using fixture", "name", a.fixture)
		return builder.BuildGraph(nil, nil, cons)
	}
	if a.graphPath == "" {
		a.log.Debug("using demo graph")
		return builder.NewDemoGraph()
	}

	f, err := config.Load(a.graphPath)
	if err != nil {
		return nil, err
	}
	g, err := f.Build()
	if err != nil {
		return nil, err
	}
	a.log.Debug("graph loaded", "path", a.graphPath, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return g, nil
}

// emit prints v as JSON when --json is set, otherwise calls text.
func (a *app) emit(w io.Writer, v any, text func(r *frameview.Renderer) error) error {
	if a.jsonOut {
		return frameview.WriteJSON(w, v)
	}

	return text(frameview.New(w))
}
