// Package builder assembles core.Graph fixtures from composable, deterministic
// constructors. It is the external initializer of the visualizer: the core
// exposes only AddNode/AddEdge, and builder decides what to add and where.
//
// Components:
//
//   - BuildGraph(gopts, bopts, cons...): the single orchestrator.
//   - Constructors: Ring, Cycle, Path, Star, Wheel, Complete, Grid, Place,
//     Connect, Demo.
//   - Fixture(name): "cycle:8", "grid:3x4", ... for command-line use.
//   - BuilderOption: WithIDScheme, WithCenter, WithRadius, WithSpacing, WithSymbolIDs, ...
//   - ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn, SymbolNumberIDFn.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewVertices, ErrBadPair,
//     ErrConstructFailed, ErrUnknownFixture, ErrFixtureTooLarge) wrapped with the method name; core errors such as
//     core.ErrDuplicateNode stay reachable through errors.Is.
//   - Same options and constructor order produce identical graphs.
//
// Example:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithRadius(100)},
//	    builder.Cycle(6),
//	    builder.Connect([2]string{"A", "D"}),
//	)
package builder
