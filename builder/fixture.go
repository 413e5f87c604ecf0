// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// fixture.go - named fixtures for command-line use.
//
// Grammar:
//
//	demo
//	ring:N | cycle:N | path:N | star:N | wheel:N | complete:N
//	grid:RxC

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// sized maps a fixture kind to its single-size constructor.
var sized = map[string]func(int) Constructor{
	"ring":     Ring,
	"cycle":    Cycle,
	"path":     Path,
	"star":     Star,
	"wheel":    Wheel,
	"complete": Complete,
}

// Fixture parses a fixture name such as "cycle:8" or "grid:3x4" into a
// Constructor. Sizes above MaxFixtureNodes fail with ErrFixtureTooLarge here;
// lower limits are checked when the constructor runs.
func Fixture(name string) (Constructor, error) {
	kind, arg, hasArg := strings.Cut(strings.TrimSpace(name), ":")
	switch {
	case kind == "demo" && !hasArg:
		return Demo(), nil
	case kind == "grid" && hasArg:
		rs, cs, ok := strings.Cut(arg, "x")
		if !ok {
			return nil, fmt.Errorf("%s(%q): want grid:RxC: %w", MethodFixture, name, ErrUnknownFixture)
		}
		rows, err1 := strconv.Atoi(rs)
		cols, err2 := strconv.Atoi(cs)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%s(%q): bad grid size: %w", MethodFixture, name, ErrUnknownFixture)
		}
		if rows > MaxFixtureNodes || cols > MaxFixtureNodes || rows*cols > MaxFixtureNodes {
			return nil, tooLarge(name)
		}
		return Grid(rows, cols), nil
	}

	mk, ok := sized[kind]
	if !ok || !hasArg {
		return nil, fmt.Errorf("%s(%q): %w", MethodFixture, name, ErrUnknownFixture)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("%s(%q): bad size: %w", MethodFixture, name, ErrUnknownFixture)
	}

	if n > MaxFixtureNodes {
		return nil, tooLarge(name)
	}

	return mk(n), nil
}

func tooLarge(name string) error {
	return fmt.Errorf("%s(%q): more than %d nodes: %w", MethodFixture, name, MaxFixtureNodes, ErrFixtureTooLarge)
}
