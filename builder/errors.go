// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context using `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadPair indicates a Connect pair with an empty endpoint.
var ErrBadPair = errors.New("builder: invalid edge pair")

// ErrConstructFailed indicates that a construction step could not be applied
// (nil constructor, or a core error while adding nodes or edges).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownFixture indicates a fixture name that Fixture cannot parse.
var ErrUnknownFixture = errors.New("builder: unknown fixture")

// ErrFixtureTooLarge indicates a fixture with more than MaxFixtureNodes nodes.
var ErrFixtureTooLarge = errors.New("builder: fixture too large")
