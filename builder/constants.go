// Package builder defines shared constants used by graph builders.
package builder

// Method name constants, used to prefix errors with the constructor name.
const (
	MethodRing     = "Ring"
	MethodCycle    = "Cycle"
	MethodPath     = "Path"
	MethodStar     = "Star"
	MethodWheel    = "Wheel"
	MethodComplete = "Complete"
	MethodGrid     = "Grid"
	MethodPlace    = "Place"
	MethodConnect  = "Connect"
	MethodDemo     = "Demo"
	MethodFixture  = "Fixture"
)

// Layout defaults: a ring in the middle of a 1000×800 canvas.
const (
	DefaultCenterX = 500.0
	DefaultCenterY = 400.0
	DefaultRadius  = 250.0
	// DefaultSpacing keeps neighbouring default hit regions (radius 25) apart.
	DefaultSpacing = 80.0
)

// Minimum node counts.
const (
	MinRingNodes  = 1
	MinCycleNodes = 3
	MinPathNodes  = 1
	MinStarNodes  = 2
	MinWheelNodes = 4
	MinGridDim    = 1
)

// MaxFixtureNodes caps the node count of a named fixture. Complete(MaxFixtureNodes)
// still stays under half a million edges.
const MaxFixtureNodes = 1000
