// SPDX-License-Identifier: MIT
// File: state.go
// Role: Selection states and the instruction line shown for each.

package selection

// State is the phase of the start/end selection.
type State uint8

const (
	// Empty: no start, no end.
	Empty State = iota
	// StartChosen: start set, waiting for the end node.
	StartChosen
	// PathShown: start and end set, the query result is annotated.
	PathShown
)

// Instruction lines shown to the user for each state.
const (
	InstructionEmpty       = "Click start node"
	InstructionStartChosen = "Click end node"
	InstructionPathShown   = "Click any node to reset"
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case StartChosen:
		return "StartChosen"
	case PathShown:
		return "PathShown"
	default:
		return "State(?)"
	}
}

// Instruction returns the line a renderer displays in state s.
func (s State) Instruction() string {
	switch s {
	case StartChosen:
		return InstructionStartChosen
	case PathShown:
		return InstructionPathShown
	default:
		return InstructionEmpty
	}
}
