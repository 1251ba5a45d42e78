// Package dfa turns the NFA built by package nfa into a deterministic
// finite automaton over disjoint character intervals (subset construction,
// spec.md §4.5) and then minimizes it while preserving per-accept-state
// token identity (spec.md §4.6).
package dfa

import "github.com/corelex/corelex/interval"

// StateID uniquely identifies a DFA state.
type StateID uint32

// InvalidState marks the absence of a state.
const InvalidState StateID = 0xFFFFFFFF

// Accept records whether a DFA state is accepting and, if so, which
// declaration-order token index it resolves to (spec.md §3 "Accept map").
// TokenIdx is meaningless when IsAccept is false.
type Accept struct {
	IsAccept bool
	TokenIdx int
}

// Transition is one outgoing edge: consuming any character in Range moves
// to Next. A state's Transitions are always pairwise disjoint and sorted
// by Range.Lo (spec.md §3 DFA invariant, §8 "Disjoint outgoing intervals").
type Transition struct {
	Range interval.CharRange
	Next  StateID
}

// State is a single DFA state.
type State struct {
	Transitions []Transition
	Accept      Accept
}

// Step returns the successor state for character c, if any transition
// covers it.
func (s State) Step(c rune) (StateID, bool) {
	// Transitions are sorted and disjoint, so a linear scan stops as soon
	// as Range.Lo exceeds c; states rarely have enough transitions for
	// binary search to pay for itself over this.
	for _, t := range s.Transitions {
		if c < t.Range.Lo {
			break
		}
		if c <= t.Range.Hi {
			return t.Next, true
		}
	}
	return InvalidState, false
}

// DFA is an immutable deterministic finite automaton. Once built it is
// immutable and safe to share across goroutines without synchronization
// (spec.md §5); only a Scanner's stream cursor is mutable.
type DFA struct {
	states []State
	start  StateID
}

// NumStates returns the number of states.
func (d *DFA) NumStates() int { return len(d.states) }

// Start returns the initial state.
func (d *DFA) Start() StateID { return d.start }

// State returns the state identified by id.
func (d *DFA) State(id StateID) State { return d.states[id] }
