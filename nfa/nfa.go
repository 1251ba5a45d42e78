// Package nfa builds nondeterministic finite automata with ε-transitions
// over character intervals (spec.md §3, §4.4) via Thompson construction,
// and assembles the per-token fragments produced by package core into a
// single NFA for a whole token set.
package nfa

import (
	"github.com/corelex/corelex/internal/sparse"
	"github.com/corelex/corelex/interval"
)

// StateID uniquely identifies an NFA state. States are arena-indexed:
// StateID(i) is states[i] in the owning NFA, following the teacher's dense
// integer-identifier convention over reference-identity state maps
// (spec.md §9).
type StateID uint32

// InvalidState marks the absence of a state.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the shape of a State.
type StateKind uint8

const (
	// Interval consumes one character in Range and moves to Next.
	Interval StateKind = iota
	// Split takes either ε-edge Out1 or Out2 without consuming input.
	Split
	// Epsilon takes the single ε-edge Next without consuming input.
	Epsilon
	// Match is an accepting state with no outgoing transitions.
	Match
)

// State is a single NFA state. Which fields are meaningful depends on Kind.
type State struct {
	Kind StateKind

	// Interval
	Range interval.CharRange
	Next  StateID

	// Split
	Out1, Out2 StateID
}

// NFA is an immutable nondeterministic finite automaton assembled from one
// Thompson fragment per token definition (spec.md §4.4).
//
// Construction (regex -> ... -> NFA) is a pure, single-threaded, allocation
// -only computation; the resulting value has no mutable state and is safe
// to share across goroutines once built (spec.md §5).
type NFA struct {
	states []State
	start  StateID

	// accept maps each Match state to the index (into the original
	// TokenDef slice, declaration order) of the token it accepts for.
	// This is the nfaAccept side table from spec.md §3.
	accept map[StateID]int
}

// NumStates returns the number of states in the automaton.
func (n *NFA) NumStates() int { return len(n.states) }

// Start returns the single master start state ε-linked to every token
// pattern's entry fragment.
func (n *NFA) Start() StateID { return n.start }

// State returns the state identified by id.
func (n *NFA) State(id StateID) State { return n.states[id] }

// AcceptToken returns the token index a Match state accepts for, and
// whether id is in fact a Match state recorded in the accept table.
func (n *NFA) AcceptToken(id StateID) (int, bool) {
	idx, ok := n.accept[id]
	return idx, ok
}

// EpsilonClosure returns the set of states reachable from any state in
// start by following zero or more ε-transitions (Split/Epsilon edges),
// including start itself. The result is sorted for deterministic
// downstream processing (spec.md §4.5 step 1, "Ordering guarantee").
//
// Visited tracking uses the teacher's sparse set (internal/sparse), which
// the teacher built for exactly this job in its own PikeVM NFA
// simulation: O(1) membership testing over a bounded universe of dense
// state IDs, with no per-closure map allocation.
func (n *NFA) EpsilonClosure(start []StateID) []StateID {
	seen := sparse.NewSparseSet(uint32(len(n.states)))
	stack := append([]StateID(nil), start...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen.Contains(uint32(id)) {
			continue
		}
		seen.Insert(uint32(id))
		switch s := n.states[id]; s.Kind {
		case Epsilon:
			stack = append(stack, s.Next)
		case Split:
			stack = append(stack, s.Out1, s.Out2)
		}
	}
	out := make([]StateID, 0, seen.Size())
	for _, v := range seen.Values() {
		out = append(out, StateID(v))
	}
	sortStateIDs(out)
	return out
}

func sortStateIDs(ids []StateID) {
	// Small-set insertion sort; NFA closures are typically tiny and this
	// avoids pulling in sort.Slice's reflection overhead on a hot path.
	for i := 1; i < len(ids); i++ {
		v := ids[i]
		j := i - 1
		for j >= 0 && ids[j] > v {
			ids[j+1] = ids[j]
			j--
		}
		ids[j+1] = v
	}
}

// Move returns ε-closure({ t | exists s in states, s --r'--> t, r ⊆ r' })
// for a given partition range r: the successor NFA state set when the DFA
// consumes any character in r (spec.md §4.5 step 3).
func (n *NFA) Move(states []StateID, r interval.CharRange) []StateID {
	var next []StateID
	for _, id := range states {
		s := n.states[id]
		if s.Kind != Interval {
			continue
		}
		if _, ok := interval.Intersect(s.Range, r); ok {
			next = append(next, s.Next)
		}
	}
	return n.EpsilonClosure(next)
}

// OutgoingRanges collects the character ranges labelling non-ε transitions
// out of any state in the set, without yet computing their disjoint
// cover. Determinization (package dfa) covers this list to find the
// alphabet partition for the corresponding DFA state.
func (n *NFA) OutgoingRanges(states []StateID) []interval.CharRange {
	var out []interval.CharRange
	for _, id := range states {
		if s := n.states[id]; s.Kind == Interval {
			out = append(out, s.Range)
		}
	}
	return out
}

// HasAccept reports whether any state in the set is a Match state, and if
// so returns the token index of the earliest-declared matching token.
func (n *NFA) HasAccept(states []StateID) (tokenIdx int, ok bool) {
	best := -1
	for _, id := range states {
		if idx, isAccept := n.accept[id]; isAccept {
			if best == -1 || idx < best {
				best = idx
			}
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
