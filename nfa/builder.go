package nfa

import (
	"github.com/corelex/corelex/internal/conv"
	"github.com/corelex/corelex/interval"
)

// Builder constructs an NFA incrementally using a low-level, append-only
// state arena, mirroring the teacher's Builder/StateID/Patch shape
// (nfa/builder.go, nfa/nfa.go in the teacher repo) but specialized to
// interval-labelled, capture-free Thompson fragments.
type Builder struct {
	states []State
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

func (b *Builder) add(s State) StateID {
	// The arena is declaration-bounded (one fragment per pattern, each a
	// handful of states), but conv.IntToUint32 guards the narrowing the
	// same way the teacher's own builder does, rather than silently
	// wrapping a pathological pattern count into a bogus StateID.
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, s)
	return id
}

// AddEpsilonState adds a state with a single ε-edge to next. Pass
// InvalidState for next to create a dangling fragment exit to be linked
// later by link or promoteToSplit.
func (b *Builder) AddEpsilonState(next StateID) StateID {
	return b.add(State{Kind: Epsilon, Next: next})
}

// AddIntervalState adds a state that consumes one character in r and
// transitions to next.
func (b *Builder) AddIntervalState(r interval.CharRange, next StateID) StateID {
	return b.add(State{Kind: Interval, Range: r, Next: next})
}

// AddSplitState adds a state with two ε-edges, to out1 and out2.
func (b *Builder) AddSplitState(out1, out2 StateID) StateID {
	return b.add(State{Kind: Split, Out1: out1, Out2: out2})
}

// AddMatchState adds an accepting state with no outgoing transitions.
func (b *Builder) AddMatchState() StateID {
	return b.add(State{Kind: Match})
}

// link sets the single ε-edge of a dangling Epsilon-kind state to next.
// It is used to wire a fragment's exit onward (Concat, Alt, and the final
// connection from a pattern's exit to its Match state).
func (b *Builder) link(id, next StateID) {
	b.states[id].Next = next
}

// promoteToSplit turns a dangling Epsilon-kind exit state into a Split
// state in place. Star needs this: the inner fragment's single exit must
// gain a second outgoing edge (loop back to the inner entry, in addition
// to falling through to the Star's own exit) without disturbing any edge
// that already targets this state by ID.
func (b *Builder) promoteToSplit(id, out1, out2 StateID) {
	b.states[id] = State{Kind: Split, Out1: out1, Out2: out2}
}

// Build freezes the builder into an immutable NFA with the given start
// state and accept table.
func (b *Builder) Build(start StateID, accept map[StateID]int) *NFA {
	states := make([]State, len(b.states))
	copy(states, b.states)
	return &NFA{states: states, start: start, accept: accept}
}
