package nfa

import "github.com/corelex/corelex/core"

// fragment is a Thompson fragment: a single entry state and a single
// dangling exit state (spec.md §4.4). The exit is always an Epsilon-kind
// state whose own outgoing edge is not yet wired; the caller composing a
// larger fragment around this one links it (see Builder.link) or, for
// Star, promotes it to a Split (see Builder.promoteToSplit).
type fragment struct {
	entry, exit StateID
}

// compile recursively compiles a core.Node into a Thompson fragment,
// following the five construction rules of spec.md §4.4 exactly.
func compile(b *Builder, n *core.Node) fragment {
	switch n.Op {
	case core.OpEpsilon:
		exit := b.AddEpsilonState(InvalidState)
		entry := b.AddEpsilonState(exit)
		return fragment{entry: entry, exit: exit}

	case core.OpInterval:
		exit := b.AddEpsilonState(InvalidState)
		entry := b.AddIntervalState(n.Range, exit)
		return fragment{entry: entry, exit: exit}

	case core.OpConcat:
		left := compile(b, n.Sub[0])
		right := compile(b, n.Sub[1])
		b.link(left.exit, right.entry)
		return fragment{entry: left.entry, exit: right.exit}

	case core.OpAlt:
		left := compile(b, n.Sub[0])
		right := compile(b, n.Sub[1])
		exit := b.AddEpsilonState(InvalidState)
		b.link(left.exit, exit)
		b.link(right.exit, exit)
		entry := b.AddSplitState(left.entry, right.entry)
		return fragment{entry: entry, exit: exit}

	case core.OpStar:
		inner := compile(b, n.Sub[0])
		exit := b.AddEpsilonState(InvalidState)
		entry := b.AddSplitState(inner.entry, exit)
		b.promoteToSplit(inner.exit, inner.entry, exit)
		return fragment{entry: entry, exit: exit}

	default:
		// Unreachable: core.Node only ever has these five Ops.
		exit := b.AddEpsilonState(InvalidState)
		entry := b.AddEpsilonState(exit)
		return fragment{entry: entry, exit: exit}
	}
}

// CompilePatterns builds a single NFA for a declaration-ordered list of
// core patterns: a master start state ε-links to every pattern's entry
// fragment, and each pattern's exit is wired to a dedicated Match state
// recorded in the accept table under that pattern's index (spec.md §4.4
// "A global NFA is assembled by adding a master initial state...").
//
// patterns must be non-empty; the lexer layer validates that a
// LexerDescription declares at least one token before calling this.
func CompilePatterns(patterns []*core.Node) (*NFA, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyPatternSet
	}

	b := NewBuilder()
	accept := make(map[StateID]int, len(patterns))
	entries := make([]StateID, len(patterns))

	for i, p := range patterns {
		frag := compile(b, p)
		match := b.AddMatchState()
		b.link(frag.exit, match)
		entries[i] = frag.entry
		accept[match] = i
	}

	start := entries[len(entries)-1]
	for i := len(entries) - 2; i >= 0; i-- {
		start = b.AddSplitState(entries[i], start)
	}

	return b.Build(start, accept), nil
}
