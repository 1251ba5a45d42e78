package accel

import "github.com/coregx/ahocorasick"

// LiteralEntry names one exact-string token the lexer declared via
// lexer.Literal, paired with that token's declaration-order index so a
// hit can be mapped back to the same accept resolution the DFA itself
// would produce.
type LiteralEntry struct {
	Text  string
	Index int
}

// LiteralIndex is an Aho-Corasick automaton over every literal token a
// lexer declares, grounded on the teacher's own "large literal
// alternation" fast path (meta.Engine.ahoCorasick, built in
// meta/compile.go via ahocorasick.NewBuilder). The teacher builds one
// automaton per compiled regex to bypass its NFA/DFA engines entirely for
// alternations of plain literals; here the same automaton instead runs
// alongside the lexer's DFA as a confirmation prefilter, since the DFA
// must remain authoritative for maximal munch across mixed literal and
// regex tokens.
type LiteralIndex struct {
	automaton *ahocorasick.Automaton
	toIndex   []int
}

// BuildLiteralIndex compiles entries into a LiteralIndex. It returns
// (nil, nil) when there are no literal entries to index.
func BuildLiteralIndex(entries []LiteralEntry) (*LiteralIndex, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	builder := ahocorasick.NewBuilder()
	toIndex := make([]int, len(entries))
	for i, e := range entries {
		builder.AddPattern([]byte(e.Text))
		toIndex[i] = e.Index
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &LiteralIndex{automaton: automaton, toIndex: toIndex}, nil
}

// MatchAt reports whether some declared literal matches haystack exactly
// starting at offset at, confirming in one Aho-Corasick step what would
// otherwise take one DFA transition per character of the literal. A miss
// here is not authoritative — the DFA walk still runs and wins any tie —
// so MatchAt can never make a scan wrong, only sometimes redundant.
func (li *LiteralIndex) MatchAt(haystack []byte, at int) (tokenIndex int, length int, ok bool) {
	if li == nil {
		return 0, 0, false
	}
	m := li.automaton.Find(haystack, at)
	if m == nil || m.Start != at {
		return 0, 0, false
	}
	return li.toIndex[m.Pattern], m.End - m.Start, true
}
