package lexer

// LexerDescription is the complete, declarative input to Build: the full
// set of tokens the caller wants recognized, plus the two sentinel kinds
// the scanner synthesizes itself rather than matching against the DFA
// (spec.md §3 "Lexer description").
//
// EndKind is emitted once, as a zero-length token, when the scanner
// reaches the end of input. ErrorKind is emitted, one character at a
// time, whenever no declared token matches at the current position
// (spec.md §4.7 "Error recovery"). Both are synthesized directly by the
// scanner and never take a Pattern of their own.
//
// Shortcuts resolves \p{Name} references used by any TokenDef.Pattern
// (spec.md §6 "Named shortcuts"); it may be nil if no pattern uses them.
type LexerDescription struct {
	Tokens    []TokenDef
	EndKind   Kind
	ErrorKind Kind
	Shortcuts map[string]string
}

// Validate checks the construction-time invariants of spec.md §7 that do
// not require compiling any pattern: both sentinel kinds are set, and
// every kind in play (EndKind, ErrorKind, and each TokenDef.Kind) is
// pairwise distinct.
func (d LexerDescription) Validate() error {
	if len(d.Tokens) == 0 {
		return ErrNoTokens
	}
	if d.EndKind == NoKind {
		return ErrNoEndKind
	}
	if d.ErrorKind == NoKind {
		return ErrNoErrorKind
	}
	seen := map[Kind]bool{d.EndKind: true, d.ErrorKind: true}
	if d.EndKind == d.ErrorKind {
		return ErrDuplicateSentinel
	}
	for _, tok := range d.Tokens {
		if tok.Kind == NoKind || seen[tok.Kind] {
			return ErrDuplicateSentinel
		}
		seen[tok.Kind] = true
	}
	return nil
}
