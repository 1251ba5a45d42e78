package nfa

import "errors"

// ErrEmptyPatternSet indicates CompilePatterns was asked to build an NFA
// for zero token definitions. The lexer layer never triggers this, since
// LexerDescription.Validate rejects a description with no tokens first;
// it exists to make package nfa's own precondition explicit.
var ErrEmptyPatternSet = errors.New("nfa: cannot compile an empty pattern set")
