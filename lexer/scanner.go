package lexer

import "github.com/corelex/corelex/dfa"

// Scanner drives a Lexer's DFA over a CharStream, implementing the
// maximal-munch next_token algorithm of spec.md §4.7. A Scanner holds no
// state beyond its stream's cursor; calling NextToken repeatedly drains
// the stream one token at a time, ending with a single EndKind token and
// yielding further EndKind tokens on every subsequent call (spec.md §4.8
// "Scanning past end of input").
type Scanner struct {
	lex    *Lexer
	stream CharStream

	// disableAccel forces NextToken to skip the accel literal prefilter
	// and step to skip the dense ASCII tables, so the scan walks the DFA
	// alone; it exists for the differential tests in
	// scanner_test.go that prove the prefilter never changes output, and
	// is never set outside tests.
	disableAccel bool
}

// NewScanner builds a Scanner reading from stream using lex's compiled
// tables.
func NewScanner(lex *Lexer, stream CharStream) *Scanner {
	return &Scanner{lex: lex, stream: stream}
}

// NextToken returns the next token from the stream.
//
// At each position it walks the DFA as far as it can, remembering the
// offset and resolved token of the last accepting state visited
// (lastAcceptOffset / lastAccept below) rather than stopping at the
// first accept — this is what gives the scanner maximal-munch semantics
// and, among same-length matches, declaration-order precedence, since
// that tie is already broken inside the DFA's own Accept.TokenIdx
// (spec.md §4.5 "Ordering guarantee"). An accept recorded at offset zero
// is structurally impossible here: the inner loop only ever checks the
// state reached *after* consuming a character, so a pattern that matches
// only the empty string can never win (spec.md §4.8 "Empty-match accept
// is never taken").
//
// If the walk never reaches any accepting state, the scanner consumes
// exactly one character and emits it as ErrorKind (spec.md §4.7 "Error
// recovery"), so NextToken always makes progress and always returns.
func (sc *Scanner) NextToken() Token {
	for {
		if sc.stream.IsEnd() {
			pos := sc.stream.Position()
			return Token{Kind: sc.lex.endKind, Start: pos, End: pos}
		}

		start := sc.stream.Position()
		state := sc.lex.dfa.Start()

		var buf []rune
		offset := 0
		lastAcceptOffset := 0
		var lastAccept resolvedAccept
		haveAccept := false

		// Literal prefilter: if the stream can hand us a raw byte view,
		// ask the Aho-Corasick index (package accel) whether a
		// literal-declared token matches right here before walking the
		// DFA at all. Every literal token is compiled into the same DFA
		// the walk below traverses, so this only ever seeds the same
		// accept the walk would reach on its own (or a shorter one the
		// walk then overtakes) — it never changes what gets emitted,
		// which is what scanner_test.go's differential tests check by
		// running the same input with disableAccel toggled.
		if !sc.disableAccel {
			if bs, ok := sc.stream.(ByteSource); ok {
				if accept, length, ok := sc.lex.confirmLiteral(bs.Bytes(), 0); ok {
					lastAcceptOffset = length
					lastAccept = accept
					haveAccept = true
				}
			}
		}

		for {
			c, ok := sc.stream.Peek(offset)
			if !ok {
				break
			}
			next, ok := sc.step(state, c)
			if !ok {
				break
			}
			state = next
			offset++
			buf = append(buf, c)

			if a := sc.lex.dfa.State(state).Accept; a.IsAccept {
				lastAcceptOffset = offset
				lastAccept = sc.lex.accepts[a.TokenIdx]
				haveAccept = true
			}
		}

		if haveAccept {
			sc.stream.Consume(lastAcceptOffset)
			end := sc.stream.Position()
			if lastAccept.kind == acceptSkip {
				continue
			}
			return Token{
				Kind:  lastAccept.tokenKind,
				Text:  string(buf[:lastAcceptOffset]),
				Start: start,
				End:   end,
			}
		}

		// No accepting state reached at all: single-character error
		// recovery. The IsEnd check above guarantees at least one
		// character is available here.
		c, _ := sc.stream.Peek(0)
		sc.stream.Consume(1)
		end := sc.stream.Position()
		return Token{Kind: sc.lex.errorKind, Text: string(c), Start: start, End: end}
	}
}

// step advances from state on character c, preferring the dense ASCII
// table (package accel) over the DFA's general interval scan whenever c
// is an ASCII byte and disableAccel is unset; both paths agree by
// construction (see accel.BuildASCIITables), so this is purely a speedup.
func (sc *Scanner) step(state dfa.StateID, c rune) (dfa.StateID, bool) {
	if !sc.disableAccel && c >= 0 && c < 128 && int(state) < len(sc.lex.asciiTables) {
		return sc.lex.asciiTables[state].Step(byte(c))
	}
	return sc.lex.dfa.State(state).Step(c)
}

// All drains the stream to completion, returning every token in order
// including the final EndKind token. It is a convenience for callers who
// don't need streaming behavior.
func (sc *Scanner) All() []Token {
	var tokens []Token
	for {
		tok := sc.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == sc.lex.endKind {
			return tokens
		}
	}
}
