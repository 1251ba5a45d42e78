package lexer

import (
	"unicode/utf8"

	"github.com/corelex/corelex/accel"
	"github.com/corelex/corelex/core"
	"github.com/corelex/corelex/dfa"
	"github.com/corelex/corelex/nfa"
	"github.com/corelex/corelex/regexsyntax"
)

// acceptKind is what a matched token resolves to at scan time: either
// emit it as a Token, or consume it and keep scanning (spec.md §4.8
// "Accept resolution").
type acceptKind uint8

const (
	acceptEmit acceptKind = iota
	acceptSkip
)

type resolvedAccept struct {
	kind      acceptKind
	tokenKind Kind
}

// Lexer is the immutable, compiled output of Build: a minimized DFA plus
// the table that resolves a winning pattern index back to either an
// emitted token kind or "skip and keep scanning" (spec.md §3 "Compiled
// lexer"). A Lexer has no mutable state and is safe to share across
// goroutines; only a Scanner's stream cursor changes as scanning proceeds
// (spec.md §5).
type Lexer struct {
	dfa       *dfa.DFA
	accepts   []resolvedAccept
	endKind   Kind
	errorKind Kind

	// asciiTables and literals are pure speedups over the DFA walk above
	// (package accel): neither one changes what Scanner.NextToken
	// returns, see accel's doc comment for why each is safe. asciiTables
	// is only built when accel.HasFastASCIIDispatch reports the running
	// CPU is worth building it for; Scanner.step falls back to the DFA's
	// own State.Step when it's nil.
	asciiTables []accel.ASCIITable
	literals    *accel.LiteralIndex
}

// Build compiles a LexerDescription into a Lexer (spec.md §4.1-4.6 end to
// end): parse every token's pattern into a surface AST, desugar it to the
// core operator set, Thompson-compile the whole declaration-ordered list
// into one NFA, determinize it via subset construction, and minimize the
// result while preserving which token each accepting state resolves to.
func Build(desc LexerDescription) (*Lexer, Diagnostics, error) {
	var diag Diagnostics

	if err := desc.Validate(); err != nil {
		return nil, diag, err
	}

	nodes := make([]*core.Node, len(desc.Tokens))
	for i, tok := range desc.Tokens {
		surface, err := regexsyntax.Parse(tok.Pattern, desc.Shortcuts)
		if err != nil {
			return nil, diag, &PatternError{Kind: tok.Kind, Err: err}
		}
		n := core.Desugar(surface)
		nodes[i] = n
		if core.Nullable(n) {
			diag.EmptyLanguageWarnings = append(diag.EmptyLanguageWarnings, EmptyLanguageWarning{
				Kind:    tok.Kind,
				Pattern: tok.Pattern,
			})
		}
	}

	n, err := nfa.CompilePatterns(nodes)
	if err != nil {
		return nil, diag, err
	}
	d := dfa.Determinize(n)
	d = dfa.Minimize(d)

	accepts := make([]resolvedAccept, len(desc.Tokens))
	for i, tok := range desc.Tokens {
		kind := acceptEmit
		if tok.Ignore {
			kind = acceptSkip
		}
		accepts[i] = resolvedAccept{kind: kind, tokenKind: tok.Kind}
	}

	var literalEntries []accel.LiteralEntry
	for i, tok := range desc.Tokens {
		if tok.isLiteral {
			literalEntries = append(literalEntries, accel.LiteralEntry{Text: tok.literal, Index: i})
		}
	}
	literals, err := accel.BuildLiteralIndex(literalEntries)
	if err != nil {
		// The Aho-Corasick prefilter is an optimization, not a
		// requirement: if it can't be built, scanning still works
		// correctly through the DFA alone.
		literals = nil
	}

	var asciiTables []accel.ASCIITable
	if accel.HasFastASCIIDispatch {
		asciiTables = accel.BuildASCIITables(d)
	}

	return &Lexer{
		dfa:         d,
		accepts:     accepts,
		endKind:     desc.EndKind,
		errorKind:   desc.ErrorKind,
		asciiTables: asciiTables,
		literals:    literals,
	}, diag, nil
}

// confirmLiteral reports whether one of the lexer's literal-declared
// tokens (those built with Literal, not Regex) matches text exactly at
// byte offset at, using the Aho-Corasick prefilter from package accel
// instead of a character-by-character DFA walk. The returned length is in
// runes, matching the unit Scanner's own walk counts in — accel.LiteralIndex
// itself works in bytes, so a multi-byte literal's byte length is
// re-decoded here rather than handed to the scanner directly. Scanner.NextToken
// calls this at the start of every token to pre-confirm a literal match
// before walking the DFA (spec.md component 10); see scanner_test.go's
// differential tests for the proof that disabling it never changes what a
// scan produces.
func (lex *Lexer) confirmLiteral(text []byte, at int) (resolvedAccept, int, bool) {
	idx, byteLen, matched := lex.literals.MatchAt(text, at)
	if !matched {
		return resolvedAccept{}, 0, false
	}
	runeLen := utf8.RuneCount(text[at : at+byteLen])
	return lex.accepts[idx], runeLen, true
}

// ConfirmLiteralAt is confirmLiteral's public form, for callers who
// already hold input as a byte slice and want a quick literal-token check
// without building a Scanner (e.g. to pre-screen a keyword table). A
// false result here never implies the pattern can't match through the
// DFA — only that this prefilter didn't confirm it.
func (lex *Lexer) ConfirmLiteralAt(text []byte, at int) (kind Kind, length int, ok bool) {
	accept, length, matched := lex.confirmLiteral(text, at)
	if !matched {
		return NoKind, 0, false
	}
	return accept.tokenKind, length, true
}
