// Package lexer builds a table-driven scanner from a list of token
// declarations: each declaration is either a literal string or a regex
// pattern, plus an Ignore flag for tokens (such as whitespace or comments)
// that are recognized but never emitted (spec.md §3, §4.7).
package lexer

import "github.com/corelex/corelex/regexsyntax"

// Kind is an opaque identifier drawn from the caller's own token
// enumeration (spec.md §3 "Token kind"). Callers typically define their
// own named int constants and convert them to Kind.
type Kind int

// NoKind is the reserved sentinel for an unset Kind. Callers must never
// assign NoKind to a real token, to EndKind, or to ErrorKind; LexerDescription
// construction-time validation (spec.md §7) relies on this to detect an
// omitted sentinel.
const NoKind Kind = -1

// Token is one lexical unit produced by a Scanner (spec.md §3 "Token").
type Token struct {
	Kind  Kind
	Text  string
	Start Position
	End   Position
}

// Position is a cursor location in the input, reported by a CharStream.
type Position struct {
	Offset int // rune offset from the start of input
	Line   int // 1-based
	Column int // 1-based, in runes
}

// TokenDef declares one token kind's recognition pattern (spec.md §3
// "Token declaration").
type TokenDef struct {
	Kind    Kind
	Pattern string
	Ignore  bool

	// literal and isLiteral preserve the original unescaped text behind a
	// Literal declaration, so Build can hand exact-string tokens to the
	// accel package's Aho-Corasick prefilter instead of only seeing their
	// escaped regex form.
	literal   string
	isLiteral bool
}

// Literal declares a token that matches exactly the given literal string.
// The string is escaped internally so that any regex metacharacters it
// contains are treated literally (spec.md §6 "Literal token declaration").
func Literal(kind Kind, s string) TokenDef {
	return TokenDef{Kind: kind, Pattern: regexsyntax.EscapeLiteral(s), literal: s, isLiteral: true}
}

// Regex declares a token recognized by an arbitrary regex pattern.
func Regex(kind Kind, pattern string) TokenDef {
	return TokenDef{Kind: kind, Pattern: pattern}
}

// Ignored returns a copy of def marked as an ignored token (spec.md §4.8):
// the scanner still needs to recognize it for maximal munch, but it is
// never emitted from NextToken.
func (def TokenDef) Ignored() TokenDef {
	def.Ignore = true
	return def
}
