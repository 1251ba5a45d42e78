package lexer

import (
	"errors"
	"fmt"
)

// Construction-time sentinel errors (spec.md §7 "Construction errors").
var (
	// ErrNoEndKind is returned when LexerDescription.EndKind is NoKind.
	ErrNoEndKind = errors.New("lexer: EndKind must be set (NoKind is reserved)")
	// ErrNoErrorKind is returned when LexerDescription.ErrorKind is NoKind.
	ErrNoErrorKind = errors.New("lexer: ErrorKind must be set (NoKind is reserved)")
	// ErrDuplicateSentinel is returned when EndKind and ErrorKind collide
	// with each other, or with a declared token's Kind.
	ErrDuplicateSentinel = errors.New("lexer: EndKind, ErrorKind, and every TokenDef.Kind must be pairwise distinct")
	// ErrNoTokens is returned when a LexerDescription declares zero tokens.
	ErrNoTokens = errors.New("lexer: at least one TokenDef is required")
)

// PatternError wraps a regex syntax error encountered while compiling one
// of the declared tokens, identifying which one (spec.md §7 "Pattern
// errors").
type PatternError struct {
	Kind Kind
	Err  error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("lexer: token kind %v: %v", e.Kind, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }
