// Package regexsyntax parses the lexer's regex surface syntax (literal
// chars, '.', character classes, alternation, the repetition operators
// *, +, ?, {n,m}, grouping, escapes, and named shortcuts) into an AST.
//
// The surface AST is deliberately richer than the core automaton operators
// package core builds on: package core's Desugar collapses Plus, Opt,
// Range, CharClass, and AnyChar down to {Epsilon, Interval, Concat, Alt,
// Star} per spec.md §4.3.
package regexsyntax

import "github.com/corelex/corelex/interval"

// Kind identifies the shape of a Node.
type Kind uint8

const (
	// Literal matches exactly one character, Node.Char.
	Literal Kind = iota
	// AnyChar matches any character except '\n'.
	AnyChar
	// CharClass matches any character in (or, if Negated, outside) Node.Class.
	CharClass
	// Concat matches Node.Sub[0] followed by Node.Sub[1] followed by ...
	Concat
	// Alt matches any one of Node.Sub.
	Alt
	// Star matches Node.Sub[0] zero or more times.
	Star
	// Plus matches Node.Sub[0] one or more times.
	Plus
	// Opt matches Node.Sub[0] zero or one times.
	Opt
	// Repeat matches Node.Sub[0] between Node.Min and Node.Max times.
	// Node.Max == -1 means unbounded ("{n,}").
	Repeat
	// Group is transparent grouping, Node.Sub[0] is the grouped pattern.
	Group
)

// Node is one node of the surface regex AST.
type Node struct {
	Kind Kind

	// Literal
	Char rune

	// CharClass
	Class   []interval.CharRange
	Negated bool

	// Concat, Alt, Star, Plus, Opt, Repeat, Group
	Sub []*Node

	// Repeat
	Min, Max int
}

func lit(c rune) *Node { return &Node{Kind: Literal, Char: c} }

func concat(nodes ...*Node) *Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return &Node{Kind: Concat, Sub: nodes}
}

func alt(nodes ...*Node) *Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return &Node{Kind: Alt, Sub: nodes}
}
