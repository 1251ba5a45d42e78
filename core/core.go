// Package core defines the minimal regex operator set that Thompson
// construction (package nfa) compiles directly: Epsilon, Interval, Concat,
// Alt, Star (spec.md §3). Everything in the surface AST (package
// regexsyntax) is lowered to this set by Desugar.
package core

import "github.com/corelex/corelex/interval"

// Op identifies the shape of a core Node.
type Op uint8

const (
	// OpEpsilon matches the empty string.
	OpEpsilon Op = iota
	// OpInterval matches exactly one character in Range. A Range with
	// Lo > Hi is the canonical representation of the empty language: no
	// character ever matches.
	OpInterval
	// OpConcat matches Sub[0] followed by Sub[1].
	OpConcat
	// OpAlt matches Sub[0] or Sub[1].
	OpAlt
	// OpStar matches Sub[0] zero or more times.
	OpStar
)

// Node is one node of the core regex AST.
type Node struct {
	Op    Op
	Range interval.CharRange // OpInterval only
	Sub   []*Node            // 2 elements for OpConcat/OpAlt, 1 for OpStar
}

// Epsilon returns a node matching only the empty string.
func Epsilon() *Node { return &Node{Op: OpEpsilon} }

// Interval returns a node matching exactly one character in r.
func Interval(r interval.CharRange) *Node { return &Node{Op: OpInterval, Range: r} }

// NoMatch returns a node matching no string at all (the empty language).
func NoMatch() *Node { return &Node{Op: OpInterval, Range: interval.CharRange{Lo: 1, Hi: 0}} }

// IsNoMatch reports whether n is the canonical empty-language interval.
func (n *Node) IsNoMatch() bool {
	return n.Op == OpInterval && n.Range.Lo > n.Range.Hi
}

// Concat returns a node matching a followed by b.
func Concat(a, b *Node) *Node { return &Node{Op: OpConcat, Sub: []*Node{a, b}} }

// Alt returns a node matching a or b.
func Alt(a, b *Node) *Node { return &Node{Op: OpAlt, Sub: []*Node{a, b}} }

// Star returns a node matching a zero or more times.
func Star(a *Node) *Node { return &Node{Op: OpStar, Sub: []*Node{a}} }

// ConcatAll folds Concat over nodes in order. An empty list is Epsilon.
func ConcatAll(nodes ...*Node) *Node {
	if len(nodes) == 0 {
		return Epsilon()
	}
	out := nodes[0]
	for _, n := range nodes[1:] {
		out = Concat(out, n)
	}
	return out
}

// AltAll folds Alt over nodes in order. AltAll panics on an empty list;
// callers needing "no alternative matches" should use NoMatch directly.
func AltAll(nodes ...*Node) *Node {
	out := nodes[0]
	for _, n := range nodes[1:] {
		out = Alt(out, n)
	}
	return out
}
