package core

import (
	"github.com/corelex/corelex/interval"
	"github.com/corelex/corelex/regexsyntax"
)

// Desugar lowers a surface regexsyntax AST to the core operator set
// (spec.md §4.3):
//
//	AnyChar            -> Interval([U+0000, U+10FFFF] \ {'\n'})
//	CharClass(l, neg)  -> union of interval literals (negation subtracts
//	                      from the universal set)
//	Plus(a)            -> Concat(a, Star(a))
//	Opt(a)             -> Alt(Epsilon, a)
//	Range(a, n, m)     -> n concatenations of a, then m-n optional copies
//	                      (or a trailing Star(a) when m is unbounded)
//
// Desugar never fails: the surface AST is already syntactically valid by
// the time it reaches here.
func Desugar(n *regexsyntax.Node) *Node {
	switch n.Kind {
	case regexsyntax.Literal:
		return Interval(interval.CharRange{Lo: n.Char, Hi: n.Char})

	case regexsyntax.AnyChar:
		return desugarAnyChar()

	case regexsyntax.CharClass:
		return desugarCharClass(n)

	case regexsyntax.Concat:
		parts := make([]*Node, len(n.Sub))
		for i, s := range n.Sub {
			parts[i] = Desugar(s)
		}
		return ConcatAll(parts...)

	case regexsyntax.Alt:
		parts := make([]*Node, len(n.Sub))
		for i, s := range n.Sub {
			parts[i] = Desugar(s)
		}
		return AltAll(parts...)

	case regexsyntax.Star:
		return Star(Desugar(n.Sub[0]))

	case regexsyntax.Plus:
		return Concat(Desugar(n.Sub[0]), Star(Desugar(n.Sub[0])))

	case regexsyntax.Opt:
		return Alt(Epsilon(), Desugar(n.Sub[0]))

	case regexsyntax.Repeat:
		return desugarRepeat(n)

	case regexsyntax.Group:
		return Desugar(n.Sub[0])

	default:
		// Unreachable for a well-formed surface AST.
		return NoMatch()
	}
}

func desugarAnyChar() *Node {
	var parts []*Node
	if '\n'-1 >= interval.MinChar {
		parts = append(parts, Interval(interval.CharRange{Lo: interval.MinChar, Hi: '\n' - 1}))
	}
	if '\n'+1 <= interval.MaxChar {
		parts = append(parts, Interval(interval.CharRange{Lo: '\n' + 1, Hi: interval.MaxChar}))
	}
	return AltAll(parts...)
}

func desugarCharClass(n *regexsyntax.Node) *Node {
	ranges := n.Class
	if n.Negated {
		ranges = interval.NegateAll(n.Class)
	}
	if len(ranges) == 0 {
		return NoMatch()
	}
	parts := make([]*Node, len(ranges))
	for i, r := range ranges {
		parts[i] = Interval(r)
	}
	return AltAll(parts...)
}

// desugarRepeat lowers a{n,m} (spec.md §4.3 Range): n mandatory copies of a,
// followed by either (m-n) optional copies of a, or (when m is unbounded,
// represented by Max == -1) a trailing Star(a).
func desugarRepeat(n *regexsyntax.Node) *Node {
	sub := n.Sub[0]
	var parts []*Node
	for i := 0; i < n.Min; i++ {
		parts = append(parts, Desugar(sub))
	}
	if n.Max == -1 {
		parts = append(parts, Star(Desugar(sub)))
	} else {
		for i := n.Min; i < n.Max; i++ {
			parts = append(parts, Alt(Epsilon(), Desugar(sub)))
		}
	}
	if len(parts) == 0 {
		return Epsilon()
	}
	return ConcatAll(parts...)
}
