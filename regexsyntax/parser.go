package regexsyntax

import (
	"strconv"
	"strings"

	"github.com/corelex/corelex/interval"
)

// metachars are runes with special meaning outside a character class.
const metachars = `|*+?{}()[.\`

// Parse parses pattern into a surface AST.
//
// shortcuts resolves named shortcuts written as \p{Name}: the looked-up
// text is parsed recursively and spliced in as a Group. A nil or empty
// table means the pattern may not use shortcuts; referencing an unknown
// name is a SyntaxError.
func Parse(pattern string, shortcuts map[string]string) (*Node, error) {
	p := &parser{
		pattern:   pattern,
		runes:     []rune(pattern),
		shortcuts: shortcuts,
	}
	node, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, p.errorf("unexpected %q", string(p.runes[p.pos]))
	}
	return node, nil
}

// EscapeLiteral escapes every regex metacharacter in s so that Parse(EscapeLiteral(s), nil)
// matches exactly the literal string s. This is how the lexer builder turns a
// caller's plain-string token declaration into a regex pattern (spec.md §6).
func EscapeLiteral(s string) string {
	var b strings.Builder
	for _, c := range s {
		if strings.ContainsRune(metachars, c) || c == ']' || c == '^' || c == '-' {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}

type parser struct {
	pattern   string
	runes     []rune
	pos       int
	shortcuts map[string]string
	depth     int
}

const maxShortcutDepth = 32

func (p *parser) atEnd() bool { return p.pos >= len(p.runes) }

func (p *parser) peek() (rune, bool) {
	if p.atEnd() {
		return 0, false
	}
	return p.runes[p.pos], true
}

func (p *parser) advance() rune {
	c := p.runes[p.pos]
	p.pos++
	return c
}

func (p *parser) accept(c rune) bool {
	if r, ok := p.peek(); ok && r == c {
		p.pos++
		return true
	}
	return false
}

// parseAlt := concat ('|' concat)*
func (p *parser) parseAlt() (*Node, error) {
	first, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	branches := []*Node{first}
	for p.accept('|') {
		next, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		branches = append(branches, next)
	}
	return alt(branches...), nil
}

// parseConcat := rep*
func (p *parser) parseConcat() (*Node, error) {
	var nodes []*Node
	for {
		if p.atEnd() {
			break
		}
		c, _ := p.peek()
		if c == '|' || c == ')' {
			break
		}
		node, err := p.parseRep()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	if len(nodes) == 0 {
		// Empty concatenation matches the empty string; represent it as a
		// zero-times Repeat, which desugars to Epsilon.
		return &Node{Kind: Repeat, Sub: []*Node{lit(0)}, Min: 0, Max: 0}, nil
	}
	return concat(nodes...), nil
}

// parseRep := atom ('*' | '+' | '?' | '{' n (',' m?)? '}')?
func (p *parser) parseRep() (*Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.peek()
		if !ok {
			return atom, nil
		}
		switch c {
		case '*':
			p.pos++
			atom = &Node{Kind: Star, Sub: []*Node{atom}}
		case '+':
			p.pos++
			atom = &Node{Kind: Plus, Sub: []*Node{atom}}
		case '?':
			p.pos++
			atom = &Node{Kind: Opt, Sub: []*Node{atom}}
		case '{':
			save := p.pos
			rep, ok, err := p.tryParseBounds(atom)
			if err != nil {
				return nil, err
			}
			if !ok {
				// Not a valid bound expression; '{' is a literal here.
				p.pos = save
				return atom, nil
			}
			atom = rep
		default:
			return atom, nil
		}
	}
}

func (p *parser) tryParseBounds(sub *Node) (*Node, bool, error) {
	start := p.pos
	p.pos++ // consume '{'
	n, okN := p.parseInt()
	if !okN {
		p.pos = start
		return nil, false, nil
	}
	max := n
	if p.accept(',') {
		if m, ok := p.parseInt(); ok {
			max = m
		} else {
			max = -1
		}
	}
	if !p.accept('}') {
		p.pos = start
		return nil, false, nil
	}
	if max != -1 && max < n {
		return nil, false, p.errorf("repetition bound {%d,%d} has max < min", n, max)
	}
	return &Node{Kind: Repeat, Sub: []*Node{sub}, Min: n, Max: max}, true, nil
}

func (p *parser) parseInt() (int, bool) {
	start := p.pos
	for !p.atEnd() {
		c, _ := p.peek()
		if c < '0' || c > '9' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return 0, false
	}
	n, err := strconv.Atoi(string(p.runes[start:p.pos]))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseAtom := '.' | literal | escape | charClass | '(' alt ')'
func (p *parser) parseAtom() (*Node, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.errorf("unexpected end of pattern")
	}
	switch c {
	case '.':
		p.pos++
		return &Node{Kind: AnyChar}, nil
	case '(':
		p.pos++
		inner, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		if !p.accept(')') {
			return nil, p.errorf("unclosed group")
		}
		return &Node{Kind: Group, Sub: []*Node{inner}}, nil
	case '[':
		return p.parseCharClass()
	case '\\':
		return p.parseEscape()
	case '*', '+', '?', ')', '}':
		return nil, p.errorf("unexpected %q", string(c))
	default:
		p.pos++
		return lit(c), nil
	}
}

func (p *parser) parseEscape() (*Node, error) {
	p.pos++ // consume '\\'
	c, ok := p.peek()
	if !ok {
		return nil, p.errorf("dangling escape")
	}
	switch c {
	case 'n':
		p.pos++
		return lit('\n'), nil
	case 'r':
		p.pos++
		return lit('\r'), nil
	case 't':
		p.pos++
		return lit('\t'), nil
	case '0':
		p.pos++
		return lit(0), nil
	case '\\', '\'', '"', '|', '*', '+', '?', '{', '}', '(', ')', '[', ']', '.', '^', '-':
		p.pos++
		return lit(c), nil
	case 'x':
		p.pos++
		return p.parseHexEscape(2)
	case 'u':
		p.pos++
		return p.parseHexEscape(4)
	case 'p':
		p.pos++
		return p.parseShortcut()
	default:
		return nil, p.errorf("unknown escape %q", string(c))
	}
}

func (p *parser) parseHexEscape(n int) (*Node, error) {
	if p.pos+n > len(p.runes) {
		return nil, p.errorf("truncated code-point escape")
	}
	digits := string(p.runes[p.pos : p.pos+n])
	v, err := strconv.ParseInt(digits, 16, 32)
	if err != nil {
		return nil, p.errorf("invalid code-point escape %q", digits)
	}
	p.pos += n
	return lit(rune(v)), nil
}

func (p *parser) parseShortcut() (*Node, error) {
	if !p.accept('{') {
		return nil, p.errorf("expected '{' after \\p")
	}
	start := p.pos
	for !p.atEnd() {
		c, _ := p.peek()
		if c == '}' {
			break
		}
		p.pos++
	}
	if p.atEnd() {
		return nil, p.errorf("unclosed \\p{...}")
	}
	name := string(p.runes[start:p.pos])
	p.pos++ // consume '}'

	if p.shortcuts == nil {
		return nil, p.errorf("named shortcut %q used but no shortcut table provided", name)
	}
	text, ok := p.shortcuts[name]
	if !ok {
		return nil, p.errorf("unknown named shortcut %q", name)
	}
	if p.depth >= maxShortcutDepth {
		return nil, p.errorf("named shortcut %q nested too deeply (possible cycle)", name)
	}

	sub := &parser{pattern: text, runes: []rune(text), shortcuts: p.shortcuts, depth: p.depth + 1}
	node, err := sub.parseAlt()
	if err != nil {
		return nil, p.errorf("in shortcut %q: %v", name, err)
	}
	if !sub.atEnd() {
		return nil, p.errorf("in shortcut %q: unexpected %q", name, string(sub.runes[sub.pos]))
	}
	return &Node{Kind: Group, Sub: []*Node{node}}, nil
}

// parseCharClass := '[' '^'? item* ']'
func (p *parser) parseCharClass() (*Node, error) {
	p.pos++ // consume '['
	negated := p.accept('^')

	var ranges []interval.CharRange
	first := true
	for {
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf("unclosed character class")
		}
		if c == ']' && !first {
			p.pos++
			break
		}
		first = false

		lo, err := p.parseClassChar()
		if err != nil {
			return nil, err
		}

		if nc, ok := p.peek(); ok && nc == '-' {
			save := p.pos
			p.pos++
			if hc, ok := p.peek(); ok && hc != ']' {
				hi, err := p.parseClassChar()
				if err != nil {
					return nil, err
				}
				if hi < lo {
					return nil, p.errorf("invalid range %q-%q", string(lo), string(hi))
				}
				ranges = append(ranges, interval.CharRange{Lo: lo, Hi: hi})
				continue
			}
			p.pos = save
		}
		ranges = append(ranges, interval.CharRange{Lo: lo, Hi: lo})
	}

	return &Node{Kind: CharClass, Class: ranges, Negated: negated}, nil
}

func (p *parser) parseClassChar() (rune, error) {
	c, ok := p.peek()
	if !ok {
		return 0, p.errorf("unclosed character class")
	}
	if c == '\\' {
		p.pos++
		ec, ok := p.peek()
		if !ok {
			return 0, p.errorf("dangling escape in character class")
		}
		switch ec {
		case 'n':
			p.pos++
			return '\n', nil
		case 'r':
			p.pos++
			return '\r', nil
		case 't':
			p.pos++
			return '\t', nil
		case '0':
			p.pos++
			return 0, nil
		case 'x':
			p.pos++
			n, err := p.parseHexEscape(2)
			if err != nil {
				return 0, err
			}
			return n.Char, nil
		case 'u':
			p.pos++
			n, err := p.parseHexEscape(4)
			if err != nil {
				return 0, err
			}
			return n.Char, nil
		default:
			p.pos++
			return ec, nil
		}
	}
	p.pos++
	return c, nil
}
