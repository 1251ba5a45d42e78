package regexsyntax

import (
	"testing"

	"github.com/corelex/corelex/interval"
)

func mustParse(t *testing.T, pattern string, shortcuts map[string]string) *Node {
	t.Helper()
	node, err := Parse(pattern, shortcuts)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	return node
}

func TestParseLiteralConcat(t *testing.T) {
	node := mustParse(t, "abc", nil)
	if node.Kind != Concat || len(node.Sub) != 3 {
		t.Fatalf("got %#v", node)
	}
	for i, want := range []rune{'a', 'b', 'c'} {
		if node.Sub[i].Kind != Literal || node.Sub[i].Char != want {
			t.Fatalf("sub[%d] = %#v, want literal %q", i, node.Sub[i], want)
		}
	}
}

func TestParseAlternation(t *testing.T) {
	node := mustParse(t, "a|b", nil)
	if node.Kind != Alt || len(node.Sub) != 2 {
		t.Fatalf("got %#v", node)
	}
}

func TestParseQuantifiers(t *testing.T) {
	tests := []struct {
		pattern string
		kind    Kind
	}{
		{"a*", Star},
		{"a+", Plus},
		{"a?", Opt},
	}
	for _, tt := range tests {
		node := mustParse(t, tt.pattern, nil)
		if node.Kind != tt.kind {
			t.Fatalf("Parse(%q).Kind = %v, want %v", tt.pattern, node.Kind, tt.kind)
		}
	}
}

func TestParseBoundedRepeat(t *testing.T) {
	node := mustParse(t, "a{2,4}", nil)
	if node.Kind != Repeat || node.Min != 2 || node.Max != 4 {
		t.Fatalf("got %#v", node)
	}

	node = mustParse(t, "a{3,}", nil)
	if node.Kind != Repeat || node.Min != 3 || node.Max != -1 {
		t.Fatalf("got %#v", node)
	}

	node = mustParse(t, "a{5}", nil)
	if node.Kind != Repeat || node.Min != 5 || node.Max != 5 {
		t.Fatalf("got %#v", node)
	}
}

func TestParseInvalidBoundedRepeat(t *testing.T) {
	if _, err := Parse("a{4,2}", nil); err == nil {
		t.Fatal("expected error for max < min")
	}
}

func TestParseCharClass(t *testing.T) {
	node := mustParse(t, "[a-z0-9_]", nil)
	if node.Kind != CharClass || node.Negated {
		t.Fatalf("got %#v", node)
	}
	want := []interval.CharRange{{'a', 'z'}, {'0', '9'}, {'_', '_'}}
	if len(node.Class) != len(want) {
		t.Fatalf("got %v ranges, want %v", node.Class, want)
	}
	for i := range want {
		if node.Class[i] != want[i] {
			t.Fatalf("class[%d] = %v, want %v", i, node.Class[i], want[i])
		}
	}
}

func TestParseNegatedCharClass(t *testing.T) {
	node := mustParse(t, "[^a-z]", nil)
	if !node.Negated {
		t.Fatal("expected negated class")
	}
}

func TestParseEscapes(t *testing.T) {
	tests := []struct {
		pattern string
		want    rune
	}{
		{`\n`, '\n'},
		{`\t`, '\t'},
		{`\r`, '\r'},
		{`\0`, 0},
		{`\\`, '\\'},
		{`\x41`, 'A'},
		{`A`, 'A'},
	}
	for _, tt := range tests {
		node := mustParse(t, tt.pattern, nil)
		if node.Kind != Literal || node.Char != tt.want {
			t.Fatalf("Parse(%q) = %#v, want literal %q", tt.pattern, node, tt.want)
		}
	}
}

func TestParseGrouping(t *testing.T) {
	node := mustParse(t, "(ab)+", nil)
	if node.Kind != Plus {
		t.Fatalf("got %#v", node)
	}
	group := node.Sub[0]
	if group.Kind != Group {
		t.Fatalf("expected group, got %#v", group)
	}
}

func TestParseNamedShortcut(t *testing.T) {
	shortcuts := map[string]string{"digit": "[0-9]"}
	node := mustParse(t, `\p{digit}+`, shortcuts)
	if node.Kind != Plus {
		t.Fatalf("got %#v", node)
	}
}

func TestParseUnknownShortcut(t *testing.T) {
	if _, err := Parse(`\p{nope}`, map[string]string{}); err == nil {
		t.Fatal("expected error for unknown shortcut")
	}
}

func TestParseSyntaxErrorHasPosition(t *testing.T) {
	_, err := Parse("a(b", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if se.Pos != 3 {
		t.Fatalf("Pos = %d, want 3", se.Pos)
	}
}

func TestEscapeLiteralRoundTrips(t *testing.T) {
	raw := `a.b*c(d)[e]\f`
	escaped := EscapeLiteral(raw)
	node := mustParse(t, escaped, nil)
	if node.Kind != Concat || len(node.Sub) != len([]rune(raw)) {
		t.Fatalf("round trip failed: %#v", node)
	}
	for i, c := range []rune(raw) {
		if node.Sub[i].Char != c {
			t.Fatalf("sub[%d] = %q, want %q", i, node.Sub[i].Char, c)
		}
	}
}

func TestParseAnyChar(t *testing.T) {
	node := mustParse(t, ".", nil)
	if node.Kind != AnyChar {
		t.Fatalf("got %#v", node)
	}
}
