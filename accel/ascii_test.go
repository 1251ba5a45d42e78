package accel

import (
	"testing"

	"github.com/corelex/corelex/core"
	"github.com/corelex/corelex/dfa"
	"github.com/corelex/corelex/nfa"
	"github.com/corelex/corelex/regexsyntax"
)

func buildTestDFA(t *testing.T, patterns ...string) *dfa.DFA {
	t.Helper()
	nodes := make([]*core.Node, len(patterns))
	for i, p := range patterns {
		surface, err := regexsyntax.Parse(p, nil)
		if err != nil {
			t.Fatalf("Parse(%q): %v", p, err)
		}
		nodes[i] = core.Desugar(surface)
	}
	n, err := nfa.CompilePatterns(nodes)
	if err != nil {
		t.Fatalf("CompilePatterns: %v", err)
	}
	return dfa.Minimize(dfa.Determinize(n))
}

// TestASCIITableAgreesWithState is the differential test backing
// BuildASCIITables's doc comment claim: a table lookup and a direct
// State.Step call must return the same (StateID, bool) for every ASCII
// input, on every state, since the table is built by literally iterating
// State.Step itself.
func TestASCIITableAgreesWithState(t *testing.T) {
	d := buildTestDFA(t, "if", "[A-Za-z_][A-Za-z0-9_]*", "[0-9]+", "\\+\\+?", "[ \t\r\n]+")
	tables := BuildASCIITables(d)

	for i := 0; i < d.NumStates(); i++ {
		st := d.State(dfa.StateID(i))
		table := tables[i]
		for c := rune(0); c < 128; c++ {
			wantNext, wantOk := st.Step(c)
			gotNext, gotOk := table.Step(byte(c))
			if gotOk != wantOk {
				t.Fatalf("state %d char %q: ok=%v, want %v", i, string(c), gotOk, wantOk)
			}
			if wantOk && gotNext != wantNext {
				t.Fatalf("state %d char %q: next=%d, want %d", i, string(c), gotNext, wantNext)
			}
		}
	}
}

func TestASCIITableRejectsNonASCII(t *testing.T) {
	d := buildTestDFA(t, "[\\x00-\\uFFFF]")
	tables := BuildASCIITables(d)
	if _, ok := tables[d.Start()].Step(200); ok {
		t.Fatal("expected byte 200 (non-ASCII) to be rejected by the dense table")
	}
}
