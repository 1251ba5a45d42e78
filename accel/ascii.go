// Package accel provides optional, purely additive speedups for a
// compiled lexer.DFA walk: neither component here changes what a scan
// returns, only how fast it gets there (spec.md §9 "Acceleration is
// never semantically visible"). Both are grounded on the teacher's own
// acceleration story — CPU-feature-gated dispatch (simd package) and an
// Aho-Corasick literal fast path (meta package) — adapted from searching
// a byte haystack for a compiled regex to driving a lexer's DFA.
package accel

import (
	"golang.org/x/sys/cpu"

	"github.com/corelex/corelex/dfa"
)

// HasFastASCIIDispatch mirrors the teacher's simd package CPU-feature
// gates (simd.hasAVX2 et al.): true when the running CPU has the SSE4.2
// instruction set the teacher's own byte-scanning routines require, or is
// an ARM64 CPU with ASIMD.
// ASCIITable itself is plain array indexing and would work regardless of
// this flag, but lexer.Build only spends the construction pass on it when
// HasFastASCIIDispatch is true; on a CPU it reports false for, Scanner.step
// falls back to the DFA's own State.Step for every character.
var HasFastASCIIDispatch = cpu.X86.HasSSE42 || cpu.ARM64.HasASIMD

// ASCIITable is a 128-entry dense dispatch table for one DFA state,
// projecting State.Step onto the ASCII range. Source code is
// overwhelmingly ASCII, so most Scanner.NextToken steps never leave this
// table; Step falls back to nothing here (the caller falls back to
// State.Step) once a byte's high bit is set.
type ASCIITable struct {
	next [128]dfa.StateID
	ok   [128]bool
}

// Step returns the table's successor for ASCII byte c.
func (t *ASCIITable) Step(c byte) (dfa.StateID, bool) {
	if c >= 128 || !t.ok[c] {
		return dfa.InvalidState, false
	}
	return t.next[c], true
}

// BuildASCIITables derives one ASCIITable per state of d by projecting
// each state's existing Transitions onto [0,128). Because every entry is
// copied straight from State.Step, a table lookup and a State.Step call
// agree on every ASCII input by construction — there is no second
// algorithm here to drift out of sync with the DFA.
func BuildASCIITables(d *dfa.DFA) []ASCIITable {
	tables := make([]ASCIITable, d.NumStates())
	for i := 0; i < d.NumStates(); i++ {
		st := d.State(dfa.StateID(i))
		var t ASCIITable
		for c := rune(0); c < 128; c++ {
			if next, ok := st.Step(c); ok {
				t.next[c] = next
				t.ok[c] = true
			}
		}
		tables[i] = t
	}
	return tables
}
