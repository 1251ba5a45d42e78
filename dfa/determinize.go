package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/corelex/corelex/internal/conv"
	"github.com/corelex/corelex/interval"
	"github.com/corelex/corelex/nfa"
)

// Determinize runs subset construction over n (spec.md §4.5), producing a
// DFA whose alphabet at each state is a disjoint cover of that state's
// underlying NFA transitions' intervals.
//
// The worklist and state-set memoization below are grounded on the
// teacher's lazy-DFA cache (dfa/lazy/cache.go, dfa/lazy/state.go): a
// pending NFA state set is hashed to a stable key and looked up before a
// new DFA state is allocated. Unlike the teacher, which builds DFA states
// lazily on first visit during a search, this determinization is eager and
// runs the whole construction up front, per spec.md §5.
func Determinize(n *nfa.NFA) *DFA {
	type pending struct {
		id  StateID
		set []nfa.StateID
	}

	startSet := n.EpsilonClosure([]nfa.StateID{n.Start()})
	setKey := func(set []nfa.StateID) string {
		var b strings.Builder
		for _, s := range set {
			b.WriteString(strconv.FormatUint(uint64(s), 10))
			b.WriteByte(',')
		}
		return b.String()
	}

	keyToID := map[string]StateID{setKey(startSet): 0}
	var states []State
	var worklist []pending
	worklist = append(worklist, pending{id: 0, set: startSet})
	states = append(states, State{})

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		var accept Accept
		if idx, ok := n.HasAccept(cur.set); ok {
			accept = Accept{IsAccept: true, TokenIdx: idx}
		}

		ranges := n.OutgoingRanges(cur.set)
		cover := interval.Cover(ranges)
		sort.Slice(cover, func(i, j int) bool { return cover[i].Lo < cover[j].Lo })

		transitions := make([]Transition, 0, len(cover))
		for _, part := range cover {
			nextSet := n.Move(cur.set, part)
			if len(nextSet) == 0 {
				continue
			}
			key := setKey(nextSet)
			nextID, ok := keyToID[key]
			if !ok {
				nextID = StateID(conv.IntToUint32(len(states)))
				keyToID[key] = nextID
				states = append(states, State{})
				worklist = append(worklist, pending{id: nextID, set: nextSet})
			}
			transitions = append(transitions, Transition{Range: part, Next: nextID})
		}

		states[cur.id] = State{Transitions: transitions, Accept: accept}
	}

	return &DFA{states: states, start: 0}
}
