package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/corelex/corelex/interval"
)

// Minimize runs Hopcroft-style partition refinement over d (spec.md §4.6),
// returning the quotient automaton. Two states may only merge if they
// agree on accept status AND, when accepting, on the resolved token they
// accept for — so minimization never conflates two tokens that happen to
// reach an accepting state via prefixes of the same length.
//
// The group-splitting loop is grounded on the Aho/Ullman-style
// implementation in the aretext automata package
// (DfaBuilder.groupEquivalentStates / splitGroupsIfNecessary), adapted
// from byte-indexed transition arrays to interval-indexed transition maps.
func Minimize(d *DFA) *DFA {
	groups := initialPartition(d)
	for {
		next := splitGroupsIfNecessary(d, groups)
		if len(next) == len(groups) {
			groups = next
			break
		}
		groups = next
	}
	return rebuild(d, groups)
}

func acceptKey(a Accept) string {
	if !a.IsAccept {
		return "-"
	}
	return "T" + strconv.Itoa(a.TokenIdx)
}

// initialPartition groups states by accept status and, for accepting
// states, by resolved token index (spec.md §4.6).
func initialPartition(d *DFA) [][]StateID {
	partitions := make(map[string][]StateID)
	for i := 0; i < d.NumStates(); i++ {
		key := acceptKey(d.states[i].Accept)
		partitions[key] = append(partitions[key], StateID(i))
	}
	return orderedGroups(partitions)
}

// orderedGroups returns the map's groups in a fixed, deterministic order
// (sorted by key) so minimization output does not depend on map iteration
// order (spec.md §4.5 "Ordering guarantee" applies equally here).
func orderedGroups(partitions map[string][]StateID) [][]StateID {
	keys := make([]string, 0, len(partitions))
	for k := range partitions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	groups := make([][]StateID, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, partitions[k])
	}
	return groups
}

func indexByGroup(groups [][]StateID) map[StateID]int {
	index := make(map[StateID]int)
	for g, states := range groups {
		for _, s := range states {
			index[s] = g
		}
	}
	return index
}

func splitGroupsIfNecessary(d *DFA, groups [][]StateID) [][]StateID {
	stateToGroup := indexByGroup(groups)
	var newGroups [][]StateID

	for _, groupStates := range groups {
		if len(groupStates) == 1 {
			newGroups = append(newGroups, groupStates)
			continue
		}

		// The finest alphabet the group's states agree to disagree over:
		// the disjoint cover of every transition range any member has.
		var allRanges []interval.CharRange
		for _, s := range groupStates {
			for _, t := range d.states[s].Transitions {
				allRanges = append(allRanges, t.Range)
			}
		}
		cover := interval.Cover(allRanges)

		partitions := make(map[string][]StateID, len(groupStates))
		var order []string
		for _, s := range groupStates {
			sig := signature(d.states[s], cover, stateToGroup)
			if _, seen := partitions[sig]; !seen {
				order = append(order, sig)
			}
			partitions[sig] = append(partitions[sig], s)
		}

		if len(order) == 1 {
			newGroups = append(newGroups, groupStates)
			continue
		}
		for _, sig := range order {
			newGroups = append(newGroups, partitions[sig])
		}
	}

	return newGroups
}

// signature encodes, for one state, which group each cover segment leads
// to (-1 if the state has no transition covering that segment). Two
// states with identical signatures over the group's shared cover are
// indistinguishable so far and remain candidates for merging.
func signature(s State, cover []interval.CharRange, stateToGroup map[StateID]int) string {
	var b strings.Builder
	for _, seg := range cover {
		next, ok := s.Step(seg.Lo)
		if !ok {
			b.WriteString("-1,")
			continue
		}
		b.WriteString(strconv.Itoa(stateToGroup[next]))
		b.WriteByte(',')
	}
	return b.String()
}

func rebuild(d *DFA, groups [][]StateID) *DFA {
	stateToGroup := indexByGroup(groups)

	newStates := make([]State, len(groups))
	for g, groupStates := range groups {
		var allRanges []interval.CharRange
		for _, s := range groupStates {
			for _, t := range d.states[s].Transitions {
				allRanges = append(allRanges, t.Range)
			}
		}
		cover := interval.Cover(allRanges)

		var transitions []Transition
		for _, seg := range cover {
			// All members of the group agree on the target group for seg
			// (that's precisely what makes them one group); find it from
			// whichever member actually has a transition there.
			for _, s := range groupStates {
				if next, ok := d.states[s].Step(seg.Lo); ok {
					transitions = append(transitions, Transition{Range: seg, Next: StateID(stateToGroup[next])})
					break
				}
			}
		}

		newStates[g] = State{
			Transitions: transitions,
			Accept:      d.states[groupStates[0]].Accept,
		}
	}

	return &DFA{states: newStates, start: StateID(stateToGroup[d.start])}
}
