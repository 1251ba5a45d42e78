package interval

import "sort"

// Cover computes the unique, maximal, pairwise-disjoint partition of the
// union of ranges such that every input range is exactly the union of some
// subset of the partition.
//
// This is the operation subset construction (package dfa) uses to turn a
// DFA state's possibly-overlapping outgoing NFA ranges into the disjoint
// alphabet that state determinizes over: every boundary where any input
// range starts or ends becomes a cut point, and the segments between cut
// points are emitted in order of their lower bound.
func Cover(ranges []CharRange) []CharRange {
	if len(ranges) == 0 {
		return nil
	}

	// Every range start and (end+1) is a cut point. Using int64 avoids
	// wraparound when a range's Hi is MaxChar.
	cuts := make(map[int64]struct{}, len(ranges)*2)
	for _, r := range ranges {
		cuts[int64(r.Lo)] = struct{}{}
		cuts[int64(r.Hi)+1] = struct{}{}
	}

	points := make([]int64, 0, len(cuts))
	for p := range cuts {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })

	var out []CharRange
	for i := 0; i+1 < len(points); i++ {
		lo := points[i]
		hi := points[i+1] - 1
		if !anyContains(ranges, rune(lo)) {
			continue
		}
		out = append(out, CharRange{Lo: rune(lo), Hi: rune(hi)})
	}
	return out
}

func anyContains(ranges []CharRange, c rune) bool {
	for _, r := range ranges {
		if r.Contains(c) {
			return true
		}
	}
	return false
}

// PartitionFor returns, for a value c covered by exactly one segment of
// Cover(ranges), the index of that segment. It is a small linear helper
// for callers that already hold a cover and want to map a single
// representative character back to its partition.
func PartitionFor(cover []CharRange, c rune) (int, bool) {
	for i, r := range cover {
		if r.Contains(c) {
			return i, true
		}
	}
	return -1, false
}
