package interval

import "testing"

func TestToInclusive(t *testing.T) {
	tests := []struct {
		name string
		iv   Interval
		want CharRange
		ok   bool
	}{
		{"closed", ClosedRange('a', 'z'), CharRange{'a', 'z'}, true},
		{"open lower", Interval{Lo: Open('a'), Hi: Closed('z')}, CharRange{'a' + 1, 'z'}, true},
		{"open upper", Interval{Lo: Closed('a'), Hi: Open('z')}, CharRange{'a', 'z' - 1}, true},
		{"unbounded both", Interval{Lo: Unbounded(), Hi: Unbounded()}, CharRange{MinChar, MaxChar}, true},
		{"empty open-open adjacent", Interval{Lo: Open('a'), Hi: Open('a' + 1)}, CharRange{}, false},
		{"empty reversed", Interval{Lo: Closed('z'), Hi: Closed('a')}, CharRange{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInclusive(tt.iv)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntersect(t *testing.T) {
	a := CharRange{'a', 'm'}
	b := CharRange{'f', 'z'}
	got, ok := Intersect(a, b)
	if !ok || !got.Equal(CharRange{'f', 'm'}) {
		t.Fatalf("Intersect(%v, %v) = %v, %v", a, b, got, ok)
	}

	c := CharRange{'a', 'b'}
	d := CharRange{'x', 'y'}
	if _, ok := Intersect(c, d); ok {
		t.Fatalf("expected no overlap between %v and %v", c, d)
	}
}

func TestTouches(t *testing.T) {
	if !Touches(CharRange{'a', 'c'}, CharRange{'d', 'f'}) {
		t.Fatal("adjacent ranges should touch")
	}
	if !Touches(CharRange{'a', 'd'}, CharRange{'c', 'f'}) {
		t.Fatal("overlapping ranges should touch")
	}
	if Touches(CharRange{'a', 'c'}, CharRange{'e', 'f'}) {
		t.Fatal("ranges with a gap should not touch")
	}
}

func TestCoverDisjointAndExhaustive(t *testing.T) {
	ranges := []CharRange{
		{'a', 'z'},
		{'d', 'f'},
		{'x', 'z' + 5},
	}
	cov := Cover(ranges)

	for i := 1; i < len(cov); i++ {
		if cov[i-1].Hi >= cov[i].Lo {
			t.Fatalf("cover not disjoint/sorted: %v then %v", cov[i-1], cov[i])
		}
	}

	// Every input range must be exactly the union of a subset of cov.
	for _, r := range ranges {
		var lo, hi rune = -1, -1
		for _, c := range cov {
			if c.Lo >= r.Lo && c.Hi <= r.Hi {
				if lo == -1 {
					lo = c.Lo
				}
				hi = c.Hi
			}
		}
		if lo != r.Lo || hi != r.Hi {
			t.Fatalf("range %v not exactly covered by a subset of %v", r, cov)
		}
	}
}

func TestCoverEmpty(t *testing.T) {
	if got := Cover(nil); got != nil {
		t.Fatalf("Cover(nil) = %v, want nil", got)
	}
}

func TestNegateAll(t *testing.T) {
	neg := NegateAll([]CharRange{{'a', 'z'}})
	if len(neg) != 2 {
		t.Fatalf("expected two ranges, got %v", neg)
	}
	if neg[0].Lo != MinChar || neg[0].Hi != 'a'-1 {
		t.Fatalf("unexpected lower complement %v", neg[0])
	}
	if neg[1].Lo != 'z'+1 || neg[1].Hi != MaxChar {
		t.Fatalf("unexpected upper complement %v", neg[1])
	}
}
