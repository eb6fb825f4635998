package service

import (
	"math"
	"testing"
)

func TestSequenceRatio(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "john smith", "john smith", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "abc", "", 0.0},
		{"disjoint", "abc", "xyz", 0.0},
		{"typo", "john smith", "jon smith", 18.0 / 19.0},
		{"unicode runes", "мёд", "мед", 4.0 / 6.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sequenceRatio(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("sequenceRatio(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestSequenceRatioSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"john smith", "jon smith"},
		{"abc def", "fed cba"},
		{"", "abc"},
		{"aaab", "baaa"},
	}
	for _, p := range pairs {
		ab := sequenceRatio(p[0], p[1])
		ba := sequenceRatio(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("ratio not symmetric for %q/%q: %v vs %v", p[0], p[1], ab, ba)
		}
	}
}

func TestScorerContract(t *testing.T) {
	for _, accel := range []bool{false, true} {
		s := NewScorer(accel)
		t.Run(s.Name(), func(t *testing.T) {
			if got := s.Ratio("alpha beta", "alpha beta"); got != 1.0 {
				t.Errorf("identical strings: got %v, want 1.0", got)
			}
			if got := s.Ratio("abc", "xyz"); got > 0.01 {
				t.Errorf("disjoint strings: got %v, want ~0", got)
			}
			if got := s.Ratio("john smith", "jon smith"); got < 0.8 || got > 1.0 {
				t.Errorf("near match: got %v, want in [0.8, 1.0]", got)
			}
		})
	}
}

func TestNewScorerSelection(t *testing.T) {
	if got := NewScorer(false).Name(); got != "sequence" {
		t.Errorf("baseline scorer name = %q", got)
	}
	if got := NewScorer(true).Name(); got != "strutil" {
		t.Errorf("accelerated scorer name = %q", got)
	}
}
