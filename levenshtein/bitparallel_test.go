package levenshtein

import (
	"testing"

	"github.com/aaw/fuzzytrie/distance"
	"github.com/aaw/fuzzytrie/scalar"
)

// TestRestrictedEditTransposition checks the bitparallel matcher's
// transposition term against the reference OSA distance for a handful of
// adjacent-swap cases, the one part of this matcher not hand-verified as
// thoroughly as the rest (see DESIGN.md's "Known risk area").
func TestRestrictedEditTransposition(t *testing.T) {
	pairs := [][2]string{
		{"ab", "ba"},
		{"abc", "bac"},
		{"abcd", "abdc"},
		{"kitten", "iktten"},
	}
	for _, pair := range pairs {
		want := distance.Compute(pair[0], pair[1], RestrictedEdit, scalar.CaseSensitive)
		a := mustConstruct(t, pair[0], want, false, RestrictedEdit)
		ok, got := a.MatchesDistance(pair[1])
		if !ok || got != want {
			t.Errorf("RestrictedEdit(%q,%q): MatchesDistance = (%v,%d), want (true,%d)", pair[0], pair[1], ok, got, want)
		}
	}
}

func TestRestrictedEditRejectsBeyondK(t *testing.T) {
	a := mustConstruct(t, "ab", 0, false, RestrictedEdit)
	if a.Matches("ba") {
		t.Error("want ba NOT within distance 0 of ab under restricted edit")
	}
	a = mustConstruct(t, "ab", 1, false, RestrictedEdit)
	if !a.Matches("ba") {
		t.Error("want ba within distance 1 of ab under restricted edit (one transposition)")
	}
}
