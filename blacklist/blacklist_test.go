package blacklist

import (
	"reflect"
	"testing"

	"github.com/aaw/fuzzytrie/trie"
)

func TestScanAny(t *testing.T) {
	s := Compile([]string{"he", "she", "his", "hers"})
	cases := map[string]bool{
		"ushers":    true,
		"a quiet nap": false,
		"history":  true,
		"":         false,
	}
	for text, want := range cases {
		if got := s.ScanAny(text); got != want {
			t.Errorf("ScanAny(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestScanAll(t *testing.T) {
	s := Compile([]string{"he", "she", "his", "hers"})
	hits := s.ScanAll("ushers")
	var words []string
	for _, h := range hits {
		words = append(words, h.Word)
	}
	want := []string{"she", "he", "hers"}
	sortStrings(words)
	sortStrings(want)
	if !reflect.DeepEqual(words, want) {
		t.Errorf("ScanAll(ushers) words = %v, want %v", words, want)
	}
}

func TestScanAllOffsets(t *testing.T) {
	s := Compile([]string{"cat"})
	hits := s.ScanAll("concatenate")
	if len(hits) != 1 {
		t.Fatalf("ScanAll(concatenate) = %v, want 1 hit", hits)
	}
	h := hits[0]
	if h.Start != 3 || h.End != 6 {
		t.Errorf("hit = %+v, want Start=3 End=6", h)
	}
}

func TestFromSet(t *testing.T) {
	set := trie.NewSet[struct{}](false, func(a, b struct{}) bool { return true })
	set.Add("spam", struct{}{})
	set.Add("scam", struct{}{})

	s := FromSet(set)
	if !s.ScanAny("this is spam mail") {
		t.Error("want ScanAny to find spam")
	}
	if s.ScanAny("this is fine") {
		t.Error("want ScanAny to find nothing")
	}
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
