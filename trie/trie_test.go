package trie

import (
	"sort"
	"strings"
	"testing"

	"github.com/aaw/fuzzytrie/levenshtein"
)

func wordSet(m *Map[int]) {
	for i, w := range []string{"f", "food", "good", "mood", "flood", "fod", "fob", "foodie"} {
		m.Add(w, i)
	}
}

func keysOf(rs []Result[int]) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Key)
	}
	sort.Strings(out)
	return out
}

func TestMapAddGetRemove(t *testing.T) {
	m := NewMap[int](false)
	if err := m.Add("food", 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := m.Add("food", 2); err != ErrDuplicateKey {
		t.Fatalf("Add duplicate err = %v, want ErrDuplicateKey", err)
	}
	v, ok := m.Get("food")
	if !ok || v != 1 {
		t.Fatalf("Get(food) = (%d, %v), want (1, true)", v, ok)
	}
	if _, ok := m.Get("foo"); ok {
		t.Fatal("Get(foo) found, want absent")
	}
	removed, ok := m.Remove("food")
	if !ok || removed != 1 {
		t.Fatalf("Remove(food) = (%d, %v), want (1, true)", removed, ok)
	}
	if _, ok := m.Get("food"); ok {
		t.Fatal("Get(food) found after Remove, want absent")
	}
}

func TestMapSearchDistanceZero(t *testing.T) {
	m := NewMap[int](false)
	wordSet(m)
	got, err := m.Suggest("food", 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"food"}; !equalSorted(keysOf(got), want) {
		t.Errorf("k=0 got %v, want %v", keysOf(got), want)
	}
}

func TestMapSearchDistanceOne(t *testing.T) {
	m := NewMap[int](false)
	wordSet(m)
	got, err := m.Suggest("food", 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"food", "good", "mood", "flood", "fod"}
	if !equalSorted(keysOf(got), want) {
		t.Errorf("k=1 got %v, want %v", keysOf(got), want)
	}
}

func TestMapSearchDistanceTwo(t *testing.T) {
	m := NewMap[int](false)
	wordSet(m)
	got, err := m.Suggest("food", 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"food", "good", "mood", "flood", "fod", "fob", "foodie"}
	if !equalSorted(keysOf(got), want) {
		t.Errorf("k=2 got %v, want %v", keysOf(got), want)
	}
}

func equalSorted(a, b []string) bool {
	sort.Strings(a)
	sort.Strings(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMapSearchPrefix(t *testing.T) {
	m := NewMap[int](false)
	m.Add("", 0)
	m.Add("1", 1)
	m.Add("12", 2)
	m.Add("123", 3)
	got, err := m.SearchPrefix("1", 0, levenshtein.Levenshtein)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1", "12", "123"}
	if !equalSorted(keysOf(got), want) {
		t.Errorf("SearchPrefix(1) got %v, want %v", keysOf(got), want)
	}
}

func TestLongChainNoStackOverflow(t *testing.T) {
	m := NewMap[int](false)
	const depth = 10000
	key := strings.Repeat("a", depth)
	m.Add(key, 1)
	v, ok := m.Get(key)
	if !ok || v != 1 {
		t.Fatalf("Get(long key) = (%d, %v), want (1, true)", v, ok)
	}
	got, err := m.Suggest(key, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Key != key {
		t.Fatalf("Suggest(long key, 0) = %v, want single exact match", got)
	}
}

func TestMultiMapAddGetRemove(t *testing.T) {
	mm := NewMultiMap[string](false)
	mm.Add("cat", "feline")
	mm.Add("cat", "kitten")
	got := mm.Get("cat")
	if len(got) != 2 {
		t.Fatalf("Get(cat) = %v, want 2 values", got)
	}
	if !mm.Remove("cat", func(v string) bool { return v == "feline" }) {
		t.Fatal("Remove(cat, feline) = false, want true")
	}
	got = mm.Get("cat")
	if len(got) != 1 || got[0] != "kitten" {
		t.Fatalf("Get(cat) after remove = %v, want [kitten]", got)
	}
}

func TestSetGetOrAddRemove(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	s := NewSet[int](false, eq)

	if _, exists := s.GetOrAdd("tag", 1); exists {
		t.Fatal("first GetOrAdd reported exists=true")
	}
	existing, exists := s.GetOrAdd("tag", 1)
	if !exists || existing != 1 {
		t.Fatalf("second GetOrAdd = (%d, %v), want (1, true)", existing, exists)
	}
	if !s.Contains("tag", 1) {
		t.Fatal("Contains(tag, 1) = false, want true")
	}
	if !s.Remove("tag", 1) {
		t.Fatal("Remove(tag, 1) = false, want true")
	}
	if s.Contains("tag", 1) {
		t.Fatal("Contains(tag, 1) after Remove = true, want false")
	}
}

func TestSetSearch(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	s := NewSet[int](false, eq)
	s.Add("food", 1)
	s.Add("food", 2)
	s.Add("fod", 3)

	matches, err := s.Search("food", 1, levenshtein.Levenshtein)
	if err != nil {
		t.Fatal(err)
	}
	var foundFod bool
	for _, m := range matches {
		if m.Key == "fod" {
			foundFod = true
			if len(m.Values) != 1 || m.Values[0] != 3 {
				t.Errorf("fod values = %v, want [3]", m.Values)
			}
		}
	}
	if !foundFod {
		t.Fatal("Search did not find fod within distance 1 of food")
	}
}

func TestMapCaseInsensitiveSearch(t *testing.T) {
	m := NewMap[int](true)
	m.Add("Food", 1)
	got, err := m.Suggest("FOOD", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Key != "Food" {
		t.Fatalf("case-insensitive Suggest = %v, want [Food]", got)
	}
}

func TestMapSplitSharedPrefix(t *testing.T) {
	m := NewMap[string](false)
	m.Add("team", "a")
	m.Add("tea", "b")
	m.Add("teapot", "c")

	for key, want := range map[string]string{"team": "a", "tea": "b", "teapot": "c"} {
		v, ok := m.Get(key)
		if !ok || v != want {
			t.Errorf("Get(%q) = (%q, %v), want (%q, true)", key, v, ok, want)
		}
	}
}
