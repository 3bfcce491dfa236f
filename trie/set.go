package trie

import (
	"github.com/aaw/fuzzytrie/levenshtein"
	"github.com/aaw/fuzzytrie/scalar"
)

// Set is a radix-compressed trie storing a deduplicated collection of
// values under each key, the list dedup'd by an equality comparer supplied
// at construction rather than by comparable's ==, so T need not itself be
// comparable (a struct holding a slice or map field, for instance).
type Set[T any] struct {
	c          *core[T]
	ignoreCase bool
	eq         func(a, b T) bool
}

// NewSet creates an empty Set whose values under a single key are
// deduplicated using eq.
func NewSet[T any](ignoreCase bool, eq func(a, b T) bool) *Set[T] {
	policy := scalar.CaseSensitive
	if ignoreCase {
		policy = scalar.CaseInsensitive
	}
	return &Set[T]{c: newCore[T](policy), ignoreCase: ignoreCase, eq: eq}
}

// Add inserts value under key unless an equal value is already present, and
// reports whether it was added.
func (s *Set[T]) Add(key string, value T) bool {
	node := s.c.getOrAddNode(scalar.Runes(key))
	for _, v := range s.c.resultValues(node) {
		if s.eq(v, value) {
			return false
		}
	}
	s.c.addResult(node, value)
	return true
}

// GetOrAdd returns the value under key equal to value if one is present
// (exists=true), otherwise it adds value and returns it (exists=false).
func (s *Set[T]) GetOrAdd(key string, value T) (existing T, exists bool) {
	node := s.c.getOrAddNode(scalar.Runes(key))
	for _, v := range s.c.resultValues(node) {
		if s.eq(v, value) {
			return v, true
		}
	}
	s.c.addResult(node, value)
	return value, false
}

// Contains reports whether key holds a value equal to value.
func (s *Set[T]) Contains(key string, value T) bool {
	node, found := s.c.getNode(scalar.Runes(key))
	if !found {
		return false
	}
	for _, v := range s.c.resultValues(node) {
		if s.eq(v, value) {
			return true
		}
	}
	return false
}

// Remove deletes the value under key equal to value, and reports whether it
// was present.
func (s *Set[T]) Remove(key string, value T) bool {
	node, found := s.c.getNode(scalar.Runes(key))
	if !found {
		return false
	}
	return s.c.removeResult(node, func(v T) bool { return s.eq(v, value) })
}

// Values returns every value stored under key.
func (s *Set[T]) Values(key string) []T {
	node, found := s.c.getNode(scalar.Runes(key))
	if !found {
		return nil
	}
	return s.c.resultValues(node)
}

// Keys returns every key in the set, in no particular order.
func (s *Set[T]) Keys() []string {
	return s.c.allKeys()
}

// Search returns a Match, with every value stored under it, for each key
// within edit distance k of pattern under metric.
func (s *Set[T]) Search(pattern string, k int, metric levenshtein.Metric) ([]Match[T], error) {
	a, err := levenshtein.Construct(pattern, k, s.ignoreCase, metric)
	if err != nil {
		return nil, err
	}
	return s.c.search(a.Start()), nil
}

// SearchPrefix returns a Match for each key such that some prefix of key is
// within edit distance k of pattern.
func (s *Set[T]) SearchPrefix(pattern string, k int, metric levenshtein.Metric) ([]Match[T], error) {
	a, err := levenshtein.Construct(pattern, k, s.ignoreCase, metric)
	if err != nil {
		return nil, err
	}
	return s.c.search(levenshtein.NewPrefix(a.Start())), nil
}
