package trie

import (
	"github.com/aaw/fuzzytrie/levenshtein"
	"github.com/aaw/fuzzytrie/scalar"
)

// MultiMap is a radix-compressed trie that stores every value added under a
// key, in contrast to Map which rejects a second value for the same key.
type MultiMap[T any] struct {
	c          *core[T]
	ignoreCase bool
}

// NewMultiMap creates an empty MultiMap.
func NewMultiMap[T any](ignoreCase bool) *MultiMap[T] {
	policy := scalar.CaseSensitive
	if ignoreCase {
		policy = scalar.CaseInsensitive
	}
	return &MultiMap[T]{c: newCore[T](policy), ignoreCase: ignoreCase}
}

// Add appends value to the list stored under key.
func (m *MultiMap[T]) Add(key string, value T) {
	node := m.c.getOrAddNode(scalar.Runes(key))
	m.c.addResult(node, value)
}

// Get returns every value stored under key, most recently added first.
func (m *MultiMap[T]) Get(key string) []T {
	node, found := m.c.getNode(scalar.Runes(key))
	if !found {
		return nil
	}
	return m.c.resultValues(node)
}

// Remove deletes the first value under key for which match returns true,
// and reports whether a value was removed.
func (m *MultiMap[T]) Remove(key string, match func(T) bool) bool {
	node, found := m.c.getNode(scalar.Runes(key))
	if !found {
		return false
	}
	return m.c.removeResult(node, match)
}

// RemoveAll deletes every value stored under key.
func (m *MultiMap[T]) RemoveAll(key string) {
	node, found := m.c.getNode(scalar.Runes(key))
	if !found {
		return
	}
	m.c.removeAllResults(node)
}

// Search returns a Match, with every value stored under it, for each key
// within edit distance k of pattern under metric.
func (m *MultiMap[T]) Search(pattern string, k int, metric levenshtein.Metric) ([]Match[T], error) {
	a, err := levenshtein.Construct(pattern, k, m.ignoreCase, metric)
	if err != nil {
		return nil, err
	}
	return m.c.search(a.Start()), nil
}

// SearchPrefix returns a Match for each key such that some prefix of key is
// within edit distance k of pattern.
func (m *MultiMap[T]) SearchPrefix(pattern string, k int, metric levenshtein.Metric) ([]Match[T], error) {
	a, err := levenshtein.Construct(pattern, k, m.ignoreCase, metric)
	if err != nil {
		return nil, err
	}
	return m.c.search(levenshtein.NewPrefix(a.Start())), nil
}

// Suggest is Search fixed to the Levenshtein metric.
func (m *MultiMap[T]) Suggest(pattern string, k int) ([]Match[T], error) {
	return m.Search(pattern, k, levenshtein.Levenshtein)
}

// SuggestTransposed is Search fixed to the restricted edit (OSA) metric.
func (m *MultiMap[T]) SuggestTransposed(pattern string, k int) ([]Match[T], error) {
	return m.Search(pattern, k, levenshtein.RestrictedEdit)
}
