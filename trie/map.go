package trie

import (
	"errors"

	"github.com/aaw/fuzzytrie/levenshtein"
	"github.com/aaw/fuzzytrie/scalar"
)

// ErrDuplicateKey is returned by Map.Add when key already has a value.
var ErrDuplicateKey = errors.New("trie: key already exists")

// ErrKeyNotFound is returned when a key-addressed operation targets a key
// that holds no value.
var ErrKeyNotFound = errors.New("trie: key not found")

// Map is a radix-compressed trie holding at most one value per key, the
// direct counterpart of the teacher's map[string]*node lookup but indexed by
// Unicode scalar and searchable by edit distance.
type Map[T any] struct {
	c          *core[T]
	ignoreCase bool
}

// Result is one hit of a Map search: the stored key, its single value, and
// the edit distance the automaton reported.
type Result[T any] struct {
	Key      string
	Value    T
	Distance int
}

// NewMap creates an empty Map. When ignoreCase is true, keys are compared
// and matched under Unicode case folding rather than scalar equality.
func NewMap[T any](ignoreCase bool) *Map[T] {
	policy := scalar.CaseSensitive
	if ignoreCase {
		policy = scalar.CaseInsensitive
	}
	return &Map[T]{c: newCore[T](policy), ignoreCase: ignoreCase}
}

// Add stores value under key. It returns ErrDuplicateKey if key already has
// a value.
func (m *Map[T]) Add(key string, value T) error {
	node := m.c.getOrAddNode(scalar.Runes(key))
	if m.c.entries[node].resultIndex != noIndex {
		return ErrDuplicateKey
	}
	m.c.addResult(node, value)
	return nil
}

// Set stores value under key, overwriting any existing value.
func (m *Map[T]) Set(key string, value T) {
	node := m.c.getOrAddNode(scalar.Runes(key))
	m.c.removeAllResults(node)
	m.c.addResult(node, value)
}

// Get returns the value stored under key, if any.
func (m *Map[T]) Get(key string) (T, bool) {
	var zero T
	node, found := m.c.getNode(scalar.Runes(key))
	if !found || m.c.entries[node].resultIndex == noIndex {
		return zero, false
	}
	vs := m.c.resultValues(node)
	return vs[0], true
}

// Remove deletes key's value, if any, and reports whether one was present.
func (m *Map[T]) Remove(key string) (T, bool) {
	var zero T
	node, found := m.c.getNode(scalar.Runes(key))
	if !found || m.c.entries[node].resultIndex == noIndex {
		return zero, false
	}
	v := m.c.resultValues(node)[0]
	m.c.removeAllResults(node)
	return v, true
}

// Search returns every (key, value) pair within edit distance k of pattern
// under metric.
func (m *Map[T]) Search(pattern string, k int, metric levenshtein.Metric) ([]Result[T], error) {
	a, err := levenshtein.Construct(pattern, k, m.ignoreCase, metric)
	if err != nil {
		return nil, err
	}
	return flattenResults(m.c.search(a.Start())), nil
}

// SearchPrefix returns every (key, value) pair such that some prefix of key
// is within edit distance k of pattern; this is the operation a typeahead
// box drives on every keystroke, since the user's full word is not typed
// yet.
func (m *Map[T]) SearchPrefix(pattern string, k int, metric levenshtein.Metric) ([]Result[T], error) {
	a, err := levenshtein.Construct(pattern, k, m.ignoreCase, metric)
	if err != nil {
		return nil, err
	}
	return flattenResults(m.c.search(levenshtein.NewPrefix(a.Start()))), nil
}

// Suggest is Search fixed to the Levenshtein metric, the common case of
// correcting insertions, deletions, and substitutions.
func (m *Map[T]) Suggest(pattern string, k int) ([]Result[T], error) {
	return m.Search(pattern, k, levenshtein.Levenshtein)
}

// SuggestTransposed is Search fixed to the restricted edit (OSA) metric,
// which additionally tolerates adjacent-scalar transpositions like "hte" for
// "the".
func (m *Map[T]) SuggestTransposed(pattern string, k int) ([]Result[T], error) {
	return m.Search(pattern, k, levenshtein.RestrictedEdit)
}

func flattenResults[T any](matches []Match[T]) []Result[T] {
	out := make([]Result[T], 0, len(matches))
	for _, mm := range matches {
		out = append(out, Result[T]{Key: mm.Key, Value: mm.Values[0], Distance: mm.Distance})
	}
	return out
}
