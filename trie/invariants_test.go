package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestArenaInvariants checks structural invariants of the shared arena that
// every façade depends on: a stored key's node points at a result slot,
// removing the value resets that node's resultIndex to noIndex while
// navigation still reaches the node, and the freed slot is reused rather
// than leaked.
func TestArenaInvariants(t *testing.T) {
	m := NewMap[string](false)
	require.NoError(t, m.Add("alpha", "a"))
	require.NoError(t, m.Add("beta", "b"))
	require.ErrorIs(t, m.Add("alpha", "a2"), ErrDuplicateKey)

	node, found := m.c.getNode(scalarRunes("alpha"))
	require.True(t, found)
	require.NotEqual(t, noIndex, m.c.entries[node].resultIndex)

	before := len(m.c.results)
	v, ok := m.Remove("alpha")
	require.True(t, ok)
	require.Equal(t, "a", v)

	node, found = m.c.getNode(scalarRunes("alpha"))
	require.True(t, found, "navigation still reaches an emptied node")
	require.Equal(t, noIndex, m.c.entries[node].resultIndex)

	require.NoError(t, m.Add("gamma", "c"))
	require.Equal(t, before, len(m.c.results), "freed slot should be reused rather than growing the arena")
}

// TestSetDedupInvariant checks that Set never stores two values the
// comparer considers equal under the same key, even across interleaved
// GetOrAdd and Add calls.
func TestSetDedupInvariant(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	s := NewSet[int](false, eq)

	added := s.Add("k", 1)
	require.True(t, added)
	added = s.Add("k", 1)
	require.False(t, added)

	_, exists := s.GetOrAdd("k", 1)
	require.True(t, exists)

	require.Len(t, s.Values("k"), 1)
}

func scalarRunes(s string) []rune {
	return []rune(s)
}
