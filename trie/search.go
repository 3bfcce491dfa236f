package trie

import (
	"github.com/aaw/fuzzytrie/levenshtein"
)

// Match is one result of a fuzzy or prefix search: the key that matched,
// every value stored under it, and the edit distance levenshtein.ExecState
// reported at the point the match was recorded.
type Match[T any] struct {
	Key      string
	Values   []T
	Distance int
}

// recursionDepthLimit bounds how deep search descends the call stack before
// switching to an explicit-stack walker. A trie built from keys that share a
// long common structure (a 10,000-scalar run of the same rune, for example)
// is a valid, if pathological, input; recursing one Go stack frame per edge
// would still not realistically overflow Go's growable stacks, but the
// switch keeps traversal's stack usage bounded and independent of input
// shape, matching how this trie is meant to behave under adversarial data.
const recursionDepthLimit = 20

// search walks every edge of the trie reachable from the root, driving state
// one scalar at a time, and collects a Match for every node whose exec state
// is Final and that holds at least one value. It depends only on the
// ExecState interface, so the same walk serves both whole-key fuzzy search
// (state from an Automaton) and prefix search (state wrapped with
// levenshtein.NewPrefix).
func (c *core[T]) search(state levenshtein.ExecState) []Match[T] {
	var out []Match[T]
	c.searchRec(0, state, nil, 0, &out)
	return out
}

func (c *core[T]) searchRec(node int, state levenshtein.ExecState, key []rune, depth int, out *[]Match[T]) {
	c.recordMatch(node, state, key, out)

	if depth >= recursionDepthLimit {
		c.searchIter(node, state, key, out)
		return
	}

	for child := c.entries[node].firstChild; child != noIndex; child = c.entries[child].nextSibling {
		childState, childKey, ok := c.stepChild(state, key, child)
		if !ok {
			continue
		}
		c.searchRec(child, childState, childKey, depth+1, out)
	}
}

// searchIter continues the walk started by searchRec using an explicit
// stack instead of Go call recursion, once depth has reached
// recursionDepthLimit.
func (c *core[T]) searchIter(node int, state levenshtein.ExecState, key []rune, out *[]Match[T]) {
	type frame struct {
		node  int
		state levenshtein.ExecState
		key   []rune
	}
	stack := []frame{{node: node, state: state, key: key}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for child := c.entries[f.node].firstChild; child != noIndex; child = c.entries[child].nextSibling {
			childState, childKey, ok := c.stepChild(f.state, f.key, child)
			if !ok {
				continue
			}
			c.recordMatch(child, childState, childKey, out)
			stack = append(stack, frame{node: child, state: childState, key: childKey})
		}
	}
}

// allKeys returns every key stored in the trie, in no particular order. It
// walks the same way search does but without driving an automaton, since
// every edge is always worth descending.
func (c *core[T]) allKeys() []string {
	var out []string
	type frame struct {
		node int
		key  []rune
	}
	stack := []frame{{node: 0, key: nil}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node != 0 && c.entries[f.node].resultIndex != noIndex {
			out = append(out, string(f.key))
		}
		for child := c.entries[f.node].firstChild; child != noIndex; child = c.entries[child].nextSibling {
			ce := c.entries[child]
			childKey := make([]rune, 0, len(f.key)+1+ce.tailLen)
			childKey = append(childKey, f.key...)
			childKey = append(childKey, ce.head)
			childKey = append(childKey, c.tail(ce)...)
			stack = append(stack, frame{node: child, key: childKey})
		}
	}
	return out
}

func (c *core[T]) recordMatch(node int, state levenshtein.ExecState, key []rune, out *[]Match[T]) {
	if node == 0 {
		return
	}
	if c.entries[node].resultIndex == noIndex || !state.Final() {
		return
	}
	*out = append(*out, Match[T]{Key: string(key), Values: c.resultValues(node), Distance: state.Distance()})
}

// stepChild drives state through child's edge label (its head scalar then
// every tail scalar) and builds the key that would result from descending
// into it. It reports ok=false as soon as the automaton dies partway
// through the edge, letting the caller prune the whole subtree below child
// without visiting it.
func (c *core[T]) stepChild(state levenshtein.ExecState, key []rune, child int) (levenshtein.ExecState, []rune, bool) {
	ce := c.entries[child]
	st, ok := state.Step(ce.head)
	if !ok {
		return nil, nil, false
	}
	tail := c.tail(ce)
	for _, r := range tail {
		st, ok = st.Step(r)
		if !ok {
			return nil, nil, false
		}
	}
	childKey := make([]rune, 0, len(key)+1+len(tail))
	childKey = append(childKey, key...)
	childKey = append(childKey, ce.head)
	childKey = append(childKey, tail...)
	return st, childKey, true
}
