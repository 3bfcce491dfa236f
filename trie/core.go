// Package trie implements a radix-compressed trie over Unicode scalar values,
// storing (key, value) pairs in three arenas — entries, results, and tail
// data — addressed by plain slice indices rather than pointers, and searched
// by driving a levenshtein.ExecState through every path simultaneously,
// pruning subtrees whose prefix the automaton has already rejected.
//
// Three façades sit on top of the shared core: Map (one value per key,
// duplicate keys rejected), MultiMap (many values per key, duplicates
// allowed), and Set (many values per key, deduplicated by an equality
// comparer). All three navigate and search through the same arena.
package trie

import (
	"github.com/aaw/fuzzytrie/scalar"
)

// noIndex is the sentinel terminating every child list, sibling list, and
// result list, and marking a node with no value and a slot with no result.
const noIndex = -1

// entry is one node of the trie: the scalar labelling the edge into it, a
// window into the shared tailData buffer giving the rest of the edge label,
// and arena indices (never pointers) for its first child, its next sibling
// in its parent's child list, and the head of its result list.
type entry struct {
	head        rune
	tailStart   int
	tailLen     int
	firstChild  int
	nextSibling int
	resultIndex int
}

// resultSlot is one element of a node's result list. Map, MultiMap, and Set
// all share this layout (value plus next-slot index); Map's façade enforces
// that a key's list never grows past one element instead of the arena
// encoding that restriction structurally, which keeps one implementation
// underneath all three value semantics.
type resultSlot[T any] struct {
	value T
	next  int
}

// core is the shared radix trie. It is not exported: each façade wraps one
// and exposes only the write path appropriate to its value semantics.
type core[T any] struct {
	policy scalar.Policy

	entries  []entry
	tailData []rune
	results  []resultSlot[T]

	freeResultHead int
}

func newCore[T any](policy scalar.Policy) *core[T] {
	c := &core[T]{policy: policy, freeResultHead: noIndex}
	c.entries = make([]entry, 1, 16)
	c.entries[0] = entry{head: scalar.Replacement, firstChild: noIndex, nextSibling: noIndex, resultIndex: noIndex}
	c.tailData = make([]rune, 0, 16)
	c.results = make([]resultSlot[T], 0, 16)
	return c
}

func (c *core[T]) tail(e entry) []rune {
	return c.tailData[e.tailStart : e.tailStart+e.tailLen]
}

// findChild walks the sibling list of node's children looking for one whose
// head scalar matches r under the core's case policy.
func (c *core[T]) findChild(node int, r rune) int {
	for i := c.entries[node].firstChild; i != noIndex; i = c.entries[i].nextSibling {
		if c.policy.Eq(c.entries[i].head, r) {
			return i
		}
	}
	return noIndex
}

// navResult describes where navigation for a key ended up.
type navResult struct {
	node  int  // the node navigation reached, or the node that needs splitting
	found bool // true iff node is exactly the key's terminal node
}

// navigate walks key from the root as far as it can without mutating the
// trie, the read-only half of §4.8's three navigation outcomes. It stops
// either at the key's terminal node (found=true) or at the node where a
// split would be required to insert the key (found=false).
func (c *core[T]) navigate(key []rune) navResult {
	node := 0
	i := 0
	for i < len(key) {
		child := c.findChild(node, key[i])
		if child == noIndex {
			return navResult{node: node, found: false}
		}
		e := c.entries[child]
		tail := c.tail(e)
		m := commonLen(tail, key[i+1:], c.policy)
		switch {
		case m == len(tail) && i+1+m == len(key):
			// Tail fully matches and key is exhausted: child is the target.
			return navResult{node: child, found: true}
		case m == len(tail):
			// Tail fully matches, key has more: descend.
			node = child
			i += 1 + m
		default:
			// Tail mismatches at offset m, or key ran out mid-tail: split
			// point is inside child.
			return navResult{node: child, found: false}
		}
	}
	// Key exhausted exactly at node (possible only for the empty key,
	// landing on the root).
	return navResult{node: node, found: true}
}

func commonLen(a, b []rune, policy scalar.Policy) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if !policy.Eq(a[i], b[i]) {
			return i
		}
	}
	return n
}

// getNode returns the terminal node for key and true, or false if key is
// absent (the node returned is then where navigation stopped).
func (c *core[T]) getNode(key []rune) (int, bool) {
	r := c.navigate(key)
	return r.node, r.found
}

// getOrAddNode navigates key, inserting branch nodes as needed, and returns
// the (possibly new) terminal node for key.
func (c *core[T]) getOrAddNode(key []rune) int {
	node := 0
	i := 0
	for i < len(key) {
		child := c.findChild(node, key[i])
		if child == noIndex {
			return c.appendChild(node, key[i], key[i+1:])
		}
		e := c.entries[child]
		tail := c.tail(e)
		m := commonLen(tail, key[i+1:], c.policy)
		switch {
		case m == len(tail) && i+1+m == len(key):
			return child
		case m == len(tail):
			node = child
			i += 1 + m
		default:
			return c.splitChild(child, m, key[i+1+m:])
		}
	}
	return node
}

// appendChild adds a brand new child labelled head+tail under node.
func (c *core[T]) appendChild(node int, head rune, tail []rune) int {
	start := len(c.tailData)
	c.tailData = append(c.tailData, tail...)
	idx := len(c.entries)
	c.entries = append(c.entries, entry{
		head:        head,
		tailStart:   start,
		tailLen:     len(tail),
		firstChild:  noIndex,
		nextSibling: c.entries[node].firstChild,
		resultIndex: noIndex,
	})
	c.entries[node].firstChild = idx
	return idx
}

// splitChild splits child's edge label at offset m: child's own suffix past
// m becomes a new grandchild inheriting child's old children and value, and
// child's tail is truncated to its first m scalars. If rest (the incoming
// key's unmatched tail) is non-empty, a second new child is added for it;
// otherwise the new value attaches directly to the truncated child. Returns
// the terminal node for the key being inserted.
func (c *core[T]) splitChild(child, m int, rest []rune) int {
	old := c.entries[child]
	oldTail := append([]rune(nil), c.tail(old)...)

	grandHead := oldTail[m]
	grandRest := oldTail[m+1:]
	grandStart := len(c.tailData)
	c.tailData = append(c.tailData, grandRest...)
	grandIdx := len(c.entries)
	c.entries = append(c.entries, entry{
		head:        grandHead,
		tailStart:   grandStart,
		tailLen:     len(grandRest),
		firstChild:  old.firstChild,
		nextSibling: noIndex,
		resultIndex: old.resultIndex,
	})

	c.entries[child].tailStart = old.tailStart
	c.entries[child].tailLen = m
	c.entries[child].firstChild = grandIdx
	c.entries[child].resultIndex = noIndex

	if len(rest) == 0 {
		return child
	}
	return c.appendChild(child, rest[0], rest[1:])
}
