// Package blacklist scans text for any occurrence of a fixed set of banned
// words in one pass, using an Aho-Corasick automaton built over the keys of
// a trie.Set. Unlike the fuzzy and prefix searches in package trie, a
// blacklist scan is an exact multi-pattern match: it does not tolerate edit
// distance, it only needs to find every literal occurrence of every word at
// once rather than re-running a single-pattern search once per word.
//
// No third-party Aho-Corasick implementation appears anywhere in this
// module's dependency graph as a fetchable package — the automaton is built
// directly here, over Unicode scalars rather than bytes so multi-byte
// runes can never produce a false match across a rune boundary.
package blacklist

import "github.com/aaw/fuzzytrie/trie"

// state is one node of the automaton's underlying trie, extended with a
// failure link and the set of pattern indices ending at this state (a word
// ending here, or ending at any state reachable by following fail links).
type state struct {
	children map[rune]int
	fail     int
	output   []int
}

// Scanner holds a compiled Aho-Corasick automaton over a fixed word list.
type Scanner struct {
	words  []string
	states []state
}

// FromSet builds a Scanner matching every key held in set. This is the
// usual way to compile a blacklist: maintain the banned-word list itself as
// a trie.Set (so it can also be fuzzy-searched, deduplicated, and updated
// key by key), then compile it into a Scanner once it is ready to be used
// against incoming text.
func FromSet(set *trie.Set[struct{}]) *Scanner {
	return Compile(set.Keys())
}

// Compile builds a Scanner matching every key in words. Duplicate words are
// kept: each copy gets its own pattern index on the same state, so ScanAll
// reports one Hit per copy.
func Compile(words []string) *Scanner {
	s := &Scanner{words: append([]string(nil), words...)}
	s.states = []state{{children: map[rune]int{}, fail: 0}}

	for i, w := range s.words {
		cur := 0
		for _, r := range w {
			next, ok := s.states[cur].children[r]
			if !ok {
				s.states = append(s.states, state{children: map[rune]int{}, fail: 0})
				next = len(s.states) - 1
				s.states[cur].children[r] = next
			}
			cur = next
		}
		s.states[cur].output = append(s.states[cur].output, i)
	}

	s.buildFailureLinks()
	return s
}

// buildFailureLinks computes each state's failure link and output closure
// with a breadth-first traversal from the root, the standard Aho-Corasick
// construction: a state's failure link is the longest proper suffix of its
// path that is also a path from the root.
func (s *Scanner) buildFailureLinks() {
	queue := make([]int, 0, len(s.states))
	for _, child := range s.states[0].children {
		s.states[child].fail = 0
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for r, child := range s.states[cur].children {
			queue = append(queue, child)
			f := s.states[cur].fail
			for {
				if next, ok := s.states[f].children[r]; ok && next != child {
					s.states[child].fail = next
					break
				}
				if f == 0 {
					s.states[child].fail = 0
					break
				}
				f = s.states[f].fail
			}
			s.states[child].output = append(s.states[child].output, s.states[s.states[child].fail].output...)
		}
	}
}

// Hit is one occurrence of a blacklisted word found by a scan.
type Hit struct {
	Word  string
	Start int // scalar offset into the scanned text
	End   int // scalar offset one past the match
}

// ScanAny reports whether text contains any blacklisted word.
func (s *Scanner) ScanAny(text string) bool {
	cur := 0
	for _, r := range text {
		cur = s.step(cur, r)
		if len(s.states[cur].output) > 0 {
			return true
		}
	}
	return false
}

// ScanAll returns every occurrence of every blacklisted word in text, in the
// order their matches end.
func (s *Scanner) ScanAll(text string) []Hit {
	var hits []Hit
	cur := 0
	scalarIdx := 0
	for _, r := range text {
		cur = s.step(cur, r)
		for _, wi := range s.states[cur].output {
			word := s.words[wi]
			length := runeLen(word)
			hits = append(hits, Hit{Word: word, Start: scalarIdx + 1 - length, End: scalarIdx + 1})
		}
		scalarIdx++
	}
	return hits
}

func (s *Scanner) step(cur int, r rune) int {
	for {
		if next, ok := s.states[cur].children[r]; ok {
			return next
		}
		if cur == 0 {
			return 0
		}
		cur = s.states[cur].fail
	}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
