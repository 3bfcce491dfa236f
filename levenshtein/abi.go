// Package levenshtein implements Levenshtein automata: finite-state machines
// parameterized by a pattern and a maximum edit distance k that accept
// exactly the strings within edit distance ≤ k of the pattern, under either
// the classic Levenshtein metric or the restricted-edit (OSA) metric.
//
// Automata are immutable once constructed; every automaton produces
// value-type execution states via Start, and those states are threaded
// through Step one scalar at a time with no per-step allocation. This is the
// contract every matcher in this package satisfies (ExecState below).
// trie.search drives arbitrary ExecState implementations through this
// interface on the per-scalar hot path; see DESIGN.md's Open Questions for
// why that single boxed form, rather than a monomorphized path per concrete
// matcher, is the accepted reading of this package's ABI contract in Go.
package levenshtein

// ExecState is the contract every automaton execution state satisfies. A
// state is produced by Automaton.Start and then threaded through Step once
// per input scalar; it is a plain value and must be cheap to copy (O(1) for
// the exact and template matchers, O(k) for the bitparallel one).
type ExecState interface {
	// Step consumes one scalar and returns the successor state. ok is false
	// when no path from this state can still reach acceptance; the returned
	// state is then unusable except as noted for the prefix wrapper.
	Step(r rune) (next ExecState, ok bool)

	// Final reports whether the scalars consumed so far are within the
	// automaton's distance bound of its pattern.
	Final() bool

	// Distance returns the edit distance of the consumed scalars from the
	// pattern. Only valid when Final returns true.
	Distance() int
}

// PrefixState is implemented by execution states that also track, once
// final, how much of the consumed input constitutes the matched prefix. Only
// the prefix wrapper (NewPrefix) implements this; ordinary matcher states do
// not, and callers should type-assert for it rather than assume it.
type PrefixState interface {
	ExecState
	// PrefixMetadata returns (prefixLen, suffixLen) once a match has been
	// seen: prefixLen is the scalar length of the matched prefix, suffixLen
	// the scalar length of the unmatched remainder consumed since. ok is
	// false until the first match is recorded.
	PrefixMetadata() (prefixLen, suffixLen int, ok bool)
}
