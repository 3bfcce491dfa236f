package levenshtein

// prefixState wraps any inner ExecState to accept as soon as any prefix of
// the consumed input is within the inner automaton's distance bound, while
// still reporting how much of the input was the matched prefix versus
// unmatched suffix. This is what lets the trie keep walking into descendant
// nodes after a match, emitting every key sharing that matched prefix.
type prefixState struct {
	inner ExecState
	// stopped is set once inner.Step returns ok=false; from then on this
	// wrapper keeps reporting success (if a match was already seen) without
	// advancing inner any further.
	stopped bool
	// matched records whether any match has been seen yet.
	matched bool
	// bestDistance is the smallest distance seen among inner's final states.
	bestDistance int
	lengthSoFar  int
	// suffixLength counts scalars consumed since the best match; reset to
	// -1 whenever a strictly better match is recorded.
	suffixLength int
}

// NewPrefix wraps inner in a prefix tracker.
func NewPrefix(inner ExecState) ExecState {
	s := &prefixState{inner: inner, suffixLength: -1}
	if inner.Final() {
		// The empty prefix already matches.
		s.matched, s.bestDistance, s.suffixLength = true, inner.Distance(), 0
	}
	return s
}

func (s *prefixState) Step(r rune) (ExecState, bool) {
	next := *s

	if !next.stopped {
		innerNext, ok := next.inner.Step(r)
		if !ok {
			next.stopped = true
		} else {
			next.inner = innerNext
			if innerNext.Final() {
				d := innerNext.Distance()
				if !next.matched || d < next.bestDistance {
					next.matched = true
					next.bestDistance = d
					next.suffixLength = -1
				}
			}
		}
	}
	next.lengthSoFar++
	next.suffixLength++

	// The wrapper "succeeds" from the caller's point of view as long as a
	// match has ever been seen, even after the inner automaton has died:
	// this is what lets the trie driver keep descending to enumerate every
	// key that extends the matched prefix.
	return &next, next.matched || !next.stopped
}

func (s *prefixState) Final() bool {
	return s.matched
}

func (s *prefixState) Distance() int {
	return s.bestDistance
}

func (s *prefixState) PrefixMetadata() (prefixLen, suffixLen int, ok bool) {
	if !s.matched {
		return 0, 0, false
	}
	return s.lengthSoFar - s.suffixLength, s.suffixLength, true
}
