package levenshtein

import "github.com/aaw/fuzzytrie/scalar"

// exactState walks pattern position by position and accepts only the string
// equal to pattern itself (edit distance 0). This is the distance-0
// specialization: no edit bookkeeping is needed at all.
type exactState struct {
	pattern []rune
	pos     int
	policy  scalar.Policy
	dead    bool
}

func newExact(pattern []rune, policy scalar.Policy) exactState {
	return exactState{pattern: pattern, policy: policy}
}

func (s exactState) Step(r rune) (ExecState, bool) {
	if s.dead || s.pos >= len(s.pattern) || !s.policy.Eq(s.pattern[s.pos], r) {
		return exactState{pattern: s.pattern, policy: s.policy, dead: true}, false
	}
	return exactState{pattern: s.pattern, pos: s.pos + 1, policy: s.policy}, true
}

func (s exactState) Final() bool {
	return !s.dead && s.pos == len(s.pattern)
}

func (s exactState) Distance() int {
	return 0
}
