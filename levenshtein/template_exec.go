package levenshtein

import "github.com/aaw/fuzzytrie/scalar"

// templateExecState is the execution state for the cached, subset-constructed
// Levenshtein template (C5). It threads a pattern and a case policy through a
// Template's pattern-independent state graph: sIndex is how many pattern
// scalars have been committed to the left of the active window, and cur is
// the current templateState within that window.
type templateExecState struct {
	tmpl    *Template
	pattern []rune
	policy  scalar.Policy
	sIndex  int
	cur     *templateState // nil means dead
}

func newTemplateExec(k int, pattern []rune, policy scalar.Policy) templateExecState {
	tmpl := templateFor(k)
	return templateExecState{tmpl: tmpl, pattern: pattern, policy: policy, cur: tmpl.start}
}

func (s templateExecState) Step(r rune) (ExecState, bool) {
	if s.cur == nil {
		return s, false
	}
	next, shift := s.tmpl.step(s.cur, s.pattern[s.sIndex:], r, s.policy)
	if next == nil {
		return templateExecState{tmpl: s.tmpl, pattern: s.pattern, policy: s.policy, sIndex: s.sIndex}, false
	}
	return templateExecState{tmpl: s.tmpl, pattern: s.pattern, policy: s.policy, sIndex: s.sIndex + shift, cur: next}, true
}

func (s templateExecState) Final() bool {
	final, _ := s.finalDistance()
	return final
}

func (s templateExecState) Distance() int {
	_, d := s.finalDistance()
	return d
}

func (s templateExecState) finalDistance() (bool, int) {
	if s.cur == nil {
		return false, 0
	}
	remaining := len(s.pattern) - s.sIndex
	best := -1
	// A position with i <= remaining accepts by deleting the remaining-i
	// pattern scalars still ahead of it, if the edit budget covers them.
	for _, p := range s.cur.positions {
		e := int(p.e) + remaining - int(p.i)
		if int(p.i) <= remaining && e <= s.tmpl.k && (best == -1 || e < best) {
			best = e
		}
	}
	return best != -1, best
}
