package levenshtein

import (
	"errors"
	"fmt"

	"github.com/aaw/fuzzytrie/scalar"
)

// ErrNegativeK is returned when a negative edit distance is requested.
var ErrNegativeK = errors.New("levenshtein: k must be nonnegative")

// ErrKTooLarge is returned when k exceeds MaxBitparallelK, the ceiling for
// any matcher this package can build.
var ErrKTooLarge = fmt.Errorf("levenshtein: k must be <= %d", MaxBitparallelK)

// maxCachedTemplateK is the largest k the cached subset-construction
// template path (C5) serves; above it, Start falls straight to the
// bitparallel matcher (C6).
const maxCachedTemplateK = 3

// Automaton accepts every string within edit distance k of a pattern. It is
// an immutable value: every call to Start produces a fresh, independent
// ExecState.
type Automaton struct {
	pattern []rune
	k       int
	metric  Metric
	policy  scalar.Policy
}

// Construct builds an automaton for pattern accepting strings within edit
// distance k under metric. k must be in [0, MaxBitparallelK]. k=0 uses the
// dedicated distance-0 walker; Levenshtein with k in [1,3] uses the small-k
// tables or the cached, subset-constructed template; every other k, and
// RestrictedEdit with any k >= 1, uses the bitparallel matcher (see Start).
func Construct(pattern string, k int, ignoreCase bool, metric Metric) (Automaton, error) {
	if k < 0 {
		return Automaton{}, ErrNegativeK
	}
	if k > MaxBitparallelK {
		return Automaton{}, ErrKTooLarge
	}
	policy := scalar.CaseSensitive
	if ignoreCase {
		policy = scalar.CaseInsensitive
	}
	return Automaton{pattern: scalar.Runes(pattern), k: k, metric: metric, policy: policy}, nil
}

// Start returns a fresh execution state for this automaton. Dispatch follows
// spec component order from cheapest/most-specialised to most general: the
// distance-0 exact walker (C4), the distance-1/2 packed-table DFAs (C4), the
// cached general subset-construction template up to k=3 (C5), then the
// bitparallel matcher (C6) for everything else, including every
// RestrictedEdit query regardless of k (see DESIGN.md for why C4/C5 don't
// have a restricted-edit form).
func (a Automaton) Start() ExecState {
	if a.k == 0 {
		return newExact(a.pattern, a.policy)
	}
	if a.metric == Levenshtein {
		if a.k == 1 || a.k == 2 {
			return newSmallK(a.k, a.pattern, a.policy)
		}
		if a.k <= maxCachedTemplateK {
			return newTemplateExec(a.k, a.pattern, a.policy)
		}
	}
	return newBitparallel(a.pattern, a.k, a.metric, a.policy)
}

// Matches reports whether text is within distance k of the pattern.
func (a Automaton) Matches(text string) bool {
	ok, _ := a.MatchesDistance(text)
	return ok
}

// MatchesDistance reports whether text is within distance k of the pattern,
// and if so, the exact distance.
func (a Automaton) MatchesDistance(text string) (bool, int) {
	st := a.Start()
	for _, r := range scalar.Runes(text) {
		next, ok := st.Step(r)
		if !ok {
			return false, 0
		}
		st = next
	}
	if !st.Final() {
		return false, 0
	}
	return true, st.Distance()
}

// MatchesPrefix reports whether some prefix of text is within distance k of
// the pattern, the distance of the best such prefix, and that prefix's
// length and the unmatched suffix length, both measured in scalars.
func (a Automaton) MatchesPrefix(text string) (ok bool, distance, prefixLen, suffixLen int) {
	st := NewPrefix(a.Start())
	for _, r := range scalar.Runes(text) {
		next, alive := st.Step(r)
		st = next.(*prefixState)
		if !alive {
			break
		}
	}
	ps := st.(*prefixState)
	if !ps.Final() {
		return false, 0, 0, 0
	}
	p, s, _ := ps.PrefixMetadata()
	return true, ps.Distance(), p, s
}
