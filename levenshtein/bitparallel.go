package levenshtein

import (
	"math/bits"

	"github.com/aaw/fuzzytrie/scalar"
)

// MaxBitparallelK is the largest distance the bitparallel automaton
// supports: at k=30 a row needs 2k+1=61 bits (62 during a step), still fits
// in a uint64.
const MaxBitparallelK = 30

// bitparallelState represents the active NFA states as k+1 bit-rows of
// width 2k+1, the classic Myers/Navarro bit-vector formulation extended with
// a transposition row (rowsT) for the restricted-edit metric. Because a row
// never exceeds 61 bits at k=30, every row fits in a single uint64 and the
// whole state is copy-cheap.
type bitparallelState struct {
	pattern []rune
	k       int
	metric  Metric
	policy  scalar.Policy

	sIndex int
	rows   [MaxBitparallelK + 1]uint64
	rowsT  [MaxBitparallelK + 1]uint64 // only populated for RestrictedEdit
	dead   bool
}

func newBitparallel(pattern []rune, k int, metric Metric, policy scalar.Policy) bitparallelState {
	s := bitparallelState{pattern: pattern, k: k, metric: metric, policy: policy}
	// Row i starts with bits 0..i set: with zero input consumed, position j
	// (0-indexed into the pattern, relative to sIndex) is reachable at edit
	// cost i iff j <= i (j deletions reach position j).
	for i := 0; i <= k; i++ {
		s.rows[i] = (uint64(1) << uint(i+1)) - 1
	}
	return s
}

// colMask returns a mask covering bits 0..2k+1: the fixed 2k+1-wide column
// window every row lives in, plus the one column a match can push a row into
// before Step shifts the rows back. At k=30 that is 62 bits, still inside a
// uint64.
func (s bitparallelState) colMask() uint64 {
	width := 2*s.k + 2
	if width >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(width) - 1
}

func (s bitparallelState) Step(c rune) (ExecState, bool) {
	if s.dead {
		return s, false
	}
	k := s.k
	remaining := len(s.pattern) - s.sIndex
	vectorLen := remaining
	if vectorLen > 2*k+1 {
		vectorLen = 2*k + 1
	}
	// vector bit j is set iff pattern[sIndex+j] == c; bits at or beyond
	// vectorLen are implicitly 0 (no pattern scalar left to match there),
	// which is exactly what "the pattern ends here" should contribute.
	var vector uint64
	for j := 0; j < vectorLen; j++ {
		if s.policy.Eq(s.pattern[s.sIndex+j], c) {
			vector |= 1 << uint(j)
		}
	}
	mask := s.colMask()

	var next bitparallelState
	next.pattern, next.k, next.metric, next.policy = s.pattern, s.k, s.metric, s.policy

	// Row bit j means "j scalars of the pattern confirmed at this edit
	// cost". Extending a match from bit j to bit j+1 therefore has to test
	// vector bit j (does pattern[sIndex+j], the next scalar due, equal c)
	// before shifting — AND-then-shift, not shift-then-AND — or the test
	// lands on the wrong pattern scalar.
	next.rows[0] = ((s.rows[0] & vector) << 1) & mask
	for i := 1; i <= k; i++ {
		row := (s.rows[i] & vector) << 1 // match: same cost, confirm one more
		row |= s.rows[i-1] << 1          // substitution: +1 cost, confirm one more
		row |= s.rows[i-1]               // insertion: +1 cost, same confirmed count
		for d := 1; d <= i; d++ {
			row |= ((s.rows[i-d] << uint(d)) & vector) << 1 // delete d pattern scalars then match the next
		}
		if s.metric == RestrictedEdit {
			row |= ((s.rowsT[i] >> 1) & vector) << 2 // complete a pending transposition
		}
		row &= mask
		// Subsumption: drop bits already covered by the cheaper row i-1
		// (a position reachable at cost i-1 is never worth reaching again
		// at cost i).
		sub := next.rows[i-1] | (next.rows[i-1] >> 1)
		row &^= sub
		next.rows[i] = row

		if s.metric == RestrictedEdit {
			// Record a pending transposition: row i-1 bit j (j confirmed)
			// with the current scalar standing in for pattern[j+1]; the
			// next step completes it into row i (one edit) by matching
			// pattern[j].
			next.rowsT[i] = ((s.rows[i-1] << 1) & vector) & mask
		}
	}

	var union uint64
	for i := 0; i <= k; i++ {
		union |= next.rows[i]
	}
	if union == 0 {
		next.dead = true
		return next, false
	}

	shift := bits.TrailingZeros64(union)
	if shift > 0 {
		for i := 0; i <= k; i++ {
			next.rows[i] >>= uint(shift)
			next.rowsT[i] >>= uint(shift)
		}
	}
	next.sIndex = s.sIndex + shift
	return next, true
}

func (s bitparallelState) Final() bool {
	final, _ := s.finalDistance()
	return final
}

func (s bitparallelState) Distance() int {
	_, d := s.finalDistance()
	return d
}

// finalDistance reports whether any tracked NFA position accepts once the
// pattern is exhausted, folding in pattern scalars left unconsumed as
// trailing deletions: a bit set at column p in row i means p pattern
// scalars are confirmed at cost i, and the (d-p) pattern scalars still
// beyond that can be spent as deletions as long as the remaining budget
// k-i covers them. Checking only the exact column d (as a naive port of
// the bit-parallel recurrence does) misses every match that ends in a
// deletion of the pattern's tail, e.g. pattern "food" against text "foo".
func (s bitparallelState) finalDistance() (bool, int) {
	if s.dead {
		return false, 0
	}
	d := len(s.pattern) - s.sIndex
	if d < 0 {
		return false, 0
	}
	maxP := 2 * s.k
	if maxP > d {
		maxP = d
	}
	best := -1
	for i := 0; i <= s.k; i++ {
		budget := s.k - i
		lo := d - budget
		if lo < 0 {
			lo = 0
		}
		for p := lo; p <= maxP; p++ {
			if s.rows[i]&(1<<uint(p)) == 0 {
				continue
			}
			total := i + (d - p)
			if total <= s.k && (best == -1 || total < best) {
				best = total
			}
		}
	}
	return best != -1, best
}
