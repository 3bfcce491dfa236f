package levenshtein

import (
	"sync"

	"github.com/aaw/fuzzytrie/scalar"
)

// nfaPos is one state of the underlying Levenshtein NFA: i scalars of the
// pattern consumed (relative to the owning templateState's window start),
// e edits spent to get there.
type nfaPos struct {
	i int8
	e int8
}

// templateState is one DFA state of a (k, Levenshtein) template: a
// dominated-pruned, normalized set of nfaPos pairs shared by every pattern of
// every length (patterns only determine which characteristic vector a given
// input scalar produces, not the state graph itself).
type templateState struct {
	positions []nfaPos // sorted, normalized so min i == 0

	mu          sync.RWMutex
	transitions map[transitionKey]transitionResult
}

type transitionKey struct {
	window int // characteristic vector width used for this transition
	cv      uint64
}

type transitionResult struct {
	next  *templateState // nil means dead
	shift int8
}

// Template is the cached, pattern-independent shape of a distance-k
// Levenshtein automaton. It is built once per k via subset construction over
// the classic Levenshtein NFA (match, substitution, insertion and deletion
// transitions over (i,e) positions) and then reused by every pattern requesting that k; instantiation only binds a
// pattern and a case policy on top of it.
//
// Locking mirrors coregx-coregex's dfa/lazy.Cache: an RWMutex over a plain
// map, because the read path (an already-seen state/transition) vastly
// outnumbers the write path (discovering a new one).
type Template struct {
	k int

	mu     sync.RWMutex
	byKey  map[string]*templateState
	start  *templateState
}

var (
	templateCacheMu sync.RWMutex
	templateCache   = map[int]*Template{}
)

// templateFor returns the cached Levenshtein template for distance k,
// building it lazily on first use.
func templateFor(k int) *Template {
	templateCacheMu.RLock()
	t, ok := templateCache[k]
	templateCacheMu.RUnlock()
	if ok {
		return t
	}

	templateCacheMu.Lock()
	defer templateCacheMu.Unlock()
	if t, ok := templateCache[k]; ok {
		return t
	}
	t = newTemplate(k)
	templateCache[k] = t
	return t
}

func newTemplate(k int) *Template {
	t := &Template{k: k, byKey: make(map[string]*templateState)}
	start := dominate(closeEpsilon([]nfaPos{{0, 0}}, k, maxInt8))
	norm, _ := normalize(start)
	t.start = t.intern(norm)
	return t
}

// intern returns the canonical *templateState for a normalized position set,
// creating and storing one if this is the first time it's been seen.
func (t *Template) intern(positions []nfaPos) *templateState {
	key := canonicalKey(positions)

	t.mu.RLock()
	s, ok := t.byKey[key]
	t.mu.RUnlock()
	if ok {
		return s
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.byKey[key]; ok {
		return s
	}
	s = &templateState{positions: positions, transitions: make(map[transitionKey]transitionResult)}
	t.byKey[key] = s
	return s
}

// step advances state by one input scalar c, given the pattern scalars still
// ahead of sIndex (patternTail) under policy. It returns the next
// templateState (nil if the automaton dies) and how far sIndex should
// advance.
func (t *Template) step(state *templateState, patternTail []rune, c rune, policy scalar.Policy) (*templateState, int) {
	k := t.k
	remaining := len(patternTail)
	w := remaining
	if w > 2*k+1 {
		w = 2*k + 1
	}

	var cv uint64
	for j := 0; j < w; j++ {
		if policy.Eq(patternTail[j], c) {
			cv |= 1 << uint(j)
		}
	}
	tk := transitionKey{window: w, cv: cv}

	state.mu.RLock()
	res, ok := state.transitions[tk]
	state.mu.RUnlock()
	if ok {
		return res.next, int(res.shift)
	}

	closed := candidateClosure(state.positions, k, w, cv)
	if len(closed) == 0 {
		state.mu.Lock()
		state.transitions[tk] = transitionResult{}
		state.mu.Unlock()
		return nil, 0
	}
	norm, shift := normalize(closed)
	next := t.intern(norm)

	state.mu.Lock()
	state.transitions[tk] = transitionResult{next: next, shift: int8(shift)}
	state.mu.Unlock()
	return next, shift
}

const maxInt8 = 1<<7 - 1

// candidateClosure computes the raw successor positions of positions under
// input characteristic vector cv over a window of width w (match,
// substitution, insertion, and j deletions followed by a match), then closes
// them under deletion (closeEpsilon) and prunes dominated pairs (dominate).
//
// w doubles as both the characteristic-vector width and the "remaining
// pattern scalars" bound used by closeEpsilon's stopping condition and the
// substitution-eligibility check below. That's exact, not an approximation:
// step always calls this with w = min(realRemaining, 2k+1), and whenever
// w is saturated at 2k+1 every position's i is already <= 2k < w, so the
// bound never actually distinguishes w from the true (larger) remaining.
// That equivalence is what lets smallk.go call this with only a residual
// window length and no concrete pattern at all, producing a table
// byte-for-byte interchangeable with what step would compute on demand.
func candidateClosure(positions []nfaPos, k, w int, cv uint64) []nfaPos {
	raw := make([]nfaPos, 0, len(positions)*3)
	for _, p := range positions {
		if int(p.i) < w && cv&(1<<uint(p.i)) != 0 {
			raw = append(raw, nfaPos{p.i + 1, p.e}) // match
		}
		if p.e < int8(k) {
			if int(p.i) < w {
				raw = append(raw, nfaPos{p.i + 1, p.e + 1}) // substitution
			}
			raw = append(raw, nfaPos{p.i, p.e + 1}) // insertion
		}
		for j := 1; int(p.e)+j <= k && int(p.i)+j < w; j++ {
			if cv&(1<<uint(int(p.i)+j)) != 0 { // delete j pattern scalars, then match
				raw = append(raw, nfaPos{p.i + int8(j) + 1, p.e + int8(j)})
			}
		}
	}
	return dominate(closeEpsilon(raw, k, w))
}

// closeEpsilon extends positions with every position reachable by deletion
// (an epsilon transition in the NFA: consume no input, spend one edit,
// advance one pattern scalar) up to the edit budget k, bounded by remaining
// (how many pattern scalars are left in this window).
func closeEpsilon(positions []nfaPos, k, remaining int) []nfaPos {
	seen := map[nfaPos]bool{}
	queue := append([]nfaPos(nil), positions...)
	for _, p := range positions {
		seen[p] = true
	}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if int(p.e) >= k || int(p.i) >= remaining {
			continue
		}
		np := nfaPos{p.i + 1, p.e + 1}
		if !seen[np] {
			seen[np] = true
			positions = append(positions, np)
			queue = append(queue, np)
		}
	}
	return positions
}

// dominate discards pairs subsumed by a cheaper pair: (i,e) is dominated by
// (i',e') when e' <= e and |i-i'| <= e-e', since anything reachable from
// (i,e) is already reachable, at no greater cost, from (i',e').
func dominate(positions []nfaPos) []nfaPos {
	out := positions[:0:0]
	for idx, p := range positions {
		dominated := false
		for j, q := range positions {
			if idx == j {
				continue
			}
			if q.e > p.e || (q.e == p.e && j > idx) {
				continue
			}
			diff := int(p.i) - int(q.i)
			if diff < 0 {
				diff = -diff
			}
			if diff <= int(p.e-q.e) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, p)
		}
	}
	return dedupe(out)
}

func dedupe(positions []nfaPos) []nfaPos {
	seen := map[nfaPos]bool{}
	out := positions[:0:0]
	for _, p := range positions {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// normalize sorts positions and shifts every i down by the minimum i present,
// returning the normalized (pattern-length-independent) set and the shift
// amount (how far the window advanced).
func normalize(positions []nfaPos) ([]nfaPos, int) {
	min := int8(maxInt8)
	for _, p := range positions {
		if p.i < min {
			min = p.i
		}
	}
	out := make([]nfaPos, len(positions))
	for i, p := range positions {
		out[i] = nfaPos{p.i - min, p.e}
	}
	sortPositions(out)
	return out, int(min)
}

func sortPositions(positions []nfaPos) {
	for i := 1; i < len(positions); i++ {
		for j := i; j > 0 && less(positions[j], positions[j-1]); j-- {
			positions[j], positions[j-1] = positions[j-1], positions[j]
		}
	}
}

func less(a, b nfaPos) bool {
	if a.i != b.i {
		return a.i < b.i
	}
	return a.e < b.e
}

func canonicalKey(positions []nfaPos) string {
	buf := make([]byte, len(positions)*2)
	for i, p := range positions {
		buf[i*2] = byte(p.i)
		buf[i*2+1] = byte(p.e)
	}
	return string(buf)
}
