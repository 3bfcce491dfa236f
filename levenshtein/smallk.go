package levenshtein

import (
	"sync"

	"github.com/aaw/fuzzytrie/scalar"
)

// smallKTable is a precomputed, pattern-independent transition/acceptance
// table for a (Levenshtein, k) automaton with k in {1,2} — component C4,
// "small-k hand-specialised automata". It is the table-compiled sibling of
// the general subset-constructed template (template.go, C5): same states,
// same transitions, produced by the same candidateClosure subset
// construction, just laid out as flat arrays instead of a pointer-chasing
// state graph, trading template.go's lazy per-(state,window,cv) cache for an
// exhaustively precomputed one. The two are semantically identical by
// construction; this path exists only so the hot per-scalar loop for the
// overwhelmingly common k=1 and k=2 cases is array indexing, not map lookups
// and position-set algebra.
type smallKTable struct {
	k int

	// states[id] is the canonical templateState for DFA state id. states[0]
	// is always the start state.
	states []*templateState

	// trans[w] is a flat array of size len(states)<<w; trans[w][id<<w|cv]
	// packs a transition as (advance<<8 | nextState) in a single 16-bit
	// word, or deadTransition if the automaton dies on that input. w ranges
	// over every residual window length from 0 to 2k+1 inclusive, matching
	// template.go's step: w = min(patternScalarsRemaining, 2k+1).
	trans [][]uint16

	// isFinal[w] is a 64-bit mask, bit id set iff state id accepts when
	// exactly w pattern scalars remain (some tracked position (i,e) has
	// i <= w and e+(w-i) <= k, deleting the w-i pattern scalars left).
	// A 64-bit mask is only correct as long as a (Levenshtein, k<=2)
	// template never discovers 64 or more states, checked in
	// buildSmallKTable.
	isFinal []uint64

	// dist[w][id] is the smallest such e+(w-i) among those positions,
	// meaningful only where isFinal[w]'s corresponding bit is set.
	dist [][]byte
}

// deadTransition marks a transition that kills the automaton. Real state ids
// for k in {1,2} never approach 255 (checked in buildSmallKTable), so using
// 0xFF as the low byte can't collide with a live next-state id.
const deadTransition = 0xFFFF

const maxSmallKStates = 64

var (
	smallKMu     sync.RWMutex
	smallKTables = map[int]*smallKTable{}
)

// smallKTableFor returns the cached C4 table for distance k (1 or 2),
// building it lazily on first use via the same lazy-double-checked-map
// pattern as templateFor.
func smallKTableFor(k int) *smallKTable {
	smallKMu.RLock()
	t, ok := smallKTables[k]
	smallKMu.RUnlock()
	if ok {
		return t
	}

	smallKMu.Lock()
	defer smallKMu.Unlock()
	if t, ok := smallKTables[k]; ok {
		return t
	}
	t = buildSmallKTable(k)
	smallKTables[k] = t
	return t
}

// buildSmallKTable enumerates every templateState reachable from the
// distance-k template's start state, across every residual window length
// and every characteristic vector, and packs the result into smallKTable's
// flat arrays. It uses candidateClosure directly — the same subset
// construction Template.step (template.go) drives off a concrete pattern — so this table and
// the general template are guaranteed to agree on every query.
func buildSmallKTable(k int) *smallKTable {
	tmpl := templateFor(k)
	maxW := 2*k + 1

	t := &smallKTable{k: k}
	stateIndex := map[*templateState]int{}

	addState := func(s *templateState) int {
		if id, ok := stateIndex[s]; ok {
			return id
		}
		id := len(t.states)
		t.states = append(t.states, s)
		stateIndex[s] = id
		return id
	}

	type edge struct {
		w, id  int
		cv     uint64
		nextID int
		shift  int
		dead   bool
	}
	var edges []edge

	startID := addState(tmpl.start)
	queue := []int{startID}
	queued := map[int]bool{startID: true}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		s := t.states[id]
		for w := 0; w <= maxW; w++ {
			limit := uint64(1) << uint(w)
			for cv := uint64(0); cv < limit; cv++ {
				closed := candidateClosure(s.positions, k, w, cv)
				if len(closed) == 0 {
					edges = append(edges, edge{w: w, id: id, cv: cv, dead: true})
					continue
				}
				norm, shift := normalize(closed)
				next := tmpl.intern(norm)
				nid := addState(next)
				if !queued[nid] {
					queued[nid] = true
					queue = append(queue, nid)
				}
				edges = append(edges, edge{w: w, id: id, cv: cv, nextID: nid, shift: shift})
			}
		}
	}

	n := len(t.states)
	if n > maxSmallKStates {
		panic("levenshtein: small-k template for k has more states than the C4 packed table can address")
	}

	t.trans = make([][]uint16, maxW+1)
	for w := 0; w <= maxW; w++ {
		row := make([]uint16, n<<uint(w))
		for i := range row {
			row[i] = deadTransition
		}
		t.trans[w] = row
	}
	for _, e := range edges {
		if e.dead {
			continue
		}
		t.trans[e.w][e.id<<uint(e.w)|int(e.cv)] = uint16(e.nextID) | uint16(e.shift)<<8
	}

	t.isFinal = make([]uint64, maxW+1)
	t.dist = make([][]byte, maxW+1)
	for w := 0; w <= maxW; w++ {
		dist := make([]byte, n)
		for id, s := range t.states {
			best := -1
			for _, p := range s.positions {
				e := int(p.e) + w - int(p.i)
				if int(p.i) <= w && e <= k && (best == -1 || e < best) {
					best = e
				}
			}
			if best >= 0 {
				t.isFinal[w] |= 1 << uint(id)
				dist[id] = byte(best)
			}
		}
		t.dist[w] = dist
	}
	return t
}

// smallKExecState is the C4 execution state: a state id into a compiled
// smallKTable plus the usual pattern/policy/sIndex bookkeeping, mirroring
// templateExecState's shape but driving array lookups instead of step().
type smallKExecState struct {
	table   *smallKTable
	pattern []rune
	policy  scalar.Policy
	sIndex  int
	stateID int
	dead    bool
}

func newSmallK(k int, pattern []rune, policy scalar.Policy) smallKExecState {
	return smallKExecState{table: smallKTableFor(k), pattern: pattern, policy: policy}
}

func (s smallKExecState) Step(c rune) (ExecState, bool) {
	if s.dead {
		return s, false
	}
	k := s.table.k
	remaining := len(s.pattern) - s.sIndex
	w := remaining
	if w > 2*k+1 {
		w = 2*k + 1
	}

	var cv uint64
	for j := 0; j < w; j++ {
		if s.policy.Eq(s.pattern[s.sIndex+j], c) {
			cv |= 1 << uint(j)
		}
	}

	word := s.table.trans[w][s.stateID<<uint(w)|int(cv)]
	if word == deadTransition {
		dead := s
		dead.dead = true
		return dead, false
	}
	next := smallKExecState{
		table:   s.table,
		pattern: s.pattern,
		policy:  s.policy,
		sIndex:  s.sIndex + int(word>>8),
		stateID: int(word & 0xFF),
	}
	return next, true
}

func (s smallKExecState) Final() bool {
	final, _ := s.finalDistance()
	return final
}

func (s smallKExecState) Distance() int {
	_, d := s.finalDistance()
	return d
}

func (s smallKExecState) finalDistance() (bool, int) {
	if s.dead {
		return false, 0
	}
	remaining := len(s.pattern) - s.sIndex
	if remaining < 0 || remaining > 2*s.table.k+1 {
		return false, 0
	}
	if s.table.isFinal[remaining]&(1<<uint(s.stateID)) == 0 {
		return false, 0
	}
	return true, int(s.table.dist[remaining][s.stateID])
}
