// Package distance computes edit distance directly, by dynamic programming,
// rather than by running an automaton. It exists for validation, ad-hoc
// one-off queries, and as the reference implementation the rest of this
// module's tests check automaton results against; the trie's hot search path
// never calls it.
package distance

import "github.com/aaw/fuzzytrie/scalar"

// Metric selects which edit operations are counted.
type Metric int

const (
	// Levenshtein counts insertions, deletions, and substitutions.
	Levenshtein Metric = iota
	// RestrictedEdit additionally allows an adjacent-scalar transposition
	// to count as a single edit, provided neither scalar is re-edited
	// (Damerau-Levenshtein's "optimal string alignment" restriction).
	RestrictedEdit
)

// Compute returns the edit distance between a and b under the given metric
// and case policy. It decodes both strings to runes so that supplementary
// plane characters count as one scalar each.
func Compute(a, b string, metric Metric, policy scalar.Policy) int {
	ra, rb := scalar.Runes(a), scalar.Runes(b)
	if metric == RestrictedEdit {
		return restrictedEdit(ra, rb, policy)
	}
	return levenshtein(ra, rb, policy)
}

// levenshtein computes classic edit distance with a two-row DP. The shorter
// string is placed on the inner dimension to bound row width by min(len).
func levenshtein(a, b []rune, policy scalar.Policy) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if policy.Eq(a[i-1], b[j-1]) {
				cost = 0
			}
			del := prev[i] + 1
			ins := curr[i-1] + 1
			sub := prev[i-1] + cost
			curr[i] = min(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

// restrictedEdit computes OSA distance with a three-row DP: the current row,
// the previous row, and the one before that (needed to detect a transposed
// pair two positions back).
func restrictedEdit(a, b []rune, policy scalar.Policy) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := len(a)
	rowM2 := make([]int, n+1) // row i-2
	rowM1 := make([]int, n+1) // row i-1
	row := make([]int, n+1)   // row i

	for i := range rowM1 {
		rowM1[i] = i
	}
	for j := 1; j <= len(b); j++ {
		row[0] = j
		for i := 1; i <= n; i++ {
			cost := 1
			if policy.Eq(a[i-1], b[j-1]) {
				cost = 0
			}
			del := rowM1[i] + 1
			ins := row[i-1] + 1
			sub := rowM1[i-1] + cost
			val := min(del, ins, sub)
			if i > 1 && j > 1 &&
				policy.Eq(a[i-1], b[j-2]) && policy.Eq(a[i-2], b[j-1]) {
				val = min(val, rowM2[i-2]+1)
			}
			row[i] = val
		}
		rowM2, rowM1, row = rowM1, row, rowM2
	}
	return rowM1[n]
}

