package levenshtein

import "github.com/aaw/fuzzytrie/distance"

// Metric selects which edit operations an automaton accepts. It is an alias
// for distance.Metric so that an Automaton's metric and the reference
// distance.Compute used to validate it against are always the same type.
type Metric = distance.Metric

const (
	Levenshtein    = distance.Levenshtein
	RestrictedEdit = distance.RestrictedEdit
)
