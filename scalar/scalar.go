// Package scalar decodes strings into Unicode scalar values and provides the
// case policies every other package in this module compares scalars with.
//
// Everything above the trie's edges and the automata's transitions is keyed
// on runes (Unicode scalar values), never on UTF-16/UTF-8 code units, so a
// supplementary-plane character such as U+1F970 is a single edit step rather
// than the two surrogate halves it would decode to in UTF-16.
package scalar

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Replacement is the sentinel rune used for malformed input and as the head
// scalar of the trie's root. It must be a legal rune value because the root
// node's head scalar is compared against it like any other rune.
const Replacement = utf8.RuneError

// Runes decodes s into its Unicode scalar values. Malformed UTF-8 is not
// rejected: each bad byte decodes to Replacement, matching how the trie
// itself treats Replacement as an ordinary (if reserved) scalar.
func Runes(s string) []rune {
	rs := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		rs = append(rs, r)
		i += w
	}
	return rs
}

// Len returns the number of Unicode scalar values s decodes to.
func Len(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Policy compares two runes for equality under a case convention. It is the
// single extension point every package in this module threads through
// instead of hard-coding case sensitivity.
type Policy interface {
	// Eq reports whether a and b are the same scalar under this policy.
	Eq(a, b rune) bool
	// Fold returns the canonical form of r used for comparison and hashing
	// (r itself under CaseSensitive, its invariant lowercase under
	// CaseInsensitive).
	Fold(r rune) rune
	// IgnoreCase reports whether this is the case-insensitive policy.
	IgnoreCase() bool
}

// CaseSensitive compares runes with ==.
var CaseSensitive Policy = caseSensitive{}

// CaseInsensitive compares runes after mapping each through invariant-culture
// lowercase folding (golang.org/x/text/cases.Fold, which is explicitly
// locale-independent). No locale is ever threaded through, so the mapping is
// fixed regardless of caller environment, matching the invariant-culture
// single-scalar lowercase requirement.
var CaseInsensitive Policy = caseInsensitive{}

type caseSensitive struct{}

func (caseSensitive) Eq(a, b rune) bool { return a == b }
func (caseSensitive) Fold(r rune) rune  { return r }
func (caseSensitive) IgnoreCase() bool  { return false }

type caseInsensitive struct{}

// foldCaser performs invariant-culture case folding. cases.Fold() is
// explicitly documented as the locale-independent, comparison-oriented
// transform (as opposed to cases.Lower(language.Und), which is intended for
// display); it is what this policy needs for "does a match b ignoring case".
var foldCaser = cases.Fold()

func (c caseInsensitive) Eq(a, b rune) bool {
	return c.Fold(a) == c.Fold(b)
}

func (caseInsensitive) Fold(r rune) rune {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	folded := foldCaser.Bytes(buf[:n])
	fr, _ := utf8.DecodeRune(folded)
	return fr
}

func (caseInsensitive) IgnoreCase() bool { return true }
