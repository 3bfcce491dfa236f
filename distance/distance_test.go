package distance

import (
	"testing"

	"github.com/aaw/fuzzytrie/scalar"
)

func TestLevenshteinSanity(t *testing.T) {
	got := Compute("levenshtein", "levenshtien", Levenshtein, scalar.CaseSensitive)
	if got != 2 {
		t.Errorf("Levenshtein(levenshtein, levenshtien) = %d, want 2", got)
	}
}

func TestRestrictedEditSanity(t *testing.T) {
	got := Compute("levenshtein", "levenshtien", RestrictedEdit, scalar.CaseSensitive)
	if got != 1 {
		t.Errorf("RestrictedEdit(levenshtein, levenshtien) = %d, want 1", got)
	}
	got = Compute("ca", "abc", RestrictedEdit, scalar.CaseSensitive)
	if got != 3 {
		t.Errorf("RestrictedEdit(ca, abc) = %d, want 3", got)
	}
}

func TestComputeSymmetricAndZero(t *testing.T) {
	for _, pair := range [][2]string{
		{"", ""},
		{"a", ""},
		{"kitten", "sitting"},
		{"редактировать", "редакти"},
	} {
		a, b := pair[0], pair[1]
		if Compute(a, a, Levenshtein, scalar.CaseSensitive) != 0 {
			t.Errorf("Compute(%q, %q) != 0", a, a)
		}
		d1 := Compute(a, b, Levenshtein, scalar.CaseSensitive)
		d2 := Compute(b, a, Levenshtein, scalar.CaseSensitive)
		if d1 != d2 {
			t.Errorf("Compute(%q, %q) = %d, Compute(%q, %q) = %d, want equal", a, b, d1, b, a, d2)
		}
	}
}

func TestComputeCaseInsensitive(t *testing.T) {
	if got := Compute("FOO", "foo", Levenshtein, scalar.CaseInsensitive); got != 0 {
		t.Errorf("Compute(FOO, foo) ignoreCase = %d, want 0", got)
	}
	if got := Compute("FOO", "foo", Levenshtein, scalar.CaseSensitive); got != 3 {
		t.Errorf("Compute(FOO, foo) caseSensitive = %d, want 3", got)
	}
}

func TestSupplementaryPlaneScalar(t *testing.T) {
	// U+1F970 vs "f" and U+2F971 are each a single substitution away.
	d1 := Compute("\U0001F970", "f", Levenshtein, scalar.CaseSensitive)
	d2 := Compute("\U0001F970", "\U0002F971", Levenshtein, scalar.CaseSensitive)
	if d1 != 1 || d2 != 1 {
		t.Errorf("got distances %d, %d, want 1, 1", d1, d2)
	}
}
