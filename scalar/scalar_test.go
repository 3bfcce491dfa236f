package scalar

import "testing"

func TestRunes(t *testing.T) {
	wants := []string{
		"",
		"a",
		"aь",
		"ь",
		"редактировать",
		"редакти",
		"ред",
	}
	for _, want := range wants {
		got := string(Runes(want))
		if got != want {
			t.Errorf("Runes(%q) = %q, want %q", want, got, want)
		}
	}
}

func TestLen(t *testing.T) {
	cases := map[string]int{
		"":        0,
		"abc":     3,
		"ред":     3,
		"🥰":       1,
		"a🥰b":     3,
	}
	for s, want := range cases {
		if got := Len(s); got != want {
			t.Errorf("Len(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestCaseSensitiveEq(t *testing.T) {
	if !CaseSensitive.Eq('a', 'a') {
		t.Error("want 'a' == 'a'")
	}
	if CaseSensitive.Eq('a', 'A') {
		t.Error("want 'a' != 'A' under CaseSensitive")
	}
}

func TestCaseInsensitiveEq(t *testing.T) {
	if !CaseInsensitive.Eq('a', 'A') {
		t.Error("want 'a' == 'A' under CaseInsensitive")
	}
	if !CaseInsensitive.Eq('Σ', 'σ') {
		t.Error("want 'Σ' == 'σ' under CaseInsensitive")
	}
	if CaseInsensitive.Eq('a', 'b') {
		t.Error("want 'a' != 'b'")
	}
}

func TestIgnoreCase(t *testing.T) {
	if CaseSensitive.IgnoreCase() {
		t.Error("CaseSensitive.IgnoreCase() = true, want false")
	}
	if !CaseInsensitive.IgnoreCase() {
		t.Error("CaseInsensitive.IgnoreCase() = false, want true")
	}
}
