package token

import "testing"

func TestClassString(t *testing.T) {
	cases := []struct {
		c    Class
		want string
	}{
		{ABBR, "ABBR"},
		{NUM, "NUM"},
		{RWORD, "RWORD"},
		{MWE, "MWE"},
		{FWORD, "FWORD"},
		{WORD, "WORD"},
		{EOL, "EOL"},
		{SPACE, "SPACE"},
		{PUNCT, "PUNCT"},
		{SYM, "SYM"},
		{JUNK, "JUNK"},
		{Class(99), "INVALID"},
		{Class(-1), "INVALID"},
	}
	for _, tc := range cases {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("Class(%d).String() = %q, want %q", tc.c, got, tc.want)
		}
	}
}

func TestIsWord(t *testing.T) {
	wordish := []Class{RWORD, FWORD, WORD, ABBR}
	for _, c := range wordish {
		if !c.IsWord() {
			t.Errorf("%v.IsWord() = false, want true", c)
		}
	}
	notWordish := []Class{NUM, MWE, EOL, SPACE, PUNCT, SYM, JUNK}
	for _, c := range notWordish {
		if c.IsWord() {
			t.Errorf("%v.IsWord() = true, want false", c)
		}
	}
}

func TestIsWhitespace(t *testing.T) {
	if !EOL.IsWhitespace() || !SPACE.IsWhitespace() {
		t.Error("EOL and SPACE should be whitespace classes")
	}
	if WORD.IsWhitespace() {
		t.Error("WORD should not be a whitespace class")
	}
}

func TestIsPunctOrSym(t *testing.T) {
	if !PUNCT.IsPunctOrSym() || !SYM.IsPunctOrSym() {
		t.Error("PUNCT and SYM should satisfy IsPunctOrSym")
	}
	if WORD.IsPunctOrSym() {
		t.Error("WORD should not satisfy IsPunctOrSym")
	}
}
