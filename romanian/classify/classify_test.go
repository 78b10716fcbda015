package classify

import (
	"strings"
	"testing"

	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/lexicon"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/token"
)

func testClassifier(t *testing.T) *Classifier {
	t.Helper()
	lex, err := lexicon.LoadReaders(
		strings.NewReader("casă\n"),
		strings.NewReader("în_același_timp\n"),
		strings.NewReader("S.U.A.\nnr.\n"),
	)
	if err != nil {
		t.Fatalf("LoadReaders: %v", err)
	}
	return New(lex)
}

func TestTagPrecedence(t *testing.T) {
	c := testClassifier(t)

	cases := []struct {
		word string
		want token.Class
	}{
		{"S.U.A.", token.ABBR},
		{"nr.", token.ABBR},
		{"XIV", token.NUM},
		{"42", token.NUM},
		{"casă", token.RWORD},
		{"mirişte", token.RWORD}, // contains a diacritic even though not in lexicon
		{"cum", token.WORD},      // no diacritic and not in the lexicon, so not RWORD
		{"café", token.FWORD},    // Latin letter outside the Romanian alphabet (é)
		{"\n", token.EOL},
		{" ", token.SPACE},
		{",", token.PUNCT},
		{"@", token.SYM},
		{"☃", token.JUNK}, // snowman: not letter/number/punct/sym in our tables
	}

	for _, tc := range cases {
		if got := c.Tag(tc.word); got != tc.want {
			t.Errorf("Tag(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestIsNumRomanAndDigits(t *testing.T) {
	c := testClassifier(t)
	for _, w := range []string{"XIV", "xiv", "7", "123"} {
		if !c.IsNum(w) {
			t.Errorf("IsNum(%q) = false, want true", w)
		}
	}
	if c.IsNum("casă") {
		t.Error("IsNum(casă) should be false")
	}
}

func TestIsPunctExcludesPo(t *testing.T) {
	c := testClassifier(t)
	if !c.IsPunct(",") {
		t.Error("',' should be punctuation (explicit alphabet)")
	}
	// U+00A1 INVERTED EXCLAMATION MARK is category Po and not in the
	// Romanian punctuation alphabet: the Po exclusion must hold (spec §9).
	if c.IsPunct("¡") {
		t.Error("a bare Po-category rune outside the alphabet should not classify as punct")
	}
}

func TestWordIsSpecCaps(t *testing.T) {
	c := testClassifier(t)
	cases := map[string]bool{
		"ABCD": true,
		"AbCd": true,
		"abcd": false,
		"Abcd": false,
		"123":  false,
	}
	for w, want := range cases {
		if got := c.WordIsSpecCaps(w); got != want {
			t.Errorf("WordIsSpecCaps(%q) = %v, want %v", w, got, want)
		}
	}
}

func TestHasLexWord(t *testing.T) {
	c := testClassifier(t)
	if !c.HasLexWord("casă") {
		t.Error("expected casă to be a known lexicon word")
	}
	if c.HasLexWord("necunoscut") {
		t.Error("necunoscut should not be a known lexicon word")
	}
}
