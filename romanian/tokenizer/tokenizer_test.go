package tokenizer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/lexicon"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/token"
)

func testTokenizer(t *testing.T) *Tokenizer {
	t.Helper()
	lex, err := lexicon.LoadReaders(
		strings.NewReader("același\n"),
		strings.NewReader("în_același_timp\n"),
		strings.NewReader("S.U.A.\n"),
	)
	if err != nil {
		t.Fatalf("LoadReaders: %v", err)
	}
	return New(lex)
}

func classesOf(tokens []token.Tagged) []token.Class {
	out := make([]token.Class, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Class
	}
	return out
}

func textsOf(tokens []token.Tagged) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func TestTokenizeBasicSentence(t *testing.T) {
	tok := testTokenizer(t)

	got := tok.Tokenize("Ana, are mere!")
	want := []token.Tagged{
		{Text: "Ana", Class: token.WORD},
		{Text: ",", Class: token.PUNCT},
		{Text: "are", Class: token.WORD},
		{Text: "mere", Class: token.WORD},
		{Text: "!", Class: token.PUNCT},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %#v, want %#v", got, want)
	}
}

func TestTokenizeFusesAbbrAndMWE(t *testing.T) {
	tok := testTokenizer(t)

	got := tok.Tokenize("Lucrează în același timp pentru S.U.A.")
	wantTexts := []string{"Lucrează", "în_același_timp", "pentru", "S.U.A."}
	wantClasses := []token.Class{token.RWORD, token.MWE, token.WORD, token.ABBR}

	if !reflect.DeepEqual(textsOf(got), wantTexts) {
		t.Errorf("texts = %#v, want %#v", textsOf(got), wantTexts)
	}
	if !reflect.DeepEqual(classesOf(got), wantClasses) {
		t.Errorf("classes = %#v, want %#v", classesOf(got), wantClasses)
	}
}

func TestTokenizeUnknownGlyphRunStaysWhole(t *testing.T) {
	tok := testTokenizer(t)

	got := tok.Tokenize("a▲▼b")
	want := []token.Tagged{
		{Text: "a", Class: token.WORD},
		{Text: "▲▼", Class: token.JUNK},
		{Text: "b", Class: token.WORD},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %#v, want %#v", got, want)
	}
}

func TestTokenizeCommaSplitsAdjacentNames(t *testing.T) {
	tok := testTokenizer(t)

	got := tok.Tokenize("Ion,Maria")
	want := []token.Tagged{
		{Text: "Ion", Class: token.WORD},
		{Text: ",", Class: token.PUNCT},
		{Text: "Maria", Class: token.WORD},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %#v, want %#v", got, want)
	}
}

func TestTokenizeRawKeepsWhitespaceAndDoesNotFuse(t *testing.T) {
	tok := testTokenizer(t)

	got := tok.TokenizeRaw("la S.U.A.")
	want := []token.Tagged{
		{Text: "la", Class: token.WORD},
		{Text: " ", Class: token.SPACE},
		{Text: "S", Class: token.ABBR},
		{Text: ".", Class: token.ABBR},
		{Text: "U", Class: token.ABBR},
		{Text: ".", Class: token.ABBR},
		{Text: "A", Class: token.ABBR},
		{Text: ".", Class: token.ABBR},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenizeRaw() = %#v, want %#v", got, want)
	}
}
