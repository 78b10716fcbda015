// Package classify holds the pure, deterministic predicates that assign a
// token class to a string (spec §4.2), and the ordered dispatch table
// that replaces the original's dynamic "is_" + name.lower() method
// lookup with a fixed, declaration-ordered list of (class, predicate)
// entries (spec §9 REDESIGN FLAGS: "Dynamic predicate dispatch by string
// name").
package classify

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/racai-ai/ro-wordpiece-tokenizer/internal/roalpha"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/lexicon"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/token"
)

// Classifier bundles the Lexicon-aware predicates. It holds no mutable
// state and is safe for concurrent use, since Lexicon itself is immutable
// after Load (spec §5).
type Classifier struct {
	lex *lexicon.Lexicon
}

// New returns a Classifier backed by lex.
func New(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

var specialDashUnderscore = regexp.MustCompile(`^[_-]+$`)
var numberPattern = regexp.MustCompile(`^\d+$`)

// IsRWord reports whether word is a known Romanian surface form or
// carries at least one Romanian diacritic.
func (c *Classifier) IsRWord(word string) bool {
	if c.lex.HasWord(word) {
		return true
	}
	for _, r := range word {
		if unicode.Is(roalpha.Diacritics, r) {
			return true
		}
	}
	return false
}

// IsFWord reports whether word is a valid IsWord and contains at least
// one letter outside the Romanian word alphabet.
func (c *Classifier) IsFWord(word string) bool {
	for _, r := range word {
		if unicode.IsLetter(r) && !unicode.Is(roalpha.Word, r) {
			return c.IsWord(word)
		}
	}
	return false
}

// IsWord reports whether every rune in word is a letter, mark, or number
// (by Unicode category) or is in the Romanian word alphabet, and word is
// not composed entirely of '-'/'_'.
func (c *Classifier) IsWord(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.IsMark(r) && !unicode.IsNumber(r) && !unicode.Is(roalpha.Word, r) {
			return false
		}
	}
	return !specialDashUnderscore.MatchString(word)
}

// IsNum reports whether word is a Roman numeral I..XXX (case-insensitive)
// or every rune is a Romanian digit or a Unicode number.
func (c *Classifier) IsNum(word string) bool {
	if _, ok := roalpha.RomanNumerals[word]; ok {
		return true
	}
	if _, ok := roalpha.RomanNumerals[strings.ToUpper(word)]; ok {
		return true
	}
	for _, r := range word {
		if !unicode.Is(roalpha.Digits, r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether every rune in word is in the Romanian
// punctuation alphabet, or has a Unicode "P" category other than Po
// (spec §4.2, §9: the Po exclusion is preserved deliberately).
func (c *Classifier) IsPunct(word string) bool {
	for _, r := range word {
		if unicode.Is(roalpha.Punct, r) {
			continue
		}
		if unicode.IsPunct(r) && !roalpha.IsOtherPunct(r) {
			continue
		}
		return false
	}
	return true
}

// IsSym reports whether every rune in word is in the Romanian symbol
// alphabet, or has a Unicode "S" category other than So.
func (c *Classifier) IsSym(word string) bool {
	for _, r := range word {
		if unicode.Is(roalpha.Symbol, r) {
			continue
		}
		if unicode.IsSymbol(r) && !roalpha.IsOtherSymbol(r) {
			continue
		}
		return false
	}
	return true
}

// IsEOL reports whether word contains at least one end-of-line rune.
func (c *Classifier) IsEOL(word string) bool {
	for _, r := range word {
		if unicode.Is(roalpha.EOL, r) {
			return true
		}
	}
	return false
}

// IsSpace reports whether every rune in word is an ASCII space or has
// Unicode category Z*.
func (c *Classifier) IsSpace(word string) bool {
	for _, r := range word {
		if !unicode.Is(roalpha.Space, r) && !unicode.Is(unicode.Z, r) {
			return false
		}
	}
	return true
}

// IsAbbr reports whether word contains '.' and is a known surface form
// (case-insensitive).
func (c *Classifier) IsAbbr(word string) bool {
	return strings.Contains(word, ".") && c.lex.HasWord(word)
}

// HasLexWord reports whether word (as-is or lowercased) is a known
// surface form — wordforms ∪ mwe_set ∪ abbr_set. This is "is_lex_word"
// from the original, exposed for the dash splitter and phrasal
// recognizer, which both need the raw lexicon lookup rather than a
// tag-precedence decision.
func (c *Classifier) HasLexWord(word string) bool {
	return c.lex.HasWord(word)
}

// IsMWE always returns false: MWE is assigned after tokenization, by the
// phrasal recognizer (spec §4.2, §4.5).
func (c *Classifier) IsMWE(word string) bool {
	return false
}

// WordIsNumber reports whether word is a plain digit run or a Roman
// numeral, per the dash splitter's scoring rule (spec §4.4).
func (c *Classifier) WordIsNumber(word string) bool {
	if numberPattern.MatchString(word) {
		return true
	}
	if _, ok := roalpha.RomanNumerals[word]; ok {
		return true
	}
	_, ok := roalpha.RomanNumerals[strings.ToUpper(word)]
	return ok
}

// WordIsSpecCaps reports whether word matches the ABCD or AbCd pattern:
// every rune is a letter, and either every rune is uppercase, or at least
// one lowercase-to-uppercase transition occurs (spec §4.4).
func (c *Classifier) WordIsSpecCaps(word string) bool {
	allUpper := true
	mixed := false
	var prev rune
	havePrev := false

	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
		if !unicode.IsUpper(r) {
			allUpper = false
		} else if havePrev && unicode.IsLower(prev) {
			mixed = true
		}
		prev = r
		havePrev = true
	}

	return allUpper || mixed
}

// entry pairs a token class with its predicate, in the fixed
// tag-precedence order of spec §3. Declared once at package init so
// adding a class is a single list edit (spec §9).
type entry struct {
	class Class
	pred  func(*Classifier, string) bool
}

// Class is an alias kept local to avoid importing token in the entry
// table signature verbosely; see Tag below for the public token.Class
// return value.
type Class = token.Class

var order = []entry{
	{token.ABBR, (*Classifier).IsAbbr},
	{token.NUM, (*Classifier).IsNum},
	{token.RWORD, (*Classifier).IsRWord},
	{token.MWE, (*Classifier).IsMWE},
	{token.FWORD, (*Classifier).IsFWord},
	{token.WORD, (*Classifier).IsWord},
	{token.EOL, (*Classifier).IsEOL},
	{token.SPACE, (*Classifier).IsSpace},
	{token.PUNCT, (*Classifier).IsPunct},
	{token.SYM, (*Classifier).IsSym},
}

// Tag runs the ordered predicate table and returns the first matching
// class, or token.JUNK if nothing matches (spec §4.2 "tag_word").
func (c *Classifier) Tag(word string) token.Class {
	for _, e := range order {
		if e.pred(c, word) {
			return e.class
		}
	}
	return token.JUNK
}
