// Package roalpha defines the Romanian-specific character alphabets used
// throughout the tokenizer and normalizer: the word alphabet, the
// diacritics set, and the punctuation/symbol/space/EOL alphabets from
// spec §6. Each is built as a *unicode.RangeTable with
// golang.org/x/text/unicode/rangetable, the same way the teacher builds
// its own ad-hoc Unicode classes (see is.MidLetter, is.InfixNumeric).
package roalpha

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Word is the Romanian word alphabet: the diacritic-bearing Latin letters
// (upper and lower), ASCII digits, and the two word-internal connectors
// '-' and '_'.
var Word = rangetable.Merge(letters, digits, rangetable.New('-', '_'))

// Diacritics is the set of Romanian diacritic letters, upper and lower:
// ă î â ș ț (plus the legacy cedilla forms ş ţ, which the normalizer
// rewrites away but which the classifier must still recognize on raw,
// unnormalized input).
var Diacritics = rangetable.New(
	'ă', 'Ă', 'î', 'Î', 'â', 'Â',
	'ș', 'Ș', 'ş', 'Ş',
	'ț', 'Ț', 'ţ', 'Ţ',
)

// Punct is the Romanian punctuation alphabet (spec §6).
var Punct = rangetable.New(
	',', '.', '?', '!', '"', '’', '´', '`', '‘', '\'', ':', ';',
	'(', ')', '[', ']', '{', '}', '…', '„', '"', '«', '»',
	'/', '-', '_', '•', '●', '·',
)

// Symbol is the Romanian symbol alphabet (spec §6).
var Symbol = rangetable.New(
	'<', '>', '~', '@', '#', '%', '^', '&', '*', '+', '=', '÷', '$', '\\', '|', '§', '©', '°',
)

// Space is the ASCII space; Unicode Zs/Zl/Zp runes are recognized
// separately via unicode.Is in the classifier and segmenter.
var Space = rangetable.New(' ')

// EOL is the set of end-of-line runes.
var EOL = rangetable.New('\r', '\n')

// Digits is the Romanian digit alphabet (ASCII 0-9).
var Digits = digits

var digits = rangetable.New('0', '1', '2', '3', '4', '5', '6', '7', '8', '9')

var letters = rangetable.New(
	[]rune("aăâbcdefghiîjklmnopqrsșştțţuvwxyz")...,
)

func init() {
	upper := make([]rune, 0, 32)
	for _, r := range []rune("aăâbcdefghiîjklmnopqrsșştțţuvwxyz") {
		upper = append(upper, unicode.ToUpper(r))
	}
	letters = rangetable.Merge(letters, rangetable.New(upper...))
	Word = rangetable.Merge(letters, digits, rangetable.New('-', '_'))
}

// wordCategories are the Unicode general categories that count as
// word-internal in the character-class table (spec §3, entry 1).
var wordCategories = rangetable.Merge(
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo,
	unicode.Nd, unicode.Nl, unicode.No,
)

// punctCategories are the Unicode general categories that count as
// punctuation in the character-class table (spec §3, entry 2).
var punctCategories = rangetable.Merge(
	unicode.Pf, unicode.Pi, unicode.Pe, unicode.Ps, unicode.Pd, unicode.Pc,
)

// symbolCategories are the Unicode general categories that count as
// symbols in the character-class table (spec §3, entry 3).
var symbolCategories = rangetable.Merge(unicode.Sm, unicode.Sc, unicode.Sk)

// spaceCategories are the Unicode general categories that count as space
// in the character-class table (spec §3, entry 5).
var spaceCategories = rangetable.Merge(unicode.Zs, unicode.Zl, unicode.Zp)

// IsWordChar reports whether r belongs to set 1 of the character-class
// table: word categories, the Romanian word alphabet, digits, or
// diacritics, plus '-' and '_' (already part of Word).
func IsWordChar(r rune) bool {
	return unicode.Is(wordCategories, r) || unicode.Is(Word, r) || unicode.Is(Digits, r) || unicode.Is(Diacritics, r)
}

// IsPunctChar reports whether r belongs to set 2: punctuation categories
// or the Romanian punctuation alphabet.
func IsPunctChar(r rune) bool {
	return unicode.Is(punctCategories, r) || unicode.Is(Punct, r)
}

// IsSymbolChar reports whether r belongs to set 3: symbol categories or
// the Romanian symbol alphabet.
func IsSymbolChar(r rune) bool {
	return unicode.Is(symbolCategories, r) || unicode.Is(Symbol, r)
}

// IsEOLChar reports whether r belongs to set 4: \r or \n.
func IsEOLChar(r rune) bool {
	return unicode.Is(EOL, r)
}

// IsSpaceChar reports whether r belongs to set 5: space categories or
// the ASCII space.
func IsSpaceChar(r rune) bool {
	return unicode.Is(spaceCategories, r) || unicode.Is(Space, r)
}

// RomanNumerals is the canonical (uppercase) set of Roman numerals I..XXX
// accepted by the number classifier, matched case-insensitively by the
// caller.
var RomanNumerals = map[string]struct{}{
	"I": {}, "II": {}, "III": {}, "IV": {}, "V": {},
	"VI": {}, "VII": {}, "VIII": {}, "IX": {}, "X": {},
	"XI": {}, "XII": {}, "XIII": {}, "XIV": {}, "XV": {},
	"XVI": {}, "XVII": {}, "XVIII": {}, "XIX": {}, "XX": {},
	"XXI": {}, "XXII": {}, "XXIII": {}, "XXIV": {}, "XXV": {},
	"XXVI": {}, "XXVII": {}, "XXVIII": {}, "XXIX": {}, "XXX": {},
}

// MorphoPrefixes is the list of Romanian morphological prefixes after
// which â is reinstated as î by the normalizer (spec §4.7 step 7,
// GLOSSARY). Order doesn't matter: the normalizer tries every prefix.
var MorphoPrefixes = []string{
	"a", "ab", "an", "ana", "ante", "anti", "antre",
	"apo", "arhi", "cata", "circum", "cis", "co",
	"con", "contra", "cu", "de", "des", "dia", "dis",
	"ecto", "en", "endo", "ento", "epi", "ex", "exo",
	"extra", "hiper", "hipo", "in", "infra", "inter",
	"intra", "intro", "în", "între", "întru", "juxta",
	"me", "meta", "nă", "ne", "non", "o", "ob", "par",
	"para", "pen", "per", "peri", "po", "pod", "poi",
	"post", "pre", "prea", "pro", "ră", "răs", "răz",
	"re", "retro", "s", "se", "sin", "spre", "stră",
	"sub", "super", "supra", "sur", "tă", "tra", "trans",
	"tră", "tre", "ultra", "vă", "văz",
}

// DashKeep is the small closed set of tokens that score positively as a
// side of a dashed clitic split (spec §3 "Dash-keep set").
var DashKeep = map[string]struct{}{
	"am": {}, "ai": {}, "a": {}, "ați": {}, "au": {}, "al": {}, "ale": {},
	"-n": {}, "n-": {}, "o": {}, "un": {}, "-l": {}, "l-": {},
	"-i": {}, "i-": {}, "e": {}, "-lea": {}, "-ul": {}, "-urile": {},
	"-ului": {}, "-urilor": {}, "-s": {},
}

// RejectMWEs is the hardcoded set of strings that must never be tagged MWE
// even when present in the lexicon.
var RejectMWEs = map[string]struct{}{
	"de_a": {},
}

// RejectAbbrs is the hardcoded set of strings that must never be tagged
// ABBR even when present in the lexicon. Empty today, kept symmetrical
// with RejectMWEs so a future entry is a one-line addition.
var RejectAbbrs = map[string]struct{}{}

// Unicode general-category checks; the classifier uses IsOtherPunct and
// IsOtherSymbol.
var (
	IsLetterCategory  = unicode.IsLetter
	IsMarkCategory    = unicode.IsMark
	IsNumberCategory  = unicode.IsNumber
	IsPunctCategory   = unicode.IsPunct
	IsSymbolCategory  = unicode.IsSymbol
	IsSpaceCategoryZ  = unicode.IsSpace
	IsOtherPunct      = func(r rune) bool { return unicode.In(r, unicode.Po) }
	IsOtherSymbol     = func(r rune) bool { return unicode.In(r, unicode.So) }
	GeneralCategoryOf = generalCategory
)

// generalCategory returns the two-letter Unicode general category
// abbreviation for r (e.g. "Lu", "Nd", "Po"), mirroring Python's
// unicodedata.category used by the original implementation. Go's unicode
// package does not expose this directly, so we derive it from the
// well-known category tables.
func generalCategory(r rune) string {
	for _, c := range categoryOrder {
		if unicode.Is(c.table, r) {
			return c.name
		}
	}
	return "Cn"
}

type namedTable struct {
	name  string
	table *unicode.RangeTable
}

// categoryOrder lists the two-letter categories from most to least
// specific within each major class, matching the subdivisions
// unicodedata.category distinguishes.
var categoryOrder = []namedTable{
	{"Lu", unicode.Lu}, {"Ll", unicode.Ll}, {"Lt", unicode.Lt},
	{"Lm", unicode.Lm}, {"Lo", unicode.Lo},
	{"Mn", unicode.Mn}, {"Mc", unicode.Mc}, {"Me", unicode.Me},
	{"Nd", unicode.Nd}, {"Nl", unicode.Nl}, {"No", unicode.No},
	{"Pc", unicode.Pc}, {"Pd", unicode.Pd}, {"Ps", unicode.Ps},
	{"Pe", unicode.Pe}, {"Pi", unicode.Pi}, {"Pf", unicode.Pf}, {"Po", unicode.Po},
	{"Sm", unicode.Sm}, {"Sc", unicode.Sc}, {"Sk", unicode.Sk}, {"So", unicode.So},
	{"Zs", unicode.Zs}, {"Zl", unicode.Zl}, {"Zp", unicode.Zp},
	{"Cc", unicode.Cc}, {"Cf", unicode.Cf}, {"Co", unicode.Co}, {"Cs", unicode.Cs},
}
