// Package normalize implements the Romanian normalizer (spec §4.7): a
// fixed-sequence rewriter that rectifies diacritics and enforces modern
// Romanian Academy orthography, notably the â/î distribution rule.
//
// Two equivalent entry points are provided, as the consumer contract
// (spec §6) requires: Normalize, a pure string function, and a
// Normalizer value offering the same steps as discrete, named mutations
// over a mutable buffer (Strip, MapDiacritics, ...), for callers
// building their own pre-encode pipeline the way an upstream
// subword-encoder framework would. Both must produce byte-identical
// output for the same input (spec §8 invariant 3).
//
// Word-boundary semantics here are hand-rolled rather than regexp `\b`:
// Go's RE2 engine treats `\b` as an ASCII word boundary ([0-9A-Za-z_]),
// which would silently mis-place î/â right at the diacritic itself —
// exactly the letters this normalizer exists to handle correctly. spec
// §4.7 requires "word-boundary semantics compatible with letters that
// carry diacritics", so boundaries are computed from unicode.IsLetter /
// unicode.IsDigit instead.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/racai-ai/ro-wordpiece-tokenizer/internal/roalpha"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)

	cedillaReplacer = strings.NewReplacer(
		"ş", "ș",
		"Ş", "Ș",
		"ţ", "ț",
		"Ţ", "Ț",
	)

	verbForms = []struct{ old, new string }{
		{"sînt", "sunt"},
		{"Sînt", "Sunt"},
		{"sîntem", "suntem"},
		{"Sîntem", "Suntem"},
		{"sînteți", "sunteți"},
		{"Sînteți", "Sunteți"},
	}

	prefixLower = prefixSet(roalpha.MorphoPrefixes, false)
	prefixUpper = prefixSet(roalpha.MorphoPrefixes, true)
)

func prefixSet(prefixes []string, upper bool) map[string]struct{} {
	set := make(map[string]struct{}, len(prefixes))
	for _, p := range prefixes {
		if upper {
			p = strings.ToUpper(p)
		}
		set[p] = struct{}{}
	}
	return set
}

// isWordRune is the boundary-defining predicate: letters, digits and
// underscore, matching the \w a Unicode-aware regex engine would use —
// deliberately NOT including '-', so that "ne-însemnat" presents a
// boundary at the hyphen, the way step 7's hyphenated prefix rule
// expects.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Normalize is the pure-function form of the normalizer: (string) →
// string, with no side effects (spec §6 consumer contract (b)).
func Normalize(s string) string {
	return Apply(s)
}

// Normalizer offers the normalization steps as discrete, named mutations
// over a mutable string buffer (spec §6 consumer contract (a)). Run them
// in order (Apply does so) to match Normalize exactly.
type Normalizer struct {
	text string
}

// New returns a Normalizer seeded with text.
func New(text string) *Normalizer {
	return &Normalizer{text: text}
}

// Text returns the buffer's current contents.
func (n *Normalizer) Text() string { return n.text }

// Strip trims leading and trailing whitespace (step 1).
func (n *Normalizer) Strip() { n.text = strings.TrimSpace(n.text) }

// MapDiacritics rewrites cedilla forms to comma-below forms (step 2):
// ş→ș, Ş→Ș, ţ→ț, Ţ→Ț.
func (n *Normalizer) MapDiacritics() { n.text = cedillaReplacer.Replace(n.text) }

// CollapseSpaces collapses runs of whitespace to a single space (step 3).
func (n *Normalizer) CollapseSpaces() { n.text = whitespaceRun.ReplaceAllString(n.text, " ") }

// FixVerbForms rewrites the six legacy "a fi" verb forms, word-bounded
// (step 4): sînt→sunt, sîntem→suntem, sînteți→sunteți, and their
// capitalized forms.
func (n *Normalizer) FixVerbForms() {
	for _, v := range verbForms {
		n.text = replaceWholeWord(n.text, v.old, v.new)
	}
}

// UnifyAToI replaces every î/Î with â/Â unconditionally (step 5).
func (n *Normalizer) UnifyAToI() {
	n.text = strings.ReplaceAll(n.text, "î", "â")
	n.text = strings.ReplaceAll(n.text, "Î", "Â")
}

// RestoreWordEdgeI reinstates î/Î at the start or end of a word (step 6):
// any â/Â at a word's first or last letter becomes î/Î.
func (n *Normalizer) RestoreWordEdgeI() {
	n.text = mapWordRuns(n.text, func(run []rune) []rune {
		if len(run) == 0 {
			return run
		}
		switch run[0] {
		case 'â':
			run[0] = 'î'
		case 'Â':
			run[0] = 'Î'
		}
		last := len(run) - 1
		switch run[last] {
		case 'â':
			run[last] = 'î'
		case 'Â':
			run[last] = 'Î'
		}
		return run
	})
}

// RestorePrefixI reinstates î after a Romanian morphological prefix
// (step 7), both for a prefix immediately followed by â within the same
// word ("reântregirea" → "reîntregirea") and for a prefix followed by a
// hyphen then â ("ne-ânsemnat" → "ne-însemnat").
func (n *Normalizer) RestorePrefixI() {
	n.text = mapWordRuns(n.text, restorePrefixInRun)
	n.text = restorePrefixAcrossHyphen(n.text)
}

// Apply runs all seven steps, in order, and returns the result. It is
// equivalent to Normalize(text) (spec §8 invariant 3).
func Apply(text string) string {
	n := New(text)
	n.Strip()
	n.MapDiacritics()
	n.CollapseSpaces()
	n.FixVerbForms()
	n.UnifyAToI()
	n.RestoreWordEdgeI()
	n.RestorePrefixI()
	return n.Text()
}

// replaceWholeWord replaces every occurrence of old in s that is flanked
// by non-word runes (or start/end of string) with new.
func replaceWholeWord(s, old, new string) string {
	runes := []rune(s)
	oldRunes := []rune(old)
	n, m := len(runes), len(oldRunes)

	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < n {
		if i+m <= n && runesEqual(runes[i:i+m], oldRunes) {
			beforeOK := i == 0 || !isWordRune(runes[i-1])
			afterOK := i+m == n || !isWordRune(runes[i+m])
			if beforeOK && afterOK {
				b.WriteString(new)
				i += m
				continue
			}
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// mapWordRuns applies f to every maximal run of word runes in s,
// leaving all other runes untouched.
func mapWordRuns(s string, f func(run []rune) []rune) string {
	runes := []rune(s)
	n := len(runes)
	out := make([]rune, 0, n)

	i := 0
	for i < n {
		if !isWordRune(runes[i]) {
			out = append(out, runes[i])
			i++
			continue
		}
		j := i
		for j < n && isWordRune(runes[j]) {
			j++
		}
		run := append([]rune{}, runes[i:j]...)
		out = append(out, f(run)...)
		i = j
	}
	return string(out)
}

// restorePrefixInRun implements the no-hyphen half of step 7: if run
// begins with a known prefix immediately followed by â (or the
// upper-cased prefix immediately followed by Â), that â/Â becomes î/Î.
func restorePrefixInRun(run []rune) []rune {
	for _, pref := range roalpha.MorphoPrefixes {
		if hasRunePrefix(run, pref) && len(run) > len([]rune(pref)) && run[len([]rune(pref))] == 'â' {
			run[len([]rune(pref))] = 'î'
			return run
		}
	}
	upper := make([]rune, 0, len(run))
	upper = append(upper, run...)
	for _, pref := range roalpha.MorphoPrefixes {
		up := strings.ToUpper(pref)
		if hasRunePrefix(run, up) && len(run) > len([]rune(up)) && run[len([]rune(up))] == 'Â' {
			run[len([]rune(up))] = 'Î'
			return run
		}
	}
	return run
}

func hasRunePrefix(run []rune, prefix string) bool {
	pr := []rune(prefix)
	if len(pr) > len(run) {
		return false
	}
	return runesEqual(run[:len(pr)], pr)
}

// restorePrefixAcrossHyphen implements the hyphenated half of step 7: a
// word-run that equals exactly a known prefix, followed immediately by
// '-' then â (or the upper-cased prefix followed by '-' then Â),
// restores î/Î at that position.
func restorePrefixAcrossHyphen(s string) string {
	runes := []rune(s)
	n := len(runes)

	for i := 0; i < n; i++ {
		if runes[i] != '-' || i+1 >= n {
			continue
		}

		j := i
		for j > 0 && isWordRune(runes[j-1]) {
			j--
		}
		prevRun := string(runes[j:i])

		switch runes[i+1] {
		case 'â':
			if _, ok := prefixLower[prevRun]; ok {
				runes[i+1] = 'î'
			}
		case 'Â':
			if _, ok := prefixUpper[prevRun]; ok {
				runes[i+1] = 'Î'
			}
		}
	}

	return string(runes)
}
