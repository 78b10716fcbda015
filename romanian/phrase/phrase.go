// Package phrase implements the phrasal recognizer (spec §4.5): a
// greedy leftmost-longest pass that relabels adjacent tokens as ABBR or
// MWE when their concatenation is a known lexicon entry.
package phrase

import (
	"strings"

	"github.com/racai-ai/ro-wordpiece-tokenizer/internal/roalpha"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/classify"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/token"
)

// Mode selects which phrasal label this recognizer pass assigns.
type Mode int

const (
	ABBR Mode = iota
	MWE
)

// Recognizer runs one phrasal-recognition pass over a token stream.
type Recognizer struct {
	classify *classify.Classifier
	mode     Mode
	maxParts int
	isFirst  func(word string) bool
	reject   map[string]struct{}
}

// New returns a Recognizer for the given mode. maxParts is the lexicon's
// MaxMWEParts or MaxAbbrParts, as appropriate.
func New(c *classify.Classifier, mode Mode, maxParts int, isFirst func(word string) bool) *Recognizer {
	reject := roalpha.RejectMWEs
	if mode == ABBR {
		reject = roalpha.RejectAbbrs
	}
	return &Recognizer{
		classify: c,
		mode:     mode,
		maxParts: maxParts,
		isFirst:  isFirst,
		reject:   reject,
	}
}

// Apply runs the greedy leftmost-longest recognition pass described in
// spec §4.5, returning a new token slice with matched spans relabeled.
func (r *Recognizer) Apply(tokens []token.Tagged) []token.Tagged {
	out := make([]token.Tagged, 0, len(tokens))

	i := 0
	for i < len(tokens) {
		if !r.isFirst(tokens[i].Text) {
			out = append(out, tokens[i])
			i++
			continue
		}

		pieces, wordCount := r.collect(tokens, i)

		matchLen := r.longestMatch(pieces, wordCount)
		if matchLen == 0 {
			out = append(out, tokens[i])
			i++
			continue
		}

		for x := i; x < i+matchLen; x++ {
			out = append(out, token.Tagged{Text: tokens[x].Text, Class: r.label()})
		}
		i += matchLen
	}

	return out
}

func (r *Recognizer) label() token.Class {
	if r.mode == MWE {
		return token.MWE
	}
	return token.ABBR
}

// collect walks forward from anchor i, building the candidate phrase
// pieces (one per source token, with SPACE tokens contributing a single
// "_" separator in MWE mode) until a break condition or the max-parts
// budget is hit. It returns the pieces alongside the number of source
// tokens each piece corresponds to, so the caller can map a k-piece
// match back onto a token-count span.
func (r *Recognizer) collect(tokens []token.Tagged, anchor int) (pieces []string, spanLen []int) {
	wordCount := 0
	j := anchor

	for wordCount < r.maxParts && j < len(tokens) {
		t := tokens[j]

		if t.Class == token.EOL {
			break
		}
		if r.mode == ABBR && t.Class == token.SPACE {
			break
		}

		if t.Class == token.SPACE {
			// Only MWE mode reaches here: ABBR breaks on SPACE above.
			if len(pieces) == 0 || pieces[len(pieces)-1] != "_" {
				pieces = append(pieces, "_")
				spanLen = append(spanLen, 1)
			} else {
				// Previous piece already ended in '_'; this SPACE
				// contributes no new piece but still consumes a token.
				spanLen[len(spanLen)-1]++
			}
		} else {
			pieces = append(pieces, t.Text)
			spanLen = append(spanLen, 1)
			if t.Class.IsWord() {
				wordCount++
			}
		}

		j++
	}

	return pieces, spanLen
}

// longestMatch tries concatenating the first k pieces, k from
// len(pieces) down to 2, returning the number of *source tokens* the
// winning k covers, or 0 if nothing matched.
func (r *Recognizer) longestMatch(pieces []string, spanLen []int) int {
	for k := len(pieces); k >= 2; k-- {
		phrase := strings.Join(pieces[:k], "")

		if r.mode == MWE && strings.HasSuffix(phrase, "_") {
			continue
		}
		if r.mode == ABBR && !strings.HasSuffix(phrase, ".") {
			continue
		}

		if !r.classify.HasLexWord(phrase) {
			continue
		}
		if _, rejected := r.reject[strings.ToLower(phrase)]; rejected {
			continue
		}

		span := 0
		for _, l := range spanLen[:k] {
			span += l
		}
		return span
	}
	return 0
}
