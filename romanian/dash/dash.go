// Package dash implements the scored dash splitter (spec §4.4): a
// post-pass that re-splits hyphenated word tokens into their
// constituent clitic parts.
package dash

import (
	"strings"

	"github.com/racai-ai/ro-wordpiece-tokenizer/internal/roalpha"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/classify"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/token"
)

// minSplitScore is the minimum combined score required to accept a
// two-way dash split (spec §4.4).
const minSplitScore = 4

// Splitter re-splits dashed RWORD/WORD/FWORD tokens using the classifier
// and the Romanian dash-keep set.
type Splitter struct {
	classify *classify.Classifier
}

// New returns a Splitter backed by c.
func New(c *classify.Classifier) *Splitter {
	return &Splitter{classify: c}
}

// Apply walks tokens and replaces any eligible dashed token with its
// split form. Tokens that are not RWORD/FWORD/WORD, or that start/end
// with '-', or whose split doesn't clear the scoring threshold, pass
// through unchanged.
func (s *Splitter) Apply(tokens []token.Tagged) []token.Tagged {
	out := make([]token.Tagged, 0, len(tokens))
	for _, t := range tokens {
		if !isEligible(t) {
			out = append(out, t)
			continue
		}
		split := s.split(t.Text)
		if split == nil {
			out = append(out, t)
			continue
		}
		out = append(out, split...)
	}
	return out
}

func isEligible(t token.Tagged) bool {
	if t.Class != token.RWORD && t.Class != token.FWORD && t.Class != token.WORD {
		return false
	}
	if !strings.Contains(t.Text, "-") {
		return false
	}
	return !strings.HasPrefix(t.Text, "-") && !strings.HasSuffix(t.Text, "-")
}

// split applies the three-part and two-part dash rules (spec §4.4),
// returning nil if no rule fires.
func (s *Splitter) split(word string) []token.Tagged {
	parts := strings.Split(word, "-")

	if len(parts) == 3 {
		left := parts[0]
		mid := "-" + parts[1]
		right := "-" + parts[2]
		if s.isLexWord(left) && s.isLexWord(mid) && s.isLexWord(right) {
			return []token.Tagged{
				{Text: left, Class: token.RWORD},
				{Text: mid, Class: token.RWORD},
				{Text: right, Class: token.RWORD},
			}
		}
	}

	if len(parts) == 2 {
		lw1, rw1 := parts[0]+"-", parts[1]
		sc1 := s.score(lw1) + s.score(rw1)

		lw2, rw2 := parts[0], "-"+parts[1]
		sc2 := s.score(lw2) + s.score(rw2)

		left, right, score := lw2, rw2, sc2
		if sc1 >= sc2 {
			left, right, score = lw1, rw1, sc1
		}

		if score >= minSplitScore {
			return []token.Tagged{
				{Text: left, Class: token.RWORD},
				{Text: right, Class: token.RWORD},
			}
		}
	}

	return nil
}

// isLexWord is "is_lex_word" from the original: wordforms ∪ mwe_set ∪
// abbr_set, case-insensitive.
func (s *Splitter) isLexWord(w string) bool {
	return s.classify.HasLexWord(w)
}

// score computes the per-side dash score (spec §4.4): +1 if the
// lowercased side is in the Romanian dash-keep set, +2 if the side is a
// known lexicon word, a number, or "special caps".
func (s *Splitter) score(side string) int {
	score := 0
	if _, ok := roalpha.DashKeep[strings.ToLower(side)]; ok {
		score++
	}
	if s.isLexWord(side) || s.classify.WordIsNumber(side) || s.classify.WordIsSpecCaps(side) {
		score += 2
	}
	return score
}
