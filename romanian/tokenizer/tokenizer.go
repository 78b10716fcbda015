// Package tokenizer wires the character segmenter, dash splitter,
// phrasal recognizer, and glue pass into the single Tokenizer the rest
// of the module depends on (spec §2 dataflow, §4).
package tokenizer

import (
	"github.com/racai-ai/ro-wordpiece-tokenizer/internal/roalpha"
	"github.com/racai-ai/ro-wordpiece-tokenizer/internal/segtext"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/classify"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/dash"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/glue"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/lexicon"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/phrase"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/token"
)

// Tokenizer is a rule-based, lexicon-aware segmenter. It is built around
// a shared, immutable Lexicon (spec §5) and is itself safe for
// concurrent use, since it holds no mutable state between calls: each
// Tokenize builds its own pass-local segmenter chunks.
type Tokenizer struct {
	lex        *lexicon.Lexicon
	classifier *classify.Classifier
	charClass  *segtext.Classifier
	dash       *dash.Splitter
}

// New builds a Tokenizer backed by lex.
func New(lex *lexicon.Lexicon) *Tokenizer {
	classifier := classify.New(lex)
	return &Tokenizer{
		lex:        lex,
		classifier: classifier,
		charClass: segtext.NewClassifier(
			roalpha.IsWordChar,
			roalpha.IsPunctChar,
			roalpha.IsSymbolChar,
			roalpha.IsEOLChar,
			roalpha.IsSpaceChar,
		),
		dash: dash.New(classifier),
	}
}

// Tokenize runs the full pipeline (spec §4.3-§4.6) over s and returns the
// final, glued token stream with whitespace tokens dropped. Phrasal (MWE)
// gluing is enabled, matching the original's tokenize() entry point.
func (t *Tokenizer) Tokenize(s string) []token.Tagged {
	return t.tokenize(s, true)
}

// TokenizeRaw runs segmentation, the dash splitter, and both phrasal
// passes, but skips the final glue/flatten step: whitespace tokens are
// kept and phrasal spans stay as separate, relabeled tokens.
func (t *Tokenizer) TokenizeRaw(s string) []token.Tagged {
	return t.pipeline(s)
}

func (t *Tokenizer) tokenize(s string, gluePhrasalMWE bool) []token.Tagged {
	tokens := t.pipeline(s)
	return glue.Apply(tokens, gluePhrasalMWE)
}

func (t *Tokenizer) pipeline(s string) []token.Tagged {
	tokens := t.segment(s)
	tokens = splitPunctDot(tokens)
	tokens = t.dash.Apply(tokens)

	abbr := phrase.New(t.classifier, phrase.ABBR, t.lex.MaxAbbrParts(), t.lex.IsAbbrFirst)
	tokens = abbr.Apply(tokens)

	mwe := phrase.New(t.classifier, phrase.MWE, t.lex.MaxMWEParts(), t.lex.IsMWEFirst)
	tokens = mwe.Apply(tokens)

	return tokens
}

// segment runs the first-pass character segmenter and tags each chunk
// with the classifier (spec §4.3).
func (t *Tokenizer) segment(s string) []token.Tagged {
	chunks := segtext.Segment(s, t.charClass)
	out := make([]token.Tagged, 0, len(chunks))
	for _, c := range chunks {
		out = append(out, token.Tagged{Text: c.Text, Class: t.classifier.Tag(c.Text)})
	}
	return out
}

// splitPunctDot peels a single leading '.' off any PUNCT token longer
// than one rune (other than "..."), so that an abbreviation's trailing
// dot can be recognized as its own PUNCT token while a token that is
// exactly "..." is left intact. This mirrors _tokenize_punctuation in the
// original, which exists specifically to let the phrasal recognizer see
// dotted abbreviation boundaries correctly.
func splitPunctDot(tokens []token.Tagged) []token.Tagged {
	out := make([]token.Tagged, 0, len(tokens))
	for _, t := range tokens {
		if t.Class == token.PUNCT && len([]rune(t.Text)) > 1 && t.Text[0] == '.' && t.Text != "..." {
			out = append(out, token.Tagged{Text: t.Text[:1], Class: token.PUNCT})
			out = append(out, token.Tagged{Text: t.Text[1:], Class: token.PUNCT})
			continue
		}
		out = append(out, t)
	}
	return out
}
