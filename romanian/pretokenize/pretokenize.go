// Package pretokenize adapts the tokenizer for two external consumers
// (spec §4.8): an inference-mode Adapter that aligns tokenizer output
// back onto the normalized input string as (text, start, end) spans,
// and a training-mode Training splitter for already-prepared corpus
// lines.
package pretokenize

import (
	"fmt"
	"strings"

	"github.com/racai-ai/ro-wordpiece-tokenizer/internal/rolog"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/token"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/tokenizer"
)

// trainingDelimiter is the literal separator already-prepared training
// corpus lines use between surface units.
const trainingDelimiter = "_tk_"

// DesyncError reports that the adapter's cursor lost alignment with the
// normalized string while walking a tokenizer output — the REDESIGN
// FLAGS §9 typed diagnostic standing in for the original's stderr print.
type DesyncError struct {
	// Token is the tokenizer output text the adapter was trying to
	// match when the desync happened.
	Token string
	// TokenIndex is this token's position in the tokenizer's output.
	TokenIndex int
	// Offset is the rune offset into the normalized string at which
	// matching failed.
	Offset int
}

func (e *DesyncError) Error() string {
	return fmt.Sprintf("pretokenize: desync matching token %d (%q) at offset %d", e.TokenIndex, e.Token, e.Offset)
}

// Adapter aligns a Tokenizer's output back onto the normalized string it
// was produced from (spec §4.8, consumer contract in §6).
type Adapter struct {
	tok *tokenizer.Tokenizer
}

// NewAdapter returns an Adapter backed by tok.
func NewAdapter(tok *tokenizer.Tokenizer) *Adapter {
	return &Adapter{tok: tok}
}

// Apply tokenizes normalized (which must already have passed through
// romanian/normalize) and walks the normalized string to produce one
// Offset per output token. On desync it emits the unmatched remainder
// as a single trailing span and returns a *DesyncError alongside the
// spans produced so far.
func (a *Adapter) Apply(normalized string) ([]token.Offset, error) {
	runes := []rune(normalized)
	tokens := a.tok.Tokenize(normalized)

	out := make([]token.Offset, 0, len(tokens))
	pos := 0

	for i, t := range tokens {
		// Between tokens, at most one literal space may be consumed —
		// whitespace tokens were dropped by the glue pass, so the
		// adapter re-discovers the gap here.
		if pos < len(runes) && runes[pos] == ' ' {
			pos++
		}

		start := pos
		matched := true
		for _, c := range t.Text {
			if pos >= len(runes) {
				matched = false
				break
			}
			if c == '_' {
				if runes[pos] != ' ' {
					matched = false
					break
				}
			} else if runes[pos] != c {
				matched = false
				break
			}
			pos++
		}

		if !matched {
			out = append(out, token.Offset{
				Text:  string(runes[start:]),
				Start: start,
				End:   len(runes),
			})
			rolog.L().Warnw("pretokenize: desync, emitting remainder and terminating",
				"token", t.Text, "token_index", i, "offset", pos)
			return out, &DesyncError{Token: t.Text, TokenIndex: i, Offset: pos}
		}

		out = append(out, token.Offset{
			Text:  string(runes[start:pos]),
			Start: start,
			End:   pos,
		})
	}

	return out, nil
}

// Training splits already-prepared corpus lines on the literal
// delimiter "_tk_" (spec §4.8 "Training-mode pre-tokenizer"), producing
// exactly the surface units the Romanian pipeline chose when the corpus
// was prepared.
type Training struct{}

// NewTraining returns a Training splitter.
func NewTraining() *Training {
	return &Training{}
}

// Split strips line and splits it on "_tk_", returning nil for a
// blank line.
func (t *Training) Split(line string) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, trainingDelimiter)
}
