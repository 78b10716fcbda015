// Package glue implements the final glue/flatten pass (spec §4.6):
// fusing adjacent ABBR (and, if enabled, MWE) tokens into single tokens
// with internal spaces turned into '_', exploding multi-character
// PUNCT/SYM tokens into one token per rune, and dropping whitespace
// tokens from the output.
package glue

import (
	"strings"

	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/token"
)

// Apply fuses and flattens tokens. When gluePhrasalMWE is true, adjacent
// MWE-labeled tokens are fused the same way ABBR tokens always are;
// otherwise MWE tokens pass through individually (still subject to
// whitespace-dropping and punct/sym explosion).
func Apply(tokens []token.Tagged, gluePhrasalMWE bool) []token.Tagged {
	glued := fuse(tokens, gluePhrasalMWE)

	out := make([]token.Tagged, 0, len(glued))
	for _, t := range glued {
		if t.Class.IsWhitespace() || strings.TrimSpace(t.Text) == "" {
			continue
		}
		if t.Class.IsPunctOrSym() && len([]rune(t.Text)) > 1 {
			for _, r := range t.Text {
				out = append(out, token.Tagged{Text: string(r), Class: t.Class})
			}
			continue
		}
		out = append(out, t)
	}
	return out
}

func fuse(tokens []token.Tagged, gluePhrasalMWE bool) []token.Tagged {
	var out []token.Tagged
	var pending []string
	var pendingClass token.Class

	flush := func() {
		if len(pending) == 0 {
			return
		}
		text := strings.ReplaceAll(strings.Join(pending, ""), " ", "_")
		out = append(out, token.Tagged{Text: text, Class: pendingClass})
		pending = nil
	}

	for _, t := range tokens {
		fusible := t.Class == token.ABBR || (gluePhrasalMWE && t.Class == token.MWE)
		if fusible {
			pending = append(pending, t.Text)
			pendingClass = t.Class
			continue
		}
		flush()
		out = append(out, t)
	}
	flush()

	return out
}
