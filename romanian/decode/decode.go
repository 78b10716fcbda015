// Package decode implements the clitic decoder (spec §4.9): turning an
// ordered list of token texts back into a human-readable string by
// respecting dash-bound clitics.
package decode

import "strings"

// Decoder reattaches clitics to their host by dash presence.
type Decoder struct{}

// New returns a Decoder.
func New() *Decoder {
	return &Decoder{}
}

// Decode joins tokens with a single space between each adjacent pair,
// except where the left token ends with '-' or the right token starts
// with '-', in which case they are concatenated directly. A single
// token is returned unchanged.
func (d *Decoder) Decode(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	if len(tokens) == 1 {
		return tokens[0]
	}

	var b strings.Builder
	b.WriteString(tokens[0])
	for i := 1; i < len(tokens); i++ {
		left, right := tokens[i-1], tokens[i]
		if !strings.HasSuffix(left, "-") && !strings.HasPrefix(right, "-") {
			b.WriteByte(' ')
		}
		b.WriteString(right)
	}
	return b.String()
}
