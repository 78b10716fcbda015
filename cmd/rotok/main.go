// Command rotok exercises the Romanian tokenizer and normalizer from
// the command line: normalize, tokenize, and pretokenize subcommands
// over a lexicon directory.
package main

import (
	"os"

	"github.com/racai-ai/ro-wordpiece-tokenizer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
