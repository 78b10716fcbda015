package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/normalize"
)

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize [text]",
		Short: "Normalize then tokenize text, printing one tagged token per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			rt, err := initRuntime(cfg)
			if err != nil {
				return err
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			tokens := rt.tok.Tokenize(normalize.Normalize(text))
			for _, t := range tokens {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t.Class, t.Text)
			}
			return nil
		},
	}
}
