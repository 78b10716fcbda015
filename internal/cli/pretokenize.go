package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/normalize"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/pretokenize"
)

func newPretokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pretokenize [text]",
		Short: "Emit (text, start, end) spans over the normalized input",
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

			adapter := pretokenize.NewAdapter(rt.tok)
			spans, err := adapter.Apply(normalize.Normalize(text))
			for _, s := range spans {
				fmt.Fprintf(cmd.OutOrStdout(), "[%d,%d)\t%s\n", s.Start, s.End, s.Text)
			}
			if err != nil {
				return err
			}
			return nil
		},
	}
}
