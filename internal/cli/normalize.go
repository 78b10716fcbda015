package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/normalize"
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [text]",
		Short: "Apply the Romanian normalizer to text (or stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), normalize.Normalize(text))
			return nil
		},
	}
}

// readInput returns the arguments joined with single spaces if any are
// given, otherwise reads all of stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("rotok: reading stdin: %w", err)
	}
	return string(b), nil
}
