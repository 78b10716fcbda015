// Package cli is the rotok command-line collaborator's implementation
// (spec §6, "CLI surface ... non-normative"): normalize, tokenize and
// pre-tokenize subcommands over the lexicon the caller points it at,
// wired with cobra the way cmd/keyip does in the pack.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/racai-ai/ro-wordpiece-tokenizer/internal/rolog"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/lexicon"
	"github.com/racai-ai/ro-wordpiece-tokenizer/romanian/tokenizer"
)

// rootOptions holds the root command's persistent flags.
type rootOptions struct {
	configPath string
	lexiconDir string
	logLevel   string
}

// runtime carries the dependencies built from configuration that every
// subcommand needs: a loaded Lexicon and the Tokenizer built on it.
type runtime struct {
	lex *lexicon.Lexicon
	tok *tokenizer.Tokenizer
}

var opts rootOptions

// NewRootCommand builds the rotok root command and registers its
// subcommands.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rotok",
		Short:         "Romanian tokenizer and normalizer CLI",
		Long:          "rotok exercises the Romanian text normalizer and lexicon-aware tokenizer used to prepare corpora for WordPiece training.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML config file path (default: ./rotok.yaml if present)")
	pf.StringVar(&opts.lexiconDir, "lexicon-dir", "", "directory containing wordforms.txt, mwes.txt, abbrs.txt")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newNormalizeCmd(),
		newTokenizeCmd(),
		newPretokenizeCmd(),
	)

	return cmd
}

// Execute runs the rotok CLI; it is the entry point main.go calls.
func Execute() error {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	return nil
}

// resolveConfig merges the config file (if any) with the --lexicon-dir
// and --log-level flag overrides.
func resolveConfig() (*Config, error) {
	var cfg *Config

	path := opts.configPath
	if path == "" {
		if _, err := os.Stat("./rotok.yaml"); err == nil {
			path = "./rotok.yaml"
		}
	}

	if path != "" {
		loaded, err := loadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = defaultConfig()
	}

	if opts.lexiconDir != "" {
		cfg.LexiconDir = opts.lexiconDir
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	return cfg, nil
}

// initRuntime loads the lexicon named by cfg and builds a Tokenizer on
// it, after wiring rolog to a logger at cfg's level.
func initRuntime(cfg *Config) (*runtime, error) {
	if err := initLogger(cfg.LogLevel); err != nil {
		return nil, err
	}

	lex, err := lexicon.Load(lexicon.DefaultFiles(cfg.LexiconDir))
	if err != nil {
		return nil, fmt.Errorf("rotok: loading lexicon: %w", err)
	}

	return &runtime{
		lex: lex,
		tok: tokenizer.New(lex),
	}, nil
}

func initLogger(level string) error {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	z, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("rotok: building logger: %w", err)
	}
	rolog.SetLogger(z)
	return nil
}
