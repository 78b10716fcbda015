package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is rotok's optional YAML config file contents — the lexicon
// directory path and log level aren't worth a flag-only interface once
// a user is running the CLI against a fixed lexicon repeatedly.
type Config struct {
	LexiconDir string `yaml:"lexicon_dir"`
	LogLevel   string `yaml:"log_level"`
}

// defaultConfig is used when no --config flag is given and no config
// file is found at the conventional path.
func defaultConfig() *Config {
	return &Config{
		LexiconDir: "./lexicon",
		LogLevel:   "info",
	}
}

// loadConfig reads and parses a YAML config file at path.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rotok: reading config file: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("rotok: parsing config file: %w", err)
	}
	return cfg, nil
}
