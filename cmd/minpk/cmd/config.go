package cmd

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file passed with --config. Flags given on the
// command line take precedence.
type Config struct {
	// LogLevel is any level zapcore.ParseLevel accepts.
	LogLevel string `yaml:"log_level"`
	// Engine names the curve engine; empty selects the build default.
	Engine string `yaml:"engine"`
	// Concurrency bounds the number of certificates checked at once by batch.
	Concurrency int `yaml:"concurrency"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		Concurrency: runtime.NumCPU(),
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Concurrency <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidConcurrency, c.Concurrency)
	}
	return nil
}
