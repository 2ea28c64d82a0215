// Package config loads the optional YAML configuration of the billchain
// verifier.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable holding the configuration path.
const EnvPath = "BILLCHAIN_CONFIG"

// Config represents the verifier configuration
type Config struct {
	Verification struct {
		// HashTimeout bounds the wall time of the hash integrity pass; zero means no bound.
		HashTimeout       time.Duration `yaml:"hash_timeout"`
		SequentialHashing bool          `yaml:"sequential_hashing"`
	} `yaml:"verification"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`

	Metrics struct {
		// Textfile is written in the Prometheus text format after each run when set.
		Textfile string `yaml:"textfile"`
	} `yaml:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.Logging.Level = "warn"
	return c
}

// Load reads the file at path. An empty path yields Default.
// Environment variables in the file are expanded before parsing.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// FromEnv loads the file named by EnvPath.
func FromEnv() (Config, error) {
	return Load(os.Getenv(EnvPath))
}

func (c Config) Validate() error {
	if c.Verification.HashTimeout < 0 {
		return fmt.Errorf("hash_timeout must not be negative, got %s", c.Verification.HashTimeout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by Logging.Level.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", c.Logging.Level)
}
