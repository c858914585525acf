// Package config loads run-policy configuration from YAML. Policy covers
// tunables that are not secrets: attempt caps, feedback elaboration, the
// HTTP listen address. Credentials and provider selection stay in the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the run-policy configuration.
type Config struct {
	// MaxAttempts caps submissions per question before forced advancement.
	MaxAttempts int `yaml:"max_attempts"`

	// ElaborateFeedback enables LLM elaboration on top of the template
	// feedback. The template is always produced; this only adds to it.
	ElaborateFeedback bool `yaml:"elaborate_feedback"`

	// Serve configures the HTTP surface.
	Serve ServeConfig `yaml:"serve"`
}

// ServeConfig configures the opsdojo serve command.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses a policy configuration from the given YAML file
// path, then fills unset fields with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(&cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault searches standard locations and loads the first config
// found. Search order: ./opsdojo.yaml, ~/.opsdojo/config.yaml. A missing
// file is not an error; defaults apply.
func LoadDefault() (*Config, error) {
	candidates := []string{"opsdojo.yaml"}

	home, err := os.UserHomeDir()
	if err == nil {
		candidates = append(candidates, filepath.Join(home, ".opsdojo", "config.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return Default(), nil
}

func applyDefaults(cfg *Config) {
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = ":8080"
	}
}

func (c *Config) validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1, got %d", c.MaxAttempts)
	}
	return nil
}
