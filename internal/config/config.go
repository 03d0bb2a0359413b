package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the platform connection settings and report defaults,
// loaded from ~/.backrep/config.yaml
type Config struct {
	BaseURL        string `yaml:"base_url"`
	Token          string `yaml:"token"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	ExportDir      string `yaml:"export_dir"`
}

const defaultTimeoutSeconds = 30

// Load reads the config file from the user's home directory. A missing
// file is fine; a missing base URL is caught later, when a command
// actually needs the platform.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}
	return LoadFrom(filepath.Join(home, ".backrep", "config.yaml"))
}

// LoadFrom reads the config from an explicit path
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{TimeoutSeconds: defaultTimeoutSeconds}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaultTimeoutSeconds
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets BACKREP_TOKEN override the file so the token can stay out
// of version-controlled dotfiles
func (c *Config) applyEnv() {
	if token := os.Getenv("BACKREP_TOKEN"); token != "" {
		c.Token = token
	}
}

// Timeout returns the request timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
