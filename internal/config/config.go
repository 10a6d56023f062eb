// Package config loads the tasksearch configuration file.
//
// Configuration is a single YAML file with three sections: store (the
// local database), search (engine defaults), and session (debounce and
// suggestion behavior). Every field has a working default; a missing
// file is not an error and simply yields the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the tasksearch configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Search  SearchConfig  `yaml:"search"`
	Session SessionConfig `yaml:"session"`
}

// StoreConfig holds local database settings.
type StoreConfig struct {
	Path string `yaml:"path"` // Database file path (empty = ~/.tasksearch/tasks.db)
}

// SearchConfig holds search engine defaults.
type SearchConfig struct {
	MinScore       float64 `yaml:"min_score"`       // Minimum score to include a match
	MaxResults     int     `yaml:"max_results"`     // Result list cap
	IncludeFuzzy   bool    `yaml:"include_fuzzy"`   // Enable edit-distance matching in the fine pass
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"` // Normalized similarity cutoff (0-1)
	CacheTTLMins   int     `yaml:"cache_ttl_mins"`  // Query cache lifetime
}

// SessionConfig holds interactive session settings.
type SessionConfig struct {
	DebounceMs        int  `yaml:"debounce_ms"`        // Trailing-edge debounce window
	EnableSuggestions bool `yaml:"enable_suggestions"` // Compute suggestions with each search
	MaxSuggestions    int  `yaml:"max_suggestions"`    // Suggestion list cap
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			MinScore:       0.5,
			MaxResults:     50,
			IncludeFuzzy:   true,
			FuzzyThreshold: 0.7,
			CacheTTLMins:   60,
		},
		Session: SessionConfig{
			DebounceMs:        300,
			EnableSuggestions: true,
			MaxSuggestions:    5,
		},
	}
}

// Load reads the configuration at path, layering it over the defaults.
// A missing file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Search.MinScore < 0 {
		return fmt.Errorf("search.min_score must be >= 0, got %v", c.Search.MinScore)
	}
	if c.Search.MaxResults < 0 {
		return fmt.Errorf("search.max_results must be >= 0, got %d", c.Search.MaxResults)
	}
	if c.Search.FuzzyThreshold < 0 || c.Search.FuzzyThreshold > 1 {
		return fmt.Errorf("search.fuzzy_threshold must be in [0, 1], got %v", c.Search.FuzzyThreshold)
	}
	if c.Session.DebounceMs < 0 {
		return fmt.Errorf("session.debounce_ms must be >= 0, got %d", c.Session.DebounceMs)
	}
	if c.Session.MaxSuggestions < 0 {
		return fmt.Errorf("session.max_suggestions must be >= 0, got %d", c.Session.MaxSuggestions)
	}
	return nil
}

// Debounce returns the session debounce window as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Session.DebounceMs) * time.Millisecond
}

// CacheTTL returns the query cache lifetime as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Search.CacheTTLMins) * time.Minute
}

// StorePath resolves the database file path, expanding the default
// location under the user's home directory.
func (c *Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tasksearch", "tasks.db"), nil
}

// DefaultPath returns the expected config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tasksearch", "config.yaml"), nil
}
