package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 0.5, cfg.Search.MinScore)
	assert.Equal(t, 50, cfg.Search.MaxResults)
	assert.True(t, cfg.Search.IncludeFuzzy)
	assert.Equal(t, 0.7, cfg.Search.FuzzyThreshold)
	assert.Equal(t, 300, cfg.Session.DebounceMs)
	assert.True(t, cfg.Session.EnableSuggestions)
	assert.Equal(t, 5, cfg.Session.MaxSuggestions)

	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
store:
  path: /tmp/custom.db
search:
  min_score: 2.0
  max_results: 10
session:
  debounce_ms: 150
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.Store.Path)
	assert.Equal(t, 2.0, cfg.Search.MinScore)
	assert.Equal(t, 10, cfg.Search.MaxResults)
	assert.Equal(t, 150, cfg.Session.DebounceMs)

	// Untouched fields keep their defaults.
	assert.Equal(t, 0.7, cfg.Search.FuzzyThreshold)
	assert.Equal(t, 5, cfg.Session.MaxSuggestions)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: [not a map"), 0644))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative min score", func(c *Config) { c.Search.MinScore = -1 }},
		{"negative max results", func(c *Config) { c.Search.MaxResults = -1 }},
		{"threshold above one", func(c *Config) { c.Search.FuzzyThreshold = 1.5 }},
		{"negative debounce", func(c *Config) { c.Session.DebounceMs = -10 }},
		{"negative max suggestions", func(c *Config) { c.Session.MaxSuggestions = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 300*time.Millisecond, cfg.Debounce())
	assert.Equal(t, time.Hour, cfg.CacheTTL())
}

func TestStorePath(t *testing.T) {
	cfg := Default()
	cfg.Store.Path = "/tmp/explicit.db"

	path, err := cfg.StorePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/explicit.db", path)

	cfg.Store.Path = ""
	path, err = cfg.StorePath()
	require.NoError(t, err)
	assert.Contains(t, path, ".tasksearch")
}
