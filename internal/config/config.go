// Package config holds all wai configuration. Defaults are applied
// first, then an optional YAML file, then WAI_* environment overrides,
// so every setting can be driven from any of the three layers.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration tree.
type Config struct {
	// CacheDir holds the question inventory database.
	CacheDir string `yaml:"cache_dir"`

	// ReportsDir is where assessment directories are created.
	ReportsDir string `yaml:"reports_dir"`

	Tracker TrackerConfig `yaml:"tracker"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Logging LoggingConfig `yaml:"logging"`
}

// TrackerConfig configures the external issue tracker CLI.
type TrackerConfig struct {
	Binary  string `yaml:"binary"`
	Timeout string `yaml:"timeout"`
}

// FetchConfig configures source page fetching.
type FetchConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cacheDir := filepath.Join(os.Getenv("HOME"), ".cache", "well-architected")
	if dir, err := os.UserCacheDir(); err == nil {
		cacheDir = filepath.Join(dir, "well-architected")
	}
	return &Config{
		CacheDir:   cacheDir,
		ReportsDir: "reports",
		Tracker: TrackerConfig{
			Binary:  "kanbus",
			Timeout: "30s",
		},
		Fetch: FetchConfig{
			Timeout: "60s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the effective configuration. A missing file at path is
// only an error when the path was given explicitly.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if explicit {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides lets environment variables win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("WAI_CACHE_DIR"); v != "" {
		c.CacheDir = v
	}
	if v := os.Getenv("WAI_REPORTS_DIR"); v != "" {
		c.ReportsDir = v
	}
	if v := os.Getenv("WAI_TRACKER_BINARY"); v != "" {
		c.Tracker.Binary = v
	}
	if v := os.Getenv("WAI_TRACKER_TIMEOUT"); v != "" {
		c.Tracker.Timeout = v
	}
	if v := os.Getenv("WAI_FETCH_BASE_URL"); v != "" {
		c.Fetch.BaseURL = v
	}
	if v := os.Getenv("WAI_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// TrackerTimeout parses the tracker timeout, falling back to 30s on a
// malformed value.
func (c *Config) TrackerTimeout() time.Duration {
	return parseDuration(c.Tracker.Timeout, 30*time.Second)
}

// FetchTimeout parses the fetch timeout, falling back to 60s.
func (c *Config) FetchTimeout() time.Duration {
	return parseDuration(c.Fetch.Timeout, 60*time.Second)
}

// QuestionsDBPath is the inventory database location under CacheDir.
func (c *Config) QuestionsDBPath() string {
	return filepath.Join(c.CacheDir, "questions.db")
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
