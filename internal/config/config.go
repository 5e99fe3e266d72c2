// Package config provides configuration management for the catalog checkers.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"chronicle/internal/century"
	"chronicle/internal/models"
)

// Configuration validation errors.
var (
	ErrMissingRoot         = errors.New("catalog.root is required")
	ErrMissingBucketPrefix = errors.New("catalog.bucket_prefix is required")
	ErrNoKinds             = errors.New("at least one catalog kind is required")
	ErrNoEnabledKinds      = errors.New("at least one catalog kind must be enabled")
	ErrKindMissingDir      = errors.New("dir is required")
	ErrDuplicateKind       = errors.New("kind is listed twice")
	ErrKindNotConfigured   = errors.New("kind is not configured")
	ErrInvalidMaxResults   = errors.New("matching.max_results must be non-negative")
	ErrInvalidReportFormat = errors.New("report.format must be 'text' or 'markdown'")
	ErrInvalidDebounce     = errors.New("watch.debounce_ms must be non-negative")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Report formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// Config represents the complete checker configuration.
type Config struct {
	Catalog  CatalogConfig  `yaml:"catalog"`
	Report   ReportConfig   `yaml:"report"`
	Logging  LoggingConfig  `yaml:"logging"`
	Matching MatchingConfig `yaml:"matching"`
	Watch    WatchConfig    `yaml:"watch"`
}

// CatalogConfig describes where the catalog lives on disk.
type CatalogConfig struct {
	Root         string       `yaml:"root"`
	BucketPrefix string       `yaml:"bucket_prefix"`
	Kinds        []KindConfig `yaml:"kinds"`
}

// KindConfig maps one entity kind to its directory under the root.
type KindConfig struct {
	Kind    string `yaml:"kind"`
	Dir     string `yaml:"dir"`
	Enabled bool   `yaml:"enabled"`
}

// MatchingConfig tunes duplicate search output.
type MatchingConfig struct {
	MaxResults int `yaml:"max_results"`
}

// ReportConfig defines how results are rendered.
type ReportConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
	Color  bool   `yaml:"color"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// WatchConfig defines the re-validation loop.
type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	kinds := make([]KindConfig, 0, len(models.Kinds()))
	for _, k := range models.Kinds() {
		kinds = append(kinds, KindConfig{Kind: string(k), Dir: string(k), Enabled: true})
	}

	return &Config{
		Catalog: CatalogConfig{
			Root:         "data",
			BucketPrefix: century.DefaultPrefix,
			Kinds:        kinds,
		},
		Matching: MatchingConfig{MaxResults: 10},
		Logging:  LoggingConfig{Level: "info"},
		Report:   ReportConfig{Format: FormatText, Color: true},
		Watch:    WatchConfig{DebounceMs: 300},
	}
}

// LoadConfig loads configuration from a YAML file. Fields missing from the
// file keep their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Catalog.Root == "" {
		return ErrMissingRoot
	}

	if c.Catalog.BucketPrefix == "" {
		return ErrMissingBucketPrefix
	}

	if len(c.Catalog.Kinds) == 0 {
		return ErrNoKinds
	}

	enabledCount := 0
	seen := map[string]bool{}

	for i, k := range c.Catalog.Kinds {
		if _, err := models.ParseKind(k.Kind); err != nil {
			return fmt.Errorf("catalog.kinds[%d]: %w", i, err)
		}

		if seen[k.Kind] {
			return fmt.Errorf("%w: catalog.kinds[%d] %s", ErrDuplicateKind, i, k.Kind)
		}

		seen[k.Kind] = true

		if k.Dir == "" {
			return fmt.Errorf("%w: catalog.kinds[%d]", ErrKindMissingDir, i)
		}

		if k.Enabled {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledKinds
	}

	if c.Matching.MaxResults < 0 {
		return ErrInvalidMaxResults
	}

	if c.Report.Format != FormatText && c.Report.Format != FormatMarkdown {
		return ErrInvalidReportFormat
	}

	if c.Watch.DebounceMs < 0 {
		return ErrInvalidDebounce
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetEnabledKinds returns the enabled kinds in configured order.
func (c *Config) GetEnabledKinds() []models.Kind {
	var enabled []models.Kind

	for _, k := range c.Catalog.Kinds {
		if k.Enabled {
			enabled = append(enabled, models.Kind(k.Kind))
		}
	}

	return enabled
}

// KindDir returns the directory holding the buckets of kind.
func (c *Config) KindDir(kind models.Kind) (string, error) {
	for _, k := range c.Catalog.Kinds {
		if k.Kind == string(kind) {
			return filepath.Join(c.Catalog.Root, k.Dir), nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrKindNotConfigured, kind)
}

// GetDebounce returns the watch debounce duration.
func (w *WatchConfig) GetDebounce() time.Duration {
	return time.Duration(w.DebounceMs) * time.Millisecond
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Root: %s, Kinds: %d, Format: %s}",
		c.Catalog.Root,
		len(c.GetEnabledKinds()),
		c.Report.Format,
	)
}
