package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/ruminaider/coinpicker/internal/coins"
	"go.yaml.in/yaml/v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Default list geometry: nine visible items of one row each.
const (
	DefaultLabel        = "Search"
	DefaultItemHeight   = 1
	DefaultVisibleCount = 9
)

// Config represents ~/.coinpicker/config.yaml.
type Config struct {
	Endpoint     string        `yaml:"endpoint"`
	Label        string        `yaml:"label"`
	ItemHeight   int           `yaml:"item_height"`
	VisibleCount int           `yaml:"visible_count"`
	Timeout      time.Duration `yaml:"timeout"`
	Favorites    []string      `yaml:"favorites,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint:     coins.DefaultEndpoint,
		Label:        DefaultLabel,
		ItemHeight:   DefaultItemHeight,
		VisibleCount: DefaultVisibleCount,
		Timeout:      coins.DefaultTimeout,
	}
}

// Parse parses config.yaml bytes. Fields absent from data keep their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads and validates the config at path. A missing file yields the
// defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save validates cfg and writes it to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks that sizes are positive and the endpoint is an absolute
// http(s) URL.
func (c Config) Validate() error {
	if c.ItemHeight < 1 {
		return fmt.Errorf("%w: item_height must be at least 1, got %d", ErrInvalid, c.ItemHeight)
	}
	if c.VisibleCount < 1 {
		return fmt.Errorf("%w: visible_count must be at least 1, got %d", ErrInvalid, c.VisibleCount)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalid)
	}
	return ValidateEndpoint(c.Endpoint)
}

// ValidateEndpoint checks that s is an absolute http or https URL.
func ValidateEndpoint(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("%w: endpoint: %v", ErrInvalid, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: endpoint must be an absolute http(s) URL, got %q", ErrInvalid, s)
	}
	return nil
}
