// Package config provides configuration for the lfsr tool.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akalin/golfsr/gf2p8"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the tool configuration.
type Config struct {
	Field  FieldConfig  `yaml:"field"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
	Random RandomConfig `yaml:"random"`
}

// FieldConfig picks the GF(2^8) field.
type FieldConfig struct {
	Poly uint16 `yaml:"poly"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	// Color is one of auto, always or never.
	Color string `yaml:"color"`
	// Prefix is prepended to the names of emitted C arrays.
	Prefix string `yaml:"prefix"`
}

// LogConfig defines logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// RandomConfig defines how random sequences are generated.
type RandomConfig struct {
	// Seed seeds random sequences; 0 means seed from the clock.
	Seed int64 `yaml:"seed"`
}

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Field: FieldConfig{
			Poly: gf2p8.DefaultPoly,
		},
		Output: OutputConfig{
			Color:  "auto",
			Prefix: "RAMRSBD",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads configuration from the specified file on top of the
// defaults, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if _, err := gf2p8.NewField(c.Field.Poly); err != nil {
		return fmt.Errorf("%w: field.poly %#x: %w", ErrInvalidConfig, c.Field.Poly, err)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: output.color %q: must be auto, always or never", ErrInvalidConfig, c.Output.Color)
	}
	if !isIdentifier(c.Output.Prefix) {
		return fmt.Errorf("%w: output.prefix %q: not a C identifier", ErrInvalidConfig, c.Output.Prefix)
	}
	if _, ok := levels[c.Log.Level]; !ok {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// SlogLevel returns the configured log level. It assumes c is valid.
func (c *Config) SlogLevel() slog.Level {
	return levels[c.Log.Level]
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
