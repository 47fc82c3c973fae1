// Package config reads the service configuration from the environment.
// Variables are prefixed with VATIN_; an optional .env file is loaded first
// and never overrides variables that are already set.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Prefix is prepended to every variable name.
const Prefix = "VATIN_"

var (
	// ErrParsingConfig is returned when the environment cannot be parsed
	ErrParsingConfig = errors.New("failed to parse config from environment")

	// ErrInvalidConfig is returned when a parsed value is out of range
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds server and CLI settings
type Config struct {
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	Debug           bool          `env:"DEBUG"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	DisplayLanguage string        `env:"DISPLAY_LANGUAGE" envDefault:"en"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED" envDefault:"true"`
	MaxBatchSize    int           `env:"MAX_BATCH_SIZE" envDefault:"1000"`
}

// Load reads the configuration. Without envFiles a .env file in the working
// directory is loaded when present; named envFiles must exist.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("load env files: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration with every variable unset.
func Default() *Config {
	cfg := &Config{}
	_ = env.ParseWithOptions(cfg, env.Options{Prefix: Prefix, Environment: map[string]string{}})
	return cfg
}

// Validate checks values the environment parser cannot check
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q must be text or json", ErrInvalidConfig, c.LogFormat)
	}
	if _, err := language.Parse(c.DisplayLanguage); err != nil {
		return fmt.Errorf("%w: display language %q: %v", ErrInvalidConfig, c.DisplayLanguage, err)
	}
	if c.MaxBatchSize <= 0 {
		return fmt.Errorf("%w: max batch size must be positive, got %d", ErrInvalidConfig, c.MaxBatchSize)
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidConfig)
	}
	return nil
}

// Level returns the slog level, debug when Debug is set
func (c *Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// Language returns the display language tag, English when unparsable
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.DisplayLanguage)
	if err != nil {
		return language.English
	}
	return tag
}

// ParseLevel parses debug, info, warn or error
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
	return level, nil
}
