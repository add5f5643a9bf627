// Package config provides CLI configuration loaded from defaults, an
// optional .env file and LVREMAP_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Prefix is prepended to every environment variable name.
const Prefix = "LVREMAP"

// Default values. Struct tag defaults in env.go must match these.
const (
	DefaultLogLevel   = "INFO"
	DefaultLogFormat  = "pretty"
	DefaultDomainBits = 32
	DefaultWorkers    = 4
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// ErrInvalidConfig indicates a value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid value")

// AppConfig is the validated, immutable configuration.
type AppConfig struct {
	logLevel   string
	logFormat  LogFormat
	domainBits int
	workers    int
}

// NewAppConfig returns the default configuration.
func NewAppConfig() AppConfig {
	return AppConfig{
		logLevel:   DefaultLogLevel,
		logFormat:  LogFormatPretty,
		domainBits: DefaultDomainBits,
		workers:    DefaultWorkers,
	}
}

// LogLevel returns the log level name (DEBUG, INFO, WARN, ERROR).
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// DomainBits returns the width of the value domain.
func (c AppConfig) DomainBits() int { return c.domainBits }

// Workers returns the number of concurrent range evaluations.
func (c AppConfig) Workers() int { return c.workers }

// WithDomainBits returns a copy with the domain width replaced.
func (c AppConfig) WithDomainBits(bits int) AppConfig {
	c.domainBits = bits
	return c
}

// WithWorkers returns a copy with the worker count replaced.
func (c AppConfig) WithWorkers(n int) AppConfig {
	c.workers = n
	return c
}

// WithLogLevel returns a copy with the log level replaced.
func (c AppConfig) WithLogLevel(level string) AppConfig {
	c.logLevel = strings.ToUpper(level)
	return c
}

// Validate checks every field against its allowed range.
func (c AppConfig) Validate() error {
	switch c.logLevel {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("log level %q: %w", c.logLevel, ErrInvalidConfig)
	}
	switch c.logFormat {
	case LogFormatPretty, LogFormatJSON:
	default:
		return fmt.Errorf("log format %q: %w", c.logFormat, ErrInvalidConfig)
	}
	if c.domainBits < 1 || c.domainBits > 64 {
		return fmt.Errorf("domain bits %d: %w", c.domainBits, ErrInvalidConfig)
	}
	if c.workers < 0 {
		return fmt.Errorf("workers %d: %w", c.workers, ErrInvalidConfig)
	}

	return nil
}
