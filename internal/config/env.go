package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Variables carry the LVREMAP_ prefix, e.g. LVREMAP_LOG_LEVEL.
type EnvConfig struct {
	// LogLevel is the log verbosity level.
	// Env: LVREMAP_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LVREMAP_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// DomainBits bounds every value to [0, 2^bits − 1].
	// Env: LVREMAP_DOMAIN_BITS (default: 32)
	DomainBits int `envconfig:"DOMAIN_BITS" default:"32"`

	// Workers caps concurrent seed-range evaluations; 0 means unlimited.
	// Env: LVREMAP_WORKERS (default: 4)
	Workers int `envconfig:"WORKERS" default:"4"`
}

// LoadFromEnv reads LVREMAP_* variables into an EnvConfig.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()
	if e.LogLevel != "" {
		cfg.logLevel = strings.ToUpper(e.LogLevel)
	}
	if e.LogFormat != "" {
		cfg.logFormat = LogFormat(strings.ToLower(e.LogFormat))
	}
	cfg.domainBits = e.DomainBits
	cfg.workers = e.Workers
	return cfg
}

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// LoadConfig loads the .env file (if any), then the environment, and validates the result.
func LoadConfig(envPath string) (AppConfig, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return AppConfig{}, err
	}
	env, err := LoadFromEnv()
	if err != nil {
		return AppConfig{}, err
	}
	cfg := env.ToAppConfig()
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
