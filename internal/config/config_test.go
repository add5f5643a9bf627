package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvVars(t *testing.T) {
	t.Helper()

	vars := []string{
		"LVREMAP_LOG_LEVEL",
		"LVREMAP_LOG_FORMAT",
		"LVREMAP_DOMAIN_BITS",
		"LVREMAP_WORKERS",
	}
	for _, v := range vars {
		t.Setenv(v, "")
		require.NoError(t, os.Unsetenv(v))
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, DefaultDomainBits, cfg.DomainBits)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, NewAppConfig(), cfg.ToAppConfig())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("LVREMAP_LOG_LEVEL", "debug")
	t.Setenv("LVREMAP_LOG_FORMAT", "JSON")
	t.Setenv("LVREMAP_DOMAIN_BITS", "64")
	t.Setenv("LVREMAP_WORKERS", "0")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Equal(t, 64, cfg.DomainBits())
	assert.Equal(t, 0, cfg.Workers())
}

func TestLoadFromEnv_BadNumber(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("LVREMAP_DOMAIN_BITS", "wide")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LVREMAP_DOMAIN_BITS=16\nLVREMAP_WORKERS=2\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("LVREMAP_DOMAIN_BITS")
		_ = os.Unsetenv("LVREMAP_WORKERS")
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.DomainBits())
	assert.Equal(t, 2, cfg.Workers())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  AppConfig
		ok   bool
	}{
		{"Defaults", NewAppConfig(), true},
		{"BadLevel", NewAppConfig().WithLogLevel("loud"), false},
		{"BadFormat", AppConfig{logLevel: "INFO", logFormat: "xml", domainBits: 32}, false},
		{"ZeroBits", NewAppConfig().WithDomainBits(0), false},
		{"WideBits", NewAppConfig().WithDomainBits(65), false},
		{"NegativeWorkers", NewAppConfig().WithWorkers(-1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
