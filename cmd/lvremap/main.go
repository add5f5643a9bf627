// Package main is the entry point for the lvremap CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvremap/almanac"
	"github.com/katalvlaran/lvremap/internal/config"
	"github.com/katalvlaran/lvremap/internal/log"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commonFlags are shared by every command that reads an almanac.
type commonFlags struct {
	envFile  string
	bits     int
	strict   bool
	logLevel string
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().IntVar(&f.bits, "bits", 0, "Domain width in bits (default: 32)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Reject sections without mapping lines")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: DEBUG, INFO, WARN, ERROR (default: from config)")
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lvremap",
		Short: "Cascading interval remapping over almanac files",
		Long: `lvremap builds a pipeline of gapless range mappings from an almanac file
and answers lowest-location queries for single seeds or seed ranges.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(solveCmd())
	cmd.AddCommand(traceCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables,
// then applies flag overrides.
func loadConfig(f commonFlags) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(f.envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	if f.bits != 0 {
		cfg = cfg.WithDomainBits(f.bits)
	}
	if f.logLevel != "" {
		cfg = cfg.WithLogLevel(f.logLevel)
	}
	if err := cfg.Validate(); err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// loadAlmanac parses the almanac named by args (stdin when absent or "-")
// and logs a summary of every built stage.
func loadAlmanac(cmd *cobra.Command, args []string, cfg config.AppConfig, strict bool, logger zerolog.Logger) (*almanac.Almanac, error) {
	var (
		in   io.Reader = cmd.InOrStdin()
		name           = "stdin"
	)
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open almanac: %w", err)
		}
		defer f.Close()
		in, name = f, args[0]
	}

	a, err := almanac.Parse(in, almanac.Options{DomainBits: cfg.DomainBits(), Strict: strict})
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	for i, s := range a.Sections {
		logger.Debug().
			Str("section", s.Name).
			Int("entries", len(s.Entries)).
			Int("offsets", a.Pipeline().Stage(i).Len()).
			Msg("stage built")
	}
	logger.Debug().Int("seeds", len(a.Seeds)).Int("stages", a.Pipeline().Len()).Msg("almanac loaded")

	return a, nil
}

func newLogger(cmd *cobra.Command, cfg config.AppConfig) zerolog.Logger {
	return log.NewLoggerWithWriter(cmd.ErrOrStderr(), cfg.LogFormat(), cfg.LogLevel())
}
