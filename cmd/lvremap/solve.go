package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// answers is the solve output; absent parts are omitted.
type answers struct {
	PartOne *uint64 `json:"part_one,omitempty" yaml:"part_one,omitempty"`
	PartTwo *uint64 `json:"part_two,omitempty" yaml:"part_two,omitempty"`
}

func solveCmd() *cobra.Command {
	var (
		common  commonFlags
		part    int
		format  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the lowest location for seeds (part 1) and seed ranges (part 2)",
		Long: `Print the lowest location reachable from the almanac's seeds.

Part 1 maps every seed as a single value. Part 2 reads the seeds as
(start, length) pairs and maps whole ranges, splitting them at every
stage boundary.

Environment variables:
  LVREMAP_LOG_LEVEL     Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LVREMAP_LOG_FORMAT    Log format: pretty, json (default: pretty)
  LVREMAP_DOMAIN_BITS   Domain width in bits (default: 32)
  LVREMAP_WORKERS       Concurrent seed ranges, 0 = unlimited (default: 4)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if part < 0 || part > 2 {
				return fmt.Errorf("--part must be 0, 1 or 2, got %d", part)
			}
			cfg, err := loadConfig(common)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg = cfg.WithWorkers(workers)
			}
			logger := newLogger(cmd, cfg)

			a, err := loadAlmanac(cmd, args, cfg, common.strict, logger)
			if err != nil {
				return err
			}

			var res answers
			if part != 2 {
				loc, err := a.LowestLocation()
				if err != nil {
					return fmt.Errorf("part one: %w", err)
				}
				logger.Info().Uint64("location", loc).Msg("part one solved")
				res.PartOne = &loc
			}
			if part != 1 {
				loc, err := a.LowestRangeLocation(cmd.Context(), cfg.Workers())
				if err != nil {
					return fmt.Errorf("part two: %w", err)
				}
				logger.Info().Uint64("location", loc).Int("workers", cfg.Workers()).Msg("part two solved")
				res.PartTwo = &loc
			}

			return writeAnswers(cmd.OutOrStdout(), format, res)
		},
	}

	common.register(cmd)
	cmd.Flags().IntVar(&part, "part", 0, "Part to solve: 1, 2, or 0 for both")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, yaml")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent seed ranges, 0 = unlimited (default: from config)")

	return cmd
}

func writeAnswers(w io.Writer, format string, res answers) error {
	switch format {
	case "text":
		if res.PartOne != nil {
			fmt.Fprintf(w, "part one: %d\n", *res.PartOne)
		}
		if res.PartTwo != nil {
			fmt.Fprintf(w, "part two: %d\n", *res.PartTwo)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(res)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
