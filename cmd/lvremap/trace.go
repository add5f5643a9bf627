package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func traceCmd() *cobra.Command {
	var (
		common commonFlags
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "trace [file]",
		Short: "Print the value of one seed after every section",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(common)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			a, err := loadAlmanac(cmd, args, cfg, common.strict, logger)
			if err != nil {
				return err
			}
			steps, err := a.Trace(seed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range steps {
				fmt.Fprintf(out, "%-12s %d\n", s.Category, s.Value)
			}
			logger.Debug().Uint64("seed", seed).Uint64("location", steps[len(steps)-1].Value).Msg("seed traced")

			return nil
		},
	}

	common.register(cmd)
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed value to trace")
	_ = cmd.MarkFlagRequired("seed")

	return cmd
}
