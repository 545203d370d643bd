package main

import (
	"fmt"

	"github.com/sandevgo/fakenews/internal/config"
	"github.com/sandevgo/fakenews/pkg/env"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as .env lines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		if err := initEnv(ctx, envFile); err != nil {
			return err
		}
		cfg, err := config.ParseAppConfig()
		if err != nil {
			return err
		}
		if seed != 0 {
			cfg.Seed = seed
		}

		out, err := env.MarshalEnv(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
