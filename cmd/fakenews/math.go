package main

import (
	"errors"
	"fmt"

	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/internal/service/arithmetic"
	"github.com/sandevgo/fakenews/internal/service/command"
	"github.com/spf13/cobra"
)

var problemCount int

var mathCmd = &cobra.Command{
	Use:   "math",
	Short: "Print a sheet of unique arithmetic problems with answers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if problemCount < 1 {
			return fmt.Errorf("-n must be at least 1, got %d", problemCount)
		}

		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		services := NewServices(ctx)
		out := cmd.OutOrStdout()

		for i := range problemCount {
			p, err := services.Problems.Next(ctx)
			if errors.Is(err, core.ErrExhausted) {
				fmt.Fprintln(out, command.NewResponseFormatter().Exhausted("math problems"))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%3d. %s = %s\n", i+1, p, arithmetic.FormatAnswer(p.Answer()))
		}
		return nil
	},
}

func init() {
	mathCmd.Flags().IntVarP(&problemCount, "count", "n", 10, "number of problems to print")
	rootCmd.AddCommand(mathCmd)
}
