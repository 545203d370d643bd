package main

import (
	"errors"
	"fmt"

	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/internal/service/command"
	"github.com/spf13/cobra"
)

var headlineCount int

var headlineCmd = &cobra.Command{
	Use:   "headline",
	Short: "Print unique fake news headlines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if headlineCount < 1 {
			return fmt.Errorf("-n must be at least 1, got %d", headlineCount)
		}

		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		services := NewServices(ctx)
		formatter := command.NewResponseFormatter()
		out := cmd.OutOrStdout()

		for range headlineCount {
			h, err := services.Headlines.Next(ctx)
			if errors.Is(err, core.ErrExhausted) {
				fmt.Fprintln(out, formatter.Exhausted("headlines"))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.Headline(h))
		}
		return nil
	},
}

func init() {
	headlineCmd.Flags().IntVarP(&headlineCount, "count", "n", 1, "number of headlines to print")
	rootCmd.AddCommand(headlineCmd)
}
