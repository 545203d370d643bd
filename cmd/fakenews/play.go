package main

import (
	"github.com/sandevgo/fakenews/internal/service/command"
	"github.com/sandevgo/fakenews/internal/transport/cli"
	"github.com/sandevgo/fakenews/pkg/log"
	"github.com/sandevgo/fakenews/pkg/srv"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive menu",
	Long:  `Shows the main menu and runs activities until you choose Exit.`,
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var flushLog func()
	ctx, flushLog = setupLogger(ctx)
	defer flushLog()

	logger := log.FromCtx(ctx)
	logger.Debug().Msg("starting fakenews")

	services := NewServices(ctx)
	menu := command.New(command.NewActivities(
		services.Headlines,
		services.Horoscopes,
		services.Problems,
		services.Dealer,
	))

	console, err := cli.NewReadLine(menu, services.Config)
	if err != nil {
		return err
	}

	report := srv.NewCleanup(func() error {
		logger.Debug().
			Int("headlines_left", services.Headlines.Remaining()).
			Int("problems_left", services.Problems.Remaining()).
			Msg("session finished")
		return nil
	})

	if err := srv.Run(ctx, console, report); err != nil {
		return err
	}
	logger.Debug().Msg("fakenews has been shut down gracefully")
	return nil
}

func init() {
	rootCmd.AddCommand(playCmd)
}
