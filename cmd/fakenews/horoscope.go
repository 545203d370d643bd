package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/internal/service/command"
	"github.com/sandevgo/fakenews/internal/service/picker"
	"github.com/spf13/cobra"
)

var pickSign bool

var horoscopeCmd = &cobra.Command{
	Use:   "horoscope [SIGN]",
	Short: "Print today's horoscope for a sign",
	Long:  `Prints a reading for SIGN (name or 1-12). With --pick, choose the sign from a list.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		services := NewServices(ctx)
		horoscopes := services.Horoscopes

		var sign string
		var err error
		switch {
		case pickSign:
			sign, err = picker.Pick("Choose your zodiac sign", horoscopes.Signs())
		case len(args) == 1:
			if i, convErr := strconv.Atoi(args[0]); convErr == nil {
				sign, err = horoscopes.SignByIndex(i)
			} else {
				sign, err = horoscopes.SignByName(args[0])
			}
		default:
			return errors.New("a sign is required, pass SIGN or --pick")
		}
		if errors.Is(err, core.ErrExit) {
			return nil
		}
		if err != nil {
			return err
		}

		formatter := command.NewResponseFormatter()
		out := cmd.OutOrStdout()

		reading, err := horoscopes.Next(ctx, sign)
		if errors.Is(err, core.ErrExhausted) {
			fmt.Fprintln(out, formatter.Exhausted("horoscopes for "+sign))
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, formatter.Horoscope(reading))
		return nil
	},
}

func init() {
	horoscopeCmd.Flags().BoolVar(&pickSign, "pick", false, "choose the sign interactively")
	rootCmd.AddCommand(horoscopeCmd)
}
