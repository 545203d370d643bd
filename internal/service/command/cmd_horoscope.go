package command

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/internal/service/horoscope"
	"github.com/sandevgo/fakenews/pkg/log"
)

type horoscopeSource interface {
	Signs() []string
	SignByIndex(i int) (string, error)
	Next(ctx context.Context, sign string) (horoscope.Reading, error)
}

type HoroscopeCommand struct {
	horoscopes horoscopeSource
	formatter  *ResponseFormatter
}

func NewHoroscopeCommand(horoscopes horoscopeSource) *HoroscopeCommand {
	return &HoroscopeCommand{
		horoscopes: horoscopes,
		formatter:  NewResponseFormatter(),
	}
}

func (c *HoroscopeCommand) Name() string {
	return "horoscope"
}

func (c *HoroscopeCommand) Description() string {
	return "Daily Horoscope"
}

func (c *HoroscopeCommand) Play(ctx context.Context, console core.Console) error {
	for {
		if err := checkCtx(ctx); err != nil {
			return err
		}

		sign, err := c.askSign(ctx, console)
		if err != nil {
			return err
		}

		r, err := c.horoscopes.Next(ctx, sign)
		switch {
		case errors.Is(err, core.ErrExhausted):
			console.Print(c.formatter.Exhausted("horoscopes for " + sign))
		case err != nil:
			return err
		default:
			console.Print(c.formatter.Horoscope(r))
		}

		again, err := askYesNo(ctx, console, c.formatter, "\nDo you want another horoscope")
		if err != nil || !again {
			return err
		}
	}
}

func (c *HoroscopeCommand) askSign(ctx context.Context, console core.Console) (string, error) {
	signs := c.horoscopes.Signs()
	console.Print(c.formatter.Combine("\n", c.formatter.Title("Zodiac signs"), c.formatter.List(signs)))

	for {
		input, err := console.Ask(ctx, "Choose your sign (1-"+strconv.Itoa(len(signs))+"): ")
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err == nil {
			sign, err := c.horoscopes.SignByIndex(n)
			if err == nil {
				return sign, nil
			}
		}
		log.FromCtx(ctx).Debug().Str("input", input).Msg("invalid sign selection")
		console.Print(c.formatter.Error("Please enter a number between 1 and " + strconv.Itoa(len(signs)) + "."))
	}
}
