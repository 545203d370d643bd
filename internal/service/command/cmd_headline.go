package command

import (
	"context"
	"errors"

	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/internal/service/headline"
)

type headlineSource interface {
	Next(ctx context.Context) (headline.Headline, error)
}

type HeadlineCommand struct {
	headlines headlineSource
	formatter *ResponseFormatter
}

func NewHeadlineCommand(headlines headlineSource) *HeadlineCommand {
	return &HeadlineCommand{
		headlines: headlines,
		formatter: NewResponseFormatter(),
	}
}

func (c *HeadlineCommand) Name() string {
	return "headline"
}

func (c *HeadlineCommand) Description() string {
	return "Fake News Headlines"
}

func (c *HeadlineCommand) Play(ctx context.Context, console core.Console) error {
	for {
		if err := checkCtx(ctx); err != nil {
			return err
		}

		h, err := c.headlines.Next(ctx)
		if errors.Is(err, core.ErrExhausted) {
			console.Print(c.formatter.Exhausted("headlines"))
			return nil
		}
		if err != nil {
			return err
		}
		console.Print(c.formatter.Headline(h))

		again, err := askYesNo(ctx, console, c.formatter, "\nDo you want another headline")
		if err != nil || !again {
			return err
		}
	}
}
