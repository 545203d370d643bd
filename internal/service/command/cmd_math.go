package command

import (
	"context"
	"errors"

	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/internal/service/arithmetic"
	"github.com/sandevgo/fakenews/pkg/log"
)

type problemSource interface {
	Next(ctx context.Context) (arithmetic.Problem, error)
}

type MathCommand struct {
	problems  problemSource
	formatter *ResponseFormatter
}

func NewMathCommand(problems problemSource) *MathCommand {
	return &MathCommand{
		problems:  problems,
		formatter: NewResponseFormatter(),
	}
}

func (c *MathCommand) Name() string {
	return "math"
}

func (c *MathCommand) Description() string {
	return "Math Practice"
}

func (c *MathCommand) Play(ctx context.Context, console core.Console) error {
	logger := log.FromCtx(ctx)

	for {
		if err := checkCtx(ctx); err != nil {
			return err
		}

		p, err := c.problems.Next(ctx)
		if errors.Is(err, core.ErrExhausted) {
			console.Print(c.formatter.Exhausted("math problems"))
			return nil
		}
		if err != nil {
			return err
		}
		console.Print(c.formatter.Problem(p))

		verdict, err := c.askAnswer(ctx, console, p)
		if err != nil {
			return err
		}
		logger.Debug().Str("problem", p.String()).Int("verdict", int(verdict)).Msg("problem scored")
		console.Print(c.formatter.Verdict(p, verdict))

		again, err := askYesNo(ctx, console, c.formatter, "\nDo you want another problem")
		if err != nil || !again {
			return err
		}
	}
}

func (c *MathCommand) askAnswer(ctx context.Context, console core.Console, p arithmetic.Problem) (arithmetic.Verdict, error) {
	for {
		input, err := console.Ask(ctx, "Your answer (or 'skip'): ")
		if err != nil {
			return 0, err
		}
		verdict, err := arithmetic.Check(p, input)
		if errors.Is(err, core.ErrInvalidAnswer) {
			console.Print(c.formatter.Error("Please enter a number or 'skip'."))
			continue
		}
		return verdict, err
	}
}
