package command

import (
	"context"
	"strings"

	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/pkg/log"
)

// askYesNo repeats the question until the answer is yes or no.
func askYesNo(ctx context.Context, console core.Console, f *ResponseFormatter, question string) (bool, error) {
	for {
		answer, err := console.Ask(ctx, question+" (yes/no)? ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		log.FromCtx(ctx).Debug().Str("input", answer).Msg("invalid yes/no answer")
		console.Print(f.Error("Please answer with yes or no."))
	}
}

// checkCtx stops an activity between generations, never in the middle of one.
func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
