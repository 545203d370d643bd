package cli

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/internal/service/command"
	"github.com/sandevgo/fakenews/pkg/log"
)

// Session is the main menu loop. It runs until the user picks exit or
// the console is closed.
type Session struct {
	ID        string
	menu      core.Menu
	console   core.Console
	formatter *command.ResponseFormatter
}

func NewSession(menu core.Menu, console core.Console) *Session {
	return &Session{
		ID:        uuid.NewString(),
		menu:      menu,
		console:   console,
		formatter: command.NewResponseFormatter(),
	}
}

func (s *Session) Run(ctx context.Context) error {
	ctx = log.WithFields(ctx, "session_id", s.ID)
	logger := log.FromCtx(ctx)
	logger.Debug().Msg("session started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.console.Print(s.formatter.Menu(s.menu.Activities()))
		input, err := s.console.Ask(ctx, "Choose an option: ")
		if err != nil {
			return s.finish(ctx, err)
		}

		activity, err := s.menu.Resolve(input)
		if errors.Is(err, core.ErrExit) {
			return s.finish(ctx, err)
		}
		if errors.Is(err, core.ErrInvalidSelection) {
			logger.Debug().Str("input", input).Msg("invalid menu selection")
			s.console.Print(s.formatter.Error("Please choose one of the listed options."))
			continue
		}
		if err != nil {
			return err
		}

		logger.Debug().Str("activity", activity.Name()).Msg("activity selected")
		if err := activity.Play(ctx, s.console); err != nil {
			return s.finish(ctx, err)
		}
	}
}

// finish treats an exit request or a closed console as a normal end.
func (s *Session) finish(ctx context.Context, err error) error {
	if !errors.Is(err, io.EOF) && !errors.Is(err, core.ErrExit) {
		return err
	}
	s.console.Print("Goodbye!\n")
	log.FromCtx(ctx).Debug().Msg("session finished")
	return nil
}
