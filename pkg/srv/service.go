package srv

import (
	"context"
	"errors"

	"github.com/sandevgo/fakenews/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts fg in the foreground and blocks until it returns or ctx is
// cancelled. Afterwards every service is shut down, fg first and the
// others in reverse order.
func Run(ctx context.Context, fg Service, others ...Service) error {
	logger := log.FromCtx(ctx)

	done := make(chan error, 1)
	go func() {
		done <- fg.Start(ctx)
	}()

	var runErr error
	select {
	case runErr = <-done:
	case <-ctx.Done():
		runErr = ctx.Err()
	}
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	// Shutdown gets a fresh context so it still runs after cancellation.
	shutdownCtx := context.WithoutCancel(ctx)
	services := append([]Service{fg}, reverse(others)...)
	for _, service := range services {
		if err := service.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msgf("%T failed to shutdown", service)
		}
	}
	return runErr
}

func reverse(services []Service) []Service {
	res := make([]Service, len(services))
	for i, s := range services {
		res[len(services)-1-i] = s
	}
	return res
}
