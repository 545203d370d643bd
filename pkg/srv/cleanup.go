package srv

import "context"

// Cleanup is a Service that only does work on shutdown.
type Cleanup func() error

func (c Cleanup) Start(ctx context.Context) error {
	return nil
}

func (c Cleanup) Shutdown(ctx context.Context) error {
	if c != nil {
		return c()
	}
	return nil
}

func NewCleanup(fn func() error) Service {
	return Cleanup(fn)
}
