package arithmetic

import (
	"context"
	"fmt"

	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/internal/service/generator"
	"github.com/sandevgo/fakenews/pkg/log"
)

const DefaultAttempts = 200

// Service draws problems from one history shared by all operators.
type Service struct {
	space    Space
	seen     *generator.SeenSet
	attempts int
	rng      core.Rand
}

func NewService(attempts int, rng core.Rand) *Service {
	return &Service{
		seen:     generator.NewSeenSet(),
		attempts: attempts,
		rng:      rng,
	}
}

// Next returns an unseen problem and records it right away, so a skipped
// problem is not asked again.
func (s *Service) Next(ctx context.Context) (Problem, error) {
	logger := log.FromCtx(ctx)

	if generator.Exhausted[Problem](s.space, s.seen) {
		logger.Debug().Int("seen", s.seen.Len()).Msg("math problems exhausted")
		return Problem{}, core.ErrExhausted
	}

	p, err := generator.Generate[Problem](s.space, s.seen, s.attempts, s.rng)
	if err != nil {
		return Problem{}, fmt.Errorf("generate problem: %w", err)
	}
	s.seen.Add(s.space.Key(p))

	logger.Debug().Str("problem", p.String()).Msg("math problem generated")
	return p, nil
}

func (s *Service) Remaining() int {
	return s.space.Size() - s.seen.Len()
}
