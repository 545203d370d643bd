package headline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/fakenews/internal/catalog"
	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/internal/service/generator"
	"github.com/sandevgo/fakenews/pkg/log"
)

const (
	DefaultAttempts = 50
	titlePrefix     = "BREAKING NEWS : "
	// DateLayout renders like "March 04, 2025 at 09:15 PM".
	DateLayout = "January 02, 2006 at 03:04 PM"
)

type Headline struct {
	Outlet    string
	Published time.Time
	Title     string
}

type Config struct {
	Subjects []string
	Actions  []string
	Places   []string
	Outlets  []string
	Attempts int
	Now      func() time.Time
}

func DefaultConfig() Config {
	return Config{
		Subjects: catalog.Subjects,
		Actions:  catalog.Actions,
		Places:   catalog.Places,
		Outlets:  catalog.Outlets,
		Attempts: DefaultAttempts,
		Now:      time.Now,
	}
}

// Service hands out headlines that were not shown earlier in the session.
type Service struct {
	space    *generator.ProductSpace
	seen     *generator.SeenSet
	outlets  []string
	attempts int
	now      func() time.Time
	rng      core.Rand
}

func NewService(cfg Config, rng core.Rand) *Service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{
		space:    generator.NewProductSpace(titleKey, cfg.Subjects, cfg.Actions, cfg.Places),
		seen:     generator.NewSeenSet(),
		outlets:  cfg.Outlets,
		attempts: cfg.Attempts,
		now:      cfg.Now,
		rng:      rng,
	}
}

func titleKey(picks []string) string {
	return titlePrefix + strings.Join(picks, " ")
}

// Next returns a fresh headline and records it as seen.
func (s *Service) Next(ctx context.Context) (Headline, error) {
	logger := log.FromCtx(ctx)

	if generator.Exhausted[[]string](s.space, s.seen) {
		logger.Debug().Int("seen", s.seen.Len()).Msg("headlines exhausted")
		return Headline{}, core.ErrExhausted
	}

	picks, err := generator.Generate[[]string](s.space, s.seen, s.attempts, s.rng)
	if err != nil {
		return Headline{}, fmt.Errorf("generate headline: %w", err)
	}

	title := s.space.Key(picks)
	s.seen.Add(title)

	h := Headline{
		Outlet:    s.outlets[s.rng.IntN(len(s.outlets))],
		Published: s.now(),
		Title:     title,
	}
	logger.Debug().Str("title", h.Title).Str("outlet", h.Outlet).Msg("headline generated")
	return h, nil
}

func (s *Service) Remaining() int {
	return s.space.Size() - s.seen.Len()
}

func (h Headline) Dateline() string {
	return h.Published.Format(DateLayout)
}
