package horoscope

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sandevgo/fakenews/internal/catalog"
	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/internal/service/generator"
	"github.com/sandevgo/fakenews/pkg/log"
)

const (
	DefaultAttempts = 50
	DateLayout      = "Monday, January 02, 2006"
)

type Reading struct {
	Sign       string
	Prediction string
	Date       time.Time
}

func (r Reading) Text() string {
	return r.Sign + ": " + r.Prediction
}

type Config struct {
	Signs       []string
	Predictions []string
	Attempts    int
	Now         func() time.Time
}

func DefaultConfig() Config {
	return Config{
		Signs:       catalog.Signs,
		Predictions: catalog.Predictions,
		Attempts:    DefaultAttempts,
		Now:         time.Now,
	}
}

// Service keeps a separate history per sign, so every sign can go
// through the whole prediction list.
type Service struct {
	signs       []string
	predictions []string
	attempts    int
	now         func() time.Time
	rng         core.Rand

	spaces map[string]*generator.ProductSpace
	seen   map[string]*generator.SeenSet
}

func NewService(cfg Config, rng core.Rand) *Service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	s := &Service{
		signs:       cfg.Signs,
		predictions: cfg.Predictions,
		attempts:    cfg.Attempts,
		now:         cfg.Now,
		rng:         rng,
		spaces:      make(map[string]*generator.ProductSpace, len(cfg.Signs)),
		seen:        make(map[string]*generator.SeenSet, len(cfg.Signs)),
	}
	for _, sign := range cfg.Signs {
		s.spaces[sign] = generator.NewProductSpace(readingKey, []string{sign}, cfg.Predictions)
		s.seen[sign] = generator.NewSeenSet()
	}
	return s
}

func readingKey(picks []string) string {
	return picks[0] + ": " + picks[1]
}

func (s *Service) Signs() []string {
	return slices.Clone(s.signs)
}

// SignByIndex maps a 1-based menu index to a sign.
func (s *Service) SignByIndex(i int) (string, error) {
	if i < 1 || i > len(s.signs) {
		return "", fmt.Errorf("sign %d: %w", i, core.ErrInvalidSelection)
	}
	return s.signs[i-1], nil
}

// SignByName resolves a sign name, ignoring case.
func (s *Service) SignByName(name string) (string, error) {
	for _, sign := range s.signs {
		if strings.EqualFold(sign, strings.TrimSpace(name)) {
			return sign, nil
		}
	}
	return "", fmt.Errorf("sign %q: %w", name, core.ErrInvalidSelection)
}

// Next returns an unseen reading for sign and records it.
func (s *Service) Next(ctx context.Context, sign string) (Reading, error) {
	logger := log.FromCtx(ctx)

	space, ok := s.spaces[sign]
	if !ok {
		return Reading{}, fmt.Errorf("sign %q: %w", sign, core.ErrInvalidSelection)
	}
	seen := s.seen[sign]

	if generator.Exhausted[[]string](space, seen) {
		logger.Debug().Str("sign", sign).Msg("horoscopes exhausted")
		return Reading{}, core.ErrExhausted
	}

	picks, err := generator.Generate[[]string](space, seen, s.attempts, s.rng)
	if err != nil {
		return Reading{}, fmt.Errorf("generate horoscope for %s: %w", sign, err)
	}
	seen.Add(space.Key(picks))

	r := Reading{Sign: sign, Prediction: picks[1], Date: s.now()}
	logger.Debug().Str("sign", sign).Str("prediction", r.Prediction).Msg("horoscope generated")
	return r, nil
}

func (s *Service) Remaining(sign string) int {
	space, ok := s.spaces[sign]
	if !ok {
		return 0
	}
	return space.Size() - s.seen[sign].Len()
}
