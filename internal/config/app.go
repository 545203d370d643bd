package config

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/fakenews/pkg/log"
)

type AppConfig struct {
	// Random attempts before the exhaustive fallback, per content type
	HeadlineAttempts  int `env:"FAKENEWS_HEADLINE_ATTEMPTS" envDefault:"50"`
	HoroscopeAttempts int `env:"FAKENEWS_HOROSCOPE_ATTEMPTS" envDefault:"50"`
	MathAttempts      int `env:"FAKENEWS_MATH_ATTEMPTS" envDefault:"200"`

	// Seed 0 draws a fresh seed at start
	Seed uint64 `env:"FAKENEWS_SEED" envDefault:"0"`

	Prompt string `env:"FAKENEWS_PROMPT" envDefault:"> "`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

// ParseAppConfig reads the environment and validates attempt budgets.
func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if c.HeadlineAttempts < 0 || c.HoroscopeAttempts < 0 || c.MathAttempts < 0 {
		return nil, fmt.Errorf("attempt budgets must not be negative")
	}
	return c, nil
}
