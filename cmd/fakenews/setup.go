package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/fakenews/internal/config"
	"github.com/sandevgo/fakenews/internal/random"
	"github.com/sandevgo/fakenews/internal/service/arithmetic"
	"github.com/sandevgo/fakenews/internal/service/command"
	"github.com/sandevgo/fakenews/internal/service/headline"
	"github.com/sandevgo/fakenews/internal/service/horoscope"
	"github.com/sandevgo/fakenews/pkg/log"
)

const envFile = ".env"

// Services holds the per-process content services. Their seen sets live
// as long as the process.
type Services struct {
	Config     *config.AppConfig
	Headlines  *headline.Service
	Horoscopes *horoscope.Service
	Problems   *arithmetic.Service
	Dealer     command.Dealer
}

func NewServices(ctx context.Context) *Services {
	logger := log.FromCtx(ctx)

	if err := initEnv(ctx, envFile); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	cfg := config.NewAppConfig(ctx)
	if seed != 0 {
		cfg.Seed = seed
	}

	rng, used, err := random.New(cfg.Seed)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed random source")
	}
	cfg.Seed = used
	logger.Debug().Uint64("seed", used).Msg("random source ready")

	headlineCfg := headline.DefaultConfig()
	headlineCfg.Attempts = cfg.HeadlineAttempts

	horoscopeCfg := horoscope.DefaultConfig()
	horoscopeCfg.Attempts = cfg.HoroscopeAttempts

	return &Services{
		Config:     cfg,
		Headlines:  headline.NewService(headlineCfg, rng),
		Horoscopes: horoscope.NewService(horoscopeCfg, rng),
		Problems:   arithmetic.NewService(cfg.MathAttempts, rng),
		Dealer:     command.ShuffledDealer(rng),
	}
}

func initEnv(ctx context.Context, envFile string) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
