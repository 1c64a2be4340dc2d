package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/runwords/internal/config"
	"github.com/robalobadob/runwords/internal/httpserver"
	"github.com/robalobadob/runwords/internal/play"
)

func main() {
	_ = godotenv.Load()
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// run returns instead of exiting so the history backend is closed on every path.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	closeLog, err := cfg.ConfigureLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	rt, err := play.Open(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.Close(); err != nil {
			log.Warn().Err(err).Msg("close history backend")
		}
	}()

	srv := httpserver.New(cfg, rt.Player, rt.Dict)
	log.Info().Str("port", cfg.Port).Bool("auth", cfg.AuthEnabled()).Msg("starting runwords server")
	return srv.Start(":" + cfg.Port)
}
