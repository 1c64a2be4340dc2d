package play

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/runwords/internal/config"
	"github.com/robalobadob/runwords/internal/history"
	"github.com/robalobadob/runwords/internal/store"
	"github.com/robalobadob/runwords/internal/words"
)

// Runtime is everything a host needs to play: the dictionary, the player and
// a closer for the history backend.
type Runtime struct {
	Dict   *words.Dictionary
	Player *Player
	Close  func() error
}

// Open loads the word lists, opens the configured history backend and builds a Player.
func Open(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	dict, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
	if err != nil {
		return nil, fmt.Errorf("load word lists: %w", err)
	}
	t, a := dict.Stats()
	log.Info().Int("targets", t).Int("allowed", a).Msg("word lists loaded")

	backend, err := store.Open(ctx, cfg.HistoryBackend, cfg.HistoryPath)
	if err != nil {
		return nil, fmt.Errorf("open history backend: %w", err)
	}
	h, err := history.Open(ctx, backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	log.Info().Str("backend", cfg.HistoryBackend).Str("path", cfg.HistoryPath).Int("days", len(h.All())).Msg("history ready")

	return &Runtime{
		Dict:   dict,
		Player: New(dict, h, Options{SnapshotEveryGuess: cfg.SnapshotEveryGuess}),
		Close:  backend.Close,
	}, nil
}
