// Command runwords plays the daily run in a terminal.
//
// Keys: letters type, Backspace/Delete erase, Enter submits, ←/→ switch day,
// Tab toggles the history listing, Esc or Ctrl+C quits.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/runwords/internal/config"
	"github.com/robalobadob/runwords/internal/play"
)

func main() {
	_ = godotenv.Load()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "runwords:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// The terminal belongs to the UI, so logs go to a file.
	if cfg.LogFile == "" {
		cfg.LogFile = "runwords.log"
	}
	closeLog, err := cfg.ConfigureLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := context.Background()
	rt, err := play.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.Close(); err != nil {
			log.Warn().Err(err).Msg("close history backend")
		}
	}()

	if _, err := tea.NewProgram(newModel(ctx, rt.Player)).Run(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}
