package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogging applies LOG_LEVEL, LOG_PRETTY and LOG_FILE to the global
// zerolog logger. The returned func closes the log file, if one was opened.
func (c *Config) ConfigureLogging() (func() error, error) {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var out io.Writer = os.Stderr
	closeFn := func() error { return nil }
	if c.LogFile != "" {
		if dir := filepath.Dir(c.LogFile); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return closeFn, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return closeFn, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, f.Close
	}

	if c.LogPretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: c.LogFile != ""}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return closeFn, nil
}
