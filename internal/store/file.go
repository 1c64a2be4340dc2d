package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/runwords/internal/history"
)

// File keeps the whole history as one JSON document on disk.
type File struct {
	path string
}

// NewFile returns a backend writing to path. The parent directory is created on first save.
func NewFile(path string) *File { return &File{path: path} }

// Load reads and decodes the document. A missing file is empty history; an
// unparseable one returns history.ErrCorrupt.
func (f *File) Load(ctx context.Context) (history.Records, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info().Str("path", f.path).Msg("history file not found, starting empty")
		return history.Records{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	rs, err := history.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	log.Info().Str("path", f.path).Int("days", len(rs)).Msg("history loaded")
	return rs, nil
}

// Save rewrites the document atomically via a temp file and rename.
func (f *File) Save(ctx context.Context, rs history.Records) error {
	data, err := history.Encode(rs)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("rename to %s: %w", f.path, err)
	}
	log.Debug().Str("path", f.path).Int("days", len(rs)).Msg("history saved")
	return nil
}

// Close is a no-op.
func (f *File) Close() error { return nil }
