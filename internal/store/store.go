// Package store provides the persistence backends for player history.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/runwords/internal/history"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
var ErrUnknownBackend = errors.New("unknown history backend")

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Backend is a history.Backend that holds resources.
type Backend interface {
	history.Backend
	Close() error
}

// Open constructs the named backend. path is ignored for memory.
func Open(ctx context.Context, name, path string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case BackendSQLite:
		return OpenSQLite(ctx, path)
	case BackendFile:
		return NewFile(path), nil
	case BackendMemory:
		return NewMemory(nil), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}
