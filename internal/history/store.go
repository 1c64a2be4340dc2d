package history

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Backend is the storage medium behind a Store. Save always receives the
// complete mapping and replaces whatever was stored before.
type Backend interface {
	Load(ctx context.Context) (Records, error)
	Save(ctx context.Context, rs Records) error
}

// Store is the in-process view of all recorded days, written through to a
// Backend on every change.
type Store struct {
	mu      sync.RWMutex
	records Records
	backend Backend
}

// Open loads the backend's records. A corrupt document is logged and treated
// as empty history; any other load error is returned.
func Open(ctx context.Context, b Backend) (*Store, error) {
	rs, err := b.Load(ctx)
	if errors.Is(err, ErrCorrupt) {
		log.Warn().Err(err).Msg("history: ignoring corrupt history, starting empty")
		rs, err = Records{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if rs == nil {
		rs = Records{}
	}
	return &Store{records: rs, backend: b}, nil
}

// Get returns a copy of the record for day.
func (s *Store) Get(day int) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[day]
	if !ok {
		return Record{}, false
	}
	return r.Clone(), true
}

// All returns a copy of every record.
func (s *Store) All() Records {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records.Clone()
}

// PutAll replaces the stored mapping with rs and writes it to the backend.
func (s *Store) PutAll(ctx context.Context, rs Records) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(ctx, rs.Clone())
}

// Put records r for day, keeping every other day, and rewrites the backend.
func (s *Store) Put(ctx context.Context, day int, r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.records.Clone()
	next[day] = r.Clone()
	return s.replaceLocked(ctx, next)
}

func (s *Store) replaceLocked(ctx context.Context, next Records) error {
	if err := s.backend.Save(ctx, next); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	s.records = next
	return nil
}
