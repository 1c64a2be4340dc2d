// internal/store/memory.go
//
// In-memory history backend.
// Used by tests and by HISTORY_BACKEND=memory, when durability is not required.
//
// Characteristics:
//   - Keeps a deep copy of the last saved mapping.
//   - Concurrency-safe via RWMutex.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/runwords/internal/history"
)

// Memory is a map-backed history.Backend.
type Memory struct {
	mu      sync.RWMutex
	records history.Records
	saves   int
}

// NewMemory constructs an empty in-memory backend, optionally seeded.
func NewMemory(seed history.Records) *Memory {
	if seed == nil {
		seed = history.Records{}
	}
	return &Memory{records: seed.Clone()}
}

// Load returns a copy of the stored mapping.
func (m *Memory) Load(ctx context.Context) (history.Records, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.records.Clone(), nil
}

// Save replaces the stored mapping.
func (m *Memory) Save(ctx context.Context, rs history.Records) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = rs.Clone()
	m.saves++
	return nil
}

// Saves reports how many times Save was called.
func (m *Memory) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
