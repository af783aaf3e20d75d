package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tobim/famvault/internal/account"
)

// MemoryStore is an in-memory Store for tests and ephemeral sessions.
// Records are kept in their serialized form so loads never alias the
// caller's data.
type MemoryStore struct {
	mu    sync.Mutex
	value []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Ready(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Load(ctx context.Context) (*account.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.value == nil {
		return nil, nil
	}
	var r account.Record
	if err := json.Unmarshal(s.value, &r); err != nil {
		return nil, fmt.Errorf("failed to decode account record: %w", err)
	}
	return &r, nil
}

func (s *MemoryStore) Save(ctx context.Context, r *account.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	value, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode account record: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = nil
	return nil
}
