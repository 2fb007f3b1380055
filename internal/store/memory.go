package store

import (
	"context"
	"sync"

	"github.com/reelmates/reelmates-client/internal/models"
)

// memoryStore keeps entries in process memory. Used when the sqlite store
// cannot be opened; nothing survives a restart.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemory() Store {
	return &memoryStore{entries: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	if !ok {
		return "", models.ErrNotFound
	}
	return value, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
