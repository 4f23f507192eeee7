package alert

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type MemStore struct {
	mu   sync.RWMutex
	docs []Alert
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Create(ctx context.Context, a Alert) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = "a_" + uuid.NewString()
	s.docs = append(s.docs, a)
	return a.ID, nil
}

// All exposes stored alerts for tests; the HTTP surface has no alert reads.
func (s *MemStore) All() []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Alert(nil), s.docs...)
}
